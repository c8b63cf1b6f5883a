package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var (
	_ repository.CatalogReader = (*CatalogRepo)(nil)
	_ repository.CatalogWriter = (*CatalogRepo)(nil)
)

// CatalogRepo implementación de los puertos del catálogo sobre PostgreSQL.
type CatalogRepo struct {
	q  Querier
	tx *TxRunner
}

// NewCatalogRepository construye el adaptador de persistencia del catálogo.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{q: pool, tx: NewTxRunner(pool)}
}

const categoryColumns = `
		SELECT c.id, c.name, c.slug, c.description, c.created_at, c.updated_at,
		       (SELECT COUNT(*) FROM catalog_products cp
		         WHERE cp.category_id = c.id AND cp.is_published) AS products_count
		FROM catalog_categories c`

// ListCategories lista categorías con su conteo de publicados, ordenadas por nombre e ID.
func (r *CatalogRepo) ListCategories(ctx context.Context, f repository.CategoryFilter, offset, limit int) ([]repository.CategoryResult, int, error) {
	where := ""
	var args []any
	if f.Name != "" {
		where = " WHERE c.name = $1"
		args = append(args, f.Name)
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM catalog_categories c"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	query := categoryColumns + where +
		fmt.Sprintf(` ORDER BY c.name COLLATE "C", c.id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	rows, err := r.q.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	list := []repository.CategoryResult{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, *c)
	}
	return list, total, rows.Err()
}

// GetCategoryBySlug obtiene una categoría por slug.
func (r *CatalogRepo) GetCategoryBySlug(ctx context.Context, slug string) (*repository.CategoryResult, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, categoryColumns+" WHERE c.slug = $1", slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// ListProducts lista productos publicados con filtros, orden y paginación.
func (r *CatalogRepo) ListProducts(ctx context.Context, q catalog.ProductQuery) ([]repository.ProductListItem, int, error) {
	q = q.Normalize()
	listSQL, listArgs, countSQL, countArgs := buildProductQueries(q)

	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	rows, err := r.q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	items := []repository.ProductListItem{}
	for rows.Next() {
		item, err := scanProductItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	rows.Close()

	if err := r.hydrate(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetPublishedProductBySlug devuelve el detalle del producto; nil si no existe o no está publicado.
func (r *CatalogRepo) GetPublishedProductBySlug(ctx context.Context, slug string) (*repository.ProductDetail, error) {
	item, err := scanProductItem(r.q.QueryRow(ctx,
		productColumns+productFrom+" WHERE p.slug = $1 AND p.is_published = TRUE", slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	items := []repository.ProductListItem{*item}
	if err := r.hydrate(ctx, items); err != nil {
		return nil, err
	}
	images, err := r.imagesOf(ctx, item.Product.ID)
	if err != nil {
		return nil, err
	}
	return &repository.ProductDetail{ProductListItem: items[0], Images: images}, nil
}

// CountPublishedProducts cuenta productos visibles.
func (r *CatalogRepo) CountPublishedProducts(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM catalog_products WHERE is_published`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count published products: %w", err)
	}
	return n, nil
}

// CountCategories cuenta todas las categorías.
func (r *CatalogRepo) CountCategories(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM catalog_categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// hydrate carga en lote propiedades e imagen primaria de los items.
func (r *CatalogRepo) hydrate(ctx context.Context, items []repository.ProductListItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int64, len(items))
	index := make(map[int64]int, len(items))
	for i, it := range items {
		ids[i] = it.Product.ID
		index[it.Product.ID] = i
		items[i].Properties = []entity.ProductProperty{}
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, key, value, "order", created_at
		FROM catalog_product_properties
		WHERE product_id = ANY($1)
		ORDER BY product_id, "order", key COLLATE "C"`, ids)
	if err != nil {
		return fmt.Errorf("list properties: %w", err)
	}
	for rows.Next() {
		var pp entity.ProductProperty
		if err := rows.Scan(&pp.ID, &pp.ProductID, &pp.Key, &pp.Value, &pp.Order, &pp.CreatedAt); err != nil {
			rows.Close()
			return fmt.Errorf("scan property: %w", err)
		}
		i := index[pp.ProductID]
		items[i].Properties = append(items[i].Properties, pp)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list properties: %w", err)
	}

	// Imagen primaria: la de menor ID entre las marcadas como primarias.
	rows, err = r.q.Query(ctx, `
		SELECT DISTINCT ON (product_id) id, product_id, image, alt_text, is_primary, created_at
		FROM catalog_product_images
		WHERE product_id = ANY($1) AND is_primary
		ORDER BY product_id, id`, ids)
	if err != nil {
		return fmt.Errorf("list primary images: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return fmt.Errorf("scan image: %w", err)
		}
		items[index[img.ProductID]].PrimaryImage = img
	}
	return rows.Err()
}

func (r *CatalogRepo) imagesOf(ctx context.Context, productID int64) ([]entity.ProductImage, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, image, alt_text, is_primary, created_at
		FROM catalog_product_images
		WHERE product_id = $1
		ORDER BY id`, productID)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	images := []entity.ProductImage{}
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		images = append(images, *img)
	}
	return images, rows.Err()
}

// ── helpers ───────────────────────────────────────────────────────────────────

// pgxScanner abstrae pgx.Row y pgx.Rows.
type pgxScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row pgxScanner) (*repository.CategoryResult, error) {
	var c repository.CategoryResult
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt, &c.ProductsCount); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanProductItem(row pgxScanner) (*repository.ProductListItem, error) {
	var it repository.ProductListItem
	p, c := &it.Product, &it.Category
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.StockQuantity,
		&p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt, &c.ProductsCount,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func scanImage(row pgxScanner) (*entity.ProductImage, error) {
	var img entity.ProductImage
	if err := row.Scan(&img.ID, &img.ProductID, &img.Image, &img.AltText, &img.IsPrimary, &img.CreatedAt); err != nil {
		return nil, err
	}
	return &img, nil
}
