package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CategorySlugExists indica si el slug ya está usado por una categoría.
func (r *CatalogRepo) CategorySlugExists(ctx context.Context, slug string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM catalog_categories WHERE slug = $1)`, slug)
}

// ProductSlugExists indica si el slug ya está usado por un producto.
func (r *CatalogRepo) ProductSlugExists(ctx context.Context, slug string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM catalog_products WHERE slug = $1)`, slug)
}

func (r *CatalogRepo) exists(ctx context.Context, query, arg string) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, query, arg).Scan(&ok); err != nil {
		return false, fmt.Errorf("slug exists: %w", err)
	}
	return ok, nil
}

// FindCategoryByName devuelve la categoría de menor ID con ese nombre.
func (r *CatalogRepo) FindCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, `
		SELECT id, name, slug, description, created_at, updated_at
		FROM catalog_categories WHERE name = $1 ORDER BY id LIMIT 1`, name,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return &c, nil
}

// FindProductByName devuelve el producto de menor ID con ese nombre (publicado o no).
func (r *CatalogRepo) FindProductByName(ctx context.Context, name string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, `
		SELECT id, category_id, name, slug, description, price, stock_quantity, is_published, created_at, updated_at
		FROM catalog_products WHERE name = $1 ORDER BY id LIMIT 1`, name,
	).Scan(&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.StockQuantity,
		&p.IsPublished, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product by name: %w", err)
	}
	return &p, nil
}

// CreateCategory persiste una categoría y asigna su ID.
func (r *CatalogRepo) CreateCategory(ctx context.Context, category *entity.Category) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO catalog_categories (name, slug, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		category.Name, category.Slug, category.Description, category.CreatedAt, category.UpdatedAt,
	).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// CreateProduct inserta producto y propiedades en una sola transacción.
func (r *CatalogRepo) CreateProduct(ctx context.Context, product *entity.Product, properties []entity.ProductProperty) error {
	return r.tx.Run(ctx, func(q Querier) error {
		err := q.QueryRow(ctx, `
			INSERT INTO catalog_products (category_id, name, slug, description, price, stock_quantity, is_published, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
			product.CategoryID, product.Name, product.Slug, product.Description, product.Price,
			product.StockQuantity, product.IsPublished, product.CreatedAt, product.UpdatedAt,
		).Scan(&product.ID)
		if err != nil {
			return mapWriteError("insert product", err)
		}
		for i := range properties {
			properties[i].ProductID = product.ID
			if err := insertProperty(ctx, q, &properties[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddProperty agrega una propiedad; (product_id, key) es único.
func (r *CatalogRepo) AddProperty(ctx context.Context, property *entity.ProductProperty) error {
	return insertProperty(ctx, r.q, property)
}

func insertProperty(ctx context.Context, q Querier, pp *entity.ProductProperty) error {
	err := q.QueryRow(ctx, `
		INSERT INTO catalog_product_properties (product_id, key, value, "order", created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		pp.ProductID, pp.Key, pp.Value, pp.Order, pp.CreatedAt,
	).Scan(&pp.ID)
	if err != nil {
		return mapWriteError("insert property", err)
	}
	return nil
}

// AddImage registra una imagen ya guardada en el almacén de medios.
func (r *CatalogRepo) AddImage(ctx context.Context, image *entity.ProductImage) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO catalog_product_images (product_id, image, alt_text, is_primary, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		image.ProductID, image.Image, image.AltText, image.IsPrimary, image.CreatedAt,
	).Scan(&image.ID)
	if err != nil {
		return mapWriteError("insert image", err)
	}
	return nil
}

// DeleteProduct elimina el producto; propiedades e imágenes caen por ON DELETE CASCADE.
func (r *CatalogRepo) DeleteProduct(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM catalog_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func mapWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidInput)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
