// Package memory implementa los puertos del catálogo en memoria (STORAGE_DRIVER=memory y tests).
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var (
	_ repository.CatalogReader = (*Store)(nil)
	_ repository.CatalogWriter = (*Store)(nil)
)

// Store almacén en memoria protegido por un RWMutex. Devuelve siempre copias.
type Store struct {
	mu         sync.RWMutex
	categories map[int64]entity.Category
	products   map[int64]entity.Product
	properties map[int64]entity.ProductProperty
	images     map[int64]entity.ProductImage
	lastID     int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		categories: make(map[int64]entity.Category),
		products:   make(map[int64]entity.Product),
		properties: make(map[int64]entity.ProductProperty),
		images:     make(map[int64]entity.ProductImage),
	}
}

// nextID debe llamarse con el lock de escritura tomado.
func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

// ── Lectura ──────────────────────────────────────────────────────────────────

// ListCategories lista categorías ordenadas por nombre e ID.
func (s *Store) ListCategories(_ context.Context, f repository.CategoryFilter, offset, limit int) ([]repository.CategoryResult, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]entity.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if f.Name != "" && c.Name != f.Name {
			continue
		}
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].ID < all[j].ID
	})

	window := slice(all, offset, limit)
	out := make([]repository.CategoryResult, 0, len(window))
	for _, c := range window {
		out = append(out, s.categoryResult(c))
	}
	return out, len(all), nil
}

// GetCategoryBySlug obtiene una categoría por slug.
func (s *Store) GetCategoryBySlug(_ context.Context, slug string) (*repository.CategoryResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			res := s.categoryResult(c)
			return &res, nil
		}
	}
	return nil, nil
}

// ListProducts aplica el motor de consulta sobre los productos en memoria.
func (s *Store) ListProducts(_ context.Context, q catalog.ProductQuery) ([]repository.ProductListItem, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q = q.Normalize()
	matched := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if q.Filter.Matches(p, s.categories[p.CategoryID]) {
			matched = append(matched, p)
		}
	}
	catalog.SortProducts(matched, q.Ordering, func(p entity.Product) entity.Product { return p })

	page := catalog.Paginate(matched, q.Page, q.PageSize)
	items := make([]repository.ProductListItem, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, s.listItem(p))
	}
	return items, page.Count, nil
}

// GetPublishedProductBySlug devuelve el detalle de un producto publicado.
func (s *Store) GetPublishedProductBySlug(_ context.Context, slug string) (*repository.ProductDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Slug != slug || !p.IsPublished {
			continue
		}
		return &repository.ProductDetail{
			ProductListItem: s.listItem(p),
			Images:          s.imagesOf(p.ID),
		}, nil
	}
	return nil, nil
}

// CountPublishedProducts cuenta productos visibles.
func (s *Store) CountPublishedProducts(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.products {
		if p.IsPublished {
			n++
		}
	}
	return n, nil
}

// CountCategories cuenta todas las categorías.
func (s *Store) CountCategories(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.categories), nil
}

func (s *Store) categoryResult(c entity.Category) repository.CategoryResult {
	n := 0
	for _, p := range s.products {
		if p.CategoryID == c.ID && p.IsPublished {
			n++
		}
	}
	return repository.CategoryResult{Category: c, ProductsCount: n}
}

func (s *Store) listItem(p entity.Product) repository.ProductListItem {
	item := repository.ProductListItem{
		Product:    p,
		Category:   s.categoryResult(s.categories[p.CategoryID]),
		Properties: s.propertiesOf(p.ID),
	}
	for _, img := range s.imagesOf(p.ID) {
		if img.IsPrimary {
			img := img
			item.PrimaryImage = &img
			break
		}
	}
	return item
}

func (s *Store) propertiesOf(productID int64) []entity.ProductProperty {
	out := []entity.ProductProperty{}
	for _, pp := range s.properties {
		if pp.ProductID == productID {
			out = append(out, pp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func (s *Store) imagesOf(productID int64) []entity.ProductImage {
	out := []entity.ProductImage{}
	for _, img := range s.images {
		if img.ProductID == productID {
			out = append(out, img)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// slice recorta [offset, offset+limit); limit <= 0 devuelve todo desde offset.
func slice[T any](all []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset > len(all) {
		offset = len(all)
	}
	end := len(all)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return all[offset:end]
}

// ── Escritura ────────────────────────────────────────────────────────────────

// CategorySlugExists indica si el slug ya está usado por otra categoría.
func (s *Store) CategorySlugExists(_ context.Context, slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categorySlugTaken(slug), nil
}

// ProductSlugExists indica si el slug ya está usado por otro producto.
func (s *Store) ProductSlugExists(_ context.Context, slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productSlugTaken(slug), nil
}

// FindCategoryByName busca la categoría de menor ID con ese nombre.
func (s *Store) FindCategoryByName(_ context.Context, name string) (*entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *entity.Category
	for _, c := range s.categories {
		if c.Name == name && (found == nil || c.ID < found.ID) {
			c := c
			found = &c
		}
	}
	return found, nil
}

// FindProductByName busca el producto de menor ID con ese nombre (publicado o no).
func (s *Store) FindProductByName(_ context.Context, name string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *entity.Product
	for _, p := range s.products {
		if p.Name == name && (found == nil || p.ID < found.ID) {
			p := p
			found = &p
		}
	}
	return found, nil
}

// CreateCategory persiste una categoría nueva.
func (s *Store) CreateCategory(_ context.Context, category *entity.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categorySlugTaken(category.Slug) {
		return domain.ErrDuplicate
	}
	category.ID = s.nextID()
	s.categories[category.ID] = *category
	return nil
}

// CreateProduct persiste el producto y sus propiedades; si algo falla no guarda nada.
func (s *Store) CreateProduct(_ context.Context, product *entity.Product, properties []entity.ProductProperty) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.productSlugTaken(product.Slug) {
		return domain.ErrDuplicate
	}
	if _, ok := s.categories[product.CategoryID]; !ok {
		return fmt.Errorf("%w: categoría %d inexistente", domain.ErrInvalidInput, product.CategoryID)
	}
	seen := make(map[string]bool, len(properties))
	for _, pp := range properties {
		if seen[pp.Key] {
			return fmt.Errorf("%w: propiedad %q repetida", domain.ErrDuplicate, pp.Key)
		}
		seen[pp.Key] = true
	}

	product.ID = s.nextID()
	s.products[product.ID] = *product
	for i := range properties {
		properties[i].ID = s.nextID()
		properties[i].ProductID = product.ID
		s.properties[properties[i].ID] = properties[i]
	}
	return nil
}

// AddProperty agrega una propiedad; (producto, clave) es único.
func (s *Store) AddProperty(_ context.Context, property *entity.ProductProperty) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[property.ProductID]; !ok {
		return fmt.Errorf("%w: producto %d inexistente", domain.ErrInvalidInput, property.ProductID)
	}
	for _, pp := range s.properties {
		if pp.ProductID == property.ProductID && pp.Key == property.Key {
			return fmt.Errorf("%w: propiedad %q repetida", domain.ErrDuplicate, property.Key)
		}
	}
	property.ID = s.nextID()
	s.properties[property.ID] = *property
	return nil
}

// AddImage agrega una imagen a un producto existente.
func (s *Store) AddImage(_ context.Context, image *entity.ProductImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[image.ProductID]; !ok {
		return fmt.Errorf("%w: producto %d inexistente", domain.ErrInvalidInput, image.ProductID)
	}
	image.ID = s.nextID()
	s.images[image.ID] = *image
	return nil
}

// DeleteProduct elimina el producto en cascada.
func (s *Store) DeleteProduct(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.products, id)
	for pid, pp := range s.properties {
		if pp.ProductID == id {
			delete(s.properties, pid)
		}
	}
	for iid, img := range s.images {
		if img.ProductID == id {
			delete(s.images, iid)
		}
	}
	return nil
}

func (s *Store) categorySlugTaken(slug string) bool {
	for _, c := range s.categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

func (s *Store) productSlugTaken(slug string) bool {
	for _, p := range s.products {
		if p.Slug == slug {
			return true
		}
	}
	return false
}
