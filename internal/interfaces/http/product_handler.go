package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP de productos publicados.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar productos publicados
// @Tags         products
// @Produce      json
// @Param        category     query  string  false  "Slug de categoría"
// @Param        category_id  query  int     false  "ID de categoría"
// @Param        min_price    query  number  false  "Precio mínimo (inclusivo)"
// @Param        max_price    query  number  false  "Precio máximo (inclusivo)"
// @Param        name         query  string  false  "Nombre contiene (sin distinguir mayúsculas)"
// @Param        ordering     query  string  false  "price, -price, name, -name, created_at, -created_at"  default(-created_at)
// @Param        page         query  int     false  "Página"  default(1)
// @Success      200  {object}  dto.PageResponse[dto.ProductListItemResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /products/ [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q, err := parseProductQuery(c)
	if err != nil {
		return badRequest(c, h.log, err)
	}
	page, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.NewPageResponse(page, pageLinker(c)))
}

// GetBySlug godoc
// @Summary      Detalle de producto publicado
// @Tags         products
// @Produce      json
// @Param        slug  path  string  true  "Slug del producto"
// @Success      200   {object}  dto.ProductDetailResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products/{slug}/ [get]
func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return internalError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// Health godoc
// @Summary      Estado del catálogo
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /products/health/ [get]
func (h *ProductHandler) Health(c *fiber.Ctx) error {
	out, err := h.uc.Health(c.UserContext())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}
