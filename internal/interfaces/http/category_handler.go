package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// CategoryHandler maneja las peticiones HTTP de categorías.
type CategoryHandler struct {
	uc  *usecase.CategoryUseCase
	log *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        name  query  string  false  "Nombre exacto"
// @Param        page  query  int     false  "Página"  default(1)
// @Success      200   {object}  dto.PageResponse[dto.CategoryResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /categories/ [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return badRequest(c, h.log, err)
	}
	out, err := h.uc.List(c.UserContext(), strings.TrimSpace(c.Query("name")), page)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.NewPageResponse(out, pageLinker(c)))
}

// GetBySlug godoc
// @Summary      Obtener categoría por slug
// @Tags         categories
// @Produce      json
// @Param        slug  path  string  true  "Slug de la categoría"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /categories/{slug}/ [get]
func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return internalError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Productos publicados de una categoría
// @Description  Acepta los mismos filtros y orden que /products/; se combinan con la categoría de la ruta.
// @Tags         categories
// @Produce      json
// @Param        slug      path   string  true   "Slug de la categoría"
// @Param        ordering  query  string  false  "Criterio de orden"  default(-created_at)
// @Param        page      query  int     false  "Página"             default(1)
// @Success      200  {object}  dto.PageResponse[dto.ProductListItemResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{slug}/products/ [get]
func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	q, err := parseProductQuery(c)
	if err != nil {
		return badRequest(c, h.log, err)
	}
	page, err := h.uc.Products(c.UserContext(), c.Params("slug"), q)
	if err != nil {
		return internalError(c, h.log, err)
	}
	if page == nil {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(dto.NewPageResponse(*page, pageLinker(c)))
}

// PriceList godoc
// @Summary      Lista de precios (PDF)
// @Tags         categories
// @Produce      application/pdf
// @Param        slug  path  string  true  "Slug de la categoría"
// @Success      200   {file}    binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /categories/{slug}/price-list/ [get]
func (h *CategoryHandler) PriceList(c *fiber.Ctx) error {
	slug := c.Params("slug")
	pdf, err := h.uc.PriceList(c.UserContext(), slug)
	if err != nil {
		return internalError(c, h.log, err)
	}
	if pdf == nil {
		return notFound(c, "categoría no encontrada")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+slug+`-precios.pdf"`)
	return c.Send(pdf)
}
