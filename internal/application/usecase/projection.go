package usecase

import (
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

func toCategoryResponse(c repository.CategoryResult) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		ProductsCount: c.ProductsCount,
		CreatedAt:     c.CreatedAt,
	}
}

func toPropertyResponses(props []entity.ProductProperty) []dto.ProductPropertyResponse {
	out := make([]dto.ProductPropertyResponse, 0, len(props))
	for _, pp := range props {
		out = append(out, dto.ProductPropertyResponse{ID: pp.ID, Key: pp.Key, Value: pp.Value, Order: pp.Order})
	}
	return out
}

func toImageResponse(img entity.ProductImage, media MediaURLs) dto.ProductImageResponse {
	return dto.ProductImageResponse{
		ID:        img.ID,
		Image:     media.URL(img.Image),
		AltText:   img.AltText,
		IsPrimary: img.IsPrimary,
	}
}

func toProductListItem(it repository.ProductListItem, media MediaURLs) dto.ProductListItemResponse {
	out := dto.ProductListItemResponse{
		ID:         it.Product.ID,
		Name:       it.Product.Name,
		Slug:       it.Product.Slug,
		Price:      it.Product.Price.StringFixed(2),
		Category:   toCategoryResponse(it.Category),
		Properties: toPropertyResponses(it.Properties),
		CreatedAt:  it.Product.CreatedAt,
	}
	if it.PrimaryImage != nil {
		img := toImageResponse(*it.PrimaryImage, media)
		out.PrimaryImage = &img
	}
	return out
}

func toProductDetail(d repository.ProductDetail, media MediaURLs) dto.ProductDetailResponse {
	item := toProductListItem(d.ProductListItem, media)
	images := make([]dto.ProductImageResponse, 0, len(d.Images))
	for _, img := range d.Images {
		images = append(images, toImageResponse(img, media))
	}
	return dto.ProductDetailResponse{
		ID:            item.ID,
		Name:          item.Name,
		Slug:          item.Slug,
		Description:   d.Product.Description,
		Price:         item.Price,
		Category:      item.Category,
		StockQuantity: d.Product.StockQuantity,
		Images:        images,
		Properties:    item.Properties,
		PrimaryImage:  item.PrimaryImage,
		CreatedAt:     item.CreatedAt,
	}
}
