package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/sportshop/backend/internal/domain/catalog"
)

// ProductDTO is the product representation returned to callers
type ProductDTO struct {
	ID          uuid.UUID `json:"id"`
	Article     string    `json:"article"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Material    string    `json:"material,omitempty"`
	Color       string    `json:"color,omitempty"`
	Size        string    `json:"size,omitempty"`
	Country     string    `json:"country,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Season      string    `json:"season,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// BrandDTO is the brand representation returned to callers
type BrandDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url,omitempty"`
}

// CreateProductRequest carries the fields for a new product
type CreateProductRequest struct {
	Article     string `json:"article" binding:"required,max=50"`
	Name        string `json:"name" binding:"required,max=200"`
	Price       string `json:"price" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Brand       string `json:"brand" binding:"omitempty,max=100"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"omitempty,max=500"`
	Material    string `json:"material" binding:"omitempty,max=100"`
	Color       string `json:"color" binding:"omitempty,max=50"`
	Size        string `json:"size" binding:"omitempty,max=50"`
	Country     string `json:"country" binding:"omitempty,max=100"`
	Gender      string `json:"gender" binding:"omitempty,max=20"`
	Season      string `json:"season" binding:"omitempty,max=50"`
}

// CreateBrandRequest carries the fields for a new brand
type CreateBrandRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	ImageURL string `json:"image_url" binding:"omitempty,max=500"`
}

// FilterRequest carries one session's filter selections
type FilterRequest struct {
	BrandIDs   []uuid.UUID `json:"brand_ids"`
	Categories []string    `json:"categories"`
	Search     string      `json:"search"`
}

func toProductDTO(p *catalog.Product) *ProductDTO {
	return &ProductDTO{
		ID:          p.ID,
		Article:     p.Article,
		Name:        p.Name,
		Price:       p.Price.StringFixed(2),
		Category:    p.Category,
		Brand:       p.Brand,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Material:    p.Material,
		Color:       p.Color,
		Size:        p.Size,
		Country:     p.Country,
		Gender:      p.Gender,
		Season:      p.Season,
		CreatedAt:   p.CreatedAt,
	}
}

func toBrandDTO(b *catalog.Brand) *BrandDTO {
	return &BrandDTO{
		ID:       b.ID,
		Name:     b.Name,
		ImageURL: b.ImageURL,
	}
}
