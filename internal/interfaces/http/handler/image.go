package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sportshop/backend/internal/domain/catalog"
	"github.com/sportshop/backend/internal/infrastructure/imagecache"
)

// ImageHandler serves product and brand images through the on-disk
// cache. Only URLs stored on catalog rows are ever fetched; clients
// address images by article or brand id, never by URL. A failed fetch
// answers 404 so clients fall back to their placeholder instead of
// erroring.
type ImageHandler struct {
	BaseHandler
	cache    *imagecache.Cache
	products catalog.ProductRepository
	brands   catalog.BrandRepository
}

// NewImageHandler creates a new image handler
func NewImageHandler(cache *imagecache.Cache, products catalog.ProductRepository, brands catalog.BrandRepository) *ImageHandler {
	return &ImageHandler{cache: cache, products: products, brands: brands}
}

// ProductImage handles GET /api/v1/images/products/:article
func (h *ImageHandler) ProductImage(c *gin.Context) {
	product, err := h.products.FindByArticle(c.Request.Context(), c.Param("article"))
	if err != nil {
		h.NotFound(c, "Image is unavailable")
		return
	}
	h.serve(c, product.ImageURL)
}

// BrandImage handles GET /api/v1/images/brands/:id
func (h *ImageHandler) BrandImage(c *gin.Context) {
	brandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Brand ID must be a UUID")
		return
	}

	brand, err := h.brands.FindByID(c.Request.Context(), brandID)
	if err != nil {
		h.NotFound(c, "Image is unavailable")
		return
	}
	h.serve(c, brand.ImageURL)
}

func (h *ImageHandler) serve(c *gin.Context, url string) {
	if url == "" {
		h.NotFound(c, "Image is unavailable")
		return
	}

	data, err := h.cache.Get(c.Request.Context(), url)
	if err != nil {
		h.NotFound(c, "Image is unavailable")
		return
	}

	c.Data(http.StatusOK, http.DetectContentType(data), data)
}
