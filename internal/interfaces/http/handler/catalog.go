package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcatalog "github.com/sportshop/backend/internal/application/catalog"
	"github.com/sportshop/backend/internal/domain/catalog"
	"github.com/sportshop/backend/internal/domain/shared"
	"github.com/sportshop/backend/internal/interfaces/http/dto"
	"github.com/sportshop/backend/internal/interfaces/http/middleware"
)

// CatalogHandler exposes the product catalog: browsing, filtering and
// the admin-side product and brand management.
type CatalogHandler struct {
	BaseHandler
	products *appcatalog.ProductService
	brands   *appcatalog.BrandService
	brandRep catalog.BrandRepository
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	products *appcatalog.ProductService,
	brands *appcatalog.BrandService,
	brandRep catalog.BrandRepository,
) *CatalogHandler {
	return &CatalogHandler{
		products: products,
		brands:   brands,
		brandRep: brandRep,
	}
}

// ListProducts handles GET /api/v1/catalog/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters: "+err.Error())
		return
	}

	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	filter.OrderBy = req.OrderBy
	filter.OrderDir = req.OrderDir
	filter.Search = req.Search
	if category := c.Query("category"); category != "" {
		filter.Filters = map[string]any{"category": category}
	}

	page, err := h.products.ListProducts(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetProduct handles GET /api/v1/catalog/products/:article
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.products.GetProduct(c.Request.Context(), c.Param("article"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Categories handles GET /api/v1/catalog/categories
func (h *CatalogHandler) Categories(c *gin.Context) {
	h.Success(c, h.products.Categories())
}

// ListBrands handles GET /api/v1/catalog/brands.
// With ?ids=a,b only those brands are resolved, unknown ids dropped;
// the filter panel uses this to label its selections.
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	if raw := c.Query("ids"); raw != "" {
		ids := make([]uuid.UUID, 0)
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				h.BadRequest(c, "Brand ids must be UUIDs")
				return
			}
			ids = append(ids, id)
		}

		brands, err := h.brands.GetBrandsByIDs(c.Request.Context(), ids)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, brands)
		return
	}

	brands, err := h.brands.ListBrands(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, brands)
}

// Filter handles POST /api/v1/catalog/filter.
// Category, brand and search selections combine; a product must pass
// every active filter to appear in the result.
func (h *CatalogHandler) Filter(c *gin.Context) {
	var req appcatalog.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid filter payload: "+err.Error())
		return
	}

	f := appcatalog.NewProductFilter(h.brandRep)
	f.LoadBrandMappings(c.Request.Context())
	f.SetSelectedBrands(req.BrandIDs)
	f.SetSelectedCategories(req.Categories)
	f.SetSearchText(req.Search)

	products, err := h.products.FilterCatalog(c.Request.Context(), f)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"products": products,
		"summary":  f.Summary(),
	})
}

// CreateProduct handles POST /api/v1/admin/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req appcatalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	product, err := h.products.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// DeleteProduct handles DELETE /api/v1/admin/products/:article
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.products.DeleteProduct(c.Request.Context(), c.Param("article")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateBrand handles POST /api/v1/admin/brands
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var req appcatalog.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	brand, err := h.brands.CreateBrand(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, brand)
}
