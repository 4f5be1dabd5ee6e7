package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gunpla-hub/service-storefront/internal/application"
	"github.com/gunpla-hub/service-storefront/internal/domain/catalog"
	"github.com/gunpla-hub/service-storefront/internal/platform/response"
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	service *application.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RegisterRoutes registers the public catalog routes.
func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	products := r.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
	}
}

// ListProducts handles GET /api/v1/products.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	f, err := filtersFromQuery(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ListProducts(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetProduct handles GET /api/v1/products/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, p)
}

// filtersFromQuery overlays query parameters on the default filters. Tags
// may be repeated or comma separated.
func filtersFromQuery(c *gin.Context) (catalog.Filters, error) {
	f := catalog.DefaultFilters()

	f.Search = c.Query("search")
	for param, dst := range map[string]*string{
		"category":     &f.Category,
		"subcategory":  &f.Subcategory,
		"price_range":  &f.PriceRange,
		"manufacturer": &f.Manufacturer,
		"difficulty":   &f.Difficulty,
		"series":       &f.Series,
	} {
		if v := c.Query(param); v != "" {
			*dst = v
		}
	}

	for _, raw := range c.QueryArray("tags") {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				f.Tags = append(f.Tags, tag)
			}
		}
	}

	var err error
	if f.InStockOnly, err = boolQuery(c, "in_stock"); err != nil {
		return f, err
	}
	if f.HasModel3D, err = boolQuery(c, "has_model_3d"); err != nil {
		return f, err
	}
	if v := c.Query("min_price"); v != "" {
		if f.MinPrice, err = decimal.NewFromString(v); err != nil {
			return f, err
		}
	}
	if v := c.Query("max_price"); v != "" {
		if f.MaxPrice, err = decimal.NewFromString(v); err != nil {
			return f, err
		}
	}
	if v := c.Query("sort_by"); v != "" {
		f.SortBy = catalog.SortBy(v)
	}
	if v := c.Query("sort_order"); v != "" {
		f.SortOrder = catalog.SortOrder(v)
	}
	return f, nil
}

func boolQuery(c *gin.Context, key string) (bool, error) {
	v := c.Query(key)
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}
