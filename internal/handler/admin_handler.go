package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gunpla-hub/service-storefront/internal/application"
	"github.com/gunpla-hub/service-storefront/internal/platform/middleware"
	"github.com/gunpla-hub/service-storefront/internal/platform/response"
)

// AdminHandler handles admin HTTP requests for discounts, orders and
// product markdowns.
type AdminHandler struct {
	discountService *application.DiscountService
	orderService    *application.OrderService
	catalogService  *application.CatalogService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	discountService *application.DiscountService,
	orderService *application.OrderService,
	catalogService *application.CatalogService,
) *AdminHandler {
	return &AdminHandler{
		discountService: discountService,
		orderService:    orderService,
		catalogService:  catalogService,
	}
}

// RegisterRoutes registers admin routes behind the admin token.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup, adminToken string) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdminToken(adminToken))
	{
		admin.GET("/discounts", h.ListDiscounts)
		admin.POST("/discounts", h.CreateDiscount)
		admin.PUT("/discounts/:id", h.UpdateDiscount)
		admin.DELETE("/discounts/:id", h.DeleteDiscount)
		admin.GET("/orders", h.ListOrders)
		admin.GET("/stats/orders", h.OrderStats)
		admin.POST("/products/:id/discount", h.ApplyProductDiscount)
		admin.DELETE("/products/:id/discount", h.RemoveProductDiscount)
	}
}

// ListDiscounts handles GET /api/v1/admin/discounts.
func (h *AdminHandler) ListDiscounts(c *gin.Context) {
	discounts, err := h.discountService.ListDiscounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, discounts)
}

// CreateDiscount handles POST /api/v1/admin/discounts.
func (h *AdminHandler) CreateDiscount(c *gin.Context) {
	var req application.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.discountService.CreateDiscount(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateDiscount handles PUT /api/v1/admin/discounts/:id.
func (h *AdminHandler) UpdateDiscount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid discount ID")
		return
	}

	var req application.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.discountService.UpdateDiscount(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteDiscount handles DELETE /api/v1/admin/discounts/:id.
func (h *AdminHandler) DeleteDiscount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid discount ID")
		return
	}

	if err := h.discountService.DeleteDiscount(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListOrders handles GET /api/v1/admin/orders.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	orders, total, err := h.orderService.ListAllOrders(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, orders, total, page, limit)
}

// OrderStats handles GET /api/v1/admin/stats/orders.
func (h *AdminHandler) OrderStats(c *gin.Context) {
	stats, err := h.orderService.GetOrderStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, stats)
}

// ApplyProductDiscount handles POST /api/v1/admin/products/:id/discount.
func (h *AdminHandler) ApplyProductDiscount(c *gin.Context) {
	var req application.ProductDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.catalogService.ApplyProductDiscount(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, p)
}

// RemoveProductDiscount handles DELETE /api/v1/admin/products/:id/discount.
func (h *AdminHandler) RemoveProductDiscount(c *gin.Context) {
	p, err := h.catalogService.RemoveProductDiscount(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, p)
}
