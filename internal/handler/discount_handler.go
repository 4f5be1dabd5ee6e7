package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gunpla-hub/service-storefront/internal/application"
	"github.com/gunpla-hub/service-storefront/internal/platform/response"
)

// DiscountHandler handles public HTTP requests for discount codes.
type DiscountHandler struct {
	service *application.DiscountService
}

// NewDiscountHandler creates a new DiscountHandler.
func NewDiscountHandler(service *application.DiscountService) *DiscountHandler {
	return &DiscountHandler{service: service}
}

// RegisterRoutes registers all public discount routes.
func (h *DiscountHandler) RegisterRoutes(r *gin.RouterGroup) {
	discounts := r.Group("/discounts")
	{
		discounts.GET("/active", h.GetActiveDiscounts)
		discounts.POST("/validate", h.ValidateDiscount)
	}
}

// GetActiveDiscounts handles GET /api/v1/discounts/active.
func (h *DiscountHandler) GetActiveDiscounts(c *gin.Context) {
	result, err := h.service.ListActiveDiscounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ValidateDiscount handles POST /api/v1/discounts/validate.
func (h *DiscountHandler) ValidateDiscount(c *gin.Context) {
	var req application.ValidateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ValidateDiscount(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
