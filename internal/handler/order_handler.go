package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gunpla-hub/service-storefront/internal/application"
	"github.com/gunpla-hub/service-storefront/internal/platform/response"
)

// OrderHandler handles HTTP requests for placed orders.
type OrderHandler struct {
	service *application.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *application.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers all order routes on the given router group.
func (h *OrderHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/orders/:id", h.GetOrder)
}

// GetOrder handles GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid order ID")
		return
	}

	dto, err := h.service.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto)
}
