package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gunpla-hub/service-storefront/internal/application"
	"github.com/gunpla-hub/service-storefront/internal/domain/catalog"
	"github.com/gunpla-hub/service-storefront/internal/platform/response"
)

// StorefrontHandler handles HTTP requests scoped to one shopper session.
type StorefrontHandler struct {
	storefront *application.StorefrontService
	checkout   *application.CheckoutService
}

// NewStorefrontHandler creates a new StorefrontHandler.
func NewStorefrontHandler(storefront *application.StorefrontService, checkout *application.CheckoutService) *StorefrontHandler {
	return &StorefrontHandler{storefront: storefront, checkout: checkout}
}

// RegisterRoutes registers all session routes.
func (h *StorefrontHandler) RegisterRoutes(r *gin.RouterGroup) {
	s := r.Group("/sessions/:sid")
	{
		s.GET("", h.GetState)
		s.POST("/cart/items", h.AddToCart)
		s.PATCH("/cart/items/:pid", h.UpdateQuantity)
		s.DELETE("/cart/items/:pid", h.RemoveFromCart)
		s.DELETE("/cart", h.ClearCart)
		s.POST("/wishlist/:pid", h.ToggleWishlist)
		s.POST("/compare/:pid", h.ToggleCompare)
		s.PUT("/filters", h.SaveFilters)
		s.POST("/discount", h.ApplyDiscount)
		s.DELETE("/discount", h.RemoveDiscount)
		s.POST("/checkout", h.Checkout)
	}
}

// GetState handles GET /api/v1/sessions/:sid.
func (h *StorefrontHandler) GetState(c *gin.Context) {
	respond(c)(h.storefront.GetState(c.Request.Context(), c.Param("sid")))
}

// AddToCart handles POST /api/v1/sessions/:sid/cart/items.
func (h *StorefrontHandler) AddToCart(c *gin.Context) {
	var req application.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	respond(c)(h.storefront.AddToCart(c.Request.Context(), c.Param("sid"), req))
}

// UpdateQuantity handles PATCH /api/v1/sessions/:sid/cart/items/:pid.
func (h *StorefrontHandler) UpdateQuantity(c *gin.Context) {
	var req application.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	respond(c)(h.storefront.UpdateQuantity(c.Request.Context(), c.Param("sid"), c.Param("pid"), req))
}

// RemoveFromCart handles DELETE /api/v1/sessions/:sid/cart/items/:pid.
func (h *StorefrontHandler) RemoveFromCart(c *gin.Context) {
	respond(c)(h.storefront.RemoveFromCart(c.Request.Context(), c.Param("sid"), c.Param("pid")))
}

// ClearCart handles DELETE /api/v1/sessions/:sid/cart.
func (h *StorefrontHandler) ClearCart(c *gin.Context) {
	respond(c)(h.storefront.ClearCart(c.Request.Context(), c.Param("sid")))
}

// ToggleWishlist handles POST /api/v1/sessions/:sid/wishlist/:pid.
func (h *StorefrontHandler) ToggleWishlist(c *gin.Context) {
	respond(c)(h.storefront.ToggleWishlist(c.Request.Context(), c.Param("sid"), c.Param("pid")))
}

// ToggleCompare handles POST /api/v1/sessions/:sid/compare/:pid.
func (h *StorefrontHandler) ToggleCompare(c *gin.Context) {
	respond(c)(h.storefront.ToggleCompare(c.Request.Context(), c.Param("sid"), c.Param("pid")))
}

// SaveFilters handles PUT /api/v1/sessions/:sid/filters.
func (h *StorefrontHandler) SaveFilters(c *gin.Context) {
	f := catalog.DefaultFilters()
	if err := c.ShouldBindJSON(&f); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	respond(c)(h.storefront.SaveFilters(c.Request.Context(), c.Param("sid"), f))
}

// ApplyDiscount handles POST /api/v1/sessions/:sid/discount.
func (h *StorefrontHandler) ApplyDiscount(c *gin.Context) {
	var req application.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	respond(c)(h.storefront.ApplyDiscount(c.Request.Context(), c.Param("sid"), req))
}

// RemoveDiscount handles DELETE /api/v1/sessions/:sid/discount.
func (h *StorefrontHandler) RemoveDiscount(c *gin.Context) {
	respond(c)(h.storefront.RemoveDiscount(c.Request.Context(), c.Param("sid")))
}

// Checkout handles POST /api/v1/sessions/:sid/checkout.
func (h *StorefrontHandler) Checkout(c *gin.Context) {
	var req application.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.checkout.PlaceOrder(c.Request.Context(), c.Param("sid"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto)
}

func respond(c *gin.Context) func(*application.SessionDTO, error) {
	return func(dto *application.SessionDTO, err error) {
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, dto)
	}
}
