package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/mess-menu/backend/internal/models"
	"github.com/pageza/mess-menu/backend/internal/service"
	"github.com/pageza/mess-menu/backend/internal/types"
)

// CartHandler serves the cafe catalog and the shared cart
type CartHandler struct {
	cart service.ICartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cart service.ICartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// RegisterRoutes registers the cafe and cart routes. write is applied to mutating routes only.
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup, write ...gin.HandlerFunc) {
	router.GET("/cafes/list", h.ListCafes)
	router.GET("/cafe/:name", h.ShowCafe)
	router.GET("/cart", h.ViewCart)
	router.POST("/add_to_cart", withMiddleware(write, h.AddToCart)...)
	router.DELETE("/delete_from_cart/:cafe/:item", withMiddleware(write, h.DeleteFromCart)...)
	router.POST("/checkout", withMiddleware(write, h.Checkout)...)
}

func (h *CartHandler) ListCafes(c *gin.Context) {
	c.JSON(http.StatusOK, h.cart.Cafes(c.Request.Context()))
}

func (h *CartHandler) ShowCafe(c *gin.Context) {
	c.JSON(http.StatusOK, h.cart.CafeMenu(c.Request.Context(), c.Param("name")))
}

func (h *CartHandler) ViewCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cart.List(c.Request.Context()))
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var req types.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Fields 'cafe' and 'item' are required")
		return
	}

	entries, err := h.cart.Add(c.Request.Context(), models.CartEntry{Cafe: req.Cafe, Item: req.Item})
	switch {
	case errors.Is(err, service.ErrUnknownCafe):
		respondMessage(c, http.StatusBadRequest, "Unknown cafe")
		return
	case errors.Is(err, service.ErrUnknownMenuItem):
		respondMessage(c, http.StatusBadRequest, "Item is not on this cafe's menu")
		return
	case err != nil:
		respondMessage(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusCreated, entries)
}

func (h *CartHandler) DeleteFromCart(c *gin.Context) {
	entries, err := h.cart.Remove(c.Request.Context(), models.CartEntry{
		Cafe: c.Param("cafe"),
		Item: c.Param("item"),
	})
	if err != nil {
		respondMessage(c, http.StatusNotFound, "Item not found")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *CartHandler) Checkout(c *gin.Context) {
	h.cart.Checkout(c.Request.Context())
	respondMessage(c, http.StatusCreated, "Thanks for ordering! Your cart is now empty.")
}
