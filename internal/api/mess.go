package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mess-menu/backend/internal/middleware"
	"github.com/pageza/mess-menu/backend/internal/models"
	"github.com/pageza/mess-menu/backend/internal/service"
	"github.com/pageza/mess-menu/backend/internal/types"
)

const (
	msgInvalidMealType = "Invalid meal type. Must be one of: breakfast, lunch, dinner"
	msgMissingItem     = "Field 'item' is required"
)

// MessHandler serves the date-keyed mess menu
type MessHandler struct {
	menus  service.IMenuStore
	logger *logrus.Logger
	now    func() time.Time
}

// NewMessHandler creates a new MessHandler
func NewMessHandler(menus service.IMenuStore, logger *logrus.Logger) *MessHandler {
	return &MessHandler{
		menus:  menus,
		logger: logger,
		now:    time.Now,
	}
}

// RegisterRoutes registers the mess routes. write is applied to mutating routes only.
func (h *MessHandler) RegisterRoutes(router *gin.RouterGroup, write ...gin.HandlerFunc) {
	router.GET("/mess-dates", h.ListDates)

	mess := router.Group("/mess")
	{
		mess.GET("", h.GetDay)
		mess.GET("/:meal_type", h.GetMeal)
		mess.POST("/:meal_type", withMiddleware(write, h.AddItem)...)
		mess.PUT("/:meal_type", withMiddleware(write, h.UpdateItem)...)
		mess.DELETE("/:meal_type", withMiddleware(write, h.DeleteItem)...)
	}
}

// date resolves the ?date= query parameter, defaulting to today
func (h *MessHandler) date(c *gin.Context) string {
	if date := c.Query("date"); date != "" {
		return date
	}
	return h.now().Format(models.DateLayout)
}

// GetDay returns all three meals for a date
func (h *MessHandler) GetDay(c *gin.Context) {
	date := h.date(c)
	day, err := h.menus.GetDay(c.Request.Context(), date)
	if err != nil {
		h.respondError(c, err, date)
		return
	}
	c.JSON(http.StatusOK, day)
}

// ListDates returns every date that has a menu
func (h *MessHandler) ListDates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dates": h.menus.Dates(c.Request.Context())})
}

// GetMeal returns the items of one meal. Unknown dates yield an empty list.
func (h *MessHandler) GetMeal(c *gin.Context) {
	date := h.date(c)
	items, err := h.menus.GetSlot(c.Request.Context(), date, c.Param("meal_type"))
	if err != nil {
		h.respondError(c, err, date)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddItem appends an item to a meal
func (h *MessHandler) AddItem(c *gin.Context) {
	meal := c.Param("meal_type")
	if _, err := models.ParseMealType(meal); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidMealType)
		return
	}

	item, ok := bindFoodItem(c)
	if !ok {
		return
	}

	date := h.date(c)
	added, err := h.menus.AppendItem(c.Request.Context(), date, meal, item)
	if err != nil {
		h.respondError(c, err, date)
		return
	}

	c.JSON(http.StatusCreated, types.ItemResponse{
		Message: fmt.Sprintf("Item added to %s for %s", meal, date),
		Data:    added,
	})
}

// UpdateItem merges the request fields into the first item with the same name
func (h *MessHandler) UpdateItem(c *gin.Context) {
	meal := c.Param("meal_type")
	if _, err := models.ParseMealType(meal); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidMealType)
		return
	}

	patch, ok := bindFoodItem(c)
	if !ok {
		return
	}

	date := h.date(c)
	if err := h.menus.UpdateItem(c.Request.Context(), date, meal, patch); err != nil {
		h.respondError(c, err, date)
		return
	}

	c.JSON(http.StatusOK, types.ItemResponse{
		Message: fmt.Sprintf("Item updated in %s for %s", meal, date),
		Data:    patch,
	})
}

// DeleteItem removes every item with the given name from a meal
func (h *MessHandler) DeleteItem(c *gin.Context) {
	meal := c.Param("meal_type")
	if _, err := models.ParseMealType(meal); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidMealType)
		return
	}

	var req types.DeleteItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgMissingItem)
		return
	}

	date := h.date(c)
	if _, err := h.menus.DeleteItem(c.Request.Context(), date, meal, req.Item); err != nil {
		h.respondError(c, err, date)
		return
	}

	respondMessage(c, http.StatusOK, fmt.Sprintf("Item deleted from %s for %s", meal, date))
}

// bindFoodItem decodes the body and checks it names an item. Numbers are kept
// as json.Number so integers wider than float64 survive unchanged.
func bindFoodItem(c *gin.Context) (models.FoodItem, bool) {
	var item models.FoodItem
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&item); err != nil {
		respondMessage(c, http.StatusBadRequest, msgMissingItem)
		return nil, false
	}
	if _, ok := item.Name(); !ok {
		respondMessage(c, http.StatusBadRequest, msgMissingItem)
		return nil, false
	}
	return item, true
}

func (h *MessHandler) respondError(c *gin.Context, err error, date string) {
	switch {
	case errors.Is(err, service.ErrInvalidMealType):
		respondMessage(c, http.StatusBadRequest, msgInvalidMealType)
	case errors.Is(err, service.ErrMissingField):
		respondMessage(c, http.StatusBadRequest, msgMissingItem)
	case errors.Is(err, service.ErrDayNotFound):
		respondMessage(c, http.StatusNotFound, fmt.Sprintf("No menu found for %s", date))
	case errors.Is(err, service.ErrItemNotFound):
		respondMessage(c, http.StatusNotFound, "Item not found")
	default:
		h.logger.WithError(err).WithField("request_id", middleware.GetRequestID(c)).Error("mess request failed")
		respondMessage(c, http.StatusInternalServerError, "internal server error")
	}
}
