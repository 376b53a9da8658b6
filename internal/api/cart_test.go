package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mess-menu/backend/internal/models"
	"github.com/pageza/mess-menu/backend/internal/service"
)

func setupCartTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewCartHandler(service.NewCartService(models.DefaultCatalog())).RegisterRoutes(&router.RouterGroup)
	return router
}

func TestListCafes(t *testing.T) {
	router := setupCartTestRouter(t)

	w := PerformRequest(router, "GET", "/cafes/list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"Cafe One": ["Coffee", "Sandwich", "Muffin"],
		"Cafe Two": ["Tea", "Burger", "Fries"],
		"Cafe Three": ["Pizza", "Pasta", "Salad"]
	}`, w.Body.String())

	w = PerformRequest(router, "GET", "/cafe/Cafe%20Three", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Pizza","Pasta","Salad"]`, w.Body.String())

	w = PerformRequest(router, "GET", "/cafe/Nowhere", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCartFlow(t *testing.T) {
	router := setupCartTestRouter(t)

	w := PerformRequest(router, "GET", "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = PerformRequest(router, "POST", "/add_to_cart", map[string]string{"cafe": "Cafe One", "item": "Coffee"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `[{"cafe":"Cafe One","item":"Coffee"}]`, w.Body.String())

	w = PerformRequest(router, "POST", "/add_to_cart", map[string]string{"cafe": "Cafe Two", "item": "Tea"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = PerformRequest(router, "DELETE", "/delete_from_cart/Cafe%20One/Coffee", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"cafe":"Cafe Two","item":"Tea"}]`, w.Body.String())

	w = PerformRequest(router, "DELETE", "/delete_from_cart/Cafe%20One/Coffee", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item not found", decodeMessage(t, w))

	w = PerformRequest(router, "POST", "/checkout", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Thanks for ordering! Your cart is now empty.", decodeMessage(t, w))

	w = PerformRequest(router, "GET", "/cart", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAddToCartValidation(t *testing.T) {
	router := setupCartTestRouter(t)

	w := PerformRequest(router, "POST", "/add_to_cart", map[string]string{"cafe": "Cafe One"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = PerformRequest(router, "POST", "/add_to_cart", map[string]string{"cafe": "Cafe Zero", "item": "Coffee"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unknown cafe", decodeMessage(t, w))

	w = PerformRequest(router, "POST", "/add_to_cart", map[string]string{"cafe": "Cafe One", "item": "Pizza"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = PerformRequest(router, "GET", "/cart", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}
