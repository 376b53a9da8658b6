package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mess-menu/backend/internal/models"
	"github.com/pageza/mess-menu/backend/internal/service"
)

var testToday = time.Date(2023, 10, 28, 8, 0, 0, 0, time.UTC)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// setupMessTestRouter builds a router over a fresh store with "today" pinned
func setupMessTestRouter(t *testing.T) (*gin.Engine, *service.MenuStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := service.NewMenuStore()
	handler := NewMessHandler(store, quietLogger())
	handler.now = func() time.Time { return testToday }

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return router, store
}

// PerformRequest is a helper function to make HTTP requests in tests
func PerformRequest(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	router.ServeHTTP(w, req)
	return w
}

func decodeSlot(t *testing.T, w *httptest.ResponseRecorder) []models.FoodItem {
	t.Helper()
	var items []models.FoodItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	return items
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}
