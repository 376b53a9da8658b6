package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mess-menu/backend/internal/middleware"
	"github.com/pageza/mess-menu/backend/internal/models"
	"github.com/pageza/mess-menu/backend/internal/service"
)

// ArchiveHandler exports day menus to object storage
type ArchiveHandler struct {
	archive service.IArchiveService
	logger  *logrus.Logger
	now     func() time.Time
}

// NewArchiveHandler creates a new ArchiveHandler
func NewArchiveHandler(archive service.IArchiveService, logger *logrus.Logger) *ArchiveHandler {
	return &ArchiveHandler{
		archive: archive,
		logger:  logger,
		now:     time.Now,
	}
}

// RegisterRoutes registers the archive route
func (h *ArchiveHandler) RegisterRoutes(router *gin.RouterGroup, write ...gin.HandlerFunc) {
	router.POST("/archive/mess", withMiddleware(write, h.ArchiveDay)...)
}

// ArchiveDay uploads the menu for ?date= (default today)
func (h *ArchiveHandler) ArchiveDay(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = h.now().Format(models.DateLayout)
	}

	res, err := h.archive.ArchiveDay(c.Request.Context(), date)
	switch {
	case errors.Is(err, service.ErrArchiveDisabled):
		respondMessage(c, http.StatusServiceUnavailable, "Menu archiving is not configured")
		return
	case errors.Is(err, service.ErrDayNotFound):
		respondMessage(c, http.StatusNotFound, fmt.Sprintf("No menu found for %s", date))
		return
	case err != nil:
		h.logger.WithError(err).WithFields(logrus.Fields{
			"date":       date,
			"request_id": middleware.GetRequestID(c),
		}).Error("menu archive failed")
		respondMessage(c, http.StatusBadGateway, "Failed to archive menu")
		return
	}

	h.logger.WithFields(logrus.Fields{"date": date, "key": res.Key}).Info("menu archived")
	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Menu for %s archived", date),
		"key":     res.Key,
		"url":     res.URL,
	})
}
