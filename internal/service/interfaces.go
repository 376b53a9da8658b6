package service

import (
	"context"
	"time"

	"github.com/pageza/mess-menu/backend/internal/models"
)

// IMenuStore defines the date -> meal -> items operations used by the mess API
type IMenuStore interface {
	GetDay(ctx context.Context, date string) (models.DayRecord, error)
	EnsureDay(ctx context.Context, date string) models.DayRecord
	GetSlot(ctx context.Context, date, meal string) ([]models.FoodItem, error)
	AppendItem(ctx context.Context, date, meal string, item models.FoodItem) (models.FoodItem, error)
	UpdateItem(ctx context.Context, date, meal string, patch models.FoodItem) error
	DeleteItem(ctx context.Context, date, meal, name string) (int, error)
	Dates(ctx context.Context) []string
}

// ICartService defines the cafe catalog and cart operations
type ICartService interface {
	Cafes(ctx context.Context) models.Catalog
	CafeMenu(ctx context.Context, cafe string) []string
	Add(ctx context.Context, entry models.CartEntry) ([]models.CartEntry, error)
	List(ctx context.Context) []models.CartEntry
	Remove(ctx context.Context, entry models.CartEntry) ([]models.CartEntry, error)
	Checkout(ctx context.Context) int
}

// IArchiveService defines exporting a day's menu to object storage
type IArchiveService interface {
	ArchiveDay(ctx context.Context, date string) (*ArchiveResult, error)
}

// ObjectStore is the subset of S3 behaviour the archive needs
type ObjectStore interface {
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}
