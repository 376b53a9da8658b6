package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/mess-menu/backend/internal/models"
)

// MockMenuStore is a mock implementation of service.IMenuStore
type MockMenuStore struct {
	mock.Mock
}

func (m *MockMenuStore) GetDay(ctx context.Context, date string) (models.DayRecord, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(models.DayRecord), args.Error(1)
}

func (m *MockMenuStore) EnsureDay(ctx context.Context, date string) models.DayRecord {
	args := m.Called(ctx, date)
	return args.Get(0).(models.DayRecord)
}

func (m *MockMenuStore) GetSlot(ctx context.Context, date, meal string) ([]models.FoodItem, error) {
	args := m.Called(ctx, date, meal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodItem), args.Error(1)
}

func (m *MockMenuStore) AppendItem(ctx context.Context, date, meal string, item models.FoodItem) (models.FoodItem, error) {
	args := m.Called(ctx, date, meal, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.FoodItem), args.Error(1)
}

func (m *MockMenuStore) UpdateItem(ctx context.Context, date, meal string, patch models.FoodItem) error {
	args := m.Called(ctx, date, meal, patch)
	return args.Error(0)
}

func (m *MockMenuStore) DeleteItem(ctx context.Context, date, meal, name string) (int, error) {
	args := m.Called(ctx, date, meal, name)
	return args.Int(0), args.Error(1)
}

func (m *MockMenuStore) Dates(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}
