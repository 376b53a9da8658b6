package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pageza/mess-menu/backend/internal/models"
)

// MenuStore holds the process-local mess menu keyed by date
type MenuStore struct {
	mu   sync.RWMutex
	days map[string]*models.DayRecord
}

// NewMenuStore creates an empty MenuStore
func NewMenuStore() *MenuStore {
	return &MenuStore{
		days: make(map[string]*models.DayRecord),
	}
}

// Seed installs record for date, replacing anything already stored
func (s *MenuStore) Seed(date string, record models.DayRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := record.Clone()
	for _, meal := range models.MealTypes {
		if slot := day.Slot(meal); *slot == nil {
			*slot = []models.FoodItem{}
		}
	}
	s.days[date] = &day
}

// GetDay returns a copy of the day's record without creating it
func (s *MenuStore) GetDay(ctx context.Context, date string) (models.DayRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day, ok := s.days[date]
	if !ok {
		return models.DayRecord{}, fmt.Errorf("%w: %s", ErrDayNotFound, date)
	}
	return day.Clone(), nil
}

// EnsureDay returns the day's record, creating an empty one on first use
func (s *MenuStore) EnsureDay(ctx context.Context, date string) models.DayRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ensureDayLocked(date).Clone()
}

func (s *MenuStore) ensureDayLocked(date string) *models.DayRecord {
	day, ok := s.days[date]
	if !ok {
		day = models.NewDayRecord()
		s.days[date] = day
	}
	return day
}

// GetSlot returns the items for one meal. An unseen date yields an empty
// slice and is not added to the store.
func (s *MenuStore) GetSlot(ctx context.Context, date, meal string) ([]models.FoodItem, error) {
	mealType, err := parseMeal(meal)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	day, ok := s.days[date]
	if !ok {
		return []models.FoodItem{}, nil
	}
	cp := day.Clone()
	return *cp.Slot(mealType), nil
}

// AppendItem adds item to the end of the meal slot. Duplicate names are allowed.
func (s *MenuStore) AppendItem(ctx context.Context, date, meal string, item models.FoodItem) (models.FoodItem, error) {
	mealType, err := parseMeal(meal)
	if err != nil {
		return nil, err
	}
	if _, ok := item.Name(); !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, models.ItemKey)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := item.Clone()
	slot := s.ensureDayLocked(date).Slot(mealType)
	*slot = append(*slot, stored)
	return stored.Clone(), nil
}

// UpdateItem merges patch into the first item whose name matches
// case-insensitively. The stored name keeps its original casing.
func (s *MenuStore) UpdateItem(ctx context.Context, date, meal string, patch models.FoodItem) error {
	mealType, err := parseMeal(meal)
	if err != nil {
		return err
	}
	name, ok := patch.Name()
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingField, models.ItemKey)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slot := s.ensureDayLocked(date).Slot(mealType)
	for _, existing := range *slot {
		if !existing.Matches(name) {
			continue
		}
		for k, v := range patch {
			if k == models.ItemKey {
				continue
			}
			existing[k] = v
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, name)
}

// DeleteItem removes every item whose name matches case-insensitively and
// returns how many were removed.
func (s *MenuStore) DeleteItem(ctx context.Context, date, meal, name string) (int, error) {
	mealType, err := parseMeal(meal)
	if err != nil {
		return 0, err
	}
	if name == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, models.ItemKey)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slot := s.ensureDayLocked(date).Slot(mealType)
	kept := make([]models.FoodItem, 0, len(*slot))
	for _, item := range *slot {
		if !item.Matches(name) {
			kept = append(kept, item)
		}
	}

	removed := len(*slot) - len(kept)
	if removed == 0 {
		return 0, fmt.Errorf("%w: %s", ErrItemNotFound, name)
	}
	*slot = kept
	return removed, nil
}

// Dates returns every date with a record, sorted ascending
func (s *MenuStore) Dates(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dates := make([]string, 0, len(s.days))
	for d := range s.days {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

func parseMeal(meal string) (models.MealType, error) {
	m, err := models.ParseMealType(meal)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidMealType, meal)
	}
	return m, nil
}

// SampleDay is the menu seeded at startup
func SampleDay() models.DayRecord {
	return models.DayRecord{
		Breakfast: []models.FoodItem{
			{"item": "Idli", "quantity": 4},
			{"item": "Sambar", "quantity": 1},
		},
		Lunch: []models.FoodItem{
			{"item": "Rice", "quantity": 1},
			{"item": "Dal", "quantity": 1},
		},
		Dinner: []models.FoodItem{
			{"item": "Chapati", "quantity": 3},
			{"item": "Paneer Curry", "quantity": 1},
		},
	}
}
