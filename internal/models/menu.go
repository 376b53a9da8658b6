package models

import (
	"fmt"
	"strings"
)

// MealType identifies one of the three meal slots of a day
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// MealTypes lists the valid meal types in serving order
var MealTypes = []MealType{Breakfast, Lunch, Dinner}

// ParseMealType validates a raw path value against the fixed meal enumeration
func ParseMealType(s string) (MealType, error) {
	switch m := MealType(s); m {
	case Breakfast, Lunch, Dinner:
		return m, nil
	default:
		return "", fmt.Errorf("invalid meal type %q", s)
	}
}

// ItemKey is the identity field of a FoodItem
const ItemKey = "item"

// FoodItem is a named menu entry with arbitrary extra attributes (quantity, calories, ...)
type FoodItem map[string]interface{}

// Name returns the item name if present as a non-empty string
func (f FoodItem) Name() (string, bool) {
	v, ok := f[ItemKey]
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Matches reports whether the item's name equals name, ignoring case
func (f FoodItem) Matches(name string) bool {
	own, ok := f.Name()
	return ok && strings.EqualFold(own, name)
}

// Clone returns a shallow copy of the item's fields
func (f FoodItem) Clone() FoodItem {
	out := make(FoodItem, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// DayRecord holds the three meal slots for one calendar date
type DayRecord struct {
	Breakfast []FoodItem `json:"breakfast"`
	Lunch     []FoodItem `json:"lunch"`
	Dinner    []FoodItem `json:"dinner"`
}

// NewDayRecord returns a record with three empty, non-nil slots
func NewDayRecord() *DayRecord {
	return &DayRecord{
		Breakfast: []FoodItem{},
		Lunch:     []FoodItem{},
		Dinner:    []FoodItem{},
	}
}

// Slot returns a pointer to the slot for meal so callers can mutate it in place
func (d *DayRecord) Slot(meal MealType) *[]FoodItem {
	switch meal {
	case Breakfast:
		return &d.Breakfast
	case Lunch:
		return &d.Lunch
	case Dinner:
		return &d.Dinner
	}
	return nil
}

// Clone deep-copies the record so it can leave the store safely
func (d *DayRecord) Clone() DayRecord {
	return DayRecord{
		Breakfast: cloneSlot(d.Breakfast),
		Lunch:     cloneSlot(d.Lunch),
		Dinner:    cloneSlot(d.Dinner),
	}
}

func cloneSlot(items []FoodItem) []FoodItem {
	out := make([]FoodItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// DateLayout is the YYYY-MM-DD form used for date keys
const DateLayout = "2006-01-02"
