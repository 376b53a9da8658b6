package service

import "errors"

var (
	// ErrInvalidMealType is returned when a meal type is not breakfast, lunch or dinner
	ErrInvalidMealType = errors.New("invalid meal type")
	// ErrMissingField is returned when a request lacks the required item name
	ErrMissingField = errors.New("missing required field")
	// ErrDayNotFound is returned when no menu exists for a date
	ErrDayNotFound = errors.New("menu not found for date")
	// ErrItemNotFound is returned when no item in a meal slot matches
	ErrItemNotFound = errors.New("item not found")

	ErrUnknownCafe      = errors.New("unknown cafe")
	ErrUnknownMenuItem  = errors.New("item not on cafe menu")
	ErrCartItemNotFound = errors.New("item not found in cart")

	// ErrArchiveDisabled is returned when no object store is configured
	ErrArchiveDisabled = errors.New("menu archiving is not configured")
)
