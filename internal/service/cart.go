package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/pageza/mess-menu/backend/internal/models"
)

// CartService keeps a single shared cart of items picked from the cafe catalog
type CartService struct {
	mu      sync.Mutex
	catalog models.Catalog
	entries []models.CartEntry
}

// NewCartService creates an empty cart over catalog
func NewCartService(catalog models.Catalog) *CartService {
	return &CartService{
		catalog: catalog,
		entries: []models.CartEntry{},
	}
}

// Cafes returns a copy of the catalog
func (s *CartService) Cafes(ctx context.Context) models.Catalog {
	out := make(models.Catalog, len(s.catalog))
	for cafe, items := range s.catalog {
		out[cafe] = append([]string(nil), items...)
	}
	return out
}

// CafeMenu returns the items for cafe, or an empty list for an unknown cafe
func (s *CartService) CafeMenu(ctx context.Context, cafe string) []string {
	items, ok := s.catalog[cafe]
	if !ok {
		return []string{}
	}
	return append([]string{}, items...)
}

// Add appends entry after checking the cafe serves the item
func (s *CartService) Add(ctx context.Context, entry models.CartEntry) ([]models.CartEntry, error) {
	if _, ok := s.catalog[entry.Cafe]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCafe, entry.Cafe)
	}
	if !s.catalog.Serves(entry.Cafe, entry.Item) {
		return nil, fmt.Errorf("%w: %s at %s", ErrUnknownMenuItem, entry.Item, entry.Cafe)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	return s.snapshotLocked(), nil
}

// List returns the cart in insertion order
func (s *CartService) List(ctx context.Context) []models.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Remove deletes the first entry equal to entry
func (s *CartService) Remove(ctx context.Context, entry models.CartEntry) ([]models.CartEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e == entry {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.snapshotLocked(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s from %s", ErrCartItemNotFound, entry.Item, entry.Cafe)
}

// Checkout empties the cart and returns how many entries it held
func (s *CartService) Checkout(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	s.entries = []models.CartEntry{}
	return n
}

func (s *CartService) snapshotLocked() []models.CartEntry {
	return append([]models.CartEntry{}, s.entries...)
}
