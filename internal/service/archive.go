package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/pageza/mess-menu/backend/internal/models"
)

// ArchiveURLExpiry is how long the presigned download link stays valid
const ArchiveURLExpiry = 15 * time.Minute

// ArchiveResult describes an uploaded day menu
type ArchiveResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ArchivedDay is the document written to object storage
type ArchivedDay struct {
	Date       string           `json:"date"`
	ArchivedAt time.Time        `json:"archived_at"`
	Menu       models.DayRecord `json:"menu"`
}

// ArchiveService exports day menus to object storage
type ArchiveService struct {
	menus   IMenuStore
	objects ObjectStore
	prefix  string
	now     func() time.Time
}

// NewArchiveService creates an ArchiveService. objects may be nil, in which
// case every archive call fails with ErrArchiveDisabled.
func NewArchiveService(menus IMenuStore, objects ObjectStore, prefix string) *ArchiveService {
	return &ArchiveService{
		menus:   menus,
		objects: objects,
		prefix:  prefix,
		now:     time.Now,
	}
}

// ArchiveDay uploads the menu for date as JSON and returns its key and a download URL
func (s *ArchiveService) ArchiveDay(ctx context.Context, date string) (*ArchiveResult, error) {
	if s.objects == nil {
		return nil, ErrArchiveDisabled
	}

	day, err := s.menus.GetDay(ctx, date)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(ArchivedDay{
		Date:       date,
		ArchivedAt: s.now().UTC(),
		Menu:       day,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode menu: %w", err)
	}

	key := path.Join(s.prefix, date+".json")
	if err := s.objects.PutObject(ctx, key, body, "application/json"); err != nil {
		return nil, fmt.Errorf("failed to upload menu: %w", err)
	}

	url, err := s.objects.GeneratePresignedURL(ctx, key, ArchiveURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to presign menu url: %w", err)
	}

	return &ArchiveResult{Key: key, URL: url}, nil
}
