package service

import (
	"context"

	"github.com/0xAp0llo/URL-Shortener/internal/app/utils"
)

// StoreURLGetter describes the read operations of the storage.
type StoreURLGetter interface {
	Get(ctx context.Context, shortCode string) (originalURL string, ok bool)
	List(ctx context.Context) ([]URLDTO, error)
}

type URLGetter interface {
	GetOriginalURL(ctx context.Context, input string) (string, error)
	ListURLs(ctx context.Context) ([]URLDTO, error)
}

// GetURLService implements URLGetter on top of a StoreURLGetter.
type GetURLService struct {
	store StoreURLGetter
}

func NewGetURLService(store StoreURLGetter) *GetURLService {
	return &GetURLService{store: store}
}

// GetOriginalURL resolves a bare short code or a full short URL to the
// original URL. Returns ErrNotFound when the code is unknown.
func (s *GetURLService) GetOriginalURL(ctx context.Context, input string) (string, error) {
	shortCode := utils.ParseShortCode(input)
	originalURL, ok := s.store.Get(ctx, shortCode)
	if !ok {
		return "", ErrNotFound
	}
	return originalURL, nil
}

// ListURLs returns all stored entries in insertion order.
func (s *GetURLService) ListURLs(ctx context.Context) ([]URLDTO, error) {
	return s.store.List(ctx)
}
