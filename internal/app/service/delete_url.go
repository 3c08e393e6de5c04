package service

import (
	"context"

	"github.com/0xAp0llo/URL-Shortener/internal/app/utils"
)

// StoreURLDeleter describes the remove operation of the storage.
// Delete returns the original URL that was removed, or ErrNotFound.
type StoreURLDeleter interface {
	Delete(ctx context.Context, shortCode string) (string, error)
}

type URLDeleter interface {
	DeleteURL(ctx context.Context, input string) (string, error)
}

type DeleteURLService struct {
	store StoreURLDeleter
}

func NewURLDeleter(store StoreURLDeleter) *DeleteURLService {
	return &DeleteURLService{store: store}
}

// DeleteURL removes the entry for a bare short code or a full short URL
// and returns the original URL it pointed to.
func (s *DeleteURLService) DeleteURL(ctx context.Context, input string) (string, error) {
	return s.store.Delete(ctx, utils.ParseShortCode(input))
}
