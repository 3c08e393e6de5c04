// Package service contains the business logic for working with URLs.
package service

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"github.com/0xAp0llo/URL-Shortener/internal/app/utils"
)

// DefaultCodeLength is used when the caller does not request a specific
// short code length.
const DefaultCodeLength = 6

// URLDTO is a single (short code, original URL) pair.
type URLDTO struct {
	ShortCode   string
	OriginalURL string
}

type Store interface {
	StoreURLGetter
	StoreURLSetter
	StoreURLDeleter
}

// StoreURLSetter describes the insert operation of the storage.
// Set returns the code already assigned to originalURL together with
// ErrConflict if one exists, and ErrCodeInUse if shortCode is taken by
// another URL.
type StoreURLSetter interface {
	Set(ctx context.Context, shortCode, originalURL string) (string, error)
}

// ShortenOptions controls how the short code is chosen.
// CustomCode, when non-empty, is used verbatim instead of a generated
// code. Length <= 0 falls back to DefaultCodeLength.
type ShortenOptions struct {
	Length     int
	CustomCode string
}

type URLShortener interface {
	ShortenURL(ctx context.Context, input string, opts ShortenOptions) (string, error)
}

type URLService struct {
	store  StoreURLSetter
	logger *zap.SugaredLogger
}

func NewURLService(store StoreURLSetter, logger *zap.SugaredLogger) *URLService {
	return &URLService{store: store, logger: logger}
}

func (s *URLService) isValidURL(input string) bool {
	parsedURI, err := url.ParseRequestURI(input)
	return err == nil && parsedURI.Scheme != "" && parsedURI.Host != ""
}

// ShortenURL validates input and stores it under a short code.
// If input has been shortened before, the existing code is returned
// together with ErrConflict and no new entry is created. A custom code
// that is already taken yields ErrCodeInUse; a generated code that
// collides is regenerated until a free one is found.
func (s *URLService) ShortenURL(ctx context.Context, input string, opts ShortenOptions) (string, error) {
	if !s.isValidURL(input) {
		return "", ErrInvalidURL
	}

	if opts.CustomCode != "" {
		stored, err := s.store.Set(ctx, opts.CustomCode, input)
		if errors.Is(err, ErrConflict) {
			// Already shortened, even when the custom code matches the
			// stored one: no new entry either way.
			return stored, ErrConflict
		}
		if err != nil {
			return "", err
		}
		return stored, nil
	}

	length := opts.Length
	if length <= 0 {
		length = DefaultCodeLength
	}

	for {
		shortCode := utils.RandomString(length)
		stored, err := s.store.Set(ctx, shortCode, input)
		if errors.Is(err, ErrCodeInUse) {
			s.logger.Debugw("Generated code already taken, retrying", "code", shortCode)
			continue
		}
		if errors.Is(err, ErrConflict) {
			return stored, ErrConflict
		}
		if err != nil {
			return "", err
		}
		return stored, nil
	}
}
