// Package store holds the bidirectional short code mapping and its
// JSON file persistence.
package store

import "fmt"

// Entry is one (short code, original URL) row of the mapping.
type Entry struct {
	ShortCode   string
	OriginalURL string
}

// Store is the in-memory bidirectional mapping between short codes and
// original URLs. urls and reverse are kept as exact inverses of each
// other; order remembers insertion order of the codes so listings
// replay it.
type Store struct {
	urls    map[string]string
	reverse map[string]string
	order   []string
}

func NewStore() *Store {
	return &Store{
		urls:    make(map[string]string),
		reverse: make(map[string]string),
	}
}

// Lookup returns the original URL stored under shortCode.
func (s *Store) Lookup(shortCode string) (string, bool) {
	originalURL, ok := s.urls[shortCode]
	return originalURL, ok
}

// CodeFor returns the short code already assigned to originalURL.
func (s *Store) CodeFor(originalURL string) (string, bool) {
	shortCode, ok := s.reverse[originalURL]
	return shortCode, ok
}

// Insert adds the pair to both maps. Either side already being present
// is an error; nothing is modified in that case.
func (s *Store) Insert(shortCode, originalURL string) error {
	if existing, ok := s.urls[shortCode]; ok {
		return fmt.Errorf("short code %q already maps to %q", shortCode, existing)
	}
	if existing, ok := s.reverse[originalURL]; ok {
		return fmt.Errorf("URL already shortened as %q", existing)
	}

	s.urls[shortCode] = originalURL
	s.reverse[originalURL] = shortCode
	s.order = append(s.order, shortCode)
	return nil
}

// Delete removes the pair identified by shortCode from both maps and
// returns the original URL it pointed to.
func (s *Store) Delete(shortCode string) (string, bool) {
	originalURL, ok := s.urls[shortCode]
	if !ok {
		return "", false
	}

	delete(s.urls, shortCode)
	delete(s.reverse, originalURL)
	for i, code := range s.order {
		if code == shortCode {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return originalURL, true
}

// Entries returns all rows in insertion order.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.order))
	for _, shortCode := range s.order {
		entries = append(entries, Entry{ShortCode: shortCode, OriginalURL: s.urls[shortCode]})
	}
	return entries
}

// Len reports the number of stored pairs.
func (s *Store) Len() int {
	return len(s.urls)
}
