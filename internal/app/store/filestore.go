package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/0xAp0llo/URL-Shortener/internal/app/service"
)

// FileStore persists the mapping in a single JSON file. Every method is
// a full load-mutate-save round trip: nothing is cached between calls,
// so behavior is identical across process restarts.
type FileStore struct {
	path   string
	logger *zap.SugaredLogger
}

func NewFileStore(path string, logger *zap.SugaredLogger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// load reads the backing file. A missing file yields an empty store; an
// unparseable file is reported and also yields an empty store, leaving
// the corrupt bytes on disk until the next save.
func (fs *FileStore) load() *Store {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			fs.logger.Warnw("Cannot read database file, starting with an empty database",
				"path", fs.path, "error", err)
		}
		return NewStore()
	}

	s, err := decodeStore(data)
	if err != nil {
		fs.logger.Warnw("Database file is corrupted, starting with an empty database",
			"path", fs.path, "error", err)
		return NewStore()
	}
	return s
}

func (fs *FileStore) save(s *Store) error {
	data, err := encodeStore(s)
	if err != nil {
		return fmt.Errorf("encoding database: %w", err)
	}
	if err := os.WriteFile(fs.path, data, 0644); err != nil {
		return fmt.Errorf("writing database file %s: %w", fs.path, err)
	}
	return nil
}

// Set stores originalURL under shortCode. If originalURL is already
// present, its existing code is returned together with
// service.ErrConflict and nothing is written. If shortCode is taken by
// a different URL, service.ErrCodeInUse is returned.
func (fs *FileStore) Set(_ context.Context, shortCode, originalURL string) (string, error) {
	s := fs.load()

	if existing, ok := s.CodeFor(originalURL); ok {
		return existing, service.ErrConflict
	}
	if _, ok := s.Lookup(shortCode); ok {
		return "", service.ErrCodeInUse
	}

	if err := s.Insert(shortCode, originalURL); err != nil {
		return "", err
	}
	if err := fs.save(s); err != nil {
		return "", err
	}
	return shortCode, nil
}

// Get returns the original URL stored under shortCode.
func (fs *FileStore) Get(_ context.Context, shortCode string) (string, bool) {
	return fs.load().Lookup(shortCode)
}

// List returns all entries in insertion order.
func (fs *FileStore) List(_ context.Context) ([]service.URLDTO, error) {
	entries := fs.load().Entries()
	urls := make([]service.URLDTO, 0, len(entries))
	for _, entry := range entries {
		urls = append(urls, service.URLDTO{
			ShortCode:   entry.ShortCode,
			OriginalURL: entry.OriginalURL,
		})
	}
	return urls, nil
}

// Delete removes the entry for shortCode from both maps and saves the
// store. Returns service.ErrNotFound when the code is unknown.
func (fs *FileStore) Delete(_ context.Context, shortCode string) (string, error) {
	s := fs.load()

	originalURL, ok := s.Delete(shortCode)
	if !ok {
		return "", service.ErrNotFound
	}
	if err := fs.save(s); err != nil {
		return "", err
	}
	return originalURL, nil
}

// decodeStore parses the backing file format: a JSON object with a
// "urls" mapping (short code to original URL) and a derived "reverse"
// mapping. Key order of "urls" is preserved as insertion order; the
// reverse mapping is rebuilt from "urls" rather than trusted, so files
// whose reverse side drifted out of sync are healed on load.
func decodeStore(data []byte) (*Store, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	s := NewStore()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in database object", tok)
		}

		switch key {
		case "urls":
			if err := expectDelim(dec, '{'); err != nil {
				return nil, err
			}
			for dec.More() {
				codeTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				shortCode, ok := codeTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected short code token %v", codeTok)
				}
				var originalURL string
				if err := dec.Decode(&originalURL); err != nil {
					return nil, err
				}
				if err := s.Insert(shortCode, originalURL); err != nil {
					return nil, err
				}
			}
			if err := expectDelim(dec, '}'); err != nil {
				return nil, err
			}
		default:
			// "reverse" is derivable from "urls"; skip it along with
			// anything unknown.
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return s, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// encodeStore serializes the store to the backing file format, writing
// the "urls" keys in insertion order.
func encodeStore(s *Store) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"urls":{`)
	for i, entry := range s.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONPair(&buf, entry.ShortCode, entry.OriginalURL)
	}
	buf.WriteString(`},"reverse":{`)
	for i, entry := range s.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONPair(&buf, entry.OriginalURL, entry.ShortCode)
	}
	buf.WriteString("}}")

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "    "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeJSONPair(buf *bytes.Buffer, key, value string) {
	k, _ := json.Marshal(key)
	v, _ := json.Marshal(value)
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
}
