package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/0xAp0llo/URL-Shortener/internal/app/config"
)

func testConfig(t *testing.T) *config.ConfigType {
	t.Helper()
	return &config.ConfigType{
		DatabaseFile: filepath.Join(t.TempDir(), "urls.json"),
		BaseAddress:  "http://short.url",
		CodeLength:   6,
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func runCommand(t *testing.T, cfg *config.ConfigType, args ...string) string {
	t.Helper()
	return captureStdout(t, func() {
		require.NoError(t, run(cfg, zap.NewNop().Sugar(), args))
	})
}

func TestRunPrintsUsage(t *testing.T) {
	cfg := testConfig(t)

	for _, args := range [][]string{nil, {"unknown"}} {
		out := runCommand(t, cfg, args...)
		assert.Contains(t, out, "Usage:")
	}
}

func TestShortenExpandDeleteFlow(t *testing.T) {
	cfg := testConfig(t)

	out := runCommand(t, cfg, "shorten", "-c", "mycode", "https://example.com")
	assert.Contains(t, out, "Shortened URL: http://short.url/mycode")

	out = runCommand(t, cfg, "expand", "mycode")
	assert.Contains(t, out, "Original URL: https://example.com")

	// Expanding the full short URL works the same as the bare code.
	out = runCommand(t, cfg, "expand", "http://short.url/mycode")
	assert.Contains(t, out, "Original URL: https://example.com")

	// Shortening the same URL again reuses the existing code.
	out = runCommand(t, cfg, "shorten", "https://example.com")
	assert.Contains(t, out, "URL already shortened: http://short.url/mycode")

	// Also when the same custom code is requested again.
	out = runCommand(t, cfg, "shorten", "-c", "mycode", "https://example.com")
	assert.Contains(t, out, "URL already shortened: http://short.url/mycode")

	out = runCommand(t, cfg, "delete", "http://short.url/mycode")
	assert.Contains(t, out, "Deleted: http://short.url/mycode -> https://example.com")

	out = runCommand(t, cfg, "expand", "mycode")
	assert.Contains(t, out, "Error: Short code 'mycode' not found")
}

func TestShortenInvalidURL(t *testing.T) {
	cfg := testConfig(t)

	out := runCommand(t, cfg, "shorten", "not a url")
	assert.Contains(t, out, "Error: 'not a url' is not a valid URL")

	_, err := os.Stat(cfg.DatabaseFile)
	assert.True(t, os.IsNotExist(err), "invalid input must not touch the database")
}

func TestShortenCustomCodeInUse(t *testing.T) {
	cfg := testConfig(t)

	runCommand(t, cfg, "shorten", "-c", "taken", "https://example.com")
	out := runCommand(t, cfg, "shorten", "-c", "taken", "https://other.com")
	assert.Contains(t, out, "Error: Custom code 'taken' is already in use")
}

func TestShortenGeneratedCodeLength(t *testing.T) {
	cfg := testConfig(t)

	out := runCommand(t, cfg, "shorten", "-l", "8", "https://example.com")
	require.Contains(t, out, "Shortened URL: http://short.url/")

	code := strings.TrimSpace(strings.TrimPrefix(out, "Shortened URL: http://short.url/"))
	assert.Len(t, code, 8)
}

func TestShortenFlagsAfterURL(t *testing.T) {
	cfg := testConfig(t)
	database := filepath.Join(t.TempDir(), "other.json")

	// The documented invocation puts options after the URL; they must
	// not be silently dropped.
	out := runCommand(t, cfg, "shorten", "https://example.com", "-l", "8", "-d", database)
	require.Contains(t, out, "Shortened URL: http://short.url/")

	code := strings.TrimSpace(strings.TrimPrefix(out, "Shortened URL: http://short.url/"))
	assert.Len(t, code, 8)

	_, err := os.Stat(database)
	assert.NoError(t, err, "entry must be written to the database given after the URL")
	_, err = os.Stat(cfg.DatabaseFile)
	assert.True(t, os.IsNotExist(err), "default database must stay untouched")

	out = runCommand(t, cfg, "expand", code, "-d", database)
	assert.Contains(t, out, "Original URL: https://example.com")

	out = runCommand(t, cfg, "delete", code, "-d", database)
	assert.Contains(t, out, "Deleted: http://short.url/"+code)
}

func TestListCommand(t *testing.T) {
	cfg := testConfig(t)

	out := runCommand(t, cfg, "list")
	assert.Contains(t, out, "No URLs in the database")

	runCommand(t, cfg, "shorten", "-c", "one", "https://a.example")
	runCommand(t, cfg, "shorten", "-c", "two", "https://b.example")

	out = runCommand(t, cfg, "list")
	assert.Contains(t, out, "http://short.url/one")
	assert.Contains(t, out, "https://a.example")
	assert.Contains(t, out, "http://short.url/two")
	assert.Contains(t, out, "Total: 2 URLs")

	oneIdx := strings.Index(out, "http://short.url/one")
	twoIdx := strings.Index(out, "http://short.url/two")
	assert.Less(t, oneIdx, twoIdx, "listing must follow insertion order")
}

func TestListTruncatesLongURLs(t *testing.T) {
	cfg := testConfig(t)

	longURL := "https://example.com/" + strings.Repeat("a", 60)
	runCommand(t, cfg, "shorten", "-c", "long", longURL)

	out := runCommand(t, cfg, "list")
	assert.NotContains(t, out, longURL)
	assert.Contains(t, out, "...")
}

func TestListTruncatesOnRuneBoundary(t *testing.T) {
	cfg := testConfig(t)

	longURL := "https://example.com/" + strings.Repeat("é", 60)
	runCommand(t, cfg, "shorten", "-c", "multibyte", longURL)

	out := runCommand(t, cfg, "list")
	assert.True(t, utf8.ValidString(out))
	assert.NotContains(t, out, string(utf8.RuneError), "truncation must not split a rune")
	assert.Contains(t, out, "https://example.com/"+strings.Repeat("é", 25)+"...")
}

func TestDeleteUnknownCode(t *testing.T) {
	cfg := testConfig(t)

	out := runCommand(t, cfg, "delete", "missing")
	assert.Contains(t, out, "Error: Short code 'missing' not found")
}

func TestCommandsRequireArguments(t *testing.T) {
	cfg := testConfig(t)

	out := runCommand(t, cfg, "shorten")
	assert.Contains(t, out, "Error: shorten requires a URL argument")

	out = runCommand(t, cfg, "expand")
	assert.Contains(t, out, "Error: expand requires a short code or URL argument")

	out = runCommand(t, cfg, "delete")
	assert.Contains(t, out, "Error: delete requires a short code or URL argument")
}
