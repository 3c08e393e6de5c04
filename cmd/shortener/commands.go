package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/0xAp0llo/URL-Shortener/internal/app/config"
	"github.com/0xAp0llo/URL-Shortener/internal/app/service"
	"github.com/0xAp0llo/URL-Shortener/internal/app/store"
	"github.com/0xAp0llo/URL-Shortener/internal/app/utils"
)

const usageText = `Simple URL Shortener

Usage:
  shortener shorten <url> [-l length] [-c custom] [-d database]
  shortener expand <code-or-url> [-d database]
  shortener list [-d database]
  shortener delete <code-or-url> [-d database]

Options:
  -l, -length    length of the generated short code (default 6)
  -c, -custom    custom short code
  -d, -database  database file (default urls.json)
`

// run dispatches a single command. Domain errors (invalid URL, unknown
// code, custom code collision) are printed and swallowed; only I/O
// failures propagate up as fatal.
func run(cfg *config.ConfigType, logger *zap.SugaredLogger, args []string) error {
	if len(args) == 0 {
		fmt.Print(usageText)
		return nil
	}

	switch args[0] {
	case "shorten":
		return runShorten(cfg, logger, args[1:])
	case "expand":
		return runExpand(cfg, logger, args[1:])
	case "list":
		return runList(cfg, logger, args[1:])
	case "delete":
		return runDelete(cfg, logger, args[1:])
	default:
		fmt.Print(usageText)
		return nil
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	return fs
}

var errMissingArg = errors.New("missing positional argument")

// positionalArg parses args and returns the first non-flag argument.
// Flags that follow the positional are parsed too, so options are
// accepted on either side of it, as the documented invocations show.
func positionalArg(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() < 1 {
		return "", errMissingArg
	}
	arg := fs.Arg(0)
	rest := fs.Args()[1:]
	if err := fs.Parse(rest); err != nil {
		return "", err
	}
	return arg, nil
}

func databaseFlag(fs *flag.FlagSet, cfg *config.ConfigType) *string {
	database := fs.String("database", cfg.DatabaseFile, "database file")
	fs.StringVar(database, "d", cfg.DatabaseFile, "database file (shorthand)")
	return database
}

func shortURL(cfg *config.ConfigType, shortCode string) string {
	return cfg.BaseAddress + "/" + shortCode
}

func runShorten(cfg *config.ConfigType, logger *zap.SugaredLogger, args []string) error {
	fs := newFlagSet("shorten")
	length := fs.Int("length", cfg.CodeLength, "length of the generated short code")
	fs.IntVar(length, "l", cfg.CodeLength, "length of the generated short code (shorthand)")
	custom := fs.String("custom", "", "custom short code")
	fs.StringVar(custom, "c", "", "custom short code (shorthand)")
	database := databaseFlag(fs, cfg)
	input, err := positionalArg(fs, args)
	if errors.Is(err, errMissingArg) {
		fmt.Println("Error: shorten requires a URL argument")
		return nil
	}
	if err != nil {
		return nil
	}

	svc := service.NewURLService(store.NewFileStore(*database, logger), logger)
	opts := service.ShortenOptions{Length: *length, CustomCode: *custom}

	shortCode, err := svc.ShortenURL(context.Background(), input, opts)
	switch {
	case errors.Is(err, service.ErrInvalidURL):
		fmt.Printf("Error: '%s' is not a valid URL\n", input)
	case errors.Is(err, service.ErrCodeInUse):
		fmt.Printf("Error: Custom code '%s' is already in use\n", *custom)
	case errors.Is(err, service.ErrConflict):
		fmt.Printf("URL already shortened: %s\n", shortURL(cfg, shortCode))
	case err != nil:
		return err
	default:
		fmt.Printf("Shortened URL: %s\n", shortURL(cfg, shortCode))
	}
	return nil
}

func runExpand(cfg *config.ConfigType, logger *zap.SugaredLogger, args []string) error {
	fs := newFlagSet("expand")
	database := databaseFlag(fs, cfg)
	input, err := positionalArg(fs, args)
	if errors.Is(err, errMissingArg) {
		fmt.Println("Error: expand requires a short code or URL argument")
		return nil
	}
	if err != nil {
		return nil
	}

	svc := service.NewGetURLService(store.NewFileStore(*database, logger))

	originalURL, err := svc.GetOriginalURL(context.Background(), input)
	switch {
	case errors.Is(err, service.ErrNotFound):
		fmt.Printf("Error: Short code '%s' not found\n", utils.ParseShortCode(input))
	case err != nil:
		return err
	default:
		fmt.Printf("Original URL: %s\n", originalURL)
	}
	return nil
}

func runList(cfg *config.ConfigType, logger *zap.SugaredLogger, args []string) error {
	fs := newFlagSet("list")
	database := databaseFlag(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return nil
	}

	svc := service.NewGetURLService(store.NewFileStore(*database, logger))

	urls, err := svc.ListURLs(context.Background())
	if err != nil {
		return err
	}
	printURLTable(cfg, urls)
	return nil
}

func runDelete(cfg *config.ConfigType, logger *zap.SugaredLogger, args []string) error {
	fs := newFlagSet("delete")
	database := databaseFlag(fs, cfg)
	input, err := positionalArg(fs, args)
	if errors.Is(err, errMissingArg) {
		fmt.Println("Error: delete requires a short code or URL argument")
		return nil
	}
	if err != nil {
		return nil
	}

	svc := service.NewURLDeleter(store.NewFileStore(*database, logger))

	shortCode := utils.ParseShortCode(input)
	originalURL, err := svc.DeleteURL(context.Background(), input)
	switch {
	case errors.Is(err, service.ErrNotFound):
		fmt.Printf("Error: Short code '%s' not found\n", shortCode)
	case err != nil:
		return err
	default:
		fmt.Printf("Deleted: %s -> %s\n", shortURL(cfg, shortCode), originalURL)
	}
	return nil
}

const urlColumnWidth = 48

func printURLTable(cfg *config.ConfigType, urls []service.URLDTO) {
	if len(urls) == 0 {
		fmt.Println("No URLs in the database")
		return
	}

	line := strings.Repeat("=", 70)
	fmt.Println("\n" + line)
	fmt.Printf("%-20s | %-*s\n", "Short URL", urlColumnWidth, "Original URL")
	fmt.Println(line)

	for _, entry := range urls {
		displayed := entry.OriginalURL
		// Truncate by characters, not bytes, so a multibyte URL is
		// never cut mid-rune.
		if runes := []rune(displayed); len(runes) > urlColumnWidth {
			displayed = string(runes[:urlColumnWidth-3]) + "..."
		}
		fmt.Printf("%-20s | %-*s\n", shortURL(cfg, entry.ShortCode), urlColumnWidth, displayed)
	}

	fmt.Println(line)
	fmt.Printf("Total: %d URLs\n", len(urls))
	fmt.Println(line + "\n")
}
