package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/0xAp0llo/URL-Shortener/internal/app/config"
)

func main() {
	logger := newLogger()
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg := config.NewConfig()

	if err := run(cfg, sugar, os.Args[1:]); err != nil {
		sugar.Fatalw("Command failed", "error", err)
	}
}

// newLogger builds a console logger writing to stdout: results and
// diagnostics share one channel.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = ""

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
