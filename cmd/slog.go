package main

import (
	"log/slog"
	"os"

	"github.com/loganlanou/dealerpost/internal/logging"
)

func init() {
	if err := logging.Setup(os.Getenv("LOG_LEVEL")); err != nil {
		panic(err)
	}
	slog.Debug("debug logging enabled")
}
