// Package logging installs the process-wide slog handler: colourised tint
// output with trimmed source paths at debug level, JSON otherwise.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel turns a LOG_LEVEL value into a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	level := slog.LevelInfo
	if s == "" {
		return level, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level: %s", s)
	}
	return level, nil
}

// NewHandler returns the tint handler for debug and a JSON handler on w for
// every other level.
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	if level > slog.LevelDebug {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}

	prefix := modulePrefix()
	return tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.TimeOnly,
		AddSource:  true,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = CleanSourcePath(source.File, prefix)
				}
			}
			if err, ok := a.Value.Any().(error); ok {
				aErr := tint.Err(err)
				aErr.Key = a.Key
				return aErr
			}
			return a
		},
	})
}

// Setup installs the default logger for levelName. The debug handler
// writes to stdout, JSON goes to stderr.
func Setup(levelName string) error {
	level, err := ParseLevel(levelName)
	if err != nil {
		return err
	}
	w := os.Stderr
	if level <= slog.LevelDebug {
		w = os.Stdout
	}
	slog.SetDefault(slog.New(NewHandler(w, level)))
	return nil
}

// modulePrefix is "/<last module path element>/", used to cut source paths.
func modulePrefix() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path == "" {
		if wd, err := os.Getwd(); err == nil {
			return "/" + filepath.Base(wd) + "/"
		}
		return "/dealerpost/"
	}

	parts := strings.Split(info.Main.Path, "/")
	return "/" + parts[len(parts)-1] + "/"
}

// CleanSourcePath keeps the part of filePath after modulePrefix, or after
// the last src/ directory when the prefix is absent.
func CleanSourcePath(filePath, modulePrefix string) string {
	parts := strings.Split(filePath, modulePrefix)
	if len(parts) == 2 {
		return parts[1]
	}

	cleaned := filePath
	if idx := strings.LastIndex(cleaned, "/go/src/"); idx != -1 {
		cleaned = cleaned[idx+8:]
	} else if idx := strings.LastIndex(cleaned, "/src/"); idx != -1 {
		cleaned = cleaned[idx+5:]
	}
	return cleaned
}
