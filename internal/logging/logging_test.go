package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHandler_JSONAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo))

	logger.Debug("hidden")
	logger.Info("synced", "count", 5)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "synced", line["msg"])
	assert.EqualValues(t, 5, line["count"])
}

func TestNewHandler_DebugIsText(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewHandler(&buf, slog.LevelDebug)).Debug("visible")

	assert.Contains(t, buf.String(), "visible")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestCleanSourcePath(t *testing.T) {
	assert.Equal(t, "internal/jobs/analytics_collector.go",
		CleanSourcePath("/home/dev/dealerpost/internal/jobs/analytics_collector.go", "/dealerpost/"))
	assert.Equal(t, "github.com/x/y/z.go",
		CleanSourcePath("/root/go/src/github.com/x/y/z.go", "/dealerpost/"))
	assert.Equal(t, "/opt/app/main.go", CleanSourcePath("/opt/app/main.go", "/dealerpost/"))
}
