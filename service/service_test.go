package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loganlanou/dealerpost/internal/ollama"
)

func TestAIDrafter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"mistral:7b"}]}`))
	}))
	defer srv.Close()

	tests := []struct {
		name    string
		enabled bool
		url     string
		model   string
		wantAI  bool
	}{
		{"disabled", false, srv.URL, "mistral:7b", false},
		{"model served", true, srv.URL, "mistral:7b", true},
		{"model missing", true, srv.URL, "qwen", false},
		{"server down", true, "http://127.0.0.1:1", "mistral:7b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Ollama.Enabled = tt.enabled
			cfg.Ollama.URL = tt.url
			cfg.Ollama.Model = tt.model

			drafter := aiDrafter(context.Background(), cfg)
			if tt.wantAI {
				assert.IsType(t, &ollama.Client{}, drafter)
			} else {
				assert.Nil(t, drafter)
			}
		})
	}
}
