package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	assert.Equal(t, "success", Result(nil))
	assert.Equal(t, "error", Result(errors.New("x")))
}

func TestHandlerExportsCounters(t *testing.T) {
	PublishesTotal.WithLabelValues("twitter", "success").Inc()
	SyncsTotal.WithLabelValues("error").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `dealerpost_post_publishes_total{platform="twitter",result="success"}`)
	assert.Contains(t, rec.Body.String(), `dealerpost_catalog_syncs_total{result="error"}`)
}
