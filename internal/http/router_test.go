package httpapi

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/bkhatib/fft-service/internal/config"
	"github.com/bkhatib/fft-service/internal/http/middleware"
	"github.com/bkhatib/fft-service/internal/models"
)

type staticCategorizer struct {
	calls int
}

func (s *staticCategorizer) Classify(ctx context.Context, caseID, subject, body string) (models.CategorizationResult, error) {
	s.calls++
	return models.CategorizationResult{Category: models.CategoryOther, References: []string{}, Priority: 1, Days: -1}, nil
}

func TestRouterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cat := &staticCategorizer{}
	r := Router(config.Config{CORSAllowed: "*"}, cat, zerolog.Nop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = httptest.NewRecorder()
	body := `{"casenumber":"C1","email_subject":"s","email_body":"b"}`
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/categorize", bytes.NewBufferString(body)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, cat.calls)
}

func TestRouterAPIKeyGuardsCategorizeOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cat := &staticCategorizer{}
	r := Router(config.Config{CORSAllowed: "*", APIKey: "k"}, cat, zerolog.Nop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	body := `{"casenumber":"C1","email_subject":"s","email_body":"b"}`
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/categorize", bytes.NewBufferString(body)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, cat.calls)
}
