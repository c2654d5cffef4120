package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/bkhatib/fft-service/internal/models"
)

const maxBodyBytes = 1 << 20

// Categorizer is satisfied by *service.Classifier.
type Categorizer interface {
	Classify(ctx context.Context, caseID, subject, body string) (models.CategorizationResult, error)
}

type Handler struct {
	Classifier Categorizer
	Validator  *RequestValidator
	Logger     zerolog.Logger
}

// @Summary Health check
// @Description Returns 200 OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// @Summary Categorize a supplier email
// @Description Classifies the email into a business category, extracts booking metadata,
// @Description derives priority and days to check-in, and updates the case in Informatica.
// @Tags categorize
// @Accept json
// @Produce json
// @Param request body models.CategorizeRequest true "email to categorize"
// @Success 200 {object} models.CategorizationResult
// @Failure 400 {object} map[string]any
// @Failure 422 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /categorize [post]
func (h *Handler) Categorize(c *gin.Context) {
	var req models.CategorizeRequest
	if err := decodeBody(c, &req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Malformed request body", err.Error())
		return
	}

	v := h.Validator
	if v == nil {
		v = NewRequestValidator()
	}
	if fieldErrs := v.Struct(req); len(fieldErrs) > 0 {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fe.Message)
		}
		writeError(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", strings.Join(msgs, "; "), fieldErrs)
		return
	}

	result, err := h.Classifier.Classify(c.Request.Context(), req.Casenumber, req.EmailSubject, req.EmailBody)
	if err != nil {
		h.Logger.Error().Err(err).Str("case_id", req.Casenumber).Msg("categorization failed")
		writeError(c, http.StatusInternalServerError, "CLASSIFICATION_FAILED", err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, result)
}

// decodeBody reads exactly one JSON value from the request body.
func decodeBody(c *gin.Context, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// writeError keeps the top-level detail key clients rely on next to the
// structured error envelope.
func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"detail": message,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
