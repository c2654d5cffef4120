package notifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/bkhatib/fft-service/internal/models"
)

const (
	defaultTimeout   = 15 * time.Second
	maxResponseBytes = 1 << 20
)

type HTTPNotifier struct {
	URL       string
	AuthToken string
	Client    *http.Client
	Logger    zerolog.Logger
}

type Options struct {
	Timeout time.Duration
}

type requestBody struct {
	CaseID   string `json:"caseId"`
	Priority string `json:"priority"`
	AITag    string `json:"aiTag"`
}

type response struct {
	StatusCode int
	Body       []byte
}

func NewHTTPNotifier(url, authToken string, opts Options, logger zerolog.Logger) *HTTPNotifier {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	return &HTTPNotifier{
		URL:       url,
		AuthToken: authToken,
		Client:    &http.Client{Timeout: opts.Timeout},
		Logger:    logger,
	}
}

// Notify makes at most one attempt to update the case and never returns an error.
func (n *HTTPNotifier) Notify(ctx context.Context, caseID string, priority int, category string) models.NotifierOutcome {
	label, err := validate(caseID, priority, category)
	if err != nil {
		return models.NotifierOutcome{
			Status:  models.OutcomeInvalid,
			Message: fmt.Sprintf("Case not updated: %v", err),
			Error:   err.Error(),
		}
	}

	resp, err := n.send(ctx, requestBody{CaseID: caseID, Priority: label, AITag: category})
	if err != nil {
		return n.failure(caseID, err)
	}

	var parsed any
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return models.NotifierOutcome{
			Success:    true,
			Status:     models.OutcomeSuccess,
			Message:    "Case updated; response was not JSON",
			StatusCode: resp.StatusCode,
			Response:   string(resp.Body),
		}
	}
	return models.NotifierOutcome{
		Success:    true,
		Status:     models.OutcomeSuccess,
		Message:    "Case updated successfully",
		StatusCode: resp.StatusCode,
		Response:   parsed,
	}
}

func (n *HTTPNotifier) send(ctx context.Context, payload requestBody) (response, error) {
	if n.URL == "" {
		return response{}, errors.New("case system url is not set")
	}
	client := n.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return response{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(b))
	if err != nil {
		return response{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", n.AuthToken)

	resp, err := client.Do(req)
	if err != nil {
		return response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return response{}, fmt.Errorf("read case system response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return response{}, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return response{StatusCode: resp.StatusCode, Body: body}, nil
}

func (n *HTTPNotifier) failure(caseID string, err error) models.NotifierOutcome {
	out := models.NotifierOutcome{
		Status:  models.OutcomeFailed,
		Message: fmt.Sprintf("Failed to update case: %v", err),
		Error:   err.Error(),
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		out.StatusCode = statusErr.StatusCode
		if statusErr.Body != "" {
			out.Response = statusErr.Body
		}
	}
	n.Logger.Warn().Err(err).Str("case_id", caseID).Int("status_code", out.StatusCode).Msg("case update failed")
	return out
}
