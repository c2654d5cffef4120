package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bkhatib/fft-service/internal/ai"
	"github.com/bkhatib/fft-service/internal/models"
)

// Notifier pushes the derived priority and category to the case system.
// Implementations report failures through the outcome, never by panicking.
type Notifier interface {
	Notify(ctx context.Context, caseID string, priority int, category string) models.NotifierOutcome
}

type Classifier struct {
	Oracle   ai.Oracle
	Notifier Notifier
	Logger   zerolog.Logger
	Now      func() time.Time
}

func (c *Classifier) Classify(ctx context.Context, caseID, subject, body string) (models.CategorizationResult, error) {
	if c.Oracle == nil {
		return models.CategorizationResult{}, fmt.Errorf("classifier has no oracle configured")
	}
	// In-flight collaborator calls run to completion or to their own timeout.
	ctx = context.WithoutCancel(ctx)

	raw, err := c.Oracle.Complete(ctx, SystemPrompt, BuildUserMessage(subject, body))
	if err != nil {
		return models.CategorizationResult{}, fmt.Errorf("categorize email: %w", err)
	}
	c.Logger.Debug().Str("case_id", caseID).Str("raw", raw).Msg("oracle response")

	out, err := ParseOracleOutput(raw)
	if err != nil {
		c.Logger.Warn().Err(err).Str("case_id", caseID).Msg("rejected oracle response")
		return models.CategorizationResult{}, err
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	refs := out.References
	if refs == nil {
		refs = []string{}
	}
	result := models.CategorizationResult{
		Category:                out.Category,
		HotelName:               out.HotelName,
		CityName:                out.CityName,
		SupplierName:            out.SupplierName,
		CheckInDate:             out.CheckInDate,
		CheckOutDate:            out.CheckOutDate,
		HotelConfirmationNumber: out.HotelConfirmationNumber,
		AgentReferenceID:        out.AgentReferenceID,
		AICategory:              out.AICategory,
		References:              refs,
		Priority:                DetectPriority(out.Category, out.HotelConfirmationNumber),
		Days:                    DaysUntil(out.CheckInDate, now()),
	}

	if c.Notifier != nil {
		result.NotifierOutcome = c.Notifier.Notify(ctx, caseID, result.Priority, string(result.Category))
	} else {
		result.NotifierOutcome = models.NotifierOutcome{
			Status:  models.OutcomeSkipped,
			Message: "case notifier disabled",
		}
	}

	c.Logger.Info().
		Str("case_id", caseID).
		Str("category", string(result.Category)).
		Int("priority", result.Priority).
		Int("days", result.Days).
		Bool("case_updated", result.NotifierOutcome.Success).
		Msg("email categorized")
	return result, nil
}
