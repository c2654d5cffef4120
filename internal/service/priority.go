package service

import (
	"github.com/samber/lo"

	"github.com/bkhatib/fft-service/internal/models"
)

const (
	PriorityCritical = 4
	PriorityHigh     = 3
	PriorityMedium   = 2
	PriorityLow      = 1

	fallbackPriority = PriorityHigh
)

type priorityRule struct {
	categories []models.Category
	// when non-nil the rule also requires the confirmation number predicate
	hcn      func(hcn string) bool
	priority int
}

func hasHCN(hcn string) bool { return hcn != "" }
func noHCN(hcn string) bool  { return hcn == "" }

// Evaluated in order; the first match wins. CREDIT_NOTE is listed in the
// conditional rules as well but is always caught by the unconditional one.
var priorityRules = []priorityRule{
	{
		categories: []models.Category{
			models.CategoryStopSale,
			models.CategoryBookOut,
			models.CategoryPaymentIssue,
			models.CategoryNoContract,
			models.CategoryHotelNonOperational,
			models.CategoryWrongInformation,
			models.CategoryRequiredInformation,
			models.CategorySanctions,
			models.CategoryRateIssue,
			models.CategoryNotReachable,
			models.CategoryRefusedToHelp,
			models.CategoryDuplicityNotification,
		},
		priority: PriorityCritical,
	},
	{
		categories: []models.Category{models.CategoryCreditNote, models.CategoryCancellationWithoutNotification},
		priority:   PriorityHigh,
	},
	{
		categories: []models.Category{models.CategoryAcknowledgment, models.CategoryOther, models.CategorySurveyFeedback},
		priority:   PriorityLow,
	},
	{
		categories: []models.Category{models.CategoryCancellationNotification},
		priority:   PriorityMedium,
	},
	{
		categories: []models.Category{models.CategoryBookingConfirmationNotification, models.CategoryInvoice, models.CategoryCreditNote},
		hcn:        hasHCN,
		priority:   PriorityHigh,
	},
	{
		categories: []models.Category{models.CategoryBookingConfirmationNotification, models.CategoryInvoice, models.CategoryCreditNote},
		hcn:        noHCN,
		priority:   PriorityMedium,
	},
}

// DetectPriority maps a category and hotel confirmation number to 1 (low) .. 4 (critical).
func DetectPriority(category models.Category, hotelConfirmationNumber string) int {
	for _, r := range priorityRules {
		if !lo.Contains(r.categories, category) {
			continue
		}
		if r.hcn != nil && !r.hcn(hotelConfirmationNumber) {
			continue
		}
		return r.priority
	}
	return fallbackPriority
}
