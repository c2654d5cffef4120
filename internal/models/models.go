package models

import "strings"

type Category string

const (
	CategoryStopSale                        Category = "STOP_SALE"
	CategoryBookOut                         Category = "BOOK_OUT"
	CategoryPaymentIssue                    Category = "PAYMENT_ISSUE"
	CategoryNoContract                      Category = "NO_CONTRACT"
	CategoryHotelNonOperational             Category = "HOTEL_NON_OPERATIONAL"
	CategoryWrongInformation                Category = "WRONG_INFORMATION"
	CategoryRequiredInformation             Category = "REQUIRED_INFORMATION"
	CategorySanctions                       Category = "SANCTIONS"
	CategoryRateIssue                       Category = "RATE_ISSUE"
	CategoryNotReachable                    Category = "NOT_REACHABLE"
	CategoryRefusedToHelp                   Category = "REFUSED_TO_HELP"
	CategoryDuplicityNotification           Category = "DUPLICITY_NOTIFICATION"
	CategoryBookingConfirmationNotification Category = "BOOKING_CONFIRMATION_NOTIFICATION"
	CategoryInvoice                         Category = "INVOICE"
	CategoryCreditNote                      Category = "CREDIT_NOTE"
	CategoryCancellationWithoutNotification Category = "CANCELLATION_WITHOUT_NOTIFICATION"
	CategoryCancellationNotification        Category = "CANCELLATION_NOTIFICATION"
	CategoryAcknowledgment                  Category = "ACKNOWLEDGMENT"
	CategorySurveyFeedback                  Category = "SURVEY_FEEDBACK"
	CategoryOther                           Category = "OTHER"
)

// Categories lists every accepted category in prompt order.
var Categories = []Category{
	CategoryStopSale,
	CategoryBookOut,
	CategoryPaymentIssue,
	CategoryNoContract,
	CategoryHotelNonOperational,
	CategoryWrongInformation,
	CategoryRequiredInformation,
	CategorySanctions,
	CategoryRateIssue,
	CategoryNotReachable,
	CategoryRefusedToHelp,
	CategoryDuplicityNotification,
	CategoryBookingConfirmationNotification,
	CategoryInvoice,
	CategoryCreditNote,
	CategoryCancellationWithoutNotification,
	CategoryCancellationNotification,
	CategoryAcknowledgment,
	CategorySurveyFeedback,
	CategoryOther,
}

var categorySet = func() map[Category]struct{} {
	m := make(map[Category]struct{}, len(Categories))
	for _, c := range Categories {
		m[c] = struct{}{}
	}
	return m
}()

// ParseCategory normalizes case and surrounding whitespace before matching.
func ParseCategory(value string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(value)))
	_, ok := categorySet[c]
	return c, ok
}

func (c Category) Valid() bool {
	_, ok := categorySet[c]
	return ok
}

type CategorizeRequest struct {
	Casenumber   string `json:"casenumber" validate:"required,notblank"`
	EmailSubject string `json:"email_subject" validate:"required,notblank"`
	EmailBody    string `json:"email_body" validate:"required,notblank"`
}

type CategorizationResult struct {
	Category                Category        `json:"category"`
	HotelName               string          `json:"hotel_name"`
	CityName                string          `json:"city_name"`
	SupplierName            string          `json:"supplier_name"`
	CheckInDate             string          `json:"check_in_date"`
	CheckOutDate            string          `json:"check_out_date"`
	HotelConfirmationNumber string          `json:"hotel_confirmation_number"`
	AgentReferenceID        string          `json:"agent_reference_id"`
	AICategory              string          `json:"ai_category"`
	References              []string        `json:"references"`
	Priority                int             `json:"priority"`
	Days                    int             `json:"days"`
	NotifierOutcome         NotifierOutcome `json:"informatica_update"`
}

const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
	OutcomeInvalid = "invalid_input"
	OutcomeSkipped = "skipped"
)

// NotifierOutcome records the best-effort push to the case system.
// Response holds the decoded JSON body, or the raw text when it was not JSON.
type NotifierOutcome struct {
	Success    bool   `json:"success"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"`
	Response   any    `json:"response,omitempty"`
	Error      string `json:"error,omitempty"`
}
