package ai

import (
	"context"
	"strings"
)

// MockOracle answers with canned completions chosen by subject keywords.
type MockOracle struct {
	// Raw, when set, is returned for every call.
	Raw string
	Err error

	Calls int
}

const (
	mockStopSale = `{"category":"STOP_SALE","hotel_name":"S19 Hotel Al Jaddaf","city_name":"Dubai","supplier_name":"TBOHolidays","check_in_date":"2025-05-21","check_out_date":"2025-05-22","hotel_confirmation_number":"123ABC","agent_reference_id":"H2412311166652","ai_category":"STOP_SALE","references":["H2412311166652"]}`
	mockPayment  = `{"category":"PAYMENT_ISSUE","hotel_name":"Grand Hotel","city_name":"Dubai","supplier_name":"Expedia","check_in_date":"2025-06-01","check_out_date":"2025-06-05","hotel_confirmation_number":"456DEF","agent_reference_id":"H2412311166652","ai_category":"PAYMENT_ISSUE","references":["H2412311166652"]}`
	mockDuplica  = `{"category":"DUPLICITY_NOTIFICATION","hotel_name":"","city_name":"","supplier_name":"","check_in_date":"","check_out_date":"","hotel_confirmation_number":"","agent_reference_id":"","ai_category":"DUPLICITY_NOTIFICATION","references":["H2412311166652","H2412311166653"]}`
	mockOther    = `{"category":"OTHER","hotel_name":null,"city_name":null,"supplier_name":null,"check_in_date":null,"check_out_date":null,"hotel_confirmation_number":null,"agent_reference_id":null,"ai_category":"OTHER","references":[]}`
)

func (m *MockOracle) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	if m.Raw != "" {
		return m.Raw, nil
	}

	subject := strings.ToLower(userMessage)
	if i := strings.Index(subject, "\n\nbody:"); i >= 0 {
		subject = subject[:i]
	}
	switch {
	case strings.Contains(subject, "stop sales"):
		return mockStopSale, nil
	case strings.Contains(subject, "payment issue"):
		return mockPayment, nil
	case strings.Contains(subject, "duplicate"):
		return mockDuplica, nil
	default:
		return mockOther, nil
	}
}
