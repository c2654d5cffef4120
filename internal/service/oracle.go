package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/samber/lo"

	"github.com/bkhatib/fft-service/internal/models"
)

// InvalidOracleResponseError is returned when the oracle output is not a JSON
// object or does not carry a recognized category. Raw keeps the output as received.
type InvalidOracleResponseError struct {
	Reason string
	Raw    string
	Err    error
}

func (e *InvalidOracleResponseError) Error() string {
	return fmt.Sprintf("invalid oracle response: %s. Full response: %s", e.Reason, e.Raw)
}

func (e *InvalidOracleResponseError) Unwrap() error {
	return e.Err
}

type OracleOutput struct {
	Category                models.Category
	HotelName               string
	CityName                string
	SupplierName            string
	CheckInDate             string
	CheckOutDate            string
	HotelConfirmationNumber string
	AgentReferenceID        string
	AICategory              string
	References              []string
}

// looseString accepts a JSON string, number or boolean. null decodes to "".
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	switch b[0] {
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
	case '{', '[':
		return fmt.Errorf("expected a scalar, got %s", b)
	default:
		*s = looseString(b)
	}
	return nil
}

type oraclePayload struct {
	Category                *looseString  `json:"category"`
	HotelName               looseString   `json:"hotel_name"`
	CityName                looseString   `json:"city_name"`
	SupplierName            looseString   `json:"supplier_name"`
	CheckInDate             looseString   `json:"check_in_date"`
	CheckOutDate            looseString   `json:"check_out_date"`
	HotelConfirmationNumber looseString   `json:"hotel_confirmation_number"`
	AgentReferenceID        looseString   `json:"agent_reference_id"`
	AICategory              looseString   `json:"ai_category"`
	References              []looseString `json:"references"`
}

// ParseOracleOutput decodes and validates a completion. Only category is
// mandatory; every other field may be null, empty or absent.
func ParseOracleOutput(raw string) (OracleOutput, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return OracleOutput{}, &InvalidOracleResponseError{Reason: "output is not a JSON object", Raw: raw}
	}

	var p oraclePayload
	if err := json.Unmarshal([]byte(trimmed), &p); err != nil {
		return OracleOutput{}, &InvalidOracleResponseError{Reason: "output is not valid JSON", Raw: raw, Err: err}
	}
	if p.Category == nil {
		return OracleOutput{}, &InvalidOracleResponseError{Reason: "missing 'category' field", Raw: raw}
	}
	category, ok := models.ParseCategory(string(*p.Category))
	if !ok {
		return OracleOutput{}, &InvalidOracleResponseError{
			Reason: fmt.Sprintf("unrecognized category %q", string(*p.Category)),
			Raw:    raw,
		}
	}

	refs := lo.FilterMap(p.References, func(r looseString, _ int) (string, bool) {
		v := strings.TrimSpace(string(r))
		return v, v != ""
	})

	return OracleOutput{
		Category:                category,
		HotelName:               string(p.HotelName),
		CityName:                string(p.CityName),
		SupplierName:            string(p.SupplierName),
		CheckInDate:             string(p.CheckInDate),
		CheckOutDate:            string(p.CheckOutDate),
		HotelConfirmationNumber: string(p.HotelConfirmationNumber),
		AgentReferenceID:        string(p.AgentReferenceID),
		AICategory:              string(p.AICategory),
		References:              refs,
	}, nil
}
