package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkhatib/fft-service/internal/models"
)

func TestParseOracleOutput_FullObject(t *testing.T) {
	raw := `{"category":"STOP_SALE","hotel_name":"S19 Hotel Al Jaddaf","city_name":"Dubai","supplier_name":"TBOHolidays",
		"check_in_date":"2025-05-21","check_out_date":"2025-05-22","hotel_confirmation_number":"123ABC",
		"agent_reference_id":"H2412311166652","ai_category":"Stop sale request","references":["H2412311166652","123ABC"]}`

	out, err := ParseOracleOutput(raw)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryStopSale, out.Category)
	assert.Equal(t, "S19 Hotel Al Jaddaf", out.HotelName)
	assert.Equal(t, "Dubai", out.CityName)
	assert.Equal(t, "TBOHolidays", out.SupplierName)
	assert.Equal(t, "2025-05-21", out.CheckInDate)
	assert.Equal(t, "2025-05-22", out.CheckOutDate)
	assert.Equal(t, "123ABC", out.HotelConfirmationNumber)
	assert.Equal(t, "H2412311166652", out.AgentReferenceID)
	assert.Equal(t, "Stop sale request", out.AICategory)
	assert.Equal(t, []string{"H2412311166652", "123ABC"}, out.References)
}

func TestParseOracleOutput_NullsAndNumbers(t *testing.T) {
	raw := `{"category":" invoice ","hotel_name":null,"hotel_confirmation_number":987654,"references":[12345,"","  H2400000000001 ",null]}`

	out, err := ParseOracleOutput(raw)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryInvoice, out.Category)
	assert.Empty(t, out.HotelName)
	assert.Empty(t, out.CheckInDate)
	assert.Equal(t, "987654", out.HotelConfirmationNumber)
	assert.Equal(t, []string{"12345", "H2400000000001"}, out.References)
}

func TestParseOracleOutput_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		reason string
	}{
		{name: "plain text", raw: "This is just plain text, not JSON.", reason: "not a JSON object"},
		{name: "array", raw: `[{"category":"OTHER"}]`, reason: "not a JSON object"},
		{name: "truncated", raw: `{"category":"OTHER"`, reason: "not valid JSON"},
		{name: "missing category", raw: `{"hotel_name":"Grand Hotel","references":[]}`, reason: "missing 'category'"},
		{name: "invented category", raw: `{"category":"URGENT_STUFF"}`, reason: "unrecognized category"},
		{name: "object category", raw: `{"category":{"name":"OTHER"}}`, reason: "not valid JSON"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOracleOutput(tc.raw)
			require.Error(t, err)

			var invalid *InvalidOracleResponseError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.raw, invalid.Raw)
			assert.Contains(t, err.Error(), tc.reason)
			assert.Contains(t, err.Error(), tc.raw)
		})
	}
}

func TestParseOracleOutput_NullCategoryRejected(t *testing.T) {
	_, err := ParseOracleOutput(`{"category":null}`)
	var invalid *InvalidOracleResponseError
	require.True(t, errors.As(err, &invalid))
}
