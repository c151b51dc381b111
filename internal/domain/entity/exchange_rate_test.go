package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRate(t *testing.T) {
	t.Run("Numeric value", func(t *testing.T) {
		v := ParseRate("1.0732")

		assert.True(t, v.Numeric)
		assert.Equal(t, 1.0732, v.Number)
	})

	t.Run("Non-numeric value", func(t *testing.T) {
		v := ParseRate("N/A")

		assert.False(t, v.Numeric)
		assert.Equal(t, "N/A", v.Raw)
	})

	t.Run("Empty value", func(t *testing.T) {
		v := ParseRate("")

		assert.False(t, v.Numeric)
		assert.Equal(t, "", v.Raw)
	})

	t.Run("Non-finite values fall back to raw strings", func(t *testing.T) {
		for _, s := range []string{"NaN", "nan", "Inf", "inf", "+Inf", "-Inf", "Infinity"} {
			v := ParseRate(s)

			assert.False(t, v.Numeric, "value %q", s)
			assert.Equal(t, s, v.Raw)

			// The fallback must stay serializable
			data, err := json.Marshal(v)
			assert.NoError(t, err)
			assert.Equal(t, `"`+s+`"`, string(data))
		}
	})
}

func TestRateValueJSON(t *testing.T) {
	t.Run("Marshals number as JSON number", func(t *testing.T) {
		data, err := json.Marshal(NumericRate(1.0732))

		assert.NoError(t, err)
		assert.Equal(t, "1.0732", string(data))
	})

	t.Run("Marshals raw value as JSON string", func(t *testing.T) {
		data, err := json.Marshal(RawRate("bad"))

		assert.NoError(t, err)
		assert.Equal(t, `"bad"`, string(data))
	})

	t.Run("Unmarshals number", func(t *testing.T) {
		var v RateValue
		err := json.Unmarshal([]byte("0.85"), &v)

		assert.NoError(t, err)
		assert.True(t, v.Numeric)
		assert.Equal(t, 0.85, v.Number)
	})

	t.Run("Unmarshals string", func(t *testing.T) {
		var v RateValue
		err := json.Unmarshal([]byte(`"N/A"`), &v)

		assert.NoError(t, err)
		assert.False(t, v.Numeric)
		assert.Equal(t, "N/A", v.Raw)
	})

	t.Run("Rejects other node types", func(t *testing.T) {
		var v RateValue
		err := json.Unmarshal([]byte("[1]"), &v)

		assert.Error(t, err)
	})
}

func TestExchangeRateJSON(t *testing.T) {
	entry := ExchangeRate{
		Date:     "2023-01-15",
		Currency: "USD",
		Rate:     NumericRate(1.0732),
	}

	data, err := json.Marshal(entry)

	assert.NoError(t, err)
	assert.JSONEq(t, `{"date":"2023-01-15","currency":"USD","rate":1.0732}`, string(data))
}

func TestRateDocumentRoundTrip(t *testing.T) {
	doc := RateDocument{
		ExchangeRates: []ExchangeRate{
			{Date: "2023-01-15", Currency: "USD", Rate: NumericRate(1.0732)},
			{Date: "2023-01-16", Currency: "EUR", Rate: RawRate("bad")},
		},
	}

	data, err := json.Marshal(doc)
	assert.NoError(t, err)

	var decoded RateDocument
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, doc, decoded)
}
