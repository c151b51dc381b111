package entity

import (
	"encoding/json"
	"math"
	"strconv"
)

// ExchangeRate represents a currency exchange rate for a specific date.
// Date stays a string: recognized source dates are normalized to
// YYYY-MM-DD during conversion, anything else passes through untouched.
type ExchangeRate struct {
	Date     string    `json:"date"`
	Currency string    `json:"currency"`
	Rate     RateValue `json:"rate"`
}

// RateDocument is the top-level structure of a converted document.
type RateDocument struct {
	ExchangeRates []ExchangeRate `json:"exchange_rates"`
}

// RateValue holds either a numeric rate or, when the source value does not
// parse as a number, the original string. It serializes to a JSON number or
// a JSON string accordingly.
type RateValue struct {
	Number  float64
	Raw     string
	Numeric bool
}

// NumericRate returns a RateValue carrying a number.
func NumericRate(f float64) RateValue {
	return RateValue{Number: f, Numeric: true}
}

// RawRate returns a RateValue carrying the original unparsed string.
func RawRate(s string) RateValue {
	return RateValue{Raw: s}
}

// ParseRate coerces s to a numeric rate, falling back to the raw string
// when s is not a valid number. NaN and infinities count as unparseable:
// JSON has no representation for non-finite numbers.
func ParseRate(s string) RateValue {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return RawRate(s)
	}
	return NumericRate(f)
}

// MarshalJSON resolves the union to a number or string node.
func (v RateValue) MarshalJSON() ([]byte, error) {
	if v.Numeric {
		return json.Marshal(v.Number)
	}
	return json.Marshal(v.Raw)
}

// UnmarshalJSON accepts either a number or a string node.
func (v *RateValue) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*v = NumericRate(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = RawRate(s)
	return nil
}
