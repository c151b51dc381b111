package handler

import (
	"github.com/damon-houk/exchange-rate-converter/internal/domain/entity"
)

// RateResponse represents the response for the rate lookup endpoint
type RateResponse struct {
	Date     string           `json:"date"`
	Currency string           `json:"currency"`
	Rate     entity.RateValue `json:"rate"`
}

// ErrorResponse represents a standardized error response body
type ErrorResponse struct {
	Error       string `json:"error"`
	Status      int    `json:"status"`
	Description string `json:"description"`
	RequestID   string `json:"request_id,omitempty"`
}
