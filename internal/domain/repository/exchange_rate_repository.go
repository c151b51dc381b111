package repository

import (
	"context"

	"github.com/damon-houk/exchange-rate-converter/internal/domain/entity"
)

// ExchangeRateRepository defines storage operations for converted rates
type ExchangeRateRepository interface {
	// StoreRate saves a converted exchange rate entry
	StoreRate(ctx context.Context, rate *entity.ExchangeRate) error

	// FindRate retrieves the stored rate for a currency and date string
	FindRate(ctx context.Context, currency, date string) (*entity.ExchangeRate, error)
}
