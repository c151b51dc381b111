package service

import (
	"context"
	"fmt"

	"github.com/damon-houk/exchange-rate-converter/internal/domain/entity"
	"github.com/damon-houk/exchange-rate-converter/internal/domain/repository"
	"github.com/damon-houk/exchange-rate-converter/internal/infrastructure/cache"
	"github.com/damon-houk/exchange-rate-converter/internal/infrastructure/logger"
)

// RateService answers rate lookups backed by a store of converted documents
type RateService struct {
	repo   repository.ExchangeRateRepository
	cache  *cache.RateCache
	logger logger.Logger
}

// NewRateService creates a new rate service
func NewRateService(repo repository.ExchangeRateRepository, c *cache.RateCache, log logger.Logger) *RateService {
	if c == nil {
		c = cache.NewRateCache()
	}
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &RateService{
		repo:   repo,
		cache:  c,
		logger: log,
	}
}

// ImportDocument stores every entry of a converted document and returns the
// number of entries stored
func (s *RateService) ImportDocument(ctx context.Context, doc *entity.RateDocument) (int, error) {
	count := 0
	for i := range doc.ExchangeRates {
		entry := doc.ExchangeRates[i]
		if err := s.repo.StoreRate(ctx, &entry); err != nil {
			s.logger.Error("Failed to store rate", map[string]interface{}{
				"currency": entry.Currency,
				"date":     entry.Date,
				"error":    err.Error(),
			})
			return count, fmt.Errorf("failed to store rate for %s on %s: %w", entry.Currency, entry.Date, err)
		}
		count++
	}

	s.logger.Info("Document imported", map[string]interface{}{
		"entries": count,
	})

	return count, nil
}

// GetRate retrieves the stored rate for a currency and date
func (s *RateService) GetRate(ctx context.Context, currency, date string) (*entity.ExchangeRate, error) {
	if cached := s.cache.Get(currency, date); cached != nil {
		s.logger.Debug("Rate served from cache", map[string]interface{}{
			"currency": currency,
			"date":     date,
		})
		return cached, nil
	}

	rate, err := s.repo.FindRate(ctx, currency, date)
	if err != nil {
		s.logger.Error("Failed to retrieve rate", map[string]interface{}{
			"currency": currency,
			"date":     date,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("failed to retrieve exchange rate: %w", err)
	}

	s.cache.Put(rate)

	return rate, nil
}
