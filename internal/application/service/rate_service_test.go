package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/damon-houk/exchange-rate-converter/internal/domain/entity"
	"github.com/damon-houk/exchange-rate-converter/internal/infrastructure/cache"
	"github.com/damon-houk/exchange-rate-converter/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockExchangeRateRepository is a mock implementation of the exchange rate repository
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) StoreRate(ctx context.Context, rate *entity.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindRate(ctx context.Context, currency, date string) (*entity.ExchangeRate, error) {
	args := m.Called(ctx, currency, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ExchangeRate), args.Error(1)
}

func quietLogger() logger.Logger {
	return logger.NewJSONLogger(&bytes.Buffer{}, logger.FatalLevel)
}

func TestImportDocument(t *testing.T) {
	ctx := context.Background()

	doc := &entity.RateDocument{
		ExchangeRates: []entity.ExchangeRate{
			{Date: "2023-01-15", Currency: "USD", Rate: entity.NumericRate(1.0732)},
			{Date: "2023-01-16", Currency: "EUR", Rate: entity.RawRate("bad")},
		},
	}

	t.Run("Stores every entry", func(t *testing.T) {
		repo := new(MockExchangeRateRepository)
		svc := NewRateService(repo, nil, quietLogger())

		repo.On("StoreRate", ctx, &doc.ExchangeRates[0]).Return(nil).Once()
		repo.On("StoreRate", ctx, &doc.ExchangeRates[1]).Return(nil).Once()

		count, err := svc.ImportDocument(ctx, doc)

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		repo.AssertExpectations(t)
	})

	t.Run("Stops on store failure", func(t *testing.T) {
		repo := new(MockExchangeRateRepository)
		svc := NewRateService(repo, nil, quietLogger())

		repo.On("StoreRate", ctx, &doc.ExchangeRates[0]).Return(nil).Once()
		repo.On("StoreRate", ctx, &doc.ExchangeRates[1]).Return(errors.New("disk full")).Once()

		count, err := svc.ImportDocument(ctx, doc)

		assert.Error(t, err)
		assert.Equal(t, 1, count)
		assert.Contains(t, err.Error(), "failed to store rate for EUR on 2023-01-16")
		repo.AssertExpectations(t)
	})

	t.Run("Empty document", func(t *testing.T) {
		repo := new(MockExchangeRateRepository)
		svc := NewRateService(repo, nil, quietLogger())

		count, err := svc.ImportDocument(ctx, &entity.RateDocument{})

		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestGetRate(t *testing.T) {
	ctx := context.Background()

	rate := &entity.ExchangeRate{
		Date:     "2023-01-15",
		Currency: "USD",
		Rate:     entity.NumericRate(1.0732),
	}

	t.Run("Retrieves from repository and caches", func(t *testing.T) {
		repo := new(MockExchangeRateRepository)
		svc := NewRateService(repo, cache.NewRateCache(), quietLogger())

		repo.On("FindRate", ctx, "USD", "2023-01-15").Return(rate, nil).Once()

		// First lookup hits the repository
		found, err := svc.GetRate(ctx, "USD", "2023-01-15")
		assert.NoError(t, err)
		assert.Equal(t, rate, found)

		// Second lookup is served from the cache
		cached, err := svc.GetRate(ctx, "USD", "2023-01-15")
		assert.NoError(t, err)
		assert.Equal(t, rate, cached)

		repo.AssertExpectations(t)
	})

	t.Run("Rate not found", func(t *testing.T) {
		repo := new(MockExchangeRateRepository)
		svc := NewRateService(repo, cache.NewRateCache(), quietLogger())

		repo.On("FindRate", ctx, "GBP", "2023-01-15").
			Return(nil, errors.New("exchange rate not found: GBP on 2023-01-15")).Once()

		found, err := svc.GetRate(ctx, "GBP", "2023-01-15")

		assert.Error(t, err)
		assert.Nil(t, found)
		assert.Contains(t, err.Error(), "not found")
		repo.AssertExpectations(t)
	})
}
