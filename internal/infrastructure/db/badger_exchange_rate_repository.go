package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/damon-houk/exchange-rate-converter/internal/domain/entity"
	"github.com/dgraph-io/badger/v3"
)

// BadgerExchangeRateRepository implements the exchange rate repository
// interface using BadgerDB
type BadgerExchangeRateRepository struct {
	db *badger.DB
}

// NewBadgerExchangeRateRepository creates a new BadgerDB exchange rate repository
func NewBadgerExchangeRateRepository(db *badger.DB) *BadgerExchangeRateRepository {
	return &BadgerExchangeRateRepository{db: db}
}

func rateKey(currency, date string) []byte {
	return []byte("rate:" + currency + ":" + date)
}

// StoreRate saves a converted exchange rate entry
func (r *BadgerExchangeRateRepository) StoreRate(ctx context.Context, rate *entity.ExchangeRate) error {
	data, err := json.Marshal(rate)
	if err != nil {
		return fmt.Errorf("failed to marshal exchange rate: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(rateKey(rate.Currency, rate.Date), data)
	})

	if err != nil {
		return fmt.Errorf("failed to store exchange rate: %w", err)
	}

	return nil
}

// FindRate retrieves the stored rate for a currency and date string
func (r *BadgerExchangeRateRepository) FindRate(ctx context.Context, currency, date string) (*entity.ExchangeRate, error) {
	var rate entity.ExchangeRate

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(rateKey(currency, date))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rate)
		})
	})

	if err == badger.ErrKeyNotFound {
		return nil, fmt.Errorf("exchange rate not found: %s on %s", currency, date)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to retrieve exchange rate: %w", err)
	}

	return &rate, nil
}
