package service

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/damon-houk/exchange-rate-converter/internal/domain/entity"
	"github.com/damon-houk/exchange-rate-converter/internal/infrastructure/file"
	"github.com/damon-houk/exchange-rate-converter/internal/infrastructure/logger"
)

// sourceDateLayout accepts both padded (01/15/2023) and non-padded
// (3/4/2023) month/day/year dates.
const (
	sourceDateLayout = "1/2/2006"
	isoDateLayout    = "2006-01-02"
)

// ConversionService converts a CSV rate sheet into the JSON document format.
// Diagnostics for the operator (warnings, the final success or error line)
// go to out as plain text.
type ConversionService struct {
	out    io.Writer
	logger logger.Logger
}

// NewConversionService creates a new conversion service. Diagnostics are
// written to out, which defaults to os.Stdout.
func NewConversionService(out io.Writer, log logger.Logger) *ConversionService {
	if out == nil {
		out = os.Stdout
	}
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ConversionService{
		out:    out,
		logger: log,
	}
}

// Convert reads the rate sheet at inputPath and writes the converted JSON
// document to outputPath, reporting whether the conversion completed.
// Per-row anomalies never fail the run; I/O failures do, and are reported
// as a single diagnostic line rather than a crash.
func (s *ConversionService) Convert(inputPath, outputPath string) bool {
	if err := s.convert(inputPath, outputPath); err != nil {
		s.logger.Error("Conversion failed", map[string]interface{}{
			"input":  inputPath,
			"output": outputPath,
			"error":  err.Error(),
		})
		fmt.Fprintf(s.out, "Error during conversion: %v\n", err)
		return false
	}

	fmt.Fprintf(s.out, "Conversion successful. Output written to %s\n", outputPath)
	return true
}

func (s *ConversionService) convert(inputPath, outputPath string) error {
	rows, err := file.ReadRows(inputPath)
	if err != nil {
		return err
	}

	entries := make([]entity.ExchangeRate, 0, len(rows))
	for i, row := range rows {
		// The first row is the header; rows with fewer than three fields
		// are dropped without a diagnostic.
		if i == 0 || len(row) < 3 {
			continue
		}

		dateStr, currency, rateStr := row[0], row[1], row[2]

		rate := entity.ParseRate(rateStr)
		if !rate.Numeric {
			s.logger.Warn("Rate value is not numeric", map[string]interface{}{
				"value":    rateStr,
				"currency": currency,
				"date":     dateStr,
			})
			fmt.Fprintf(s.out, "Warning: could not convert rate '%s' to a number for %s on %s\n",
				rateStr, currency, dateStr)
		}

		entries = append(entries, entity.ExchangeRate{
			Date:     normalizeDate(dateStr),
			Currency: currency,
			Rate:     rate,
		})
	}

	if err := file.WriteDocument(outputPath, &entity.RateDocument{ExchangeRates: entries}); err != nil {
		return err
	}

	s.logger.Info("Conversion completed", map[string]interface{}{
		"input":   inputPath,
		"output":  outputPath,
		"entries": len(entries),
	})

	return nil
}

// normalizeDate reformats a MM/DD/YYYY date as YYYY-MM-DD. Values that do
// not parse as a calendar date pass through unchanged.
func normalizeDate(s string) string {
	t, err := time.Parse(sourceDateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(isoDateLayout)
}
