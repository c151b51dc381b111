package file

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/damon-houk/exchange-rate-converter/internal/domain/entity"
)

// WriteDocument serializes doc as 2-space-indented JSON to path, overwriting
// any existing file.
func WriteDocument(path string, doc *entity.RateDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

// ReadDocument loads a previously converted document from path.
func ReadDocument(path string) (*entity.RateDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc entity.RateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return &doc, nil
}
