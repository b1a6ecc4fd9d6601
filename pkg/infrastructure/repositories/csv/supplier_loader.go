package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/srmorales/npi-sourcing/pkg/domain/entities"
)

// SupplierSpec is one roster row: the attributes needed to register a
// supplier with the environment.
type SupplierSpec struct {
	Name        string
	Profile     entities.Profile
	NewSupplier bool
}

// Loader handles loading supplier rosters from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadSuppliers loads a supplier roster from a CSV file. Profile columns
// take the levels low, regular, or high; the new column takes true/false.
func (l *Loader) LoadSuppliers(filename string) ([]SupplierSpec, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open supplier roster %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read supplier roster CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("supplier roster CSV must have header and at least one data row")
	}

	expectedHeader := []string{"name", "price", "delivery", "punctuality", "quotation", "new"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("supplier roster CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var specs []SupplierSpec
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("supplier roster CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		spec, err := parseSupplierSpec(record)
		if err != nil {
			return nil, fmt.Errorf("supplier roster CSV row %d: %w", i+2, err)
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

func parseSupplierSpec(record []string) (SupplierSpec, error) {
	name := strings.TrimSpace(record[0])
	if name == "" {
		return SupplierSpec{}, fmt.Errorf("supplier name cannot be empty")
	}

	levels := make([]entities.ProfileLevel, 4)
	for i, column := range []string{"price", "delivery", "punctuality", "quotation"} {
		level, err := entities.ParseProfileLevel(strings.TrimSpace(record[i+1]))
		if err != nil {
			return SupplierSpec{}, fmt.Errorf("invalid %s level: %w", column, err)
		}
		levels[i] = level
	}

	var newSupplier bool
	switch strings.ToLower(strings.TrimSpace(record[5])) {
	case "true", "yes", "1":
		newSupplier = true
	case "false", "no", "0":
		newSupplier = false
	default:
		return SupplierSpec{}, fmt.Errorf("invalid new flag %q: use true or false", record[5])
	}

	return SupplierSpec{
		Name: name,
		Profile: entities.Profile{
			Price:       levels[0],
			Delivery:    levels[1],
			Punctuality: levels[2],
			Quotation:   levels[3],
		},
		NewSupplier: newSupplier,
	}, nil
}

// validateHeader checks if the CSV header matches the expected format
func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range header {
		if strings.TrimSpace(strings.ToLower(col)) != expected[i] {
			return false
		}
	}
	return true
}
