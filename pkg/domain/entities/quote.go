package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteLine represents a single priced part within a quote
type QuoteLine struct {
	PartID     string
	Complexity Complexity
	EAU        int
	UnitPrice  decimal.Decimal
}

// Quote represents a supplier's priced, timed commitment for fulfilling an
// ECN's parts. Quotes are immutable once created; regenerating the same
// (supplier, ECN) pair replaces the record.
type Quote struct {
	SupplierID   string
	ECNID        string
	QuoteDate    time.Time
	LeadTimeDays int
	// OnTimeRatio is the supplier's historical on-time-delivery ratio
	// snapshotted at quote time.
	OnTimeRatio float64
	Lines       []QuoteLine
	// FYSpend is the fiscal-year spend contribution: unit price times EAU
	// summed across the ECN's parts.
	FYSpend decimal.Decimal
}

// NewQuote creates a validated Quote and derives its FY spend
func NewQuote(
	supplierID, ecnID string,
	quoteDate time.Time,
	leadTimeDays int,
	onTimeRatio float64,
	lines []QuoteLine,
) (*Quote, error) {
	if supplierID == "" {
		return nil, fmt.Errorf("%w: quote supplier id cannot be empty", ErrValidation)
	}
	if ecnID == "" {
		return nil, fmt.Errorf("%w: quote ecn id cannot be empty", ErrValidation)
	}
	if leadTimeDays < 0 {
		return nil, fmt.Errorf("%w: lead time cannot be negative, got %d", ErrValidation, leadTimeDays)
	}
	if onTimeRatio < 0 || onTimeRatio > 1 {
		return nil, fmt.Errorf("%w: on-time ratio must be in [0,1], got %g", ErrValidation, onTimeRatio)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: quote has no lines", ErrValidation)
	}

	spend := decimal.Zero
	for _, line := range lines {
		if line.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price for %s cannot be negative, got %s",
				ErrValidation, line.PartID, line.UnitPrice)
		}
		if line.EAU < 0 {
			return nil, fmt.Errorf("%w: EAU for %s cannot be negative, got %d",
				ErrValidation, line.PartID, line.EAU)
		}
		spend = spend.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.EAU))))
	}

	return &Quote{
		SupplierID:   supplierID,
		ECNID:        ecnID,
		QuoteDate:    quoteDate,
		LeadTimeDays: leadTimeDays,
		OnTimeRatio:  onTimeRatio,
		Lines:        lines,
		FYSpend:      spend,
	}, nil
}
