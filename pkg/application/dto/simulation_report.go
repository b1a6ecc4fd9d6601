package dto

import "time"

// SupplierSummary is the boundary view of one registered supplier.
type SupplierSummary struct {
	SupplierID  string  `json:"supplier_id"`
	Name        string  `json:"name"`
	NewSupplier bool    `json:"new_supplier"`
	OnTimeRatio float64 `json:"on_time_ratio"`
	QuoteCount  int     `json:"quote_count"`
}

// ECNSummary is the boundary view of one engineering change notice.
type ECNSummary struct {
	ECNID         string    `json:"ecn_id"`
	ProjectName   string    `json:"project_name"`
	ReleaseDate   time.Time `json:"release_date"`
	PartCount     int       `json:"part_count"`
	TotalEAU      int       `json:"total_eau"`
	Status        string    `json:"status"`
	ImplementedBy string    `json:"implemented_by,omitempty"`
}

// QuoteSummary is the boundary view of one supplier quote for one ECN.
type QuoteSummary struct {
	SupplierID   string    `json:"supplier_id"`
	ECNID        string    `json:"ecn_id"`
	QuoteDate    time.Time `json:"quote_date"`
	LeadTimeDays int       `json:"lead_time_days"`
	OnTimeRatio  float64   `json:"on_time_ratio"`
	FYSpend      string    `json:"fy_spend"`
}

// SimulationReport aggregates the outcome of one simulation session for
// rendering.
type SimulationReport struct {
	Seed        int64  `json:"seed"`
	ProjectName string `json:"project_name"`

	DesignFreeze time.Time `json:"design_freeze"`
	MCS          time.Time `json:"mcs"`
	Pilot        time.Time `json:"pilot"`
	SOP          time.Time `json:"sop"`

	Suppliers       []SupplierSummary      `json:"suppliers"`
	ECNs            []ECNSummary           `json:"ecns"`
	Quotes          []QuoteSummary         `json:"quotes"`
	Evaluations     []EvaluationResult     `json:"evaluations"`
	Classifications []ClassificationResult `json:"classifications"`
}
