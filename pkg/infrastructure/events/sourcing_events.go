package events

import "time"

const (
	SupplierCreatedEvent = "supplier.created"

	ECNGeneratedEvent   = "ecn.generated"
	ECNQuotedEvent      = "ecn.quoted"
	ECNImplementedEvent = "ecn.implemented"

	QuoteIssuedEvent = "quote.issued"

	EvaluationCompletedEvent = "evaluation.completed"
)

type SupplierCreated struct {
	SupplierID  string `json:"supplier_id"`
	Name        string `json:"name"`
	NewSupplier bool   `json:"new_supplier"`
}

type ECNGenerated struct {
	ECNID       string    `json:"ecn_id"`
	ProjectName string    `json:"project_name"`
	ReleaseDate time.Time `json:"release_date"`
	PartCount   int       `json:"part_count"`
}

type ECNQuoted struct {
	ECNID      string `json:"ecn_id"`
	QuoteCount int    `json:"quote_count"`
}

type ECNImplemented struct {
	ECNID      string `json:"ecn_id"`
	SupplierID string `json:"supplier_id"`
}

type QuoteIssued struct {
	ECNID        string    `json:"ecn_id"`
	SupplierID   string    `json:"supplier_id"`
	QuoteDate    time.Time `json:"quote_date"`
	LeadTimeDays int       `json:"lead_time_days"`
	FYSpend      string    `json:"fy_spend"`
}

type EvaluationCompleted struct {
	ECNID      string  `json:"ecn_id"`
	SupplierID string  `json:"supplier_id"`
	Score      float64 `json:"score"`
	Action     string  `json:"action"`
}
