package entities

import "fmt"

// ProfileLevel represents a generation-time tendency for one supplier
// attribute. Levels bias the sampling distributions used by the quote
// generator; they never fix an outcome.
type ProfileLevel int

const (
	LowProfile ProfileLevel = iota
	RegularProfile
	HighProfile
)

// String method for ProfileLevel enum
func (l ProfileLevel) String() string {
	switch l {
	case LowProfile:
		return "low"
	case RegularProfile:
		return "regular"
	case HighProfile:
		return "high"
	default:
		return "Unknown"
	}
}

// ParseProfileLevel converts a profile name to its level.
func ParseProfileLevel(s string) (ProfileLevel, error) {
	switch s {
	case "low":
		return LowProfile, nil
	case "regular":
		return RegularProfile, nil
	case "high":
		return HighProfile, nil
	default:
		return 0, fmt.Errorf("%w: unknown profile level %q", ErrValidation, s)
	}
}

// Profile groups a supplier's generation-time tendencies
type Profile struct {
	// Price biases unit prices: low quotes cheaper, high quotes dearer.
	Price ProfileLevel
	// Delivery biases lead times: high fulfils faster, low slower.
	Delivery ProfileLevel
	// Punctuality biases the historical on-time-delivery probability.
	Punctuality ProfileLevel
	// Quotation biases the turnaround between RFQ and quote submission.
	Quotation ProfileLevel
}

// DefaultProfile returns an unbiased profile using the neutral distribution
// for every attribute.
func DefaultProfile() Profile {
	return Profile{
		Price:       RegularProfile,
		Delivery:    RegularProfile,
		Punctuality: RegularProfile,
		Quotation:   RegularProfile,
	}
}

// SupplierIDLength is the fixed width of supplier identifiers.
const SupplierIDLength = 8

// Supplier represents a sourcing candidate with its generation profile,
// delivery history tally, and the quotes it holds per ECN.
type Supplier struct {
	ID          string
	Name        string
	Profile     Profile
	NewSupplier bool

	// Delivery history backing the on-time ratio tally.
	deliveries int
	onTime     int

	quotes map[string]*Quote // keyed by ECN ID, one quote per ECN at most
}

// NewSupplier creates a validated Supplier. IDs are fixed-width strings as
// issued by the procurement master data system.
func NewSupplier(id, name string, profile Profile, newSupplier bool) (*Supplier, error) {
	if len(id) != SupplierIDLength {
		return nil, fmt.Errorf("%w: supplier id must be %d characters, got %q",
			ErrValidation, SupplierIDLength, id)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: supplier name cannot be empty", ErrValidation)
	}
	return &Supplier{
		ID:          id,
		Name:        name,
		Profile:     profile,
		NewSupplier: newSupplier,
		quotes:      make(map[string]*Quote),
	}, nil
}

// RecordDelivery adds one completed delivery to the history tally.
func (s *Supplier) RecordDelivery(onTime bool) {
	s.deliveries++
	if onTime {
		s.onTime++
	}
	s.NewSupplier = false
}

// Deliveries returns the number of completed deliveries in the tally.
func (s *Supplier) Deliveries() int {
	return s.deliveries
}

// OnTimeRatio returns the historical on-time-delivery ratio. Suppliers with
// no history report zero; callers should check NewSupplier first.
func (s *Supplier) OnTimeRatio() float64 {
	if s.deliveries == 0 {
		return 0
	}
	return float64(s.onTime) / float64(s.deliveries)
}

// SetQuote stores a quote for its ECN, replacing any earlier quote for the
// same ECN.
func (s *Supplier) SetQuote(q *Quote) error {
	if q == nil {
		return fmt.Errorf("%w: quote cannot be nil", ErrValidation)
	}
	if q.SupplierID != s.ID {
		return fmt.Errorf("%w: quote belongs to supplier %s, not %s",
			ErrValidation, q.SupplierID, s.ID)
	}
	s.quotes[q.ECNID] = q
	return nil
}

// QuoteFor returns the supplier's quote for an ECN, or false when none exists.
func (s *Supplier) QuoteFor(ecnID string) (*Quote, bool) {
	q, ok := s.quotes[ecnID]
	return q, ok
}

// QuoteCount returns the number of ECNs this supplier has quoted.
func (s *Supplier) QuoteCount() int {
	return len(s.quotes)
}

// String method for Supplier
func (s *Supplier) String() string {
	return s.Name
}
