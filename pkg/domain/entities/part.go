package entities

import "fmt"

// Complexity represents the manufacturing complexity tier of a part
type Complexity int

const (
	LowComplexity Complexity = iota
	MediumComplexity
	HighComplexity
)

// String method for Complexity enum
func (c Complexity) String() string {
	switch c {
	case LowComplexity:
		return "low"
	case MediumComplexity:
		return "medium"
	case HighComplexity:
		return "high"
	default:
		return "Unknown"
	}
}

// Part represents a part number requiring supplier sourcing action
type Part struct {
	ID         string
	Complexity Complexity
	// EAU is the estimated annual use. An integer because the unit of
	// measure is each for all but a handful of materials.
	EAU int
}

// NewPart creates a validated Part
func NewPart(id string, complexity Complexity, eau int) (*Part, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: part id cannot be empty", ErrValidation)
	}
	if complexity < LowComplexity || complexity > HighComplexity {
		return nil, fmt.Errorf("%w: unknown complexity tier %d", ErrValidation, complexity)
	}
	if eau < 0 {
		return nil, fmt.Errorf("%w: EAU cannot be negative, got %d", ErrValidation, eau)
	}
	return &Part{ID: id, Complexity: complexity, EAU: eau}, nil
}

// String method for Part
func (p *Part) String() string {
	return p.ID
}
