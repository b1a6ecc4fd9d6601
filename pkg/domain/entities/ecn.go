package entities

import (
	"fmt"
	"time"
)

// ECNStatus represents the lifecycle state of an engineering change
// notification. Transitions are monotonic: Open -> Quoted -> Implemented.
type ECNStatus int

const (
	Open ECNStatus = iota
	Quoted
	Implemented
)

// String method for ECNStatus enum
func (s ECNStatus) String() string {
	switch s {
	case Open:
		return "Open"
	case Quoted:
		return "Quoted"
	case Implemented:
		return "Implemented"
	default:
		return "Unknown"
	}
}

// ECN represents an engineering change notification: a bundle of part
// numbers bound to a project and released for supplier sourcing. The
// project link is a lookup key into the registry, not an owning reference.
type ECN struct {
	ID            string
	ProjectName   string
	ReleaseDate   time.Time
	Parts         []*Part
	Status        ECNStatus
	ImplementedBy string // supplier ID once Status is Implemented
}

// NewECN creates a validated ECN with a non-empty ordered part list
func NewECN(id, projectName string, releaseDate time.Time, parts []*Part) (*ECN, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: ecn id cannot be empty", ErrValidation)
	}
	if projectName == "" {
		return nil, fmt.Errorf("%w: ecn %s has no project", ErrValidation, id)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: ecn %s has no parts", ErrValidation, id)
	}
	return &ECN{
		ID:          id,
		ProjectName: projectName,
		ReleaseDate: releaseDate,
		Parts:       parts,
		Status:      Open,
	}, nil
}

// MarkQuoted advances an Open ECN to Quoted. Quoting an already-Quoted ECN
// is a no-op; an Implemented ECN never moves back.
func (e *ECN) MarkQuoted() error {
	switch e.Status {
	case Open:
		e.Status = Quoted
		return nil
	case Quoted:
		return nil
	default:
		return fmt.Errorf("%w: ecn %s", ErrAlreadyImplemented, e.ID)
	}
}

// Implement records the winning supplier and moves the ECN to its terminal
// state. Requires Quoted status; at most one implementation ever succeeds.
func (e *ECN) Implement(supplierID string) error {
	switch e.Status {
	case Open:
		return fmt.Errorf("%w: ecn %s", ErrNotQuoted, e.ID)
	case Implemented:
		return fmt.Errorf("%w: ecn %s won by %s", ErrAlreadyImplemented, e.ID, e.ImplementedBy)
	}
	if supplierID == "" {
		return fmt.Errorf("%w: supplier id cannot be empty", ErrValidation)
	}
	e.Status = Implemented
	e.ImplementedBy = supplierID
	return nil
}

// TotalEAU returns the aggregate annual consumption across the ECN's parts.
func (e *ECN) TotalEAU() int {
	total := 0
	for _, p := range e.Parts {
		total += p.EAU
	}
	return total
}

// String method for ECN
func (e *ECN) String() string {
	return e.ID
}
