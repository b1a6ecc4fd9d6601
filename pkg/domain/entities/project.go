package entities

import (
	"fmt"
	"time"
)

// Milestone identifies one of the four NPI pipeline checkpoints, ordered
// from design freeze to start of production.
type Milestone int

const (
	DesignFreeze Milestone = iota
	MCS
	Pilot
	SOP
)

// String method for Milestone enum
func (m Milestone) String() string {
	switch m {
	case DesignFreeze:
		return "Design freeze"
	case MCS:
		return "MCS"
	case Pilot:
		return "Pilot"
	case SOP:
		return "SOP"
	default:
		return "Unknown"
	}
}

// Project represents an NPI project with its milestone schedule
type Project struct {
	Name       string
	milestones [4]time.Time
}

// NewProject creates a validated Project. Milestone dates must be
// monotonically non-decreasing in pipeline order.
func NewProject(name string, designFreeze, mcs, pilot, sop time.Time) (*Project, error) {
	p := &Project{Name: name}
	if name == "" {
		return nil, fmt.Errorf("%w: project name cannot be empty", ErrValidation)
	}
	if err := p.setDates(designFreeze, mcs, pilot, sop); err != nil {
		return nil, err
	}
	return p, nil
}

// Date returns the scheduled date for a milestone.
func (p *Project) Date(m Milestone) time.Time {
	return p.milestones[m]
}

// Reschedule replaces the full milestone schedule. It is the only mutation
// a Project supports and applies the same ordering validation as NewProject.
func (p *Project) Reschedule(designFreeze, mcs, pilot, sop time.Time) error {
	return p.setDates(designFreeze, mcs, pilot, sop)
}

// DaysToSOP returns the days remaining from t to start of production.
// Negative when t is past SOP.
func (p *Project) DaysToSOP(t time.Time) int {
	return int(p.milestones[SOP].Sub(t).Hours() / 24)
}

func (p *Project) setDates(designFreeze, mcs, pilot, sop time.Time) error {
	dates := [4]time.Time{designFreeze, mcs, pilot, sop}
	for i := range dates {
		if dates[i].IsZero() {
			return fmt.Errorf("%w: %s date cannot be zero", ErrValidation, Milestone(i))
		}
	}
	for i := 1; i < len(dates); i++ {
		if dates[i].Before(dates[i-1]) {
			return fmt.Errorf("%w: %s date %s precedes %s date %s",
				ErrValidation, Milestone(i), dates[i].Format("2006-01-02"),
				Milestone(i-1), dates[i-1].Format("2006-01-02"))
		}
	}
	p.milestones = dates
	return nil
}

// String method for Project
func (p *Project) String() string {
	return p.Name
}
