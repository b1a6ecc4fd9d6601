package entities

import (
	"errors"
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestProject_Validation(t *testing.T) {
	p, err := NewProject("Aurora", date("2025-03-01"), date("2025-04-15"), date("2025-05-20"), date("2025-07-01"))
	if err != nil {
		t.Fatalf("Expected valid project creation to succeed: %v", err)
	}
	if p.Date(SOP) != date("2025-07-01") {
		t.Errorf("Expected SOP 2025-07-01, got %s", p.Date(SOP))
	}

	testCases := []struct {
		name                string
		projectName         string
		df, mcs, pilot, sop time.Time
	}{
		{"empty name", "", date("2025-03-01"), date("2025-04-15"), date("2025-05-20"), date("2025-07-01")},
		{"zero date", "P", time.Time{}, date("2025-04-15"), date("2025-05-20"), date("2025-07-01")},
		{"mcs before design freeze", "P", date("2025-03-01"), date("2025-02-15"), date("2025-05-20"), date("2025-07-01")},
		{"pilot before mcs", "P", date("2025-03-01"), date("2025-04-15"), date("2025-04-01"), date("2025-07-01")},
		{"sop before pilot", "P", date("2025-03-01"), date("2025-04-15"), date("2025-05-20"), date("2025-05-01")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProject(tc.projectName, tc.df, tc.mcs, tc.pilot, tc.sop)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestProject_EqualDatesAllowed(t *testing.T) {
	// Milestones may coincide; only strict regressions are rejected.
	d := date("2025-03-01")
	if _, err := NewProject("SameDay", d, d, d, d); err != nil {
		t.Fatalf("Expected coincident milestones to be valid: %v", err)
	}
}

func TestProject_Reschedule(t *testing.T) {
	p, err := NewProject("Aurora", date("2025-03-01"), date("2025-04-15"), date("2025-05-20"), date("2025-07-01"))
	if err != nil {
		t.Fatalf("NewProject: %v", err)
	}

	if err := p.Reschedule(date("2025-03-01"), date("2025-05-01"), date("2025-06-01"), date("2025-08-01")); err != nil {
		t.Fatalf("Expected valid reschedule to succeed: %v", err)
	}
	if p.Date(SOP) != date("2025-08-01") {
		t.Errorf("Expected rescheduled SOP 2025-08-01, got %s", p.Date(SOP))
	}

	// A failed reschedule must not corrupt the schedule.
	if err := p.Reschedule(date("2025-03-01"), date("2025-02-01"), date("2025-06-01"), date("2025-08-01")); err == nil {
		t.Fatal("Expected error for out-of-order reschedule")
	}
	if p.Date(MCS) != date("2025-05-01") {
		t.Errorf("Expected MCS to stay 2025-05-01 after failed reschedule, got %s", p.Date(MCS))
	}
}

func TestProject_DaysToSOP(t *testing.T) {
	p, err := NewProject("Aurora", date("2025-03-01"), date("2025-04-15"), date("2025-05-20"), date("2025-07-01"))
	if err != nil {
		t.Fatalf("NewProject: %v", err)
	}

	if got := p.DaysToSOP(date("2025-06-01")); got != 30 {
		t.Errorf("Expected 30 days to SOP, got %d", got)
	}
	if got := p.DaysToSOP(date("2025-07-11")); got != -10 {
		t.Errorf("Expected -10 days past SOP, got %d", got)
	}
}
