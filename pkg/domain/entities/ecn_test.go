package entities

import (
	"errors"
	"testing"
	"time"
)

func testParts(t *testing.T) []*Part {
	t.Helper()
	p1, err := NewPart("PN-1001", LowComplexity, 250)
	if err != nil {
		t.Fatalf("NewPart: %v", err)
	}
	p2, err := NewPart("PN-1002", HighComplexity, 120)
	if err != nil {
		t.Fatalf("NewPart: %v", err)
	}
	return []*Part{p1, p2}
}

func TestECN_Validation(t *testing.T) {
	parts := testParts(t)
	release := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	ecn, err := NewECN("ECN-0001", "Aurora", release, parts)
	if err != nil {
		t.Fatalf("Expected valid ECN creation to succeed: %v", err)
	}
	if ecn.Status != Open {
		t.Errorf("Expected new ECN to be Open, got %s", ecn.Status)
	}
	if ecn.TotalEAU() != 370 {
		t.Errorf("Expected total EAU 370, got %d", ecn.TotalEAU())
	}

	testCases := []struct {
		name    string
		id      string
		project string
		parts   []*Part
	}{
		{"empty id", "", "Aurora", parts},
		{"empty project", "ECN-0001", "", parts},
		{"no parts", "ECN-0001", "Aurora", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewECN(tc.id, tc.project, release, tc.parts)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestECN_StatusTransitions(t *testing.T) {
	release := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	ecn, err := NewECN("ECN-0001", "Aurora", release, testParts(t))
	if err != nil {
		t.Fatalf("NewECN: %v", err)
	}

	// Implementing an Open ECN must fail.
	if err := ecn.Implement("SUP00001"); !errors.Is(err, ErrNotQuoted) {
		t.Fatalf("Expected ErrNotQuoted for open ECN, got %v", err)
	}
	if ecn.Status != Open {
		t.Errorf("Expected failed implementation to leave status Open, got %s", ecn.Status)
	}

	if err := ecn.MarkQuoted(); err != nil {
		t.Fatalf("MarkQuoted: %v", err)
	}
	if ecn.Status != Quoted {
		t.Errorf("Expected Quoted, got %s", ecn.Status)
	}

	// MarkQuoted is idempotent while Quoted.
	if err := ecn.MarkQuoted(); err != nil {
		t.Fatalf("Expected repeated MarkQuoted to succeed: %v", err)
	}

	if err := ecn.Implement("SUP00001"); err != nil {
		t.Fatalf("Implement: %v", err)
	}
	if ecn.Status != Implemented || ecn.ImplementedBy != "SUP00001" {
		t.Errorf("Expected Implemented by SUP00001, got %s by %s", ecn.Status, ecn.ImplementedBy)
	}

	// Terminal state: neither transition may run again.
	if err := ecn.Implement("SUP00002"); !errors.Is(err, ErrAlreadyImplemented) {
		t.Fatalf("Expected ErrAlreadyImplemented, got %v", err)
	}
	if ecn.ImplementedBy != "SUP00001" {
		t.Errorf("Expected winner to stay SUP00001, got %s", ecn.ImplementedBy)
	}
	if err := ecn.MarkQuoted(); !errors.Is(err, ErrAlreadyImplemented) {
		t.Fatalf("Expected ErrAlreadyImplemented from MarkQuoted, got %v", err)
	}
}
