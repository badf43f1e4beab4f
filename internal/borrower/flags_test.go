package borrower

import (
	"strings"
	"testing"
)

func TestDeriveFlagsBothSignals(t *testing.T) {
	view := BuildView(sampleSummary(), sampleDetail())
	flags := DeriveFlags(view)

	if len(flags) != 2 {
		t.Fatalf("expected exactly two flags, got %d: %+v", len(flags), flags)
	}
	if flags[0].Type != FlagIncomeInconsistency || flags[0].Severity != SeverityHigh {
		t.Errorf("first flag should be high-severity income inconsistency, got %+v", flags[0])
	}
	if flags[1].Type != FlagHighDTI || flags[1].Severity != SeverityMedium {
		t.Errorf("second flag should be medium-severity DTI, got %+v", flags[1])
	}
	if !strings.Contains(flags[1].Description, "200%") {
		t.Errorf("DTI description should carry the computed ratio, got %q", flags[1].Description)
	}
}

func TestDeriveFlagsNumericRuleWinsOverTag(t *testing.T) {
	// When numeric detection and the raw tag agree, the threshold wording
	// from the numeric rule must be the one rendered.
	view := BuildView(sampleSummary(), sampleDetail())
	flags := DeriveFlags(view)

	for _, f := range flags {
		switch f.Type {
		case FlagIncomeInconsistency:
			if f.Description != "Reported income varies significantly across documents" {
				t.Errorf("numeric-rule description must win, got %q", f.Description)
			}
		case FlagHighDTI:
			if !strings.HasPrefix(f.Description, "DTI ratio of") {
				t.Errorf("threshold description must win, got %q", f.Description)
			}
		}
	}
}

func TestDeriveFlagsTagOnly(t *testing.T) {
	// Tags can raise flags even when the numeric rules stay quiet.
	d := sampleDetail()
	d.Income = 120000
	d.ExistingLoan = 12000 // DTI 10, under threshold
	d.AIFlagTags = []string{TagHighDTI}
	view := BuildView(sampleSummary(), d)

	flags := DeriveFlags(view)
	if len(flags) != 1 {
		t.Fatalf("expected one tag-derived flag, got %+v", flags)
	}
	if flags[0].Type != FlagHighDTI || flags[0].Description != "High debt-to-income ratio detected" {
		t.Fatalf("expected tag wording for tag-only detection, got %+v", flags[0])
	}
}

func TestDeriveFlagsNeverDuplicatesTypes(t *testing.T) {
	d := sampleDetail()
	d.AIFlagTags = []string{
		TagIncomeInconsistent,
		TagIncomeInconsistent,
		TagHighDTI,
		TagHighDTI,
	}
	view := BuildView(sampleSummary(), d)

	flags := DeriveFlags(view)
	seen := map[string]bool{}
	for _, f := range flags {
		if seen[f.Type] {
			t.Fatalf("duplicate flag type %q in %+v", f.Type, flags)
		}
		seen[f.Type] = true
	}
}

func TestDeriveFlagsIgnoresUnknownTags(t *testing.T) {
	d := sampleDetail()
	d.Income = 100000
	d.ExistingLoan = 10000
	d.AIFlagTags = []string{"Address mismatch", "Thin credit file"}
	view := BuildView(sampleSummary(), d)

	if flags := DeriveFlags(view); len(flags) != 0 {
		t.Fatalf("unknown tags must derive nothing, got %+v", flags)
	}
	// The raw tags stay on the record even though they render no flags.
	if len(view.AIFlagTags) != 2 {
		t.Fatalf("raw tags must be preserved on the view, got %v", view.AIFlagTags)
	}
}

func TestDeriveFlagsCleanRecord(t *testing.T) {
	d := &Detail{ID: "3", Income: 150000, ExistingLoan: 0, AIFlagTags: nil}
	view := BuildView(Summary{ID: "3", Status: "New", LoanType: "Home Loan"}, d)
	if flags := DeriveFlags(view); len(flags) != 0 {
		t.Fatalf("clean record must derive no flags, got %+v", flags)
	}
}
