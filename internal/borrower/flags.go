package borrower

import "fmt"

// Severity grades a derived risk flag.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Flag types surfaced in the AI Explainability section.
const (
	FlagIncomeInconsistency = "Income Inconsistency"
	FlagHighDTI             = "High Debt-to-Income Ratio"
)

// Flag is a presentation-level risk flag. Flags are derived fresh on every
// render and never stored.
type Flag struct {
	Type        string
	Severity    Severity
	Description string
}

// dtiThreshold is the percentage above which the ratio itself raises a flag.
const dtiThreshold = 40

// DeriveFlags evaluates the flag rules against a merged view. Rules run in
// order, each appends at most one flag, and duplicate types are suppressed.
//
// The numeric rules run before the raw tags are examined, so when both agree
// the threshold-style description from the numeric rule wins over the
// tag-derived wording. That ordering is deliberate and load-bearing for the
// rendered output.
func DeriveFlags(v View) []Flag {
	var flags []Flag

	if v.HasIncomeInconsistency {
		flags = append(flags, Flag{
			Type:        FlagIncomeInconsistency,
			Severity:    SeverityHigh,
			Description: "Reported income varies significantly across documents",
		})
	}

	if v.DebtToIncomeRatio > dtiThreshold {
		flags = append(flags, Flag{
			Type:        FlagHighDTI,
			Severity:    SeverityMedium,
			Description: fmt.Sprintf("DTI ratio of %d%% exceeds recommended threshold", v.DebtToIncomeRatio),
		})
	}

	for _, tag := range v.AIFlagTags {
		switch tag {
		case TagIncomeInconsistent:
			if !hasFlagType(flags, FlagIncomeInconsistency) {
				flags = append(flags, Flag{
					Type:        FlagIncomeInconsistency,
					Severity:    SeverityHigh,
					Description: "Income inconsistent with bank statements",
				})
			}
		case TagHighDTI:
			if !hasFlagType(flags, FlagHighDTI) {
				flags = append(flags, Flag{
					Type:        FlagHighDTI,
					Severity:    SeverityMedium,
					Description: "High debt-to-income ratio detected",
				})
			}
		}
		// Unrecognized tags stay on the record but derive nothing.
	}

	return flags
}

func hasFlagType(flags []Flag, flagType string) bool {
	for _, f := range flags {
		if f.Type == flagType {
			return true
		}
	}
	return false
}
