// internal/borrower/borrower.go
//
// This package is the logic core of brokerdesk: the borrower data model,
// the summary/detail merge that produces the display-ready View, and the
// stage filter behind the pipeline tabs. Everything here is a pure function
// of its inputs - no network, no store access - so it can be tested in
// isolation.

package borrower

import (
	"math"
	"strings"
)

// Stage keys for the three pipeline tabs.
const (
	StageNew      = "new"
	StageReview   = "review"
	StageApproved = "approved"
)

// Stages lists the pipeline buckets in display order.
var Stages = []string{StageNew, StageReview, StageApproved}

// stageStatuses maps a stage key to the status labels collected under it.
// Status comparison is case-insensitive everywhere.
var stageStatuses = map[string][]string{
	StageNew:      {"New", "Renew"},
	StageReview:   {"Review"},
	StageApproved: {"Approved"},
}

// TagIncomeInconsistent is the raw AI-flag tag that marks income that does
// not line up with bank statements. The exact string is part of the wire
// contract with the AI pipeline.
const TagIncomeInconsistent = "Income Inconsistent with Bank statements"

// TagHighDTI is the raw AI-flag tag for a detected high debt-to-income ratio.
const TagHighDTI = "High Debt-to-Income Ratio detected"

// Summary is one borrower row as returned by the pipeline endpoint.
type Summary struct {
	ID       string
	Name     string
	LoanType string
	Amount   float64
	Status   string
}

// Detail is the extended record returned by the borrower detail endpoint.
type Detail struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	LoanAmount    float64
	Status        string
	Employment    string
	Income        float64
	ExistingLoan  float64
	CreditScore   int
	SourceOfFunds string
	RiskSignal    string
	AIFlagTags    []string
}

// View is the merged, display-ready borrower record. It is built once per
// fetch and replaced wholesale; individual fields are never mutated in place.
type View struct {
	ID       string
	Name     string
	LoanType string
	Amount   float64
	Status   string

	// Extended fields, populated only when a detail record has been merged.
	Email         string
	Phone         string
	Employment    string
	Income        float64
	ExistingLoan  float64
	CreditScore   int
	SourceOfFunds string
	RiskSignal    string
	AIFlagTags    []string

	// HasDetail reports whether the extended fields above carry data.
	HasDetail bool

	// Derived fields, computed at merge time.
	HasIncomeInconsistency bool
	DebtToIncomeRatio      int
}

// Broker holds the broker stats shown in the overview panel. ApprovalRate is
// kept as transmitted ("75%"); the collaborator sends it loosely typed.
type Broker struct {
	Name         string
	Deals        int
	ApprovalRate string
	Pending      float64
}

// BuildView merges a pipeline summary with its detail record into a View.
//
// A nil detail is the fail-soft path: the result equals the summary with all
// extended fields unset and both derived fields empty, so a failed detail
// fetch never blocks showing the borrower at summary level. The detail's
// loan amount is authoritative over the summary amount once loaded.
func BuildView(s Summary, d *Detail) View {
	v := View{
		ID:       s.ID,
		Name:     s.Name,
		LoanType: s.LoanType,
		Amount:   s.Amount,
		Status:   s.Status,
	}
	if d == nil {
		return v
	}

	if d.LoanAmount != 0 {
		v.Amount = d.LoanAmount
	}
	v.Email = d.Email
	v.Phone = d.Phone
	v.Employment = d.Employment
	v.Income = d.Income
	v.ExistingLoan = d.ExistingLoan
	v.CreditScore = d.CreditScore
	v.SourceOfFunds = d.SourceOfFunds
	v.RiskSignal = d.RiskSignal
	v.AIFlagTags = d.AIFlagTags
	v.HasDetail = true

	for _, tag := range d.AIFlagTags {
		if tag == TagIncomeInconsistent {
			v.HasIncomeInconsistency = true
			break
		}
	}
	if d.Income > 0 {
		v.DebtToIncomeRatio = int(math.Round(d.ExistingLoan / d.Income * 100))
	}
	return v
}

// FilterByStage returns the borrowers belonging to the given stage tab,
// preserving input order. With strict enabled (the default "F-Sanitised"
// mode) the result is further restricted to home-loan borrowers.
func FilterByStage(views []View, stage string, strict bool) []View {
	statuses := stageStatuses[stage]
	filtered := make([]View, 0, len(views))
	for _, v := range views {
		if !statusMatches(v.Status, statuses) {
			continue
		}
		if strict && !strings.Contains(strings.ToLower(v.LoanType), "home") {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered
}

// StageCounts returns the tab count for every stage. Counts are defined as
// the length of the filtered list for that stage, so they always agree with
// what the pipeline panel renders.
func StageCounts(views []View, strict bool) map[string]int {
	counts := make(map[string]int, len(Stages))
	for _, stage := range Stages {
		counts[stage] = len(FilterByStage(views, stage, strict))
	}
	return counts
}

func statusMatches(status string, candidates []string) bool {
	for _, c := range candidates {
		if strings.EqualFold(status, c) {
			return true
		}
	}
	return false
}
