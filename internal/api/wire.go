// internal/api/wire.go
//
// Wire shapes for the collaborator endpoints. The collaborator speaks
// snake_case JSON; everything is converted to the internal borrower types
// right here at the boundary so field coalescing never leaks into the UI.
// cmd/brokerdesk-api uses the same types on the serving side, which keeps
// both ends of the contract in one file.

package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/crediflow/brokerdesk/internal/borrower"
)

// WireSummary is one borrower row in the pipeline payload.
type WireSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	LoanType string  `json:"loan_type"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
}

// WirePipeline groups summaries into the three stage buckets.
type WirePipeline struct {
	New      []WireSummary `json:"new"`
	Review   []WireSummary `json:"review"`
	Approved []WireSummary `json:"approved"`
}

// WireDetail is the extended borrower record payload.
type WireDetail struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	LoanAmount    float64  `json:"loan_amount"`
	Status        string   `json:"status"`
	Employment    string   `json:"employment"`
	Income        float64  `json:"income"`
	ExistingLoan  float64  `json:"existing_loan"`
	CreditScore   int      `json:"credit_score"`
	SourceOfFunds string   `json:"source_of_funds"`
	RiskSignal    string   `json:"risk_signal"`
	AIFlags       []string `json:"ai_flags"`
}

// WireActionResult is the response of every action endpoint.
type WireActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WireBroker is the broker info payload.
type WireBroker struct {
	Name         string       `json:"name"`
	Deals        int          `json:"deals"`
	ApprovalRate ApprovalRate `json:"approval_rate"`
	Pending      float64      `json:"pending"`
}

// WireOnboarding is the onboarding workflow payload.
type WireOnboarding struct {
	Steps []string `json:"steps"`
}

// ApprovalRate absorbs the collaborator's loose typing: approval_rate
// arrives either as a string ("75%") or a bare number (75). It normalizes
// to the percent-suffixed string the overview panel renders.
type ApprovalRate string

func (a *ApprovalRate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = ApprovalRate(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = ApprovalRate(strconv.FormatFloat(n, 'f', -1, 64) + "%")
		return nil
	}
	return fmt.Errorf("approval_rate is neither string nor number: %s", string(data))
}

func (a ApprovalRate) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

// Summary converts the wire row to the internal type.
func (w WireSummary) Summary() borrower.Summary {
	return borrower.Summary{
		ID:       w.ID,
		Name:     w.Name,
		LoanType: w.LoanType,
		Amount:   w.Amount,
		Status:   w.Status,
	}
}

// WireSummaryFrom builds the wire row for the serving side.
func WireSummaryFrom(s borrower.Summary) WireSummary {
	return WireSummary{
		ID:       s.ID,
		Name:     s.Name,
		LoanType: s.LoanType,
		Amount:   s.Amount,
		Status:   s.Status,
	}
}

// Detail converts the wire record to the internal type.
func (w WireDetail) Detail() *borrower.Detail {
	return &borrower.Detail{
		ID:            w.ID,
		Name:          w.Name,
		Email:         w.Email,
		Phone:         w.Phone,
		LoanAmount:    w.LoanAmount,
		Status:        w.Status,
		Employment:    w.Employment,
		Income:        w.Income,
		ExistingLoan:  w.ExistingLoan,
		CreditScore:   w.CreditScore,
		SourceOfFunds: w.SourceOfFunds,
		RiskSignal:    strings.TrimSpace(w.RiskSignal),
		AIFlagTags:    w.AIFlags,
	}
}

// WireDetailFrom builds the wire record for the serving side.
func WireDetailFrom(d *borrower.Detail) WireDetail {
	return WireDetail{
		ID:            d.ID,
		Name:          d.Name,
		Email:         d.Email,
		Phone:         d.Phone,
		LoanAmount:    d.LoanAmount,
		Status:        d.Status,
		Employment:    d.Employment,
		Income:        d.Income,
		ExistingLoan:  d.ExistingLoan,
		CreditScore:   d.CreditScore,
		SourceOfFunds: d.SourceOfFunds,
		RiskSignal:    d.RiskSignal,
		AIFlags:       d.AIFlagTags,
	}
}

// Broker converts the wire payload to the internal type.
func (w WireBroker) Broker() borrower.Broker {
	return borrower.Broker{
		Name:         w.Name,
		Deals:        w.Deals,
		ApprovalRate: string(w.ApprovalRate),
		Pending:      w.Pending,
	}
}

// WireBrokerFrom builds the wire payload for the serving side.
func WireBrokerFrom(b borrower.Broker) WireBroker {
	return WireBroker{
		Name:         b.Name,
		Deals:        b.Deals,
		ApprovalRate: ApprovalRate(b.ApprovalRate),
		Pending:      b.Pending,
	}
}
