// internal/fixture/fixture.go
//
// Package fixture is the single source of the deterministic dataset used in
// two places: the api client substitutes it when a collaborator endpoint is
// unreachable, and cmd/brokerdesk-api serves it as the reference
// implementation of those endpoints. Keeping one copy guarantees the
// dashboard renders the same records whichever path the data takes.

package fixture

import "github.com/crediflow/brokerdesk/internal/borrower"

// Pipeline returns the fallback pipeline buckets.
func Pipeline() (newStage, review, approved []borrower.Summary) {
	newStage = []borrower.Summary{
		{ID: "1", Name: "Sarah Dunn", LoanType: "Home Loan", Amount: 300000, Status: "Renew"},
		{ID: "3", Name: "Lisa Carter", LoanType: "Home Loan", Amount: 450000, Status: "New"},
	}
	review = []borrower.Summary{
		{ID: "2", Name: "Alan Matthews", LoanType: "Personal Loan", Amount: 20000, Status: "Review"},
	}
	approved = []borrower.Summary{
		{ID: "4", Name: "DD Dunn", LoanType: "Home Loan", Amount: 30000, Status: "Approved"},
	}
	return newStage, review, approved
}

// Detail returns the fallback detail record for id, or nil when the id is
// not in the table. Callers get a fresh copy on every call.
func Detail(id string) *borrower.Detail {
	switch id {
	case "1":
		return &borrower.Detail{
			ID:            "1",
			Name:          "Sarah Dunn",
			Email:         "sarah.dunn@example.com",
			Phone:         "(355)123-4557",
			LoanAmount:    300000,
			Status:        "Renew",
			Employment:    "At Tech Company",
			Income:        120000,
			ExistingLoan:  240000,
			CreditScore:   720,
			SourceOfFunds: "Declared",
			RiskSignal:    "Missing Source of Funds declaration",
			AIFlagTags: []string{
				borrower.TagIncomeInconsistent,
				borrower.TagHighDTI,
			},
		}
	case "2":
		return &borrower.Detail{
			ID:            "2",
			Name:          "Alan Matthews",
			Email:         "alan.matthews@example.com",
			Phone:         "(355)987-6543",
			LoanAmount:    20000,
			Status:        "Review",
			Employment:    "Self Employed",
			Income:        75000,
			ExistingLoan:  15000,
			CreditScore:   680,
			SourceOfFunds: "Business Income",
		}
	case "3":
		return &borrower.Detail{
			ID:            "3",
			Name:          "Lisa Carter",
			Email:         "lisa.carter@example.com",
			Phone:         "(355)456-7890",
			LoanAmount:    450000,
			Status:        "New",
			Employment:    "Manager at Corp",
			Income:        150000,
			ExistingLoan:  0,
			CreditScore:   750,
			SourceOfFunds: "Salary",
		}
	case "4":
		return &borrower.Detail{
			ID:            "4",
			Name:          "DD Dunn",
			Email:         "DD.dunn@example.com",
			Phone:         "(389)082-4557",
			LoanAmount:    350000,
			Status:        "Approved",
			Employment:    "At Tech Company",
			Income:        120900,
			ExistingLoan:  240900,
			CreditScore:   720,
			SourceOfFunds: "Declared",
			RiskSignal:    "Missing Source of Funds declaration",
			AIFlagTags: []string{
				borrower.TagIncomeInconsistent,
				borrower.TagHighDTI,
			},
		}
	}
	return nil
}

// Broker returns the fallback broker record.
func Broker() borrower.Broker {
	return borrower.Broker{
		Name:         "Robert Turner",
		Deals:        16,
		ApprovalRate: "75%",
		Pending:      7660,
	}
}

// OnboardingSteps returns the fallback onboarding workflow. Step progress is
// positional: the UI treats early steps as done and later ones as pending.
func OnboardingSteps() []string {
	return []string{
		"Deal Intake",
		"IDV & Credit Check",
		"Document Upload",
		"AI Validation",
		"Credit Committee",
		"Approval & Docs",
		"Funder Syndication",
	}
}
