package borrower

import (
	"reflect"
	"testing"
)

func sampleSummary() Summary {
	return Summary{ID: "1", Name: "Sarah Dunn", LoanType: "Home Loan", Amount: 300000, Status: "Renew"}
}

func sampleDetail() *Detail {
	return &Detail{
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
		AIFlagTags:    []string{TagIncomeInconsistent, TagHighDTI},
	}
}

func TestBuildViewMergesDetail(t *testing.T) {
	view := BuildView(sampleSummary(), sampleDetail())

	if !view.HasDetail {
		t.Fatalf("expected merged view to carry detail")
	}
	if view.Email != "sarah.dunn@example.com" {
		t.Errorf("email not copied, got %q", view.Email)
	}
	if view.DebtToIncomeRatio != 200 {
		t.Errorf("expected DTI 200, got %d", view.DebtToIncomeRatio)
	}
	if !view.HasIncomeInconsistency {
		t.Errorf("expected income inconsistency to be detected")
	}
	if view.Amount != 300000 {
		t.Errorf("expected detail loan amount to win, got %v", view.Amount)
	}
}

func TestBuildViewDetailAmountOverridesSummary(t *testing.T) {
	s := sampleSummary()
	d := sampleDetail()
	d.LoanAmount = 350000
	view := BuildView(s, d)
	if view.Amount != 350000 {
		t.Fatalf("detail amount should be authoritative, got %v", view.Amount)
	}

	d.LoanAmount = 0
	view = BuildView(s, d)
	if view.Amount != s.Amount {
		t.Fatalf("zero detail amount should fall back to summary, got %v", view.Amount)
	}
}

func TestBuildViewNilDetailIsFailSoft(t *testing.T) {
	s := sampleSummary()
	view := BuildView(s, nil)

	if view.HasDetail {
		t.Fatalf("summary-only view must not report detail")
	}
	if view.ID != s.ID || view.Name != s.Name || view.Amount != s.Amount || view.Status != s.Status {
		t.Fatalf("summary fields must survive unchanged: %+v", view)
	}
	if view.HasIncomeInconsistency || view.DebtToIncomeRatio != 0 || len(view.AIFlagTags) != 0 {
		t.Fatalf("derived fields must stay empty without detail: %+v", view)
	}
	if len(DeriveFlags(view)) != 0 {
		t.Fatalf("summary-only view must derive no flags")
	}
}

func TestDebtToIncomeRatio(t *testing.T) {
	tests := []struct {
		name         string
		income       float64
		existingLoan float64
		want         int
	}{
		{"exact double", 120000, 240000, 200},
		{"rounds half up", 75000, 15000, 20},
		{"rounds fraction", 150000, 50000, 33},
		{"zero income", 0, 240000, 0},
		{"zero loan", 150000, 0, 0},
		{"negative income ignored", -1, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sampleDetail()
			d.Income = tt.income
			d.ExistingLoan = tt.existingLoan
			view := BuildView(sampleSummary(), d)
			if view.DebtToIncomeRatio != tt.want {
				t.Fatalf("DTI = %d, want %d", view.DebtToIncomeRatio, tt.want)
			}
		})
	}
}

func TestHasIncomeInconsistencyRequiresExactTag(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want bool
	}{
		{"exact tag", []string{TagIncomeInconsistent}, true},
		{"among others", []string{"Something else", TagIncomeInconsistent}, true},
		{"no tags", nil, false},
		{"different casing", []string{"income inconsistent with bank statements"}, false},
		{"unrelated tags", []string{TagHighDTI, "Manual review requested"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sampleDetail()
			d.AIFlagTags = tt.tags
			view := BuildView(sampleSummary(), d)
			if view.HasIncomeInconsistency != tt.want {
				t.Fatalf("HasIncomeInconsistency = %v, want %v", view.HasIncomeInconsistency, tt.want)
			}
		})
	}
}

func TestFilterByStage(t *testing.T) {
	views := []View{
		{ID: "1", Name: "Sarah Dunn", LoanType: "Home Loan", Amount: 300000, Status: "Renew"},
		{ID: "2", Name: "Alan Matthews", LoanType: "Personal Loan", Amount: 20000, Status: "Review"},
		{ID: "3", Name: "Lisa Carter", LoanType: "Home Loan", Amount: 450000, Status: "New"},
		{ID: "4", Name: "DD Dunn", LoanType: "Home Loan", Amount: 30000, Status: "Approved"},
	}

	tests := []struct {
		name    string
		stage   string
		strict  bool
		wantIDs []string
	}{
		{"new strict keeps home loans only", StageNew, true, []string{"1", "3"}},
		{"review strict excludes personal loan", StageReview, true, []string{}},
		{"review standard includes personal loan", StageReview, false, []string{"2"}},
		{"approved strict", StageApproved, true, []string{"4"}},
		{"new standard", StageNew, false, []string{"1", "3"}},
		{"unknown stage yields nothing", "archived", false, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByStage(views, tt.stage, tt.strict)
			ids := make([]string, 0, len(got))
			for _, v := range got {
				ids = append(ids, v.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) && !(len(ids) == 0 && len(tt.wantIDs) == 0) {
				t.Fatalf("stage %s strict=%v: got %v, want %v", tt.stage, tt.strict, ids, tt.wantIDs)
			}
		})
	}
}

func TestFilterByStagePreservesOrder(t *testing.T) {
	views := []View{
		{ID: "b", LoanType: "Home Loan", Status: "New"},
		{ID: "a", LoanType: "Home Equity", Status: "Renew"},
		{ID: "c", LoanType: "HOME LOAN", Status: "new"},
	}
	got := FilterByStage(views, StageNew, true)
	if len(got) != 3 || got[0].ID != "b" || got[1].ID != "a" || got[2].ID != "c" {
		t.Fatalf("input order must be preserved, got %+v", got)
	}
}

func TestStageCountsMatchFilteredLists(t *testing.T) {
	views := []View{
		{ID: "1", LoanType: "Home Loan", Status: "Renew"},
		{ID: "2", LoanType: "Personal Loan", Status: "Review"},
		{ID: "3", LoanType: "Home Loan", Status: "New"},
		{ID: "4", LoanType: "Home Loan", Status: "Approved"},
	}
	for _, strict := range []bool{true, false} {
		counts := StageCounts(views, strict)
		for _, stage := range Stages {
			want := len(FilterByStage(views, stage, strict))
			if counts[stage] != want {
				t.Fatalf("strict=%v stage=%s: count %d, want %d", strict, stage, counts[stage], want)
			}
		}
	}
}
