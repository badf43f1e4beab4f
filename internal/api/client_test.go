package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 2*time.Second), srv
}

// deadClient points at a server that has already been shut down, so every
// request fails at the transport level.
func deadClient() *Client {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return NewClient(srv.URL, 500*time.Millisecond)
}

func TestFetchPipelineMapsWireFields(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/borrowers/pipeline", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"new": [{"id":"9","name":"Jess Moore","loan_type":"Home Loan","amount":510000,"status":"New"}],
			"review": [],
			"approved": []
		}`))
	}))
	defer srv.Close()

	pipeline, err := client.FetchPipeline(context.Background())
	require.NoError(t, err)
	require.Len(t, pipeline.New, 1)
	got := pipeline.New[0]
	assert.Equal(t, "9", got.ID)
	assert.Equal(t, "Jess Moore", got.Name)
	assert.Equal(t, "Home Loan", got.LoanType)
	assert.Equal(t, float64(510000), got.Amount)
	assert.Equal(t, "New", got.Status)
}

func TestFetchPipelineFallsBackOnTransportFailure(t *testing.T) {
	client := deadClient()

	pipeline, err := client.FetchPipeline(context.Background())
	require.Error(t, err, "fallback substitution must be reported")
	all := pipeline.All()
	require.Len(t, all, 4, "fixture pipeline has four records")
	assert.Equal(t, "Sarah Dunn", all[0].Name)
	assert.Equal(t, "Alan Matthews", all[2].Name)
	assert.Equal(t, "DD Dunn", all[3].Name)
}

func TestFetchPipelineFallsBackOnServerError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	pipeline, err := client.FetchPipeline(context.Background())
	require.Error(t, err)
	assert.Len(t, pipeline.All(), 4)
}

func TestFetchDetailMapsSnakeCase(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/borrowers/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id":"7","name":"Pat Reed","email":"pat@example.com","phone":"(355)000-1111",
			"loan_amount":280000,"status":"Review","employment":"Contractor","income":95000,
			"existing_loan":47500,"credit_score":701,"source_of_funds":"Savings",
			"risk_signal":null,
			"ai_flags":["High Debt-to-Income Ratio detected"]
		}`))
	}))
	defer srv.Close()

	detail, err := client.FetchDetail(context.Background(), "7")
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, float64(280000), detail.LoanAmount)
	assert.Equal(t, 701, detail.CreditScore)
	assert.Equal(t, float64(47500), detail.ExistingLoan)
	assert.Equal(t, "Savings", detail.SourceOfFunds)
	assert.Empty(t, detail.RiskSignal, "null risk_signal maps to empty string")
	assert.Equal(t, []string{"High Debt-to-Income Ratio detected"}, detail.AIFlagTags)
}

func TestFetchDetailFallbackTable(t *testing.T) {
	client := deadClient()

	detail, err := client.FetchDetail(context.Background(), "1")
	require.Error(t, err)
	require.NotNil(t, detail, "id 1 exists in the fixture table")
	assert.Equal(t, "Sarah Dunn", detail.Name)
	assert.Equal(t, float64(120000), detail.Income)

	missing, err := client.FetchDetail(context.Background(), "does-not-exist")
	require.Error(t, err)
	assert.Nil(t, missing, "unknown ids are absent, not an error")
}

func TestFetchBrokerApprovalRateLooseTyping(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string rate", `{"name":"Robert Turner","deals":16,"approval_rate":"75%","pending":7660}`, "75%"},
		{"numeric rate", `{"name":"Robert Turner","deals":16,"approval_rate":75,"pending":7660}`, "75%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			broker, err := client.FetchBroker(context.Background(), "1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, broker.ApprovalRate)
			assert.Equal(t, 16, broker.Deals)
		})
	}
}

func TestFetchBrokerFallback(t *testing.T) {
	broker, err := deadClient().FetchBroker(context.Background(), "1")
	require.Error(t, err)
	assert.Equal(t, "Robert Turner", broker.Name)
	assert.Equal(t, "75%", broker.ApprovalRate)
	assert.Equal(t, float64(7660), broker.Pending)
}

func TestFetchOnboardingFallback(t *testing.T) {
	steps, err := deadClient().FetchOnboarding(context.Background())
	require.Error(t, err)
	require.Len(t, steps, 7)
	assert.Equal(t, "Deal Intake", steps[0])
	assert.Equal(t, "Funder Syndication", steps[6])
}

func TestDispatchPassesThroughEndpointResult(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/borrowers/3/approve", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"Credit policy blocks approval"}`))
	}))
	defer srv.Close()

	result, err := client.Dispatch(context.Background(), ActionApprove, "3")
	require.NoError(t, err)
	assert.False(t, result.Success, "logical failures must not be masked")
	assert.Equal(t, "Credit policy blocks approval", result.Message)
}

func TestDispatchFallbackMessages(t *testing.T) {
	client := deadClient()

	tests := []struct {
		action Action
		want   string
	}{
		{ActionRequestDocuments, "Documents requested (mock)"},
		{ActionSendToValuer, "Valuer notified (mock)"},
		{ActionApprove, "Loan approved (mock)"},
		{ActionEscalate, "Escalated to Credit Committee (mock)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			result, err := client.Dispatch(context.Background(), tt.action, "1")
			require.Error(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, tt.want, result.Message)
		})
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	client, srv := newTestClient(http.NotFoundHandler())
	defer srv.Close()

	_, err := client.Dispatch(context.Background(), Action("delete-borrower"), "1")
	require.ErrorIs(t, err, ErrUnknownAction)
}
