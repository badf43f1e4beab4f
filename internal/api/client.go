// internal/api/client.go
//
// HTTP client for the collaborator endpoints backing the dashboard. Every
// read operation is fail-soft: when the endpoint is unreachable, answers a
// non-2xx status, or the payload does not decode, the client substitutes the
// deterministic fixture dataset instead of failing the dashboard.
//
// Error convention: read methods return a usable result together with a
// non-nil error whenever the fixture was substituted. The error exists so
// the UI can surface a non-blocking "using mock data" notice; it must never
// be treated as fatal.

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/crediflow/brokerdesk/internal/borrower"
	"github.com/crediflow/brokerdesk/internal/fixture"
)

// Client talks to the collaborator API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client for the given base URL. The timeout applies to
// every request on top of the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Pipeline holds the stage buckets returned by the pipeline endpoint.
type Pipeline struct {
	New      []borrower.Summary
	Review   []borrower.Summary
	Approved []borrower.Summary
}

// All flattens the buckets in new, review, approved order, which is the
// order the pipeline panel lists borrowers in.
func (p Pipeline) All() []borrower.Summary {
	all := make([]borrower.Summary, 0, len(p.New)+len(p.Review)+len(p.Approved))
	all = append(all, p.New...)
	all = append(all, p.Review...)
	all = append(all, p.Approved...)
	return all
}

// FetchPipeline loads the borrower pipeline. On failure it returns the
// fixture pipeline plus the error that forced the substitution.
func (c *Client) FetchPipeline(ctx context.Context) (Pipeline, error) {
	var wire WirePipeline
	if err := c.getJSON(ctx, "/api/borrowers/pipeline", &wire); err != nil {
		n, r, a := fixture.Pipeline()
		return Pipeline{New: n, Review: r, Approved: a},
			fmt.Errorf("pipeline fetch failed, serving fixture data: %w", err)
	}
	return Pipeline{
		New:      summaries(wire.New),
		Review:   summaries(wire.Review),
		Approved: summaries(wire.Approved),
	}, nil
}

// FetchDetail loads the extended record for one borrower. On failure it
// falls back to the fixture table; an id absent from the table yields a nil
// detail, which callers must treat as "detail absent", not as fatal.
func (c *Client) FetchDetail(ctx context.Context, id string) (*borrower.Detail, error) {
	var wire WireDetail
	if err := c.getJSON(ctx, "/api/borrowers/"+id, &wire); err != nil {
		return fixture.Detail(id),
			fmt.Errorf("detail fetch for %s failed, consulting fixture table: %w", id, err)
	}
	return wire.Detail(), nil
}

// FetchBroker loads the broker stats for the overview panel.
func (c *Client) FetchBroker(ctx context.Context, id string) (borrower.Broker, error) {
	var wire WireBroker
	if err := c.getJSON(ctx, "/api/broker/"+id, &wire); err != nil {
		return fixture.Broker(),
			fmt.Errorf("broker fetch failed, serving fixture data: %w", err)
	}
	return wire.Broker(), nil
}

// FetchOnboarding loads the onboarding workflow step list.
func (c *Client) FetchOnboarding(ctx context.Context) ([]string, error) {
	var wire WireOnboarding
	if err := c.getJSON(ctx, "/api/onboarding/workflow", &wire); err != nil {
		return fixture.OnboardingSteps(),
			fmt.Errorf("onboarding fetch failed, serving fixture data: %w", err)
	}
	return wire.Steps, nil
}

func summaries(rows []WireSummary) []borrower.Summary {
	out := make([]borrower.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Summary())
	}
	return out
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decoding response: %w", path, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("POST %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("POST %s: decoding response: %w", path, err)
	}
	return nil
}
