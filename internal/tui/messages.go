package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crediflow/brokerdesk/internal/api"
	"github.com/crediflow/brokerdesk/internal/borrower"
)

// pipelineMsg carries a freshly loaded borrower list. notice is non-empty
// when the fixture dataset was substituted for a failed fetch.
type pipelineMsg struct {
	views  []borrower.View
	notice string
}

// detailMsg carries the merged view for one detail fetch, tagged with the
// store token issued when the fetch began.
type detailMsg struct {
	token  uint64
	view   borrower.View
	notice string
}

// brokerMsg carries the broker stats and onboarding steps together.
type brokerMsg struct {
	broker borrower.Broker
	steps  []string
	notice string
}

// actionMsg reports the outcome of a dispatched borrower action.
type actionMsg struct {
	action api.Action
	result api.ActionResult
	err    error
}

const fallbackNotice = "API failed, using mock data"

// loadPipeline fetches the pipeline and flattens the stage buckets into
// summary-level views in bucket order.
func (a *App) loadPipeline() tea.Cmd {
	svc, timeout := a.svc, a.cfg.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		pipeline, err := svc.FetchPipeline(ctx)
		msg := pipelineMsg{}
		if err != nil {
			msg.notice = fallbackNotice
		}
		for _, s := range pipeline.All() {
			msg.views = append(msg.views, borrower.BuildView(s, nil))
		}
		return msg
	}
}

// loadDetail fetches the extended record for the selected borrower and
// merges it with the summary it was selected from. A nil detail (record
// absent everywhere) degrades to the summary-level view.
func (a *App) loadDetail(v borrower.View, token uint64) tea.Cmd {
	svc, timeout := a.svc, a.cfg.Timeout()
	summary := borrower.Summary{
		ID:       v.ID,
		Name:     v.Name,
		LoanType: v.LoanType,
		Amount:   v.Amount,
		Status:   v.Status,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		detail, err := svc.FetchDetail(ctx, summary.ID)
		msg := detailMsg{token: token, view: borrower.BuildView(summary, detail)}
		if err != nil && detail == nil {
			msg.notice = fallbackNotice
		}
		return msg
	}
}

// loadBroker fetches the broker stats and the onboarding workflow for the
// overview panel in one command.
func (a *App) loadBroker() tea.Cmd {
	svc, timeout := a.svc, a.cfg.Timeout()
	brokerID := a.cfg.Broker.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		msg := brokerMsg{}
		b, err := svc.FetchBroker(ctx, brokerID)
		if err != nil {
			msg.notice = fallbackNotice
		}
		msg.broker = b

		steps, err := svc.FetchOnboarding(ctx)
		if err != nil {
			msg.notice = fallbackNotice
		}
		msg.steps = steps
		return msg
	}
}

// runAction dispatches one borrower action against the collaborator.
func (a *App) runAction(action api.Action, id string) tea.Cmd {
	svc, timeout := a.svc, a.cfg.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		result, err := svc.Dispatch(ctx, action, id)
		return actionMsg{action: action, result: result, err: err}
	}
}
