package api

import (
	"context"
	"errors"
	"fmt"
)

// Action names one of the four borrower operations the detail panel can
// trigger.
type Action string

const (
	ActionRequestDocuments Action = "request-documents"
	ActionSendToValuer     Action = "send-valuer"
	ActionApprove          Action = "approve"
	ActionEscalate         Action = "escalate"
)

// ActionResult is the outcome announced to the user after a dispatch.
type ActionResult struct {
	Success bool
	Message string
}

// ErrUnknownAction reports a dispatch for an action this client does not
// know about.
var ErrUnknownAction = errors.New("unknown action")

// actionFallbacks carries the mock result substituted when an action
// endpoint is unreachable. The messages are part of the observable contract.
var actionFallbacks = map[Action]string{
	ActionRequestDocuments: "Documents requested (mock)",
	ActionSendToValuer:     "Valuer notified (mock)",
	ActionApprove:          "Loan approved (mock)",
	ActionEscalate:         "Escalated to Credit Committee (mock)",
}

// Dispatch fires one action for the given borrower id and returns the
// endpoint's result. Like the read operations, a transport failure is
// absorbed: the action's mock result is returned together with the error
// that forced it. The caller decides how to announce the result; this
// client performs no retries and assumes no partial side effect.
func (c *Client) Dispatch(ctx context.Context, action Action, id string) (ActionResult, error) {
	fallbackMsg, ok := actionFallbacks[action]
	if !ok {
		return ActionResult{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	var wire WireActionResult
	path := fmt.Sprintf("/api/borrowers/%s/%s", id, action)
	if err := c.postJSON(ctx, path, &wire); err != nil {
		return ActionResult{Success: true, Message: fallbackMsg},
			fmt.Errorf("action %s for %s failed, serving mock result: %w", action, id, err)
	}
	return ActionResult{Success: wire.Success, Message: wire.Message}, nil
}
