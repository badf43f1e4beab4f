// internal/server/server.go
//
// Reference implementation of the collaborator API the dashboard consumes.
// It serves the deterministic fixture dataset over the same wire contract the
// client decodes, so the TUI behaves identically whether it talks to this
// server or falls back to the built-in data.

package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/crediflow/brokerdesk/internal/api"
	"github.com/crediflow/brokerdesk/internal/borrower"
	"github.com/crediflow/brokerdesk/internal/fixture"
)

// Handler serves the borrower pipeline endpoints.
type Handler struct {
	logger *logrus.Logger
}

// NewHandler creates a Handler logging through the given logger.
func NewHandler(logger *logrus.Logger) *Handler {
	return &Handler{logger: logger}
}

// NewRouter builds the full route table.
func NewRouter(logger *logrus.Logger) *mux.Router {
	h := NewHandler(logger)
	r := mux.NewRouter()
	r.Use(requestIDMiddleware(logger))

	r.HandleFunc("/api/borrowers/pipeline", h.Pipeline).Methods(http.MethodGet)
	r.HandleFunc("/api/borrowers/{id}", h.BorrowerDetail).Methods(http.MethodGet)
	r.HandleFunc("/api/borrowers/{id}/request-documents", h.action("Documents requested.")).Methods(http.MethodPost)
	r.HandleFunc("/api/borrowers/{id}/send-valuer", h.action("Valuer notified.")).Methods(http.MethodPost)
	r.HandleFunc("/api/borrowers/{id}/approve", h.action("Loan approved.")).Methods(http.MethodPost)
	r.HandleFunc("/api/borrowers/{id}/escalate", h.action("Escalated to Credit Committee.")).Methods(http.MethodPost)
	r.HandleFunc("/api/broker/{id}", h.Broker).Methods(http.MethodGet)
	r.HandleFunc("/api/onboarding/workflow", h.Onboarding).Methods(http.MethodGet)
	return r
}

// requestIDMiddleware tags every request with a generated id and logs the
// method and path under it.
func requestIDMiddleware(logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set("X-Request-Id", id)
			logger.WithFields(logrus.Fields{
				"request_id": id,
				"method":     r.Method,
				"path":       r.URL.Path,
			}).Info("request")
			next.ServeHTTP(w, r)
		})
	}
}

// Pipeline returns all borrowers grouped by stage.
func (h *Handler) Pipeline(w http.ResponseWriter, r *http.Request) {
	n, rev, app := fixture.Pipeline()
	writeJSON(w, http.StatusOK, api.WirePipeline{
		New:      wireSummaries(n),
		Review:   wireSummaries(rev),
		Approved: wireSummaries(app),
	})
}

// BorrowerDetail returns the extended record for one borrower.
func (h *Handler) BorrowerDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	d := fixture.Detail(id)
	if d == nil {
		h.logger.WithField("borrower_id", id).Warn("borrower not found")
		writeError(w, http.StatusNotFound, "borrower not found")
		return
	}
	writeJSON(w, http.StatusOK, api.WireDetailFrom(d))
}

// action builds the handler for one borrower action endpoint. Actions on an
// unknown borrower fail; otherwise the confirmation message is returned.
func (h *Handler) action(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if fixture.Detail(id) == nil {
			writeJSON(w, http.StatusOK, api.WireActionResult{
				Success: false,
				Message: "Borrower " + id + " not found",
			})
			return
		}
		h.logger.WithFields(logrus.Fields{
			"borrower_id": id,
			"path":        r.URL.Path,
		}).Info("action dispatched")
		writeJSON(w, http.StatusOK, api.WireActionResult{Success: true, Message: message})
	}
}

// Broker returns the broker overview stats.
func (h *Handler) Broker(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.WireBrokerFrom(fixture.Broker()))
}

// Onboarding returns the onboarding workflow step names.
func (h *Handler) Onboarding(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.WireOnboarding{Steps: fixture.OnboardingSteps()})
}

func wireSummaries(rows []borrower.Summary) []api.WireSummary {
	out := make([]api.WireSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, api.WireSummaryFrom(row))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
