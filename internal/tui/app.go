// internal/tui/app.go
//
// This is the main TUI for brokerdesk. It uses bubbletea, which follows The
// Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The dashboard is three panels side by side: the borrower pipeline, the
// selected borrower's detail, and the broker overview. All data lives in the
// injected stores; the App only holds presentation state (active tab,
// cursor, in-flight flags).

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crediflow/brokerdesk/internal/api"
	"github.com/crediflow/brokerdesk/internal/borrower"
	"github.com/crediflow/brokerdesk/internal/config"
	"github.com/crediflow/brokerdesk/internal/logbook"
	"github.com/crediflow/brokerdesk/internal/store"
)

// Service is the slice of the collaborator client the dashboard consumes.
// *api.Client satisfies it; tests inject fakes.
type Service interface {
	FetchPipeline(ctx context.Context) (api.Pipeline, error)
	FetchDetail(ctx context.Context, id string) (*borrower.Detail, error)
	FetchBroker(ctx context.Context, id string) (borrower.Broker, error)
	FetchOnboarding(ctx context.Context) ([]string, error)
	Dispatch(ctx context.Context, action api.Action, id string) (api.ActionResult, error)
}

// App is the main application model.
type App struct {
	cfg      *config.Config
	svc      Service
	pipeline *store.PipelineState
	broker   *store.BrokerState
	logbook  *logbook.Logbook

	// Presentation state.
	activeStage   int  // index into borrower.Stages
	cursor        int  // selection within the active stage's filtered list
	sanitised     bool // F-Sanitised mode: home-loan borrowers only
	flagsOpen     bool // AI Explainability accordion
	assistantOn   bool
	loadingDetail bool
	actionPending bool
	statusMsg     string

	spin   spinner.Model
	width  int
	height int
}

// NewApp wires the dashboard model. The stores are passed in explicitly;
// nothing in this package holds ambient state.
func NewApp(cfg *config.Config, svc Service, pipeline *store.PipelineState, broker *store.BrokerState, lb *logbook.Logbook) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &App{
		cfg:       cfg,
		svc:       svc,
		pipeline:  pipeline,
		broker:    broker,
		logbook:   lb,
		sanitised: cfg.Pipeline.Sanitised,
		flagsOpen: true,
		spin:      sp,
	}
}

// Init kicks off the initial loads: the pipeline and the broker panel fetch
// concurrently, the way the reviewed dashboard loads both on mount.
func (a *App) Init() tea.Cmd {
	a.broker.SetLoading(true)
	return tea.Batch(a.loadPipeline(), a.loadBroker(), a.spin.Tick)
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if !a.loadingDetail && !a.actionPending && !a.broker.Loading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case pipelineMsg:
		return a, a.handlePipelineLoaded(msg)

	case detailMsg:
		a.handleDetailLoaded(msg)
		return a, nil

	case brokerMsg:
		a.handleBrokerLoaded(msg)
		return a, nil

	case actionMsg:
		a.handleActionDone(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit

	case "r":
		a.statusMsg = "Refreshing pipeline..."
		return a, a.loadPipeline()

	case "1":
		a.switchStage(0)
	case "2":
		a.switchStage(1)
	case "3":
		a.switchStage(2)
	case "right", "tab":
		a.switchStage((a.activeStage + 1) % len(borrower.Stages))
	case "left", "shift+tab":
		a.switchStage((a.activeStage + len(borrower.Stages) - 1) % len(borrower.Stages))

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.visibleBorrowers())-1 {
			a.cursor++
		}

	case "enter":
		visible := a.visibleBorrowers()
		if a.cursor < len(visible) {
			return a, a.selectBorrower(visible[a.cursor])
		}

	case "f":
		a.sanitised = !a.sanitised
		a.clampCursor()
		if a.sanitised {
			a.statusMsg = "F-Sanitised mode enabled"
		} else {
			a.statusMsg = "Standard mode enabled"
		}
		a.logInfo("Filter mode · sanitised=%v", a.sanitised)

	case "x":
		a.flagsOpen = !a.flagsOpen

	case "t":
		a.assistantOn = !a.assistantOn
		a.logInfo("AI assistant · enabled=%v", a.assistantOn)

	case "d":
		return a, a.dispatch(api.ActionRequestDocuments)
	case "v":
		return a, a.dispatch(api.ActionSendToValuer)
	case "a":
		return a, a.dispatch(api.ActionApprove)
	case "e":
		return a, a.dispatch(api.ActionEscalate)
	}

	return a, nil
}

func (a *App) switchStage(idx int) {
	if idx < 0 || idx >= len(borrower.Stages) {
		return
	}
	a.activeStage = idx
	a.cursor = 0
}

// visibleBorrowers is the filtered list for the active tab. The tab count
// rendered in the header is len() of exactly this slice, so the two can
// never disagree.
func (a *App) visibleBorrowers() []borrower.View {
	return borrower.FilterByStage(a.pipeline.Borrowers(), borrower.Stages[a.activeStage], a.sanitised)
}

func (a *App) clampCursor() {
	if n := len(a.visibleBorrowers()); a.cursor >= n {
		if n == 0 {
			a.cursor = 0
		} else {
			a.cursor = n - 1
		}
	}
}

// selectBorrower installs the summary-level view as the selection right away
// and issues the detail fetch, tagged with a store token so a stale response
// can never overwrite a newer selection.
func (a *App) selectBorrower(v borrower.View) tea.Cmd {
	a.pipeline.SetSelected(v)
	a.loadingDetail = true
	token := a.pipeline.BeginDetailFetch()
	a.logInfo("Borrower selected · %s (%s)", v.Name, v.ID)
	return tea.Batch(a.loadDetail(v, token), a.spin.Tick)
}

// dispatch fires one of the four borrower actions. A single shared flag
// keeps all actions disabled while any one is pending.
func (a *App) dispatch(action api.Action) tea.Cmd {
	sel, ok := a.pipeline.Selected()
	if !ok || a.actionPending {
		return nil
	}
	a.actionPending = true
	a.statusMsg = "Working..."
	return tea.Batch(a.runAction(action, sel.ID), a.spin.Tick)
}

func (a *App) handlePipelineLoaded(msg pipelineMsg) tea.Cmd {
	if msg.notice != "" {
		a.statusMsg = msg.notice
		a.logWarn(msg.notice)
	} else {
		a.statusMsg = "Pipeline loaded"
	}
	a.pipeline.ReplaceAll(msg.views)
	a.clampCursor()
	a.logInfo("Pipeline replaced · %d borrower(s)", len(msg.views))

	// Auto-select the first borrower on a fresh load.
	if _, ok := a.pipeline.Selected(); !ok && len(msg.views) > 0 {
		return a.selectBorrower(msg.views[0])
	}
	return nil
}

func (a *App) handleDetailLoaded(msg detailMsg) {
	a.loadingDetail = false
	if msg.notice != "" {
		a.statusMsg = msg.notice
		a.logWarn(msg.notice)
	}
	if applied := a.pipeline.CompleteDetailFetch(msg.token, msg.view); !applied {
		a.logInfo("Detail response for %s discarded (stale token)", msg.view.ID)
		return
	}
	a.logInfo("Detail merged · %s", msg.view.ID)
}

func (a *App) handleBrokerLoaded(msg brokerMsg) {
	if msg.notice != "" {
		a.statusMsg = msg.notice
		a.logWarn(msg.notice)
	}
	a.broker.Replace(msg.broker, msg.steps)
	a.logInfo("Broker overview loaded · %s", msg.broker.Name)
}

func (a *App) handleActionDone(msg actionMsg) {
	a.actionPending = false
	switch {
	case msg.err != nil && msg.result.Message == "":
		a.statusMsg = "Action failed"
		a.logError("Action %s failed: %v", msg.action, msg.err)
	case msg.result.Success:
		a.statusMsg = "✓ " + msg.result.Message
		a.logInfo("Action %s · %s", msg.action, msg.result.Message)
	default:
		a.statusMsg = "✗ " + msg.result.Message
		a.logWarn("Action %s rejected: %s", msg.action, msg.result.Message)
	}
}

func (a *App) logInfo(format string, args ...any) {
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	a.logbook.Warn(format, args...)
}

func (a *App) logError(format string, args ...any) {
	a.logbook.Error(format, args...)
}

// View renders the dashboard: header, the three panels, the journal tail,
// and a footer status line.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 120
	}
	panelWidth := width/3 - 2
	if panelWidth < 30 {
		panelWidth = 30
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		MarginBottom(1).
		Render("⬡ BROKERDESK")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelBox(panelWidth, a.renderPipelinePanel(panelWidth-4)),
		panelBox(panelWidth, a.renderDetailPanel(panelWidth-4)),
		panelBox(panelWidth, a.renderBrokerPanel(panelWidth-4)),
	)

	sections := []string{header, body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(a.statusMsg)
	sections = append(sections, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func panelBox(width int, content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(maxInt(24, width)).
		Render(content)
}

func (a *App) renderLogPanel() string {
	lines, _ := a.logbook.Tail(6)
	if len(lines) == 0 {
		return ""
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("LOG · session journal")
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(joinLines(lines))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(head + "\n" + body)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
