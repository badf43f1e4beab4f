// cmd/brokerdesk/main.go
//
// This is the entry point for the brokerdesk dashboard.
//
// Flow:
// 1. Load (or create) the YAML config next to the binary
// 2. Open the session journal
// 3. Wire the stores and the collaborator client into the TUI
// 4. Run the bubbletea program until the user quits

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crediflow/brokerdesk/internal/api"
	"github.com/crediflow/brokerdesk/internal/config"
	"github.com/crediflow/brokerdesk/internal/logbook"
	"github.com/crediflow/brokerdesk/internal/store"
	"github.com/crediflow/brokerdesk/internal/tui"
)

func main() {
	configPath := flag.String("config", config.FileName, "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	lb, err := logbook.New(cfg.Log.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer lb.Close()
	lb.Info("Session started · api=%s broker=%s", cfg.API.BaseURL, cfg.Broker.ID)

	client := api.NewClient(cfg.API.BaseURL, cfg.Timeout())
	app := tui.NewApp(cfg, client, store.NewPipelineState(), store.NewBrokerState(), lb)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", err)
		os.Exit(1)
	}
}
