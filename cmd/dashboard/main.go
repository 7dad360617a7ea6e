package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/zappabad/braster/internal/app"
	"github.com/zappabad/braster/tui"
)

func main() {
	cfg, err := app.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting dashboard: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	model := tui.NewModel(a.Bot, tui.Options{
		Currency:        cfg.UI.Currency,
		TapeSize:        cfg.UI.TapeSize,
		RefreshInterval: cfg.UI.RefreshInterval,
		Logger:          a.Logger.Named("ui"),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
