package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/zappabad/braster/internal/bot"
	botview "github.com/zappabad/braster/internal/bot/view"
	"github.com/zappabad/braster/tui/panels"
	"github.com/zappabad/braster/tui/styles"
)

// LogsMessage is shown by the logs action, which has no detailed view yet.
const LogsMessage = "Logs functionality would open a detailed view of bot activity and trades."

// Controller is the part of the bot service the UI drives.
type Controller interface {
	Start() bool
	Stop() bool
	Snapshot() bot.State
	Events() <-chan bot.Event
}

// Options tune the model.
type Options struct {
	Currency        string
	TapeSize        int
	RefreshInterval time.Duration
	Logger          *zap.Logger
}

// Model is the main TUI application model.
type Model struct {
	ctrl   Controller
	logger *zap.Logger
	opts   Options
	tape   *botview.Tape
	pres   botview.Presentation
	keys   keyMap
	help   help.Model

	// Panels; a nil panel is simply not drawn.
	controls *panels.ControlPanel
	stats    *panels.StatsPanel
	activity *panels.ActivityPanel

	width  int
	height int

	statusMsg string
	ready     bool
}

// NewModel creates a new TUI model for ctrl.
func NewModel(ctrl Controller, opts Options) *Model {
	if opts.Currency == "" {
		opts.Currency = botview.DefaultCurrency
	}
	if opts.TapeSize <= 0 {
		opts.TapeSize = 100
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = 250 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	m := &Model{
		ctrl:     ctrl,
		logger:   opts.Logger,
		opts:     opts,
		tape:     botview.NewTape(opts.TapeSize),
		keys:     defaultKeyMap(),
		help:     help.New(),
		controls: panels.NewControlPanel(),
		stats:    panels.NewStatsPanel(),
		activity: panels.NewActivityPanel(opts.Currency),
	}
	m.apply(ctrl.Snapshot())
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.controls.Init(),
		m.listenBotEvents(),
		m.tickRefresh(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Start):
			m.startBot()
		case key.Matches(msg, m.keys.Stop):
			m.stopBot()
		case key.Matches(msg, m.keys.Logs):
			m.showLogs()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			var cmd tea.Cmd
			m.controls, cmd = m.controls.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

	case panels.ButtonPressedMsg:
		switch msg.Button {
		case panels.ButtonStart:
			m.startBot()
		case panels.ButtonStop:
			m.stopBot()
		case panels.ButtonLogs:
			m.showLogs()
		}

	case botEventMsg:
		m.tape.Apply(msg.event)
		m.activity.SetEvents(m.tape.Latest(m.opts.TapeSize))
		m.activity.SetRun(m.tape.Current())
		m.apply(m.ctrl.Snapshot())
		cmds = append(cmds, m.listenBotEvents())

	case tickMsg:
		m.apply(m.ctrl.Snapshot())
		cmds = append(cmds, m.tickRefresh())
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Layout:
	// ┌──────────────────────┬──────────────┐
	// │  Bot status/controls │ Performance  │
	// ├──────────────────────┴──────────────┤
	// │              Activity               │
	// └─────────────────────────────────────┘
	leftWidth := m.width * 3 / 5
	rightWidth := m.width - leftWidth

	topHeight := 8
	helpView := m.help.View(m.keys)
	bottomHeight := m.height - topHeight - lipgloss.Height(helpView) - 1
	if bottomHeight < 4 {
		bottomHeight = 4
	}

	m.controls.SetSize(leftWidth, topHeight)
	m.stats.SetSize(rightWidth, topHeight)
	m.activity.SetSize(m.width, bottomHeight)

	rows := []string{}
	top := make([]string, 0, 2)
	for _, v := range []string{m.controls.View(), m.stats.View()} {
		if v != "" {
			top = append(top, v)
		}
	}
	if len(top) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, top...))
	}
	if v := m.activity.View(); v != "" {
		rows = append(rows, v)
	}
	rows = append(rows, m.renderStatusBar(helpView))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderStatusBar(helpView string) string {
	status := helpView
	if m.statusMsg != "" {
		status += " │ " + m.statusMsg
	}
	return styles.StatusBarStyle.Width(m.width).Render(status)
}

// Presentation returns what is currently drawn.
func (m *Model) Presentation() botview.Presentation {
	return m.pres
}

// StatusMessage returns the status bar message.
func (m *Model) StatusMessage() string {
	return m.statusMsg
}

func (m *Model) startBot() {
	if !m.pres.StartEnabled {
		return
	}
	m.logger.Info("Starting trading bot...")
	if !m.ctrl.Start() {
		m.statusMsg = "Bot is already running"
	} else {
		m.statusMsg = ""
	}
	m.apply(m.ctrl.Snapshot())
}

func (m *Model) stopBot() {
	if !m.pres.StopEnabled {
		return
	}
	m.logger.Info("Stopping trading bot...")
	m.ctrl.Stop()
	m.statusMsg = ""
	m.apply(m.ctrl.Snapshot())
}

func (m *Model) showLogs() {
	m.logger.Info("Opening logs window...")
	m.statusMsg = LogsMessage
}

// apply pushes a state to every panel that exists.
func (m *Model) apply(st bot.State) {
	m.pres = botview.Render(st, m.opts.Currency)
	m.controls.SetPresentation(m.pres)
	m.stats.SetPresentation(m.pres)
}

// botEventMsg carries one event from the bot service.
type botEventMsg struct {
	event bot.Event
}

func (m *Model) listenBotEvents() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.ctrl.Events()
		if !ok {
			return nil
		}
		return botEventMsg{event: ev}
	}
}

// tickMsg is sent periodically to refresh data.
type tickMsg struct{}

func (m *Model) tickRefresh() tea.Cmd {
	return tea.Tick(m.opts.RefreshInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
