package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/zappabad/braster/internal/bot"
	"github.com/zappabad/braster/tui/panels"
)

type fakeController struct {
	state  bot.State
	starts int
	stops  int
	events chan bot.Event
}

func newFakeController() *fakeController {
	return &fakeController{events: make(chan bot.Event, 16)}
}

func (c *fakeController) Start() bool {
	c.starts++
	if c.state.Running {
		return false
	}
	c.state.Running = true
	return true
}

func (c *fakeController) Stop() bool {
	c.stops++
	if !c.state.Running {
		return false
	}
	c.state.Running = false
	return true
}

func (c *fakeController) Snapshot() bot.State      { return c.state }
func (c *fakeController) Events() <-chan bot.Event { return c.events }

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelStartStopScenario(t *testing.T) {
	ctrl := newFakeController()
	m := NewModel(ctrl, Options{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	pres := m.Presentation()
	if pres.Online || !pres.StartEnabled || pres.StopEnabled {
		t.Fatalf("unexpected initial presentation: %+v", pres)
	}
	if !strings.Contains(m.View(), "Offline") {
		t.Error("expected Offline in view")
	}

	m.Update(keyPress('s'))
	pres = m.Presentation()
	if !pres.Online || pres.StatusText != "Online" {
		t.Errorf("expected Online after start, got %+v", pres)
	}
	if pres.StartEnabled || !pres.StopEnabled {
		t.Errorf("expected controls flipped after start, got %+v", pres)
	}
	if !strings.Contains(m.View(), "Online") {
		t.Error("expected Online in view")
	}

	// start is disabled while running
	m.Update(keyPress('s'))
	if ctrl.starts != 1 {
		t.Errorf("expected 1 start call, got %d", ctrl.starts)
	}

	m.Update(keyPress('x'))
	pres = m.Presentation()
	if pres.Online || pres.StatusText != "Offline" {
		t.Errorf("expected Offline after stop, got %+v", pres)
	}
	if ctrl.stops != 1 {
		t.Errorf("expected 1 stop call, got %d", ctrl.stops)
	}
}

func TestModelButtonPress(t *testing.T) {
	ctrl := newFakeController()
	m := NewModel(ctrl, Options{})

	m.Update(panels.ButtonPressedMsg{Button: panels.ButtonStart})
	if !ctrl.state.Running {
		t.Fatal("expected start button to start the bot")
	}
	m.Update(panels.ButtonPressedMsg{Button: panels.ButtonStop})
	if ctrl.state.Running {
		t.Fatal("expected stop button to stop the bot")
	}
}

func TestModelLogsIsInert(t *testing.T) {
	ctrl := newFakeController()
	m := NewModel(ctrl, Options{})

	before := m.Presentation()
	m.Update(keyPress('l'))

	if m.StatusMessage() != LogsMessage {
		t.Errorf("expected logs message, got %q", m.StatusMessage())
	}
	if m.Presentation() != before {
		t.Error("expected logs action to leave the state alone")
	}
	if ctrl.starts != 0 || ctrl.stops != 0 {
		t.Error("expected logs action not to touch the controller")
	}
}

func TestModelBotEvent(t *testing.T) {
	ctrl := newFakeController()
	m := NewModel(ctrl, Options{Currency: "$"})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	ctrl.state = bot.State{Running: true, Trades: 1, PnL: decimal.RequireFromString("-2.5")}
	ev := bot.Event{Type: bot.EventTrade, Delta: decimal.RequireFromString("-2.5"), State: ctrl.state}

	_, cmd := m.Update(botEventMsg{event: ev})
	if cmd == nil {
		t.Fatal("expected the model to keep listening for events")
	}

	pres := m.Presentation()
	if pres.PnLText != "$-2.50" || !pres.PnLNegative {
		t.Errorf("unexpected pnl presentation: %+v", pres)
	}
	if pres.TradesText != "1" {
		t.Errorf("expected trades 1, got %q", pres.TradesText)
	}
	if m.tape.Count() != 1 {
		t.Errorf("expected 1 event on tape, got %d", m.tape.Count())
	}
	view := m.View()
	if !strings.Contains(view, "#1") {
		t.Error("expected trade in activity panel")
	}
	if !strings.Contains(view, "1 trades") {
		t.Error("expected run summary in activity panel")
	}
}

func TestModelListenStopsOnClosedChannel(t *testing.T) {
	ctrl := newFakeController()
	m := NewModel(ctrl, Options{})

	ctrl.events <- bot.Event{Type: bot.EventStarted}
	if _, ok := m.listenBotEvents()().(botEventMsg); !ok {
		t.Fatal("expected a bot event message")
	}

	close(ctrl.events)
	if msg := m.listenBotEvents()(); msg != nil {
		t.Errorf("expected nil after close, got %#v", msg)
	}
}

func TestModelWithoutPanels(t *testing.T) {
	ctrl := newFakeController()
	m := NewModel(ctrl, Options{})
	m.controls = nil
	m.stats = nil
	m.activity = nil

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(keyPress('s'))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(botEventMsg{event: bot.Event{Type: bot.EventTrade}})
	m.Update(tickMsg{})

	if !m.Presentation().Online {
		t.Error("expected the bot to run without any panels")
	}
	if m.View() == "" {
		t.Error("expected the status bar to still render")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newFakeController(), Options{})
	_, cmd := m.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
