package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/braster/internal/bot"
	botview "github.com/zappabad/braster/internal/bot/view"
	"github.com/zappabad/braster/tui/styles"
)

// ActivityPanel lists the most recent bot events, newest last.
type ActivityPanel struct {
	events   []bot.Event
	run      botview.RunSummary
	hasRun   bool
	currency string
	width    int
	height   int
}

// NewActivityPanel creates a new activity panel.
func NewActivityPanel(currency string) *ActivityPanel {
	if currency == "" {
		currency = botview.DefaultCurrency
	}
	return &ActivityPanel{currency: currency}
}

// View renders the panel.
func (p *ActivityPanel) View() string {
	if p == nil {
		return ""
	}

	var content strings.Builder
	if p.hasRun {
		content.WriteString(p.runLine())
		content.WriteString("\n")
	}
	if len(p.events) == 0 {
		content.WriteString(styles.MutedStyle.Render("No activity yet"))
	} else {
		visible := p.height - 3
		if p.hasRun {
			visible--
		}
		if visible < 1 {
			visible = 1
		}
		start := 0
		if len(p.events) > visible {
			start = len(p.events) - visible
		}

		for i := start; i < len(p.events); i++ {
			content.WriteString(p.FormatEvent(p.events[i]))
			if i < len(p.events)-1 {
				content.WriteString("\n")
			}
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, styles.RenderTitle("📜 Activity"), content.String())
	return panelFrame(body, p.width, p.height)
}

// FormatEvent renders one event line.
func (p *ActivityPanel) FormatEvent(ev bot.Event) string {
	ts := styles.TimeStyle.Render(time.Unix(0, ev.Time).Format("15:04:05"))
	kind := styles.EventStyle.Render(fmt.Sprintf("%-7s", ev.Type))

	var detail string
	switch ev.Type {
	case bot.EventStarted:
		detail = "run " + shortRunID(ev.RunID)
	case bot.EventStopped:
		detail = fmt.Sprintf("%d trades, P&L %s%s", ev.State.Trades, p.currency, ev.State.PnL.StringFixed(2))
	case bot.EventTrade:
		sign := ""
		if !ev.Delta.IsNegative() {
			sign = "+"
		}
		delta := styles.PnLStyle(ev.Delta.IsNegative()).Render(sign + p.currency + ev.Delta.StringFixed(2))
		detail = fmt.Sprintf("#%d %s", ev.State.Trades, delta)
	}
	return fmt.Sprintf("%s %s %s", ts, kind, detail)
}

func (p *ActivityPanel) runLine() string {
	state := "live"
	if p.run.Ended {
		state = "ended"
	}
	sign := ""
	if !p.run.PnL.IsNegative() {
		sign = "+"
	}
	pnl := styles.PnLStyle(p.run.PnL.IsNegative()).Render(sign + p.currency + p.run.PnL.StringFixed(2))
	label := styles.MutedStyle.Render(fmt.Sprintf("Run %s (%s): %d trades", shortRunID(p.run.ID), state, p.run.Trades))
	return label + " " + pnl
}

func shortRunID(id bot.RunID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// SetEvents replaces the listed events.
func (p *ActivityPanel) SetEvents(events []bot.Event) {
	if p == nil {
		return
	}
	p.events = events
}

// SetRun sets the run summarized above the event list; ok false clears it.
func (p *ActivityPanel) SetRun(run botview.RunSummary, ok bool) {
	if p == nil {
		return
	}
	p.run = run
	p.hasRun = ok
}

// SetSize sets the panel dimensions.
func (p *ActivityPanel) SetSize(width, height int) {
	if p == nil {
		return
	}
	p.width = width
	p.height = height
}
