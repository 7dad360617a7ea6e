package panels

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/braster/internal/bot"
	botview "github.com/zappabad/braster/internal/bot/view"
	"github.com/zappabad/braster/tui/styles"
)

// StatsPanel shows profit/loss and the trade count.
type StatsPanel struct {
	pres   botview.Presentation
	width  int
	height int
}

// NewStatsPanel creates a new stats panel.
func NewStatsPanel() *StatsPanel {
	return &StatsPanel{pres: botview.Render(bot.State{}, "")}
}

// View renders the panel.
func (p *StatsPanel) View() string {
	if p == nil {
		return ""
	}

	pnl := styles.PnLStyle(p.pres.PnLNegative).Render(p.pres.PnLText)
	trades := styles.StatValueStyle.Render(p.pres.TradesText)

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.RenderTitle("📈 Performance"),
		fmt.Sprintf("%s %s", styles.LabelStyle.Render("P&L    "), pnl),
		fmt.Sprintf("%s %s", styles.LabelStyle.Render("Trades "), trades),
	)
	return panelFrame(body, p.width, p.height)
}

// SetPresentation updates the values the panel draws.
func (p *StatsPanel) SetPresentation(pres botview.Presentation) {
	if p == nil {
		return
	}
	p.pres = pres
}

// SetSize sets the panel dimensions.
func (p *StatsPanel) SetSize(width, height int) {
	if p == nil {
		return
	}
	p.width = width
	p.height = height
}
