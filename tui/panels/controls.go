package panels

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/braster/internal/bot"
	botview "github.com/zappabad/braster/internal/bot/view"
	"github.com/zappabad/braster/tui/styles"
)

// Button identifies one of the control buttons.
type Button int

const (
	ButtonStart Button = iota
	ButtonStop
	ButtonLogs
	buttonCount
)

func (b Button) String() string {
	switch b {
	case ButtonStart:
		return "Start Bot"
	case ButtonStop:
		return "Stop Bot"
	case ButtonLogs:
		return "View Logs"
	default:
		return "?"
	}
}

// ButtonPressedMsg is sent when an enabled button is activated.
type ButtonPressedMsg struct {
	Button Button
}

var (
	leftKey  = key.NewBinding(key.WithKeys("left"))
	rightKey = key.NewBinding(key.WithKeys("right"))
	pressKey = key.NewBinding(key.WithKeys("enter", " "))
)

// ControlPanel shows the online indicator and the control buttons.
type ControlPanel struct {
	pres     botview.Presentation
	selected Button
	width    int
	height   int
}

// NewControlPanel creates a new control panel.
func NewControlPanel() *ControlPanel {
	return &ControlPanel{
		pres: botview.Render(bot.State{}, ""),
	}
}

// Init initializes the panel.
func (p *ControlPanel) Init() tea.Cmd {
	return nil
}

// Update moves the button selection and activates buttons.
func (p *ControlPanel) Update(msg tea.Msg) (*ControlPanel, tea.Cmd) {
	if p == nil {
		return p, nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(km, leftKey):
		p.selected = (p.selected + buttonCount - 1) % buttonCount
	case key.Matches(km, rightKey):
		p.selected = (p.selected + 1) % buttonCount
	case key.Matches(km, pressKey):
		if !p.Enabled(p.selected) {
			return p, nil
		}
		b := p.selected
		return p, func() tea.Msg { return ButtonPressedMsg{Button: b} }
	}
	return p, nil
}

// Enabled reports whether b can be activated in the current state.
func (p *ControlPanel) Enabled(b Button) bool {
	switch b {
	case ButtonStart:
		return p.pres.StartEnabled
	case ButtonStop:
		return p.pres.StopEnabled
	case ButtonLogs:
		return true
	}
	return false
}

// Selected returns the selected button.
func (p *ControlPanel) Selected() Button {
	return p.selected
}

// View renders the panel.
func (p *ControlPanel) View() string {
	if p == nil {
		return ""
	}

	dot := styles.OfflineStyle.Render("●")
	if p.pres.Online {
		dot = styles.OnlineStyle.Render("●")
	}
	status := lipgloss.JoinHorizontal(lipgloss.Center, dot, " ", styles.StatValueStyle.Render(p.pres.StatusText))

	buttons := make([]string, 0, buttonCount)
	for b := ButtonStart; b < buttonCount; b++ {
		style := styles.ButtonStyle
		switch {
		case !p.Enabled(b):
			style = styles.DisabledButtonStyle
		case b == p.selected:
			style = styles.SelectedButtonStyle
		}
		buttons = append(buttons, style.Render(b.String()))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.RenderTitle("🤖 Trading Bot"),
		status,
		row,
	)
	return panelFrame(body, p.width, p.height)
}

// SetPresentation updates the state the panel draws.
func (p *ControlPanel) SetPresentation(pres botview.Presentation) {
	if p == nil {
		return
	}
	p.pres = pres
}

// SetSize sets the panel dimensions.
func (p *ControlPanel) SetSize(width, height int) {
	if p == nil {
		return
	}
	p.width = width
	p.height = height
}

func panelFrame(body string, width, height int) string {
	style := styles.PanelStyle
	if width > 2 {
		style = style.Width(width - 2)
	}
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(body)
}
