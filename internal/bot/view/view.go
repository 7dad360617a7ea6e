package view

import (
	"strconv"

	"github.com/zappabad/braster/internal/bot"
)

// DefaultCurrency prefixes P&L values when no currency is given.
const DefaultCurrency = "$"

// Presentation is everything a dashboard needs to draw the bot state.
type Presentation struct {
	Online     bool
	StatusText string

	// Exactly one of StartEnabled and StopEnabled is true.
	StartEnabled bool
	StopEnabled  bool

	PnLText     string
	PnLNegative bool
	TradesText  string
}

// Render projects a bot state onto a Presentation.
func Render(st bot.State, currency string) Presentation {
	if currency == "" {
		currency = DefaultCurrency
	}

	p := Presentation{
		Online:       st.Running,
		StatusText:   "Offline",
		StartEnabled: !st.Running,
		StopEnabled:  st.Running,
		// StringFixed drops the sign of values that round to zero; PnLNegative still carries it.
		PnLText:      currency + st.PnL.StringFixed(2),
		PnLNegative:  st.PnL.IsNegative(),
		TradesText:   strconv.FormatInt(st.Trades, 10),
	}
	if st.Running {
		p.StatusText = "Online"
	}
	return p
}
