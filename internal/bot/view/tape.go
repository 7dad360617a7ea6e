package view

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/zappabad/braster/internal/bot"
)

// runHistory is how many finished runs a Tape remembers.
const runHistory = 20

// RunSummary is what a single start..stop run contributed.
type RunSummary struct {
	ID      bot.RunID
	Started int64 // unix nanos
	Ended   bool
	Trades  int64
	PnL     decimal.Decimal
}

// Tape records recent bot events and folds them into per-run summaries.
type Tape struct {
	mu     sync.Mutex
	events *ring[bot.Event]
	runs   *ring[RunSummary]

	cur        RunSummary
	hasCur     bool
	baseTrades int64
	basePnL    decimal.Decimal
}

// NewTape creates a Tape holding at most capacity events.
func NewTape(capacity int) *Tape {
	if capacity <= 0 {
		capacity = 100
	}
	return &Tape{
		events: newRing[bot.Event](capacity),
		runs:   newRing[RunSummary](runHistory),
	}
}

// Apply records ev and updates the summary of the run it belongs to.
func (t *Tape) Apply(ev bot.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.events.push(ev)

	if ev.Type == bot.EventStarted {
		t.begin(ev.RunID, ev.Time, ev.State.Trades, ev.State.PnL)
		return
	}

	if !t.hasCur || t.cur.ID != ev.RunID {
		// The start event was dropped; recover the baseline from this one.
		trades, pnl := ev.State.Trades, ev.State.PnL
		if ev.Type == bot.EventTrade {
			trades--
			pnl = pnl.Sub(ev.Delta)
		}
		t.begin(ev.RunID, ev.Time, trades, pnl)
	}

	t.cur.Trades = ev.State.Trades - t.baseTrades
	t.cur.PnL = ev.State.PnL.Sub(t.basePnL)
	if ev.Type == bot.EventStopped {
		t.cur.Ended = true
	}
}

func (t *Tape) begin(id bot.RunID, at, trades int64, pnl decimal.Decimal) {
	if t.hasCur {
		t.runs.push(t.cur)
	}
	t.cur = RunSummary{ID: id, Started: at}
	t.hasCur = true
	t.baseTrades = trades
	t.basePnL = pnl
}

// Latest returns the last n events, oldest first.
func (t *Tape) Latest(n int) []bot.Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.events.tail(n)
}

// Count returns the number of events held.
func (t *Tape) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.events.size()
}

// Current returns the most recent run, live or not.
func (t *Tape) Current() (RunSummary, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cur, t.hasCur
}

// Runs returns the remembered runs, oldest first, ending with Current.
func (t *Tape) Runs() []RunSummary {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.runs.tail(runHistory)
	if t.hasCur {
		out = append(out, t.cur)
	}
	return out
}
