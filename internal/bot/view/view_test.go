package view

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zappabad/braster/internal/bot"
)

func TestRenderOffline(t *testing.T) {
	p := Render(bot.State{}, "")

	if p.Online {
		t.Error("expected offline")
	}
	if p.StatusText != "Offline" {
		t.Errorf("expected status Offline, got %q", p.StatusText)
	}
	if !p.StartEnabled || p.StopEnabled {
		t.Errorf("expected start enabled and stop disabled, got start=%v stop=%v", p.StartEnabled, p.StopEnabled)
	}
	if p.PnLText != "$0.00" {
		t.Errorf("expected pnl $0.00, got %q", p.PnLText)
	}
	if p.PnLNegative {
		t.Error("expected zero pnl to be non-negative")
	}
	if p.TradesText != "0" {
		t.Errorf("expected trades 0, got %q", p.TradesText)
	}
}

func TestRenderOnline(t *testing.T) {
	st := bot.State{Running: true, Trades: 42, PnL: decimal.RequireFromString("12.345")}
	p := Render(st, "€")

	if !p.Online || p.StatusText != "Online" {
		t.Errorf("expected Online, got %q", p.StatusText)
	}
	if p.StartEnabled || !p.StopEnabled {
		t.Errorf("expected start disabled and stop enabled, got start=%v stop=%v", p.StartEnabled, p.StopEnabled)
	}
	if p.PnLText != "€12.35" {
		t.Errorf("expected pnl €12.35, got %q", p.PnLText)
	}
	if p.TradesText != "42" {
		t.Errorf("expected trades 42, got %q", p.TradesText)
	}
}

func TestRenderPnL(t *testing.T) {
	tests := []struct {
		pnl          string
		wantText     string
		wantNegative bool
	}{
		{"0", "$0.00", false},
		{"3.1", "$3.10", false},
		{"-3.214", "$-3.21", true},
		{"-0.001", "$0.00", true},
		{"1234.5", "$1234.50", false},
	}

	for _, tt := range tests {
		p := Render(bot.State{PnL: decimal.RequireFromString(tt.pnl)}, DefaultCurrency)
		if p.PnLText != tt.wantText {
			t.Errorf("pnl %s: expected %q, got %q", tt.pnl, tt.wantText, p.PnLText)
		}
		if p.PnLNegative != tt.wantNegative {
			t.Errorf("pnl %s: expected negative=%v, got %v", tt.pnl, tt.wantNegative, p.PnLNegative)
		}
	}
}

func TestRenderControlsAreExclusive(t *testing.T) {
	for _, running := range []bool{false, true} {
		p := Render(bot.State{Running: running}, "")
		if p.StartEnabled == p.StopEnabled {
			t.Errorf("running=%v: start and stop both %v", running, p.StartEnabled)
		}
		if p.StopEnabled != running {
			t.Errorf("running=%v: stop enabled=%v", running, p.StopEnabled)
		}
	}
}

func TestTapeLatest(t *testing.T) {
	tape := NewTape(3)

	if got := tape.Latest(5); got != nil {
		t.Errorf("expected nil from empty tape, got %v", got)
	}

	for i := int64(1); i <= 5; i++ {
		tape.Apply(bot.Event{Type: bot.EventTrade, State: bot.State{Trades: i}})
	}

	if tape.Count() != 3 {
		t.Fatalf("expected count 3, got %d", tape.Count())
	}

	got := tape.Latest(10)
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	for i, want := range []int64{3, 4, 5} {
		if got[i].State.Trades != want {
			t.Errorf("event %d: expected trades %d, got %d", i, want, got[i].State.Trades)
		}
	}

	last := tape.Latest(1)
	if len(last) != 1 || last[0].State.Trades != 5 {
		t.Errorf("expected latest event to have trades 5, got %+v", last)
	}
}

func TestTapeRunSummaries(t *testing.T) {
	tape := NewTape(10)
	first, second := uuid.New(), uuid.New()

	if _, ok := tape.Current(); ok {
		t.Fatal("expected no run on an empty tape")
	}

	tape.Apply(bot.Event{Type: bot.EventStarted, RunID: first, Time: 100, State: bot.State{Running: true}})
	tape.Apply(bot.Event{Type: bot.EventTrade, RunID: first, Delta: decimal.NewFromInt(4), State: bot.State{Running: true, Trades: 1, PnL: decimal.NewFromInt(4)}})
	tape.Apply(bot.Event{Type: bot.EventTrade, RunID: first, Delta: decimal.NewFromInt(-1), State: bot.State{Running: true, Trades: 2, PnL: decimal.NewFromInt(3)}})

	cur, ok := tape.Current()
	if !ok || cur.ID != first || cur.Ended {
		t.Fatalf("expected live first run, got %+v", cur)
	}
	if cur.Started != 100 || cur.Trades != 2 || !cur.PnL.Equal(decimal.NewFromInt(3)) {
		t.Errorf("unexpected first run summary: %+v", cur)
	}

	tape.Apply(bot.Event{Type: bot.EventStopped, RunID: first, State: bot.State{Trades: 2, PnL: decimal.NewFromInt(3)}})
	if cur, _ := tape.Current(); !cur.Ended {
		t.Error("expected first run to be ended")
	}

	// the second run counts only its own trades
	tape.Apply(bot.Event{Type: bot.EventStarted, RunID: second, State: bot.State{Running: true, Trades: 2, PnL: decimal.NewFromInt(3)}})
	tape.Apply(bot.Event{Type: bot.EventTrade, RunID: second, Delta: decimal.NewFromInt(-5), State: bot.State{Running: true, Trades: 3, PnL: decimal.NewFromInt(-2)}})

	runs := tape.Runs()
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Errorf("unexpected run order: %v, %v", runs[0].ID, runs[1].ID)
	}
	if runs[1].Trades != 1 || !runs[1].PnL.Equal(decimal.NewFromInt(-5)) {
		t.Errorf("unexpected second run summary: %+v", runs[1])
	}
}

func TestTapeRunWithoutStartEvent(t *testing.T) {
	tape := NewTape(10)
	id := uuid.New()

	tape.Apply(bot.Event{Type: bot.EventTrade, RunID: id, Delta: decimal.NewFromInt(2), State: bot.State{Running: true, Trades: 6, PnL: decimal.NewFromInt(9)}})

	cur, ok := tape.Current()
	if !ok || cur.ID != id {
		t.Fatalf("expected a run for %v, got %+v", id, cur)
	}
	if cur.Trades != 1 || !cur.PnL.Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected the trade alone in the summary, got %+v", cur)
	}
}

func TestRingTail(t *testing.T) {
	r := newRing[int](4)
	for i := 1; i <= 6; i++ {
		r.push(i)
	}

	if r.size() != 4 {
		t.Fatalf("expected size 4, got %d", r.size())
	}
	got := r.tail(3)
	want := []int{4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tail[%d]: expected %d, got %d", i, want[i], got[i])
		}
	}
	if r.tail(0) != nil {
		t.Error("expected nil for an empty tail")
	}
}
