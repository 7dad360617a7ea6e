package bot

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RunID identifies one Start..Stop run of the bot.
type RunID = uuid.UUID

// State is the observable state of the simulated bot.
type State struct {
	Running bool
	Trades  int64
	PnL     decimal.Decimal
}

// EventType indicates the type of bot event.
type EventType int

const (
	EventStarted EventType = iota
	EventStopped
	EventTrade
)

func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "STARTED"
	case EventStopped:
		return "STOPPED"
	case EventTrade:
		return "TRADE"
	default:
		return "UNKNOWN"
	}
}

// Event is emitted whenever the bot state changes.
type Event struct {
	Type  EventType
	RunID RunID
	Time  int64           // unix nanos
	Delta decimal.Decimal // P&L change, trade events only
	State State           // state after the change
}
