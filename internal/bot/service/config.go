package service

import "time"

// Config holds configuration for the bot service.
type Config struct {
	// TickInterval is the period of the simulation timer.
	TickInterval time.Duration
	// TradeProbability is the chance that a tick produces a trade.
	TradeProbability float64
	// MaxDelta bounds the absolute P&L change of one trade.
	MaxDelta float64
	// Seed seeds the random source. Zero means time based.
	Seed int64
	// EventBuffer is the size of the events channel.
	EventBuffer int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		TickInterval:     3 * time.Second,
		TradeProbability: 0.3,
		MaxDelta:         10,
		EventBuffer:      256,
	}
}
