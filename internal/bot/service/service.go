package service

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zappabad/braster/internal/bot"
)

// Rand is the random source used by the simulation.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// BotService runs the simulated trading bot.
type BotService struct {
	cfg    Config
	logger *zap.Logger

	mu       sync.Mutex
	rng      Rand
	state    bot.State
	runID    bot.RunID
	stopRun  chan struct{}
	closing  bool // no new runs once set
	shutdown bool // no more events once set

	events        chan bot.Event
	droppedEvents atomic.Int64

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Option configures a BotService.
type Option func(*BotService)

// WithRand replaces the random source.
func WithRand(r Rand) Option {
	return func(s *BotService) { s.rng = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *BotService) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewBotService creates a stopped BotService.
func NewBotService(cfg Config, opts ...Option) *BotService {
	def := DefaultConfig()
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = def.TickInterval
	}
	if cfg.TradeProbability <= 0 || cfg.TradeProbability > 1 {
		cfg.TradeProbability = def.TradeProbability
	}
	if cfg.MaxDelta <= 0 {
		cfg.MaxDelta = def.MaxDelta
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = def.EventBuffer
	}

	s := &BotService{
		cfg:    cfg,
		logger: zap.NewNop(),
		events: make(chan bot.Event, cfg.EventBuffer),
		closed: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
	return s
}

// Start puts the bot online and schedules the simulation timer.
// It returns false without touching the state if the bot is already
// running or the service is closed.
func (s *BotService) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closing {
		return false
	}
	if s.state.Running {
		s.logger.Warn("bot already running", zap.String("run_id", s.runID.String()))
		return false
	}

	s.state.Running = true
	s.runID = uuid.New()
	s.stopRun = make(chan struct{})

	s.wg.Add(1)
	go s.run(s.runID, s.stopRun)

	s.logger.Info("bot started",
		zap.String("run_id", s.runID.String()),
		zap.Duration("tick_interval", s.cfg.TickInterval),
	)
	s.emit(bot.Event{Type: bot.EventStarted})
	return true
}

// Stop puts the bot offline. The running timer is cancelled.
// It returns false if the bot was not running.
func (s *BotService) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopLocked()
}

func (s *BotService) stopLocked() bool {
	if !s.state.Running {
		return false
	}

	s.state.Running = false
	close(s.stopRun)
	s.stopRun = nil

	s.logger.Info("bot stopped",
		zap.String("run_id", s.runID.String()),
		zap.Int64("trades", s.state.Trades),
		zap.String("pnl", s.state.PnL.StringFixed(2)),
	)
	s.emit(bot.Event{Type: bot.EventStopped})
	return true
}

func (s *BotService) run(id bot.RunID, stop <-chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.closed:
			return
		case <-stop:
			return
		case <-ticker.C:
			if !s.tick(id) {
				return
			}
		}
	}
}

// tick handles one timer firing for run id. It returns false when the
// run is over and the timer must be cancelled.
func (s *BotService) tick(id bot.RunID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Running || s.runID != id {
		return false
	}

	if s.rng.Float64() <= 1-s.cfg.TradeProbability {
		return true
	}

	delta := decimal.NewFromFloat((s.rng.Float64() - 0.5) * 2 * s.cfg.MaxDelta)
	s.state.Trades++
	s.state.PnL = s.state.PnL.Add(delta)

	s.logger.Debug("simulated trade",
		zap.String("run_id", id.String()),
		zap.String("delta", delta.StringFixed(2)),
		zap.Int64("trades", s.state.Trades),
	)
	s.emit(bot.Event{Type: bot.EventTrade, Delta: delta})
	return true
}

// emit must be called with mu held.
func (s *BotService) emit(ev bot.Event) {
	if s.shutdown {
		return
	}
	ev.RunID = s.runID
	ev.Time = time.Now().UnixNano()
	ev.State = s.state

	select {
	case s.events <- ev:
	default:
		s.droppedEvents.Add(1)
	}
}

// Snapshot returns a copy of the current state.
func (s *BotService) Snapshot() bot.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Running reports whether the bot is online.
func (s *BotService) Running() bool {
	return s.Snapshot().Running
}

// Config returns the effective configuration.
func (s *BotService) Config() Config {
	return s.cfg
}

// Events returns the bot events channel.
func (s *BotService) Events() <-chan bot.Event {
	return s.events
}

// DroppedEvents returns the count of dropped events.
func (s *BotService) DroppedEvents() int64 {
	return s.droppedEvents.Load()
}

// Close stops the bot and shuts down the service.
func (s *BotService) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closing = true
		s.stopLocked()
		s.mu.Unlock()

		close(s.closed)
		s.wg.Wait()

		s.mu.Lock()
		s.shutdown = true
		close(s.events)
		s.mu.Unlock()
	})
}
