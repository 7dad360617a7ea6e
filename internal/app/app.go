package app

import (
	"sync"

	"go.uber.org/zap"

	botservice "github.com/zappabad/braster/internal/bot/service"
	"github.com/zappabad/braster/internal/logging"
)

// App owns the dashboard subsystems and manages their lifecycle.
type App struct {
	Bot    *botservice.BotService
	Logger *zap.Logger

	cfg    Config
	mu     sync.Mutex
	closed bool
}

// New creates an App with the given configuration. The bot starts offline.
func New(cfg Config) (*App, error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	return NewWithLogger(cfg, logger), nil
}

// NewWithLogger creates an App that logs through logger.
func NewWithLogger(cfg Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &App{
		cfg:    cfg,
		Logger: logger,
	}
	a.Bot = botservice.NewBotService(
		cfg.Bot.ServiceConfig(),
		botservice.WithLogger(logger.Named("bot")),
	)

	logger.Info("dashboard loaded",
		zap.Duration("tick_interval", a.Bot.Config().TickInterval),
		zap.Float64("trade_probability", a.Bot.Config().TradeProbability),
	)
	return a
}

// Config returns the configuration the App was built with.
func (a *App) Config() Config {
	return a.cfg
}

// Close stops the bot and flushes the logger.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.closed = true

	if a.Bot != nil {
		a.Bot.Close()
	}
	a.Logger.Info("dashboard shut down")
	_ = a.Logger.Sync()
}
