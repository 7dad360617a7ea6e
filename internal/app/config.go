package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	botservice "github.com/zappabad/braster/internal/bot/service"
	"github.com/zappabad/braster/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. BRASTER_BOT_TICK_INTERVAL.
const EnvPrefix = "BRASTER"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds configuration for the dashboard.
type Config struct {
	Bot BotConfig      `mapstructure:"bot"`
	UI  UIConfig       `mapstructure:"ui"`
	Log logging.Config `mapstructure:"log"`
}

// BotConfig holds the simulation settings.
type BotConfig struct {
	TickInterval     time.Duration `mapstructure:"tick_interval"`
	TradeProbability float64       `mapstructure:"trade_probability"`
	MaxDelta         float64       `mapstructure:"max_delta"`
	Seed             int64         `mapstructure:"seed"`
	EventBuffer      int           `mapstructure:"event_buffer"`
}

// UIConfig holds the terminal UI settings.
type UIConfig struct {
	// Currency prefixes P&L values.
	Currency string `mapstructure:"currency"`
	// TapeSize is the number of events kept for the activity panel.
	TapeSize int `mapstructure:"tape_size"`
	// RefreshInterval is how often the UI re-reads the bot snapshot.
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	svc := botservice.DefaultConfig()
	return Config{
		Bot: BotConfig{
			TickInterval:     svc.TickInterval,
			TradeProbability: svc.TradeProbability,
			MaxDelta:         svc.MaxDelta,
			EventBuffer:      svc.EventBuffer,
		},
		UI: UIConfig{
			Currency:        "$",
			TapeSize:        100,
			RefreshInterval: 250 * time.Millisecond,
		},
		Log: logging.DefaultConfig(),
	}
}

// ServiceConfig converts the bot section into a bot service config.
func (c BotConfig) ServiceConfig() botservice.Config {
	return botservice.Config{
		TickInterval:     c.TickInterval,
		TradeProbability: c.TradeProbability,
		MaxDelta:         c.MaxDelta,
		Seed:             c.Seed,
		EventBuffer:      c.EventBuffer,
	}
}

// Validate checks the values the bot service cannot fall back on.
func (c Config) Validate() error {
	if c.Bot.TickInterval <= 0 {
		return fmt.Errorf("%w: bot.tick_interval must be positive, got %s", ErrInvalidConfig, c.Bot.TickInterval)
	}
	if c.Bot.TradeProbability <= 0 || c.Bot.TradeProbability > 1 {
		return fmt.Errorf("%w: bot.trade_probability must be in (0, 1], got %v", ErrInvalidConfig, c.Bot.TradeProbability)
	}
	if c.Bot.MaxDelta <= 0 {
		return fmt.Errorf("%w: bot.max_delta must be positive, got %v", ErrInvalidConfig, c.Bot.MaxDelta)
	}
	if c.UI.RefreshInterval <= 0 {
		return fmt.Errorf("%w: ui.refresh_interval must be positive, got %s", ErrInvalidConfig, c.UI.RefreshInterval)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// flag name -> config key
var flagKeys = map[string]string{
	"tick-interval":     "bot.tick_interval",
	"trade-probability": "bot.trade_probability",
	"max-delta":         "bot.max_delta",
	"seed":              "bot.seed",
	"currency":          "ui.currency",
	"log-file":          "log.file",
	"log-level":         "log.level",
}

// Load builds a Config from defaults, an optional config file, BRASTER_*
// environment variables and command line flags, in increasing priority.
func Load(args []string) (Config, error) {
	def := DefaultConfig()

	fs := pflag.NewFlagSet("braster", pflag.ContinueOnError)
	configPath := fs.String("config", "", "path to a config file (yaml, toml or json)")
	fs.Duration("tick-interval", def.Bot.TickInterval, "simulation tick period")
	fs.Float64("trade-probability", def.Bot.TradeProbability, "chance that a tick produces a trade")
	fs.Float64("max-delta", def.Bot.MaxDelta, "largest P&L change of one trade")
	fs.Int64("seed", def.Bot.Seed, "random seed, 0 for time based")
	fs.String("currency", def.UI.Currency, "currency prefix for P&L")
	fs.String("log-file", def.Log.File, "log file, empty to disable logging")
	fs.String("log-level", def.Log.Level, "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	setDefaults(v, def)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if *configPath != "" {
		v.SetConfigFile(*configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", *configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, def Config) {
	v.SetDefault("bot.tick_interval", def.Bot.TickInterval)
	v.SetDefault("bot.trade_probability", def.Bot.TradeProbability)
	v.SetDefault("bot.max_delta", def.Bot.MaxDelta)
	v.SetDefault("bot.seed", def.Bot.Seed)
	v.SetDefault("bot.event_buffer", def.Bot.EventBuffer)

	v.SetDefault("ui.currency", def.UI.Currency)
	v.SetDefault("ui.tape_size", def.UI.TapeSize)
	v.SetDefault("ui.refresh_interval", def.UI.RefreshInterval)

	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.max_size", def.Log.MaxSize)
	v.SetDefault("log.max_backups", def.Log.MaxBackups)
	v.SetDefault("log.max_age", def.Log.MaxAge)
	v.SetDefault("log.compress", def.Log.Compress)
}
