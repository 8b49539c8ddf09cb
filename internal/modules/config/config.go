package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	configFilePathENV = "CONFIG_FILE"
	apiKeyENV         = "TRAYDNER_API_KEY"
	tokenTelegramENV  = "TELEGRAM_TOKEN"
	databaseDSN       = "DATABASE_DSN"
)

// Config ...
type Config struct {
	API struct {
		BaseURL string        `yaml:"base_url"`
		Key     string        `yaml:"key"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"api"`
	DB       string `yaml:"db_dsn"`
	Telegram struct {
		Token  string `yaml:"token"`
		ChatID int64  `yaml:"chat_id"`
	} `yaml:"telegram"`
	Jaeger struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"jaeger"`

	// Что и как часто опрашиваем
	Symbols      []string      `yaml:"symbols"`
	Market       string        `yaml:"market"` // crypto | stocks | forex
	Resolution   string        `yaml:"resolution"`
	PollInterval time.Duration `yaml:"poll_interval"`
	HistoryLimit int           `yaml:"history_limit"`
	MaxSeries    int           `yaml:"max_series"`
	Workers      int           `yaml:"workers"`

	// Стратегия
	Strategy          string  `yaml:"strategy"` // trendcross | meanrev | momentum | smacross
	EMAFast           int     `yaml:"ema_fast"`
	EMASlow           int     `yaml:"ema_slow"`
	RSIPeriod         int     `yaml:"rsi_period"`
	RSIOverbought     float64 `yaml:"rsi_overbought"`
	RSIOversold       float64 `yaml:"rsi_oversold"`
	TrendContinuation bool    `yaml:"trend_continuation"`
	SMAShort          int     `yaml:"sma_short"`
	SMALong           int     `yaml:"sma_long"`
	BBWindow          int     `yaml:"bb_window"`
	BBK               float64 `yaml:"bb_k"`
	ATRWindow         int     `yaml:"atr_window"`

	// Риск / сайзинг. Доли, не проценты: 0.02 => 2%.
	CapitalFraction float64 `yaml:"capital_fraction"`
	StopLossPct     float64 `yaml:"stop_loss_pct"`
	TakeProfitPct   float64 `yaml:"take_profit_pct"`
	MinQty          float64 `yaml:"min_qty"`

	// Стейт и журнал
	StatePath   string `yaml:"state_path"`
	JournalPath string `yaml:"journal_path"`
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	config := Config{
		Symbols:      []string{"BTC", "ETH", "SOL"},
		Market:       getenvDefault("MARKET", "crypto"),
		Resolution:   getenvDefault("RESOLUTION", "15m"),
		PollInterval: durationFromEnv("POLL_INTERVAL", "15m"),
		HistoryLimit: intFromEnv("HISTORY_LIMIT", 100),
		MaxSeries:    intFromEnv("MAX_SERIES", 500),
		Workers:      intFromEnv("MAX_WORKERS", 5),

		Strategy:          getenvDefault("STRATEGY", "trendcross"),
		EMAFast:           intFromEnv("EMA_FAST", 9),
		EMASlow:           intFromEnv("EMA_SLOW", 21),
		RSIPeriod:         intFromEnv("RSI_PERIOD", 14),
		RSIOverbought:     floatFromEnv("RSI_OVERBOUGHT", 70),
		RSIOversold:       floatFromEnv("RSI_OVERSOLD", 30),
		TrendContinuation: boolFromEnv("TREND_CONTINUATION", false),
		SMAShort:          intFromEnv("SMA_SHORT", 5),
		SMALong:           intFromEnv("SMA_LONG", 20),
		BBWindow:          intFromEnv("BB_WINDOW", 20),
		BBK:               floatFromEnv("BB_K", 2.0),
		ATRWindow:         intFromEnv("ATR_WINDOW", 20),

		CapitalFraction: floatFromEnv("CAPITAL_FRACTION", 0.1),
		StopLossPct:     floatFromEnv("STOP_LOSS_PCT", 0.02),
		TakeProfitPct:   floatFromEnv("TAKE_PROFIT_PCT", 0.04),
		MinQty:          floatFromEnv("MIN_QTY", 1e-6),

		StatePath:   getenvDefault("STATE_PATH", "state.json"),
		JournalPath: getenvDefault("JOURNAL_PATH", "trade_log.jsonl"),
	}
	config.API.BaseURL = "https://traydner-186649552655.us-central1.run.app/api/remote"
	config.API.Timeout = 15 * time.Second

	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}
	if file, err := os.Open("configs/" + configFileName); err == nil {
		decoder := yaml.NewDecoder(file)
		err = decoder.Decode(&config)
		_ = file.Close()
		if err != nil {
			return nil, fmt.Errorf("decode config file: %w", err)
		}
	}

	if key := os.Getenv(apiKeyENV); key != "" {
		config.API.Key = key
	}
	if token := os.Getenv(tokenTelegramENV); token != "" {
		config.Telegram.Token = token
	}
	if dsn := os.Getenv(databaseDSN); dsn != "" {
		config.DB = dsn
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// validate — единственное место, где ошибка конфигурации валит процесс.
func (c *Config) validate() error {
	if c.API.Key == "" {
		return fmt.Errorf("%s is required", apiKeyENV)
	}
	if len(c.Symbols) == 0 {
		return fmt.Errorf("symbols list is empty")
	}
	switch c.Market {
	case "crypto", "stocks", "forex":
	default:
		return fmt.Errorf("unknown market %q", c.Market)
	}
	if c.EMAFast >= c.EMASlow {
		return fmt.Errorf("ema_fast must be < ema_slow")
	}
	if c.SMAShort >= c.SMALong {
		return fmt.Errorf("sma_short must be < sma_long")
	}
	if c.CapitalFraction <= 0 || c.CapitalFraction > 1 {
		return fmt.Errorf("capital_fraction must be in (0, 1]")
	}
	if c.StopLossPct <= 0 || c.TakeProfitPct <= 0 {
		return fmt.Errorf("stop_loss_pct and take_profit_pct must be positive")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	return nil
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func floatFromEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func boolFromEnv(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if v == "1" || v == "true" || v == "TRUE" {
			return true
		}
		if v == "0" || v == "false" || v == "FALSE" {
			return false
		}
	}
	return def
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationFromEnv(key, def string) time.Duration {
	val := getenvDefault(key, def)
	d, err := time.ParseDuration(val)
	if err != nil {
		d, _ = time.ParseDuration(def)
	}
	return d
}
