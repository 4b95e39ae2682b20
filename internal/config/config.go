package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"fund-screening/internal/logging"
)

// Config materialises application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Logging   logging.Config  `mapstructure:"logging"`
	Screening ScreeningConfig `mapstructure:"screening"`
	Alerting  AlertingConfig  `mapstructure:"alerting"`
	Ingest    IngestConfig    `mapstructure:"ingest"`
	Report    ReportConfig    `mapstructure:"report"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// ScreeningConfig holds the percentile qualification policy.
type ScreeningConfig struct {
	Thresholds     []ThresholdSpec    `mapstructure:"thresholds"`
	TerminalStatus string             `mapstructure:"terminal_status"`
	MetricWeights  []MetricWeightSpec `mapstructure:"metric_weights"`
}

// ThresholdSpec maps a status label to an inclusive upper-bound percentile.
type ThresholdSpec struct {
	Label string  `mapstructure:"label"`
	Bound float64 `mapstructure:"bound"`
}

// MetricWeightSpec documents one screening metric's weight. Informational
// to this engine; weights must sum to 1 so reports stay defensible.
type MetricWeightSpec struct {
	Metric string  `mapstructure:"metric"`
	Weight float64 `mapstructure:"weight"`
}

// AlertingConfig defines period-over-period alert buckets and routing.
type AlertingConfig struct {
	Buckets     []BucketSpec   `mapstructure:"buckets"`
	StableLabel string         `mapstructure:"stable_label"`
	NotifyFloor string         `mapstructure:"notify_floor"`
	Telegram    TelegramConfig `mapstructure:"telegram"`
}

// BucketSpec maps a severity label to an exclusive lower-bound delta.
type BucketSpec struct {
	Label string  `mapstructure:"label"`
	Min   float64 `mapstructure:"min"`
}

// TelegramConfig describes the Telegram alert channel.
type TelegramConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
	APIBase  string `mapstructure:"api_base"`
}

// IngestConfig tunes source materialization.
type IngestConfig struct {
	SheetCandidates []string `mapstructure:"sheet_candidates"`
}

// ReportConfig gates the document-renderer payload export.
type ReportConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FUNDSCREEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "fundscreen")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("screening.thresholds", []map[string]any{
		{"label": "Elite", "bound": 25.0},
		{"label": "Qualified", "bound": 37.0},
		{"label": "Watchlist", "bound": 60.0},
	})
	v.SetDefault("screening.terminal_status", "Review Required")
	v.SetDefault("screening.metric_weights", defaultMetricWeights())

	v.SetDefault("alerting.buckets", []map[string]any{
		{"label": "Minor Change", "min": 10.0},
		{"label": "Watchlist", "min": 25.0},
		{"label": "Deteriorated", "min": 50.0},
	})
	v.SetDefault("alerting.stable_label", "Stable/Improved")
	v.SetDefault("alerting.notify_floor", "Watchlist")
	v.SetDefault("alerting.telegram.enabled", false)
	v.SetDefault("alerting.telegram.api_base", "https://api.telegram.org")

	v.SetDefault("ingest.sheet_candidates", []string{"ESG MAIN", "ESG MAIN YCHARTS", "ESG_MAIN", "Main"})

	v.SetDefault("report.enabled", true)
}

// defaultMetricWeights mirrors the investment policy's 11-metric framework:
// 70% environmental, 30% ESG quality and governance.
func defaultMetricWeights() []map[string]any {
	return []map[string]any{
		{"metric": "MSCI ESG Environmental Score", "weight": 0.20},
		{"metric": "ESG Score Environmental Weight (%)", "weight": 0.15},
		{"metric": "Fund Weighted Average Carbon Intensity", "weight": 0.20},
		{"metric": "Financed Carbon Emissions (Carbon Emissions / USD Million Invested)", "weight": 0.10},
		{"metric": "Fossil Fuels Reserve (%)", "weight": 0.15},
		{"metric": "MSCI ESG Score", "weight": 0.05},
		{"metric": "Fund ESG Leaders (%)", "weight": 0.05},
		{"metric": "MSCI Fund ESG Trend Positive (%)", "weight": 0.05},
		{"metric": "Fund ESG Laggards (%)", "weight": 0.03},
		{"metric": "Controversial Weapons Involvement (%)", "weight": 0.01},
		{"metric": "MSCI ESG Governance Score", "weight": 0.01},
	}
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate enforces the configuration preconditions. Ordering violations
// here are fatal to the whole run; nothing downstream re-checks per record.
func (c *Config) Validate() error {
	if len(c.Screening.Thresholds) == 0 {
		return fmt.Errorf("screening.thresholds must not be empty")
	}
	for i, spec := range c.Screening.Thresholds {
		if spec.Label == "" {
			return fmt.Errorf("screening.thresholds[%d].label must not be empty", i)
		}
		if i > 0 && spec.Bound <= c.Screening.Thresholds[i-1].Bound {
			return fmt.Errorf("screening.thresholds bounds must be strictly increasing (%q <= %q)",
				spec.Label, c.Screening.Thresholds[i-1].Label)
		}
	}
	if c.Screening.TerminalStatus == "" {
		return fmt.Errorf("screening.terminal_status must not be empty")
	}

	if len(c.Alerting.Buckets) == 0 {
		return fmt.Errorf("alerting.buckets must not be empty")
	}
	floorKnown := false
	for i, spec := range c.Alerting.Buckets {
		if spec.Label == "" {
			return fmt.Errorf("alerting.buckets[%d].label must not be empty", i)
		}
		if i > 0 && spec.Min <= c.Alerting.Buckets[i-1].Min {
			return fmt.Errorf("alerting.buckets bounds must be strictly increasing (%q <= %q)",
				spec.Label, c.Alerting.Buckets[i-1].Label)
		}
		if spec.Label == c.Alerting.NotifyFloor {
			floorKnown = true
		}
	}
	if c.Alerting.StableLabel == "" {
		return fmt.Errorf("alerting.stable_label must not be empty")
	}
	if !floorKnown {
		return fmt.Errorf("alerting.notify_floor %q does not name a configured bucket", c.Alerting.NotifyFloor)
	}

	if len(c.Screening.MetricWeights) > 0 {
		sum := 0.0
		for _, w := range c.Screening.MetricWeights {
			sum += w.Weight
		}
		if math.Abs(sum-1.0) > 1e-9 {
			return fmt.Errorf("screening.metric_weights must sum to 1.0, got %.4f", sum)
		}
	}

	if c.Alerting.Telegram.Enabled {
		if c.Alerting.Telegram.BotToken == "" {
			return fmt.Errorf("alerting.telegram.bot_token is required when telegram is enabled")
		}
		if c.Alerting.Telegram.ChatID == "" {
			return fmt.Errorf("alerting.telegram.chat_id is required when telegram is enabled")
		}
	}

	return nil
}
