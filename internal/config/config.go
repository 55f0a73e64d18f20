package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTickers is the diversified ETF set used when no tickers are given.
var DefaultTickers = []string{"SPY", "QQQ", "IWM", "XLK", "XLF", "TLT"}

// Config holds all application configuration.
type Config struct {
	Tickers   []string `yaml:"tickers"`
	Start     string   `yaml:"start"`
	End       string   `yaml:"end"`
	OutputDir string   `yaml:"output_dir"`
	SaveCSV   bool     `yaml:"save_csv"`
	TopPairs  int      `yaml:"top_pairs"`
	Base      float64  `yaml:"normalize_base"`
	Database  struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Watch struct {
		Cron string `yaml:"cron"`
	} `yaml:"watch"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TICKERLENS_TICKERS"); v != "" {
		cfg.Tickers = ParseTickers(v)
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Tickers) == 0 {
		cfg.Tickers = append([]string(nil), DefaultTickers...)
	}
	if cfg.Start == "" {
		cfg.Start = "2021-01-01"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "outputs"
	}
	if cfg.TopPairs == 0 {
		cfg.TopPairs = 5
	}
	if cfg.Base == 0 {
		cfg.Base = 100
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 0 22 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that the configuration can drive an analysis run.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("at least one ticker is required")
	}
	for _, t := range c.Tickers {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("empty ticker in list %v", c.Tickers)
		}
	}
	if c.Base <= 0 {
		return fmt.Errorf("normalize_base must be positive, got %g", c.Base)
	}
	start, end, err := c.DateRange()
	if err != nil {
		return err
	}
	if !end.IsZero() && !start.Before(end) {
		return fmt.Errorf("start %s must be before end %s", c.Start, c.End)
	}
	return nil
}

// DateRange parses the configured date strings. A zero end time means
// "up to today".
func (c *Config) DateRange() (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", c.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse start date %q: %w", c.Start, err)
	}
	if c.End != "" {
		end, err = time.Parse("2006-01-02", c.End)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse end date %q: %w", c.End, err)
		}
	}
	return start, end, nil
}

// ParseTickers splits a comma-separated ticker list, trimming whitespace
// and uppercasing each symbol. Empty entries are dropped.
func ParseTickers(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
