package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/wealth-dev/wealth/internal/model"
)

// Config represents the top-level config.yml.
type Config struct {
	Currency            string                   `yaml:"currency"`
	InflationRate       float64                  `yaml:"inflation_rate"`
	CapitalGainsTaxRate float64                  `yaml:"capital_gains_taxrate"`
	CSVDir              string                   `yaml:"csv_dir"`
	Retirement          RetirementConfig         `yaml:"retirement"`
	Accounts            map[string]AccountConfig `yaml:"accounts,omitempty"`
	Categories          map[string]string        `yaml:"categories,omitempty"` // name -> regex over all_data
}

// RetirementConfig drives projections that run until retirement.
type RetirementConfig struct {
	Birthday      time.Time `yaml:"birthday"`
	RetirementAge int       `yaml:"retirement_age"`
}

// AccountConfig is the user's data for one account named in CSV filenames.
type AccountConfig struct {
	IBAN   string          `yaml:"iban,omitempty"`
	Offset decimal.Decimal `yaml:"offset"`
}

// Load reads a config.yml from disk. Keys the file omits keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string, logger *log.Logger) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("config not found, using defaults", "path", path)
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the defaults every field falls back to.
func Default() *Config {
	return &Config{
		Currency:            "€",
		InflationRate:       0.02,
		CapitalGainsTaxRate: 0.27,
		CSVDir:              "../csv",
		Retirement: RetirementConfig{
			Birthday:      time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			RetirementAge: 67,
		},
	}
}

// RetirementYear is the year the user reaches the retirement age.
func (c *Config) RetirementYear() int {
	return c.Retirement.Birthday.Year() + c.Retirement.RetirementAge
}

// Account returns the configured account for name, matched case-insensitively.
// Unknown accounts get no IBAN and a zero offset.
func (c *Config) Account(name string) model.Account {
	for n, a := range c.Accounts {
		if strings.EqualFold(n, name) {
			return model.Account{Name: name, IBAN: a.IBAN, Offset: a.Offset}
		}
	}
	return model.Account{Name: name}
}

// IBANs returns the IBANs of all configured accounts.
func (c *Config) IBANs() []string {
	var ibans []string
	for _, a := range c.Accounts {
		if a.IBAN != "" {
			ibans = append(ibans, a.IBAN)
		}
	}
	sort.Strings(ibans)
	return ibans
}
