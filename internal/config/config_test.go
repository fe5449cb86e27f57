package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Accounts = map[string]AccountConfig{
		"checking": {IBAN: "DE00100000000000000001", Offset: decimal.RequireFromString("100.50")},
	}
	cfg.Categories = map[string]string{"groceries": "rewe|edeka"}

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Currency, got.Currency)
	assert.InDelta(t, cfg.InflationRate, got.InflationRate, 0.001)
	assert.InDelta(t, cfg.CapitalGainsTaxRate, got.CapitalGainsTaxRate, 0.001)
	assert.Equal(t, cfg.CSVDir, got.CSVDir)
	assert.True(t, cfg.Retirement.Birthday.Equal(got.Retirement.Birthday))
	assert.Equal(t, cfg.Retirement.RetirementAge, got.Retirement.RetirementAge)
	require.Len(t, got.Accounts, 1)
	assert.Equal(t, "DE00100000000000000001", got.Accounts["checking"].IBAN)
	assert.True(t, decimal.RequireFromString("100.5").Equal(got.Accounts["checking"].Offset))
	assert.Equal(t, "rewe|edeka", got.Categories["groceries"])
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "€", cfg.Currency)
	assert.InDelta(t, 0.02, cfg.InflationRate, 0.001)
	assert.InDelta(t, 0.27, cfg.CapitalGainsTaxRate, 0.001)
	assert.Equal(t, 67, cfg.Retirement.RetirementAge)
	assert.Equal(t, 2067, cfg.RetirementYear())
	assert.Empty(t, cfg.Accounts)
}

func TestLoad_MergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `
currency: "$"
retirement:
  retirement_age: 70
accounts:
  checking:
    iban: DE00100000000000000001
    offset: 100
  savings:
    iban: DE00100000000000000002
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "$", cfg.Currency)
	assert.InDelta(t, 0.02, cfg.InflationRate, 0.001, "unspecified key keeps default")
	assert.Equal(t, 70, cfg.Retirement.RetirementAge)
	assert.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Retirement.Birthday, "nested default kept")
	assert.Equal(t, 2070, cfg.RetirementYear())
	assert.Equal(t, "100", cfg.Accounts["checking"].Offset.String())
	assert.True(t, cfg.Accounts["savings"].Offset.IsZero())
}

func TestAccount(t *testing.T) {
	cfg := Default()
	cfg.Accounts = map[string]AccountConfig{
		"Checking": {IBAN: "DE01", Offset: decimal.NewFromInt(100)},
		"savings":  {IBAN: "DE02"},
		"cash":     {},
	}

	acct := cfg.Account("checking")
	assert.Equal(t, "checking", acct.Name)
	assert.Equal(t, "DE01", acct.IBAN)
	assert.Equal(t, "100", acct.Offset.String())

	missing := cfg.Account("unknown")
	assert.Empty(t, missing.IBAN)
	assert.True(t, missing.Offset.IsZero())

	assert.Equal(t, []string{"DE01", "DE02"}, cfg.IBANs())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	logger := log.New(io.Discard)

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yml"), logger)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("currency: [\n"), 0o644))
	_, err = LoadOrDefault(path, logger)
	assert.ErrorContains(t, err, "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "csv_dir: ../csv")
	assert.Contains(t, contents, "inflation_rate: 0.02")
	assert.Contains(t, contents, "retirement_age: 67")
	assert.NotContains(t, contents, "accounts:")
}
