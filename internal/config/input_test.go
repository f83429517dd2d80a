package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arca/investment-simulator/pkg/daycount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestDefaultConfigurationIsValid(t *testing.T) {
	config := DefaultConfiguration()
	require.NoError(t, NewInputParser().ValidateConfiguration(&config))

	assert.Equal(t, "pt-BR", config.Locale)
	assert.Equal(t, daycount.Default(), config.DayCount)
	require.Len(t, config.Regimes, 2)
	assert.Equal(t, 0.0925, config.Regimes[0].Rate)
	assert.Equal(t, 0.18, config.Regimes[1].Rate)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "locale: pt-BR\n" +
		"currency_symbol: \"R$\"\n" +
		"day_count:\n" +
		"  days_per_month: 22\n" +
		"  days_per_year: 264\n" +
		"regimes:\n" +
		"  - key: cdi\n" +
		"    label: CDI\n" +
		"    rate: 0.1065\n" +
		"  - key: arca\n" +
		"    label: Arca\n" +
		"    rate: 0.18\n" +
		"  - key: poupanca\n" +
		"    label: Poupança\n" +
		"    rate: 0.0617\n"

	path := filepath.Join(t.TempDir(), "simulator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0644))

	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, daycount.Convention{DaysPerMonth: 22, DaysPerYear: 264}, config.DayCount)
	require.Len(t, config.Regimes, 3)
	assert.Equal(t, "cdi", config.Regimes[0].Key)
	assert.Equal(t, "Poupança", config.Regimes[2].Label)
	// omitted fields keep their defaults
	assert.Equal(t, DefaultMaxPeriodMonths, config.MaxPeriodMonths)
}

func TestLoadFromFile_PartialFileKeepsDefaults(t *testing.T) {
	config, err := NewInputParser().Parse([]byte("currency_symbol: \"BRL\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "BRL", config.CurrencySymbol)
	assert.Equal(t, "pt-BR", config.Locale)
	assert.Equal(t, daycount.Default(), config.DayCount)
	assert.Len(t, config.Regimes, 2)
}

func TestLoadFromFile_EmptyName(t *testing.T) {
	config, err := NewInputParser().LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfiguration(), *config)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	config, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	config, err := NewInputParser().Parse([]byte("regimes: [unterminated"))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "bad locale", yaml: "locale: \"not a locale\"\n", wantErr: "invalid locale"},
		{name: "unsupported locale", yaml: "locale: en-US\n", wantErr: "unsupported locale"},
		{name: "empty symbol", yaml: "currency_symbol: \"\"\n", wantErr: "currency symbol is required"},
		{name: "zero days per year", yaml: "day_count:\n  days_per_month: 21\n  days_per_year: 0\n", wantErr: "days per year must be positive"},
		{name: "negative max period", yaml: "max_period_months: -1\n", wantErr: "max period months"},
		{name: "no regimes", yaml: "regimes: []\n", wantErr: "no regimes provided"},
		{name: "empty key", yaml: "regimes:\n  - key: \"\"\n    rate: 0.1\n", wantErr: "regime 0 validation failed"},
		{name: "key with dash", yaml: "regimes:\n  - key: tesouro-direto\n    rate: 0.1\n", wantErr: "must start with a letter"},
		{name: "rate at -100%", yaml: "regimes:\n  - key: wipeout\n    rate: -1\n", wantErr: "-100%"},
		{name: "infinite rate", yaml: "regimes:\n  - key: moon\n    rate: .inf\n", wantErr: "rate must be finite"},
		{name: "duplicate key", yaml: "regimes:\n  - key: a\n    rate: 0.1\n  - key: a\n    rate: 0.2\n", wantErr: "duplicate regime key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "configuration validation failed")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveConfigurationRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	config := DefaultConfiguration()
	config.Regimes[1].Rate = 0.2

	require.NoError(t, SaveConfiguration(&config, path))

	loaded, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config, *loaded)
}

func TestParseServerSettingsFrom_Defaults(t *testing.T) {
	s, err := ParseServerSettingsFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, ":8080", s.Addr)
	assert.Equal(t, "", s.ConfigPath)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, []string{"*"}, s.CORSOrigins)
	assert.Equal(t, 10*time.Second, s.ShutdownTimeout)
}

func TestParseServerSettingsFrom_Overrides(t *testing.T) {
	s, err := ParseServerSettingsFrom(map[string]string{
		"SIMULATOR_ADDR":             "127.0.0.1:9090",
		"SIMULATOR_CONFIG":           "/etc/simulator.yaml",
		"SIMULATOR_LOG_LEVEL":        "debug",
		"SIMULATOR_CORS_ORIGINS":     "https://arca.example,https://app.arca.example",
		"SIMULATOR_SHUTDOWN_TIMEOUT": "3s",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", s.Addr)
	assert.Equal(t, "/etc/simulator.yaml", s.ConfigPath)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, []string{"https://arca.example", "https://app.arca.example"}, s.CORSOrigins)
	assert.Equal(t, 3*time.Second, s.ShutdownTimeout)
}

func TestParseServerSettingsFrom_BadDuration(t *testing.T) {
	_, err := ParseServerSettingsFrom(map[string]string{"SIMULATOR_SHUTDOWN_TIMEOUT": "soon"})
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SIMULATOR_DOTENV_PROBE=loaded\n"), 0644))
	t.Setenv("SIMULATOR_DOTENV_PROBE", "")
	require.NoError(t, os.Unsetenv("SIMULATOR_DOTENV_PROBE"))

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "loaded", os.Getenv("SIMULATOR_DOTENV_PROBE"))
}

func TestShippedExampleMatchesDefaults(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(filepath.Join("..", "..", "configs", "simulator.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfiguration(), *config)
}
