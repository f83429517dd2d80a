package config

import (
	"fmt"
	"math"
	"os"
	"regexp"

	"github.com/arca/investment-simulator/internal/domain"
	"github.com/arca/investment-simulator/internal/output"
	"github.com/arca/investment-simulator/pkg/daycount"
	"gopkg.in/yaml.v3"
)

// DefaultMaxPeriodMonths caps requests at one hundred years.
const DefaultMaxPeriodMonths = 1200

// regimeKeyPattern keeps keys usable as JSON field prefixes.
var regimeKeyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// DefaultConfiguration returns the built-in Selic vs Arca comparison
func DefaultConfiguration() domain.Configuration {
	return domain.Configuration{
		Locale:         "pt-BR",
		CurrencySymbol: "R$",
		DayCount:       daycount.Default(),
		Regimes: []domain.YieldRate{
			{Key: "selic", Label: "Selic", Rate: 0.0925},
			{Key: "arca", Label: "Arca", Rate: 0.18},
		},
		MaxPeriodMonths: DefaultMaxPeriodMonths,
	}
}

// InputParser handles parsing of configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file. An empty filename
// yields the default configuration.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	if filename == "" {
		config := DefaultConfiguration()
		return &config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := DefaultConfiguration()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if _, err := output.ParseLocale(config.Locale); err != nil {
		return fmt.Errorf("invalid locale: %w", err)
	}
	if config.CurrencySymbol == "" {
		return fmt.Errorf("currency symbol is required")
	}
	if err := config.DayCount.Validate(); err != nil {
		return fmt.Errorf("day count: %w", err)
	}
	if config.MaxPeriodMonths < 0 {
		return fmt.Errorf("max period months cannot be negative")
	}

	if len(config.Regimes) == 0 {
		return fmt.Errorf("no regimes provided")
	}
	seen := make(map[string]bool, len(config.Regimes))
	for i, regime := range config.Regimes {
		if err := ip.validateRegime(&regime); err != nil {
			return fmt.Errorf("regime %d validation failed: %w", i, err)
		}
		if seen[regime.Key] {
			return fmt.Errorf("duplicate regime key %q", regime.Key)
		}
		seen[regime.Key] = true
	}

	return nil
}

// validateRegime validates a single yield regime
func (ip *InputParser) validateRegime(regime *domain.YieldRate) error {
	if !regimeKeyPattern.MatchString(regime.Key) {
		return fmt.Errorf("key %q must start with a letter and contain only letters, digits or underscores", regime.Key)
	}
	if math.IsNaN(regime.Rate) || math.IsInf(regime.Rate, 0) {
		return fmt.Errorf("rate must be finite")
	}
	if regime.Rate <= -1 {
		return fmt.Errorf("rate cannot be -100%% or lower")
	}
	return nil
}

// SaveConfiguration writes config as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
