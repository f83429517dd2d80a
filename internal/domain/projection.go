package domain

import (
	"encoding/json"

	"github.com/arca/investment-simulator/pkg/daycount"
)

// ProjectionInput is one validated simulation request
type ProjectionInput struct {
	InitialInvestment float64 `json:"initialInvestment"`
	MonthlyInvestment float64 `json:"monthlyInvestment"`
	PeriodMonths      int     `json:"period"`
}

// Invested returns the total amount contributed over the term, before any growth
func (in ProjectionInput) Invested() float64 {
	return in.InitialInvestment + in.MonthlyInvestment*float64(in.PeriodMonths)
}

// YieldRate is a fixed annual compounding rate for one regime.
// Rate is a fraction: 0.0925 means 9.25% a year.
type YieldRate struct {
	Key   string  `yaml:"key" json:"key"`
	Label string  `yaml:"label" json:"label"`
	Rate  float64 `yaml:"rate" json:"rate"`
}

// ProjectionResult is the outcome of one calculation for one rate
type ProjectionResult struct {
	TotalValue float64 `json:"totalValue"`
}

// RegimeProjection pairs a regime with its result and display strings
type RegimeProjection struct {
	Regime            YieldRate
	Result            ProjectionResult
	FormattedRate     string
	FormattedTotal    string
	FormattedEarnings string // total minus invested, console output only
}

// ProjectionResponse is the final payload returned to the caller.
// Regimes keep the configured order.
type ProjectionResponse struct {
	Input             ProjectionInput
	FormattedInvested string
	Regimes           []RegimeProjection
}

// NewProjectionResponse builds a response that owns its own copy of regimes
func NewProjectionResponse(input ProjectionInput, formattedInvested string, regimes []RegimeProjection) ProjectionResponse {
	owned := make([]RegimeProjection, len(regimes))
	copy(owned, regimes)
	return ProjectionResponse{Input: input, FormattedInvested: formattedInvested, Regimes: owned}
}

// Regime looks up a regime projection by key
func (r ProjectionResponse) Regime(key string) (RegimeProjection, bool) {
	for _, rp := range r.Regimes {
		if rp.Regime.Key == key {
			return rp, true
		}
	}
	return RegimeProjection{}, false
}

// MarshalJSON renders the wire shape:
//
//	{"period": 12, "rates": {"selic": "9,25%"}, "selicProfitability": "R$ 7.342,81"}
func (r ProjectionResponse) MarshalJSON() ([]byte, error) {
	rates := make(map[string]string, len(r.Regimes))
	payload := make(map[string]any, len(r.Regimes)+2)
	payload["period"] = r.Input.PeriodMonths
	for _, rp := range r.Regimes {
		rates[rp.Regime.Key] = rp.FormattedRate
		payload[ProfitabilityField(rp.Regime.Key)] = rp.FormattedTotal
	}
	payload["rates"] = rates
	return json.Marshal(payload)
}

// ProfitabilityField returns the JSON field carrying a regime's formatted total
func ProfitabilityField(key string) string {
	return key + "Profitability"
}

// Configuration is the process-wide, read-only simulator configuration
type Configuration struct {
	Locale         string              `yaml:"locale" json:"locale"`
	CurrencySymbol string              `yaml:"currency_symbol" json:"currency_symbol"`
	DayCount       daycount.Convention `yaml:"day_count" json:"day_count"`
	Regimes        []YieldRate         `yaml:"regimes" json:"regimes"`

	// MaxPeriodMonths bounds the term a request may ask for; 0 means no limit.
	MaxPeriodMonths int `yaml:"max_period_months" json:"max_period_months"`
}
