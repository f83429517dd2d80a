package simulator

import (
	"fmt"

	"github.com/arca/investment-simulator/internal/calculation"
	"github.com/arca/investment-simulator/internal/domain"
	"github.com/arca/investment-simulator/internal/output"
	"github.com/arca/investment-simulator/pkg/decimal"
)

// Simulator projects one input under every configured yield regime and
// formats the outcome. It holds no mutable state and is safe for concurrent use.
type Simulator struct {
	calc      *calculation.ProjectionCalculator
	formatter *output.LocaleFormatter
	regimes   []domain.YieldRate
	maxPeriod int
	logger    calculation.Logger
}

// New builds a simulator from a configuration
func New(cfg domain.Configuration) (*Simulator, error) {
	if len(cfg.Regimes) == 0 {
		return nil, fmt.Errorf("no yield regimes configured")
	}
	if cfg.MaxPeriodMonths < 0 {
		return nil, fmt.Errorf("max period months cannot be negative")
	}
	if err := cfg.DayCount.Validate(); err != nil {
		return nil, fmt.Errorf("day count: %w", err)
	}
	formatter, err := output.NewLocaleFormatter(cfg.Locale, cfg.CurrencySymbol)
	if err != nil {
		return nil, err
	}

	regimes := make([]domain.YieldRate, len(cfg.Regimes))
	copy(regimes, cfg.Regimes)

	return &Simulator{
		calc:      calculation.NewProjectionCalculator(cfg.DayCount),
		formatter: formatter,
		regimes:   regimes,
		maxPeriod: cfg.MaxPeriodMonths,
		logger:    calculation.NopLogger{},
	}, nil
}

// SetLogger sets the logger for the simulator and its calculator. If nil is provided, a no-op logger is used.
func (s *Simulator) SetLogger(l calculation.Logger) {
	if l == nil {
		l = calculation.NopLogger{}
	}
	s.logger = l
	s.calc.SetLogger(l)
}

// Regimes returns a copy of the configured regimes
func (s *Simulator) Regimes() []domain.YieldRate {
	out := make([]domain.YieldRate, len(s.regimes))
	copy(out, s.regimes)
	return out
}

// Simulate validates raw and projects it. Nothing is computed when
// validation fails; the error wraps domain.ErrInvalidInput.
func (s *Simulator) Simulate(raw RawInput) (domain.ProjectionResponse, error) {
	in, err := ParseInput(raw)
	if err != nil {
		return domain.ProjectionResponse{}, err
	}
	if s.maxPeriod > 0 && in.PeriodMonths > s.maxPeriod {
		return domain.ProjectionResponse{}, &domain.InputError{
			Param:  ParamPeriod,
			Value:  raw.Period,
			Reason: fmt.Sprintf("exceeds the maximum of %d months", s.maxPeriod),
		}
	}
	return s.Project(in), nil
}

// Project runs every regime for an already validated input
func (s *Simulator) Project(in domain.ProjectionInput) domain.ProjectionResponse {
	invested := decimal.NewMoney(in.Invested())

	projections := make([]domain.RegimeProjection, 0, len(s.regimes))
	for _, rate := range s.regimes {
		res := s.calc.ProjectInput(in, rate)
		earnings := decimal.NewMoney(res.TotalValue).Sub(invested)
		projections = append(projections, domain.RegimeProjection{
			Regime:            rate,
			Result:            res,
			FormattedRate:     s.formatter.FormatPercentage(rate.Rate),
			FormattedTotal:    s.formatter.FormatCurrency(res.TotalValue),
			FormattedEarnings: s.formatter.FormatCurrency(earnings.Float64()),
		})
	}
	s.logger.Debugf("projected %d regimes for %d months, invested %s", len(projections), in.PeriodMonths, invested)

	return domain.NewProjectionResponse(in, s.formatter.FormatCurrency(invested.Float64()), projections)
}
