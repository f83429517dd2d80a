package calculation

import (
	"math"

	"github.com/arca/investment-simulator/internal/domain"
	"github.com/arca/investment-simulator/pkg/daycount"
)

// ProjectionCalculator grows a lump sum plus monthly contributions at a fixed
// annual rate, counting time in trading days.
type ProjectionCalculator struct {
	Convention daycount.Convention
	Logger     Logger
}

// NewProjectionCalculator creates a calculator for the given day-count convention
func NewProjectionCalculator(conv daycount.Convention) *ProjectionCalculator {
	return &ProjectionCalculator{Convention: conv, Logger: NopLogger{}}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (pc *ProjectionCalculator) SetLogger(l Logger) {
	if l == nil {
		pc.Logger = NopLogger{}
		return
	}
	pc.Logger = l
}

// Project returns the value at the end of the term.
//
// The lump sum compounds over the whole term. Each contribution is made at the
// start of month m (1-based) and compounds for the remaining periodMonths-m
// months, so the last one is not grown at all:
//
//	total = P*(1+r)^(n*d/D) + sum_{m=1..n} M*(1+r)^((n-m)*d/D)
//
// where d and D are the trading days per month and per year.
// Callers must reject a zero period before calling.
func (pc *ProjectionCalculator) Project(initialInvestment, monthlyInvestment float64, periodMonths int, annualRate float64) float64 {
	growth := 1 + annualRate

	initialAmount := initialInvestment * math.Pow(growth, pc.Convention.YearFraction(periodMonths))

	monthlyAmount := 0.0
	for month := 1; month <= periodMonths; month++ {
		remainingTerm := pc.Convention.YearFraction(periodMonths - month)
		monthlyAmount += monthlyInvestment * math.Pow(growth, remainingTerm)
	}

	return initialAmount + monthlyAmount
}

// ProjectInput runs Project for a validated input and one regime
func (pc *ProjectionCalculator) ProjectInput(in domain.ProjectionInput, rate domain.YieldRate) domain.ProjectionResult {
	total := pc.Project(in.InitialInvestment, in.MonthlyInvestment, in.PeriodMonths, rate.Rate)
	pc.Logger.Debugf("projected %s at %.4f over %d months: %.2f", rate.Key, rate.Rate, in.PeriodMonths, total)
	return domain.ProjectionResult{TotalValue: total}
}
