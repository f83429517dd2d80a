package daycount

import (
	"fmt"
)

// Brazilian market convention: 21 business days per month, 252 per year.
const (
	DefaultDaysPerMonth = 21
	DefaultDaysPerYear  = 252
)

// Convention describes a trading-day compounding calendar.
type Convention struct {
	DaysPerMonth int `yaml:"days_per_month" json:"days_per_month"`
	DaysPerYear  int `yaml:"days_per_year" json:"days_per_year"`
}

// Default returns the 21/252 trading-day convention
func Default() Convention {
	return Convention{DaysPerMonth: DefaultDaysPerMonth, DaysPerYear: DefaultDaysPerYear}
}

// TradingDays returns the number of trading days in the given number of months
func (c Convention) TradingDays(months int) int {
	return months * c.DaysPerMonth
}

// YearFraction converts a number of months to a fractional year by counting
// trading days. With the default convention 12 months is exactly 1.0.
func (c Convention) YearFraction(months int) float64 {
	return float64(c.TradingDays(months)) / float64(c.DaysPerYear)
}

// Validate checks that both day counts are positive
func (c Convention) Validate() error {
	if c.DaysPerMonth <= 0 {
		return fmt.Errorf("days per month must be positive, got %d", c.DaysPerMonth)
	}
	if c.DaysPerYear <= 0 {
		return fmt.Errorf("days per year must be positive, got %d", c.DaysPerYear)
	}
	return nil
}
