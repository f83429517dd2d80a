package simulator

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/arca/investment-simulator/internal/domain"
)

// Query parameter names accepted by the simulator.
const (
	ParamInitialInvestment = "initialInvestment"
	ParamMonthlyInvestment = "monthlyInvestment"
	ParamPeriod            = "period"
)

// RawInput carries the three request values exactly as received
type RawInput struct {
	InitialInvestment string
	MonthlyInvestment string
	Period            string
}

// ParseInput coerces and validates a raw request.
//
// Each value is parsed as a number, falling back to 0 when it is missing or
// unparsable. The request is then rejected if any value is zero, so a real
// zero initial or monthly investment is rejected just like a missing one.
// Non-finite and negative values, and a fractional period, are rejected too.
// Every offending parameter is reported; all wrap domain.ErrInvalidInput.
func ParseInput(raw RawInput) (domain.ProjectionInput, error) {
	initial := coerce(raw.InitialInvestment)
	monthly := coerce(raw.MonthlyInvestment)
	period := coerce(raw.Period)

	var errs []error
	if err := checkAmount(ParamInitialInvestment, raw.InitialInvestment, initial); err != nil {
		errs = append(errs, err)
	}
	if err := checkAmount(ParamMonthlyInvestment, raw.MonthlyInvestment, monthly); err != nil {
		errs = append(errs, err)
	}
	if err := checkAmount(ParamPeriod, raw.Period, period); err != nil {
		errs = append(errs, err)
	} else if period != math.Trunc(period) || period > math.MaxInt32 {
		errs = append(errs, &domain.InputError{Param: ParamPeriod, Value: raw.Period, Reason: "must be a whole number of months"})
	}
	if len(errs) > 0 {
		return domain.ProjectionInput{}, errors.Join(errs...)
	}

	return domain.ProjectionInput{
		InitialInvestment: initial,
		MonthlyInvestment: monthly,
		PeriodMonths:      int(period),
	}, nil
}

// coerce parses s as a number, returning 0 if it is empty or malformed.
// Unsigned 0x, 0o and 0b integer literals are accepted; hex floats such as
// "0x1p4" and signed prefixed literals are malformed.
func coerce(s string) float64 {
	s = strings.TrimSpace(s)
	if len(s) > 2 && s[0] == '0' {
		if base, ok := radixPrefixes[s[1]]; ok {
			v, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0
			}
			return float64(v)
		}
	}
	if strings.ContainsAny(s, "xXpP_") {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

var radixPrefixes = map[byte]int{
	'x': 16, 'X': 16,
	'o': 8, 'O': 8,
	'b': 2, 'B': 2,
}

func checkAmount(param, raw string, v float64) *domain.InputError {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return &domain.InputError{Param: param, Value: raw, Reason: "must be a finite number"}
	case v == 0:
		return &domain.InputError{Param: param, Value: raw, Reason: "missing or zero"}
	case v < 0:
		return &domain.InputError{Param: param, Value: raw, Reason: "must not be negative"}
	}
	return nil
}
