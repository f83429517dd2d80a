package output

import (
	"errors"
	"fmt"
	"math"

	"github.com/arca/investment-simulator/pkg/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// nbsp separates the currency symbol from the amount, as CLDR currency patterns do.
const nbsp = "\u00a0"

// ErrUnsupportedLocale is returned for a well-formed locale whose currency
// pattern the formatter does not reproduce.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// supportedLocale is pt-BR. Its CLDR currency pattern is "¤ #,##0.00" with a
// non-breaking space after the symbol.
var supportedLocale = language.BrazilianPortuguese

// ParseLocale parses a BCP 47 tag and checks that it is supported
func ParseLocale(locale string) (language.Tag, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	if tag.String() != supportedLocale.String() {
		return language.Und, fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedLocale, tag, supportedLocale)
	}
	return tag, nil
}

// LocaleFormatter renders amounts and rates using one locale's number symbols.
// It is immutable and safe for concurrent use.
type LocaleFormatter struct {
	tag     language.Tag
	printer *message.Printer
	symbol  string
}

// NewLocaleFormatter creates a formatter for a BCP 47 locale such as "pt-BR"
func NewLocaleFormatter(locale, currencySymbol string) (*LocaleFormatter, error) {
	tag, err := ParseLocale(locale)
	if err != nil {
		return nil, err
	}
	return &LocaleFormatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
		symbol:  currencySymbol,
	}, nil
}

// Locale returns the language tag the formatter renders for
func (f *LocaleFormatter) Locale() language.Tag { return f.tag }

// FormatCurrency renders value as e.g. "R$ 1.092,50" (the space is U+00A0).
// The value is rounded to cents first, ties away from zero on its shortest
// decimal form. Negative amounts carry a leading minus: "-R$ 10,00". An
// amount that rounds to zero prints without a sign, so -0.001 is "R$ 0,00".
func (f *LocaleFormatter) FormatCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return f.symbol + nbsp + f.printer.Sprint(number.Decimal(value))
	}
	m := decimal.NewMoney(value)
	amount := f.printer.Sprint(number.Decimal(m.Abs().Float64(), number.Scale(2)))
	if m.IsNegative() {
		return "-" + f.symbol + nbsp + amount
	}
	return f.symbol + nbsp + amount
}

// FormatPercentage renders rate*100 with two decimals and no grouping:
// 0.0925 becomes "9,25%" in pt-BR.
func (f *LocaleFormatter) FormatPercentage(rate float64) string {
	pct := rate * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return f.printer.Sprint(number.Decimal(pct)) + "%"
	}
	rounded := decimal.Fixed(pct, 2).InexactFloat64()
	return f.printer.Sprint(number.Decimal(rounded, number.Scale(2), number.NoSeparator())) + "%"
}
