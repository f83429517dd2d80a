package output

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBRL(t *testing.T) *LocaleFormatter {
	t.Helper()
	f, err := NewLocaleFormatter("pt-BR", "R$")
	require.NoError(t, err)
	return f
}

func TestFormatCurrency(t *testing.T) {
	f := newBRL(t)
	tests := []struct {
		in   float64
		want string
	}{
		{1092.5, "R$\u00a01.092,50"},
		{7342.812273053557, "R$\u00a07.342,81"},
		{7660.213943709147, "R$\u00a07.660,21"},
		{42177.73279457188, "R$\u00a042.177,73"},
		{1234567.891, "R$\u00a01.234.567,89"},
		{999.999, "R$\u00a01.000,00"},
		{0.125, "R$\u00a00,13"},
		{1.005, "R$\u00a01,01"},
		{2.675, "R$\u00a02,68"},
		{10.075, "R$\u00a010,08"},
		{2.005, "R$\u00a02,01"},
		{-0.001, "R$\u00a00,00"}, // Intl keeps the sign here: "-R$ 0,00"
		{0, "R$\u00a00,00"},
		{-10, "-R$\u00a010,00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.FormatCurrency(tt.in), "FormatCurrency(%v)", tt.in)
	}
}

func TestFormatPercentage(t *testing.T) {
	f := newBRL(t)
	tests := []struct {
		in   float64
		want string
	}{
		{0.0925, "9,25%"},
		{0.18, "18,00%"},
		{0, "0,00%"},
		{0.001, "0,10%"},
		{12.5, "1250,00%"},
		{-0.05, "-5,00%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.FormatPercentage(tt.in), "FormatPercentage(%v)", tt.in)
	}
}

func TestNewLocaleFormatterUnsupportedLocale(t *testing.T) {
	_, err := NewLocaleFormatter("en-US", "$")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedLocale))
}

func TestParseLocale(t *testing.T) {
	tag, err := ParseLocale("pt-br")
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", tag.String())

	f := newBRL(t)
	assert.Equal(t, "pt-BR", f.Locale().String())

	_, err = ParseLocale("pt-PT")
	assert.True(t, errors.Is(err, ErrUnsupportedLocale))
}

func TestNewLocaleFormatterInvalidLocale(t *testing.T) {
	_, err := NewLocaleFormatter("not a locale!", "R$")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnsupportedLocale))
}
