package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arca/investment-simulator/internal/domain"
)

// GenerateReport formats resp with the named formatter and writes it to w.
func GenerateReport(w io.Writer, resp *domain.ProjectionResponse, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(resp)
	if err != nil {
		return fmt.Errorf("format %s report: %w", f.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s report: %w", f.Name(), err)
	}
	return nil
}
