package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/arca/investment-simulator/internal/domain"
)

// ConsoleFormatter prints a short side-by-side comparison of every regime.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(resp *domain.ProjectionResponse) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INVESTMENT PROJECTION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Period:   %d months\n", resp.Input.PeriodMonths)
	fmt.Fprintf(&buf, "Invested: %s\n", resp.FormattedInvested)
	fmt.Fprintln(&buf)

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Regime\tRate\tTotal\tEarnings")
	for _, rp := range resp.Regimes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", rp.Regime.Label, rp.FormattedRate, rp.FormattedTotal, rp.FormattedEarnings)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
