package output

import (
	"encoding/json"

	"github.com/arca/investment-simulator/internal/domain"
)

// JSONFormatter serializes the response in the API wire shape, pretty-printed.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(resp *domain.ProjectionResponse) ([]byte, error) {
	b, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
