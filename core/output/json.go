// Package output - JSON formatter
package output

import (
	"encoding/json"
	"io"

	"roicheck/core/types"
	"roicheck/internal/errors"
)

// JSONFormatter renders a result as indented JSON.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the result as JSON.
func (f *JSONFormatter) Render(w io.Writer, result *types.ROIResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return errors.Render("encoding result", err)
	}
	return nil
}
