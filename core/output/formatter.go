// Package output provides output formatting for evaluation results.
// This package produces human and machine-readable outputs; it owns all
// number formatting so the engine stays presentation-free.
package output

import (
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"roicheck/core/types"
	"roicheck/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is a human-readable terminal report
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *types.ROIResult) error
}

// New returns the formatter for a format name.
func New(format Format) (Formatter, error) {
	switch format {
	case FormatText:
		return &TextFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %q", format)
	}
}

// Currency formats a dollar amount with thousands grouping and no
// cents, e.g. "$25,000".
func Currency(d decimal.Decimal) string {
	rounded := d.Round(0)
	neg := rounded.IsNegative()
	digits := rounded.Abs().String()

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// Percent formats a rate as a whole percentage, e.g. 0.35 -> "35%".
func Percent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).Round(0).String() + "%"
}

// Hours formats a monthly hours figure, e.g. "10.4 h/mo".
func Hours(d decimal.Decimal) string {
	return d.Round(1).String() + " h/mo"
}
