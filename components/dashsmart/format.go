package dashsmart

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatValue renders a cell or axis value under a format rule. The function
// is pure and locale-free so rendered output is reproducible:
//
//	currency: $1.5M / $2.5K / $42
//	percent:  12.5%
//	number:   1,234,567 (comma grouped)
//	default:  1.5M / 2.5K / comma grouped
//
// Non-numeric values pass through unchanged.
func FormatValue(value any, format Format) string {
	num, ok := numericValue(value)
	if !ok {
		return fmt.Sprintf("%v", value)
	}
	switch format {
	case FormatCurrency:
		switch {
		case num >= 1_000_000:
			return fmt.Sprintf("$%.1fM", num/1_000_000)
		case num >= 1_000:
			return fmt.Sprintf("$%.1fK", num/1_000)
		default:
			return fmt.Sprintf("$%.0f", num)
		}
	case FormatPercent:
		return fmt.Sprintf("%.1f%%", num)
	case FormatNumber:
		return groupDigits(num)
	default:
		switch {
		case num >= 1_000_000:
			return fmt.Sprintf("%.1fM", num/1_000_000)
		case num >= 1_000:
			return fmt.Sprintf("%.1fK", num/1_000)
		default:
			return groupDigits(num)
		}
	}
}

func groupDigits(num float64) string {
	if num == math.Trunc(num) {
		return humanize.Comma(int64(num))
	}
	return humanize.Commaf(num)
}

// numericValue unwraps the numeric types JSON decoding and callers produce.
// Numeric strings are intentionally not parsed: a string value is display
// text and passes through verbatim.
func numericValue(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	}
	return 0, false
}
