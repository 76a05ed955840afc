package property

import (
	"math"
	"strconv"
	"strings"

	"github.com/kailas-cloud/docview/internal/domain/schema"
)

// formatNumber applies one of the nine fixed formatters. Returns false for an
// undeclared format, in which case the raw rich text renders unchanged.
func formatNumber(v float64, f schema.NumberFormat) (string, bool) {
	switch f {
	case schema.FormatNumberWithCommas:
		return groupThousands(strconv.FormatFloat(v, 'f', -1, 64)), true
	case schema.FormatPercent:
		return groupThousands(strconv.FormatFloat(v*100, 'f', -1, 64)) + "%", true
	case schema.FormatDollar:
		return "$" + fixedDecimal(v, 2), true
	case schema.FormatEuro:
		return "€" + fixedDecimal(v, 2), true
	case schema.FormatPound:
		return "£" + fixedDecimal(v, 2), true
	case schema.FormatYen:
		return "¥" + fixedDecimal(v, 0), true
	case schema.FormatRupee:
		return "₹" + fixedDecimal(v, 2), true
	case schema.FormatWon:
		return "₩" + fixedDecimal(v, 0), true
	case schema.FormatYuan:
		return "CN¥" + fixedDecimal(v, 2), true
	}
	return "", false
}

// fixedDecimal rounds to the given decimal places, pads the fraction, and
// groups the integer part with thousands separators.
func fixedDecimal(v float64, places int) string {
	shift := math.Pow(10, float64(places))
	rounded := math.Round(v*shift) / shift
	s := strconv.FormatFloat(rounded, 'f', places, 64)
	return groupThousands(s)
}

// groupThousands inserts comma separators into the integer part of a
// formatted decimal string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}

	out := intPart
	if hasFrac {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
