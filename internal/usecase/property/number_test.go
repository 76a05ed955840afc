package property

import (
	"testing"

	"github.com/kailas-cloud/docview/internal/domain/schema"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		name   string
		v      float64
		format schema.NumberFormat
		want   string
	}{
		{"commas", 1234567.5, schema.FormatNumberWithCommas, "1,234,567.5"},
		{"commas small", 123, schema.FormatNumberWithCommas, "123"},
		{"percent", 0.125, schema.FormatPercent, "12.5%"},
		{"dollar", 1234.5, schema.FormatDollar, "$1,234.50"},
		{"dollar rounds", 2.999, schema.FormatDollar, "$3.00"},
		{"euro", 9.1, schema.FormatEuro, "€9.10"},
		{"pound", 0.5, schema.FormatPound, "£0.50"},
		{"yen whole", 1234.6, schema.FormatYen, "¥1,235"},
		{"rupee", 100000, schema.FormatRupee, "₹100,000.00"},
		{"won whole", 999.4, schema.FormatWon, "₩999"},
		{"yuan", 42, schema.FormatYuan, "CN¥42.00"},
		{"negative dollar", -1234.5, schema.FormatDollar, "$-1,234.50"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := formatNumber(tc.v, tc.format)
			if !ok {
				t.Fatal("expected a formatted value")
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFormatNumber_UndeclaredFormat(t *testing.T) {
	if _, ok := formatNumber(1, ""); ok {
		t.Error("expected false for undeclared format")
	}
	if _, ok := formatNumber(1, "fortnights"); ok {
		t.Error("expected false for unknown format")
	}
}

func TestGroupThousands(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"1234567", "1,234,567"},
		{"1234.56", "1,234.56"},
		{"-1234", "-1,234"},
	}
	for _, tc := range cases {
		if got := groupThousands(tc.in); got != tc.want {
			t.Errorf("groupThousands(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
