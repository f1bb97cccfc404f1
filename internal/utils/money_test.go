package utils

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{5250000, "Rp 5.250.000"},
		{12250000, "Rp 12.250.000"},
		{-1500, "-Rp 1.500"},
	}
	for _, c := range cases {
		if got := FormatRupiah(c.in); got != c.want {
			t.Fatalf("FormatRupiah(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseRupiahToInt(t *testing.T) {
	if v, err := ParseRupiahToInt("Rp 5.250.000"); err != nil || v != 5250000 {
		t.Fatalf("parse failed: %d %v", v, err)
	}
	if _, err := ParseRupiahToInt("Rp "); err == nil {
		t.Fatalf("empty amount should error")
	}
}

func TestFormatDateIndonesian(t *testing.T) {
	if got := FormatDateIndonesian("2025-08-17"); got != "17 Agustus 2025" {
		t.Fatalf("unexpected result: %q", got)
	}
	// unparsable input passes through
	if got := FormatDateIndonesian("besok"); got != "besok" {
		t.Fatalf("unparsable date should pass through, got %q", got)
	}
}
