package command

import "testing"

func TestNormalizePrice(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  PriceLevel
	}{
		{"exact digit", "2", "2"},
		{"digit with spaces", " 3 ", "3"},
		{"json number", float64(1), "1"},
		{"float stringifying to digit", "4.0", "4"},
		{"csv picks first", "2,4", "2"},
		{"longer csv picks first", "1,2,3", "1"},
		{"range picks lower bound", "1-3", "1"},
		{"reversed range picks lower bound", "3-1", "1"},
		{"range with spaces", "3 - 1", "1"},
		{"list mixed with range is unrecognized", "1,2-3", ""},
		{"dollar run", "$$$", "3"},
		{"single dollar", "$", "1"},
		{"cheap keyword", "cheap", "1"},
		{"budget keyword", "Budget", "1"},
		{"moderate keyword", "moderate", "2"},
		{"mid-range keyword", "mid-range", "2"},
		{"expensive keyword", "expensive", "3"},
		{"premium keyword", "PREMIUM", "3"},
		{"luxury keyword", "luxury", "4"},
		{"empty string", "", ""},
		{"unrecognized", "fancy-ish", ""},
		{"nil", nil, ""},
		{"out of range digit", "7", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePrice(tc.input); got != tc.want {
				t.Fatalf("NormalizePrice(%v) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizePrice_DollarRunOverflowsEnum(t *testing.T) {
	// Five dollar signs normalize to "5", which the enum rejects later.
	if got := NormalizePrice("$$$$$"); got != "5" {
		t.Fatalf("expected overflow tier 5, got %q", got)
	}
}
