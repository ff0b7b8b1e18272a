package web

import (
	"testing"
	"time"
)

func TestScoreFormatter(t *testing.T) {
	tests := []struct {
		s    float64
		want string
	}{
		{s: 0, want: "0.00"},
		{s: 1.3, want: "+1.30"},
		{s: 0.2, want: "+0.20"},
		{s: -1.8, want: "-1.80"},
		{s: 2.6, want: "+2.60"},
		{s: 10, want: "+10.00"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := scoreFormatter(tc.s)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestRankChangeFormatter(t *testing.T) {
	tests := map[string]struct {
		change   int
		hasPrior bool
		want     string
	}{
		"no prior":  {change: 0, hasPrior: false, want: ""},
		"up":        {change: 3, hasPrior: true, want: "▲3"},
		"down":      {change: -2, hasPrior: true, want: "▼2"},
		"no change": {change: 0, hasPrior: true, want: "-"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := rankChangeFormatter(tc.change, tc.hasPrior)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestDateFormatter(t *testing.T) {
	tests := []struct {
		d    time.Time
		want string
	}{
		{d: time.Time{}, want: "Never"},
		{d: time.Date(2024, 9, 7, 15, 30, 0, 0, time.UTC), want: "2024-09-07 15:30 UTC"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := dateFormatter(tc.d)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}
