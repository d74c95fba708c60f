package score

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		want  Band
	}{
		{0.0, BandLow},
		{0.44, BandLow},
		{0.45, BandUncertain},
		{0.74, BandUncertain},
		{0.75, BandCredible},
		{1.0, BandCredible},
		{-0.5, BandLow},     // clamped
		{1.5, BandCredible}, // clamped
	}

	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestBandString(t *testing.T) {
	if BandCredible.String() != "credible" {
		t.Errorf("credible label = %q", BandCredible.String())
	}
	if BandUncertain.String() != "uncertain" {
		t.Errorf("uncertain label = %q", BandUncertain.String())
	}
	if BandLow.String() != "low credibility" {
		t.Errorf("low label = %q", BandLow.String())
	}
}

func TestFormat(t *testing.T) {
	if got := Format(0.82); got != "82%" {
		t.Errorf("Format(0.82) = %q", got)
	}
	if got := Format(1.7); got != "100%" {
		t.Errorf("Format clamps: got %q", got)
	}
}

func TestBar(t *testing.T) {
	bar := Bar(0.5, 16)
	if !strings.Contains(bar, "█") || !strings.Contains(bar, "░") {
		t.Errorf("half-full bar missing fill or empty cells: %q", bar)
	}
	if !strings.Contains(bar, "50%") || !strings.Contains(bar, "uncertain") {
		t.Errorf("bar missing percentage or band label: %q", bar)
	}

	full := Bar(1.0, 16)
	if strings.Contains(full, "░") {
		t.Errorf("full bar should have no empty cells: %q", full)
	}
	if empty := Bar(0, 16); strings.Contains(empty, "█") {
		t.Errorf("zero bar should have no filled cells: %q", empty)
	}
}
