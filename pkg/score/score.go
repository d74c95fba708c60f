// Package score formats credibility scores for display.
//
// The score itself is computed by the analysis service; this package
// only classifies it into display bands and renders it. No scoring
// logic lives client-side.
package score

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Band is a coarse credibility classification for display.
type Band int

const (
	// BandLow marks scores below 0.45.
	BandLow Band = iota
	// BandUncertain marks scores in [0.45, 0.75).
	BandUncertain
	// BandCredible marks scores of 0.75 and above.
	BandCredible
)

// Band thresholds.
const (
	credibleThreshold  = 0.75
	uncertainThreshold = 0.45
)

var (
	styleCredible  = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))  // Green
	styleUncertain = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // Amber
	styleLow       = lipgloss.NewStyle().Foreground(lipgloss.Color("167")) // Soft red
	styleEmpty     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Dim gray
)

// Classify maps a score to its display band. Scores are clamped to
// [0,1] first, so out-of-range service values never panic the UI.
func Classify(s float64) Band {
	s = clamp(s)
	switch {
	case s >= credibleThreshold:
		return BandCredible
	case s >= uncertainThreshold:
		return BandUncertain
	default:
		return BandLow
	}
}

// String returns the band's display label.
func (b Band) String() string {
	switch b {
	case BandCredible:
		return "credible"
	case BandUncertain:
		return "uncertain"
	default:
		return "low credibility"
	}
}

// style returns the band's terminal style.
func (b Band) style() lipgloss.Style {
	switch b {
	case BandCredible:
		return styleCredible
	case BandUncertain:
		return styleUncertain
	default:
		return styleLow
	}
}

// Format renders a score as a percentage, e.g. "82%".
func Format(s float64) string {
	return fmt.Sprintf("%.0f%%", clamp(s)*100)
}

// Bar renders a terminal score bar of the given width, colored by band:
//
//	████████████░░░░  82% credible
func Bar(s float64, width int) string {
	if width < 4 {
		width = 4
	}
	s = clamp(s)
	band := Classify(s)

	filled := int(s*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	bar := band.style().Render(strings.Repeat("█", filled)) +
		styleEmpty.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s  %s %s", bar, Format(s), band.style().Render(band.String()))
}

func clamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
