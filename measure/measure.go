// Package measure provides the width functions used to lay out words.
// Widths are in whatever unit the measurer works in: terminal cells for
// Monospace and Graphemes, millimetres for Face.
package measure

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Measurer reports the visible width of a piece of text.
type Measurer interface {
	Width(s string) float64
}

// Monospace counts terminal cells: one per ordinary character, two for East
// Asian wide characters, none for combining marks.
type Monospace struct {
	// EastAsian treats ambiguous-width characters as wide.
	EastAsian bool
}

// Width implements Measurer.
func (m Monospace) Width(s string) float64 {
	if !m.EastAsian {
		return float64(runewidth.StringWidth(s))
	}
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = true
	return float64(cond.StringWidth(s))
}

// Graphemes measures grapheme clusters with uniseg, which handles emoji
// sequences (flags, ZWJ families) as a single two-cell cluster.
type Graphemes struct{}

// Width implements Measurer.
func (Graphemes) Width(s string) float64 {
	return float64(uniseg.StringWidth(s))
}

// Func adapts a plain function to Measurer.
type Func func(s string) float64

// Width implements Measurer.
func (f Func) Width(s string) float64 { return f(s) }
