// Package linebreak partitions a sequence of measured words into lines.
//
// Markup words carry no visible width and must not influence where lines
// break, so Break removes them before running an Algorithm and splices them
// back into the resulting lines afterwards (see Strip and Restore). The
// algorithms themselves only ever see markup-free input.
package linebreak

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoLineWidths is returned when no target width was supplied.
	ErrNoLineWidths = errors.New("linebreak: 缺少行宽")
	// ErrInvalidLineWidth is returned for a zero, negative or non-finite width.
	ErrInvalidLineWidth = errors.New("linebreak: 行宽必须为正数")
	// ErrOverflow is returned when no finite-cost partition exists.
	ErrOverflow = errors.New("linebreak: 无法找到有限代价的分行方案")
)

// Box is the width view of one word.
type Box struct {
	Width float64 // width of the visible text
	Space float64 // width of the trailing space, dropped at the end of a line

	Markup  bool // zero-width markup, never considered when choosing breaks
	Closing bool // markup that stays with the preceding text at a line boundary
}

// Range is a half-open interval [Start, End) of box indices forming one line.
type Range struct {
	Start, End int
}

// Len returns the number of boxes in r.
func (r Range) Len() int { return r.End - r.Start }

// Algorithm chooses line lengths for markup-free boxes. widths[n] is the
// target width of line n; lines past the end use the last entry. The result
// lists the number of boxes on each line and must sum to len(boxes); an empty
// input yields a single empty line.
type Algorithm interface {
	Lines(boxes []Box, widths []float64) ([]int, error)
}

// Break partitions boxes into lines using alg (OptimalFit when nil).
// Markup boxes are excluded while breaking and reattached afterwards.
func Break(boxes []Box, widths []float64, alg Algorithm) ([]Range, error) {
	if err := ValidateWidths(widths); err != nil {
		return nil, err
	}
	if alg == nil {
		alg = OptimalFit{}
	}

	clean, removed := Strip(boxes)
	lengths, err := alg.Lines(clean, widths)
	if err != nil {
		return nil, err
	}
	if len(removed) == 0 {
		return ranges(lengths, len(boxes)), nil
	}
	return Restore(boxes, removed, lengths), nil
}

// ValidateWidths reports whether widths can be used as line targets.
func ValidateWidths(widths []float64) error {
	if len(widths) == 0 {
		return ErrNoLineWidths
	}
	for i, w := range widths {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return fmt.Errorf("%w: 第 %d 行宽度为 %g", ErrInvalidLineWidth, i, w)
		}
	}
	return nil
}

// ranges converts line lengths into consecutive ranges; the last line is
// stretched to total so no box is ever dropped.
func ranges(lengths []int, total int) []Range {
	out := make([]Range, 0, len(lengths))
	start := 0
	for i, n := range lengths {
		end := start + n
		if i == len(lengths)-1 {
			end = total
		}
		out = append(out, Range{Start: start, End: end})
		start = end
	}
	return out
}

func widthAt(widths []float64, line int) float64 {
	if line < len(widths) {
		return widths[line]
	}
	return widths[len(widths)-1]
}
