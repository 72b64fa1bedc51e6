package linebreak

import (
	"github.com/tdewolff/canvas/text"
)

// DefaultTolerance is the adjustment ratio Knuth accepts before a line counts
// as infeasible.
const DefaultTolerance = 2.0

// Knuth breaks lines with the Knuth-Plass total-fit algorithm of
// github.com/tdewolff/canvas/text, using a ragged-right item model. Only the
// first width is used.
//
// When no feasible set of breaks exists, canvas may pack several words into
// a line that sticks out; such results are discarded in favour of OptimalFit
// at the same width.
type Knuth struct {
	// Tolerance bounds the adjustment ratio of a feasible line, 0 means
	// DefaultTolerance.
	Tolerance float64
	// Looseness asks for that many more (positive) or fewer (negative) lines
	// than optimal, when feasible.
	Looseness int
}

// Lines implements Algorithm.
func (k Knuth) Lines(boxes []Box, widths []float64) ([]int, error) {
	if err := ValidateWidths(widths); err != nil {
		return nil, err
	}
	if len(boxes) == 0 {
		return []int{0}, nil
	}
	tolerance := k.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	items, ends := toItems(boxes)
	breaks := text.KnuthLinebreak(items, widths[0], tolerance, k.Looseness)
	lengths := fromBreaks(breaks, ends, len(boxes))
	if overfull(boxes, lengths, widths[0]) {
		return OptimalFit{}.Lines(boxes, widths[:1])
	}
	return lengths, nil
}

// Greedy fills each line as far as it goes, using canvas' greedy breaker.
// Only the first width is used.
type Greedy struct{}

// Lines implements Algorithm.
func (Greedy) Lines(boxes []Box, widths []float64) ([]int, error) {
	if err := ValidateWidths(widths); err != nil {
		return nil, err
	}
	if len(boxes) == 0 {
		return []int{0}, nil
	}
	items, ends := toItems(boxes)
	breaks := text.GreedyLinebreak(items, widths[0])
	return fromBreaks(breaks, ends, len(boxes)), nil
}

// toItems builds the box/glue/penalty list for ragged-right text, the same
// way canvas lays out left-aligned glyphs: after each box but the last, a
// stretchable glue, a free break penalty and the box's space (whose negative
// stretch cancels the first glue when no break is taken). ends maps the index
// of each breakable penalty to the number of boxes preceding it.
func toItems(boxes []Box) (text.Items, map[int]int) {
	raggedStretch := 5.0 * text.SpaceRaggedStretch

	items := make(text.Items, 0, 4*len(boxes)+2)
	ends := make(map[int]int, len(boxes))
	for i, b := range boxes {
		items = append(items, text.Box(b.Width))
		if i == len(boxes)-1 {
			break
		}
		items = append(items, text.Glue(0.0, raggedStretch, 0.0))
		items = append(items, text.Penalty(0.0, 0.0, false)) // breakable
		ends[len(items)-1] = i + 1
		items = append(items, text.Glue(b.Space, -raggedStretch, 0.0))
	}
	items = append(items, text.Glue(0.0, text.Infinity, 0.0))
	items = append(items, text.Penalty(0.0, -text.Infinity, false)) // forced breakpoint
	ends[len(items)-1] = len(boxes)
	return items, ends
}

func fromBreaks(breaks []text.Break, ends map[int]int, total int) []int {
	var lengths []int
	prev := 0
	for _, br := range breaks {
		end, ok := ends[br.Position]
		if !ok || end <= prev {
			continue
		}
		lengths = append(lengths, end-prev)
		prev = end
	}
	if prev < total {
		lengths = append(lengths, total-prev)
	}
	return lengths
}

// overfull reports whether a line of more than one box is wider than width.
// A single box that does not fit is allowed to stick out.
func overfull(boxes []Box, lengths []int, width float64) bool {
	start := 0
	for _, n := range lengths {
		if n > 1 {
			w := 0.0
			for _, b := range boxes[start : start+n-1] {
				w += b.Width + b.Space
			}
			w += boxes[start+n-1].Width
			if w > width+text.Epsilon {
				return true
			}
		}
		start += n
	}
	return false
}
