package linebreak

import "math"

// Penalties tunes the OptimalFit cost model. The zero value means
// DefaultPenalties.
type Penalties struct {
	NLine                 float64 // cost of every line, favours fewer lines
	Overflow              float64 // cost per unit a line sticks out
	ShortLastLineFraction float64 // a last line shorter than width/fraction is short
	ShortLastLine         float64 // cost of a short last line holding a single word
}

// DefaultPenalties favour few, evenly filled lines and punish overflow hard.
var DefaultPenalties = Penalties{
	NLine:                 1000,
	Overflow:              50 * 50,
	ShortLastLineFraction: 4,
	ShortLastLine:         25,
}

// OptimalFit minimizes the total raggedness of all lines at once: every
// non-final line costs the square of its remaining gap, overflowing lines
// cost Overflow per unit, and each line adds NLine.
type OptimalFit struct {
	Penalties Penalties
}

type minimum struct {
	prev  int
	lines int
	cost  float64
}

// Lines implements Algorithm.
func (o OptimalFit) Lines(boxes []Box, widths []float64) ([]int, error) {
	if err := ValidateWidths(widths); err != nil {
		return nil, err
	}
	p := o.Penalties
	if p == (Penalties{}) {
		p = DefaultPenalties
	}
	n := len(boxes)
	if n == 0 {
		return []int{0}, nil
	}

	// prefix[j] 为前 j 个 box 的宽度与空白之和
	prefix := make([]float64, n+1)
	for i, b := range boxes {
		prefix[i+1] = prefix[i] + b.Width + b.Space
	}

	// 任一行能用的最大宽度；超出它的行至少付出对应的溢出代价
	widest := 1.0
	for _, w := range widths {
		widest = math.Max(widest, w)
	}

	minima := make([]minimum, n+1)
	for j := 1; j <= n; j++ {
		best := minimum{cost: math.Inf(1)}
		// 从右往左扫描，行宽单调增加；相同代价时保留更靠前的断点
		for i := j - 1; i >= 0; i-- {
			width := prefix[j] - prefix[i] - boxes[j-1].Space
			if (width-widest)*p.Overflow > best.cost {
				break
			}
			target := math.Max(widthAt(widths, minima[i].lines), 1)

			cost := minima[i].cost + p.NLine
			switch {
			case width > target:
				cost += (width - target) * p.Overflow
			case j < n:
				gap := target - width
				cost += gap * gap
			case i+1 == j && width < target/p.ShortLastLineFraction:
				cost += p.ShortLastLine
			}
			if cost <= best.cost {
				best = minimum{prev: i, lines: minima[i].lines + 1, cost: cost}
			}
		}
		minima[j] = best
	}
	if c := minima[n].cost; math.IsInf(c, 0) || math.IsNaN(c) {
		return nil, ErrOverflow
	}

	lengths := make([]int, minima[n].lines)
	for pos, line := n, len(lengths)-1; pos > 0; line-- {
		prev := minima[pos].prev
		lengths[line] = pos - prev
		pos = prev
	}
	return lengths, nil
}
