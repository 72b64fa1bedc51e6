package linebreak

import "fmt"

// Strip returns boxes without markup, together with the original index of
// every removed box in increasing order. The trailing Space of removed markup
// is added to the clean box before it, since that space is still rendered.
func Strip(boxes []Box) (clean []Box, removed []int) {
	clean = make([]Box, 0, len(boxes))
	for i, b := range boxes {
		if !b.Markup {
			clean = append(clean, b)
			continue
		}
		removed = append(removed, i)
		if n := len(clean); n > 0 {
			clean[n-1].Space += b.Space
		}
	}
	return clean, removed
}

// Restore maps line lengths computed over the stripped sequence back onto
// boxes. A removed box k (its clean position being removed[k]-k) joins the
// line whose clean span contains that position. At a boundary a leading run
// of closing markup stays on the earlier line, any other markup moves to the
// next one. The last line takes everything that is left.
func Restore(boxes []Box, removed []int, lengths []int) []Range {
	out := make([]Range, 0, len(lengths))
	start, cleanStart, k := 0, 0, 0
	for i, n := range lengths {
		var end int
		if i == len(lengths)-1 {
			end = len(boxes)
		} else {
			cleanEnd := cleanStart + n
			end = start + n
			for k < len(removed) {
				pos := removed[k] - k
				if pos < cleanEnd || pos == cleanEnd && boxes[removed[k]].Closing {
					end++
					k++
					continue
				}
				break
			}
			cleanStart = cleanEnd
		}
		if end < start || end > len(boxes) {
			panic(fmt.Sprintf("linebreak: 行区间越界 [%d,%d) / %d", start, end, len(boxes)))
		}
		out = append(out, Range{Start: start, End: end})
		start = end
	}
	return out
}
