// Package segment turns isolated chunks into the atomic words fed to the
// line breaker. Plain text is split at UAX #14 break opportunities; every tag
// chunk becomes exactly one word.
package segment

import (
	"iter"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/ByLCY/tagwrap/markup"
)

// Word is the smallest unit a line may start or end with.
// Text is the visible (or markup) part; Space is the trailing run of U+0020
// that disappears when the word ends a line.
type Word struct {
	Text  string
	Space string
	Tag   bool
}

// String returns the word exactly as it appeared in the input.
func (w Word) String() string { return w.Text + w.Space }

// Closing reports whether w is a closing tag.
func (w Word) Closing() bool { return w.Tag && markup.IsClosing(w.Text) }

// FromChunks segments an isolated chunk sequence.
func FromChunks(chunks iter.Seq[markup.Chunk]) []Word {
	var words []Word
	for c := range chunks {
		if c.Tag {
			words = append(words, newWord(c.Text, true))
			continue
		}
		words = appendSegments(words, c.Text)
	}
	return words
}

// Words isolates and segments s in one pass.
func Words(s string) []Word {
	return FromChunks(markup.All(s))
}

func appendSegments(words []Word, s string) []Word {
	state := -1
	var seg string
	for len(s) > 0 {
		seg, s, _, state = uniseg.FirstLineSegmentInString(s, state)
		if seg == "" {
			continue
		}
		words = append(words, newWord(seg, false))
	}
	return words
}

func newWord(s string, tag bool) Word {
	text := strings.TrimRight(s, " ")
	return Word{Text: text, Space: s[len(text):], Tag: tag}
}
