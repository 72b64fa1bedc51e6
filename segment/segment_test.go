package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordsSplitsPlainText(t *testing.T) {
	words := Words("The quick fox")
	require.Len(t, words, 3)
	assert.Equal(t, Word{Text: "The", Space: " "}, words[0])
	assert.Equal(t, Word{Text: "quick", Space: " "}, words[1])
	assert.Equal(t, Word{Text: "fox"}, words[2])
}

func TestWordsKeepsTagsAtomic(t *testing.T) {
	words := Words("The <size=16>quick brown</size> fox")
	want := []Word{
		{Text: "The", Space: " "},
		{Text: "<size=16>", Tag: true},
		{Text: "quick", Space: " "},
		{Text: "brown"},
		{Text: "</size>", Space: " ", Tag: true},
		{Text: "fox"},
	}
	assert.Equal(t, want, words)
	assert.False(t, words[1].Closing())
	assert.True(t, words[4].Closing())
}

func TestWordsBreaksAfterHyphen(t *testing.T) {
	words := Words("well-known")
	require.Len(t, words, 2)
	assert.Equal(t, "well-", words[0].Text)
	assert.Equal(t, "known", words[1].Text)
}

// 多个空格都计入 Space，Text 不含空格。
func TestWordsTrailingSpaces(t *testing.T) {
	words := Words("a   b")
	require.Len(t, words, 2)
	assert.Equal(t, Word{Text: "a", Space: "   "}, words[0])
}

func TestWordsEmpty(t *testing.T) {
	assert.Empty(t, Words(""))
}

func TestWordsReconstruct(t *testing.T) {
	inputs := []string{
		"The <b>quick</b> brown fox jumps",
		"<size=16>  leading</size>",
		"中文文本<b>粗体</b>，以及 English words",
		"x<y and a<b>tag</b>",
		"tabs\tand  spaces ",
	}
	for _, in := range inputs {
		var sb strings.Builder
		for _, w := range Words(in) {
			require.NotEmpty(t, w.String(), "empty word in %q", in)
			sb.WriteString(w.String())
		}
		assert.Equal(t, in, sb.String())
	}
}
