package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdewolff/canvas"
)

func TestMonospaceWidth(t *testing.T) {
	m := Monospace{}
	assert.Equal(t, 5.0, m.Width("hello"))
	assert.Equal(t, 4.0, m.Width("中文"))
	assert.Equal(t, 0.0, m.Width(""))
	assert.Equal(t, 1.0, m.Width("é"))
}

func TestMonospaceEastAsianAmbiguous(t *testing.T) {
	assert.Equal(t, 1.0, Monospace{}.Width("→"))
	assert.Equal(t, 2.0, Monospace{EastAsian: true}.Width("→"))
}

func TestGraphemesWidth(t *testing.T) {
	g := Graphemes{}
	assert.Equal(t, 5.0, g.Width("hello"))
	assert.Equal(t, 4.0, g.Width("中文"))
	assert.Equal(t, 2.0, g.Width("🇩🇪"))
}

func TestFunc(t *testing.T) {
	bytes := Func(func(s string) float64 { return float64(len(s)) })
	assert.Equal(t, 6.0, bytes.Width("中文"))
}

func TestNewFaceRejectsBadInput(t *testing.T) {
	_, err := NewFace(nil, 12, "")
	assert.Error(t, err)
	_, err = NewFace([]byte("not a font"), 0, "")
	assert.Error(t, err)
	_, err = NewFace([]byte("not a font"), 12, "")
	assert.Error(t, err)
	_, err = LoadFace("testdata/missing.ttf", 12, "")
	assert.Error(t, err)
}

func TestParseFontStyle(t *testing.T) {
	assert.Equal(t, canvas.FontRegular, ParseFontStyle(""))
	assert.Equal(t, canvas.FontBold, ParseFontStyle("Bold"))
	assert.Equal(t, canvas.FontSemiBold, ParseFontStyle("semibold"))
	assert.Equal(t, canvas.FontLight|canvas.FontItalic, ParseFontStyle("light italic"))
	assert.Equal(t, canvas.FontBlack, ParseFontStyle("black"))
}
