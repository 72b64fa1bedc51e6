package measure

import (
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/canvas"
)

// Face measures text with a loaded font at a fixed size. Widths are in
// millimetres, as returned by canvas.
type Face struct {
	face *canvas.FontFace
}

// Width implements Measurer.
func (f *Face) Width(s string) float64 {
	return f.face.TextWidth(s)
}

// FontFace returns the underlying canvas face.
func (f *Face) FontFace() *canvas.FontFace { return f.face }

// LoadFace reads a TTF/OTF/WOFF font file and prepares it at sizePt points.
// style takes the usual names (regular, bold, light italic, ...).
func LoadFace(path string, sizePt float64, style string) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", path, err)
	}
	return NewFace(data, sizePt, style)
}

// NewFace prepares a face from font bytes.
func NewFace(data []byte, sizePt float64, style string) (*Face, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("字体数据为空")
	}
	if sizePt <= 0 {
		return nil, fmt.Errorf("字号必须为正数，实际为 %g", sizePt)
	}
	fontStyle := ParseFontStyle(style)
	family := canvas.NewFontFamily("tagwrap")
	if err := family.LoadFont(data, 0, fontStyle); err != nil {
		return nil, fmt.Errorf("加载字体失败: %w", err)
	}
	return &Face{face: family.Face(sizePt, canvas.Black, fontStyle, canvas.FontNormal)}, nil
}

// ParseFontStyle maps a style name such as "semibold italic" to a canvas style.
func ParseFontStyle(style string) canvas.FontStyle {
	if style == "" {
		return canvas.FontRegular
	}
	s := strings.ToLower(style)
	var result canvas.FontStyle
	switch {
	case strings.Contains(s, "black"):
		result = canvas.FontBlack
	case strings.Contains(s, "extrabold"):
		result = canvas.FontExtraBold
	case strings.Contains(s, "semibold"), strings.Contains(s, "demibold"):
		result = canvas.FontSemiBold
	case strings.Contains(s, "bold"):
		result = canvas.FontBold
	case strings.Contains(s, "medium"):
		result = canvas.FontMedium
	case strings.Contains(s, "extralight"):
		result = canvas.FontExtraLight
	case strings.Contains(s, "light"):
		result = canvas.FontLight
	default:
		result = canvas.FontRegular
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		result |= canvas.FontItalic
	}
	return result
}
