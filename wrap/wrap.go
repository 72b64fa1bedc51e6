// Package wrap 串联标签切分、分词与分行：输入带内联标签的文本与行宽，
// 输出预先计算好换行位置的各行文本。标签不占宽度，也不会被拆到两行。
package wrap

import (
	"strings"

	"github.com/ByLCY/tagwrap/linebreak"
	"github.com/ByLCY/tagwrap/markup"
	"github.com/ByLCY/tagwrap/measure"
	"github.com/ByLCY/tagwrap/segment"
)

// Text 以 round(base × multiplier) 为行宽折行，返回各行内容。
func Text(text string, base int, multiplier float64) ([]string, error) {
	width, err := EffectiveWidth(base, multiplier)
	if err != nil {
		return nil, err
	}
	lines, err := Lines(text, float64(width), Options{})
	if err != nil {
		return nil, err
	}
	return Strings(lines), nil
}

// IsolateTags 将文本切分为普通文本段与标签段，拼接后等于原文。
func IsolateTags(text string) []markup.Chunk {
	return markup.Isolate(text)
}

// Lines 以统一行宽折行。
func Lines(text string, width float64, opts Options) ([]Line, error) {
	return Shape(text, []float64{width}, opts)
}

// Shape 按逐行给定的宽度折行，widths[i] 为每段第 i 行的宽度，超出部分沿用最后一个值。
// 文本先按 '\n' 拆成段落，每段独立折行；空段落输出一个空行。
func Shape(text string, widths []float64, opts Options) ([]Line, error) {
	if err := linebreak.ValidateWidths(widths); err != nil {
		return nil, err
	}
	m := opts.measurer()
	alg := opts.algorithm()

	var lines []Line
	for _, p := range strings.Split(text, "\n") {
		p = strings.TrimSuffix(p, "\r")
		out, err := wrapParagraph(p, widths, m, alg)
		if err != nil {
			return nil, err
		}
		lines = append(lines, out...)
	}
	return lines, nil
}

func wrapParagraph(p string, widths []float64, m measure.Measurer, alg linebreak.Algorithm) ([]Line, error) {
	words := segment.Words(p)
	boxes := make([]linebreak.Box, len(words))
	for i, w := range words {
		boxes[i].Space = m.Width(w.Space)
		if w.Tag {
			boxes[i].Markup = true
			boxes[i].Closing = w.Closing()
			continue
		}
		boxes[i].Width = m.Width(w.Text)
	}

	ranges, err := linebreak.Break(boxes, widths, alg)
	if err != nil {
		return nil, err
	}
	lines := make([]Line, 0, len(ranges))
	for _, r := range ranges {
		lines = append(lines, render(words[r.Start:r.End], boxes[r.Start:r.End]))
	}
	return lines, nil
}

// render 拼接一行中的词，去掉最后一个词的尾随空格；
// 宽度只统计到最后一个可见词为止，其后的标签与空白不计入。
func render(words []segment.Word, boxes []linebreak.Box) Line {
	if len(words) == 0 {
		return Line{}
	}
	var sb strings.Builder
	for _, w := range words[:len(words)-1] {
		sb.WriteString(w.String())
	}
	sb.WriteString(words[len(words)-1].Text)

	last := len(boxes) - 1
	for last >= 0 && boxes[last].Markup {
		last--
	}
	width := 0.0
	for i := 0; i <= last; i++ {
		width += boxes[i].Width
		if i < last {
			width += boxes[i].Space
		}
	}
	return Line{Content: sb.String(), Width: width}
}
