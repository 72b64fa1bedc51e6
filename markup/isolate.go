package markup

import (
	"iter"
	"strings"
)

// Chunk 是输入中的一段连续文本，要么是普通文本，要么是一个完整的标签。
// Text 直接引用原字符串，不做拷贝。
type Chunk struct {
	Text string `json:"chunk"`
	Tag  bool   `json:"isTag"`
}

// Isolator 从左到右扫描字符串，依次产出普通文本段与标签段。
// 只能向前消费一次；所有 Chunk 按顺序拼接后与输入逐字节相等。
type Isolator struct {
	s   string
	pos int

	// 上一次扫描普通文本时已经识别出的标签 [tagStart, tagEnd)，避免重复识别。
	tagStart, tagEnd int
}

// NewIsolator 创建针对 s 的扫描器。
func NewIsolator(s string) *Isolator {
	return &Isolator{s: s, tagStart: -1}
}

// Next 返回下一段；输入耗尽时第二个返回值为 false。
func (it *Isolator) Next() (Chunk, bool) {
	if it.pos >= len(it.s) {
		return Chunk{}, false
	}
	start := it.pos
	i := start + 1
	if it.s[start] == '<' {
		end, ok := it.tagAt(start)
		if ok {
			it.pos = end
			return Chunk{Text: it.s[start:end], Tag: true}, true
		}
		i = end
	}

	// 普通文本只在遇到一个真正成立的标签时结束。识别失败的候选连同
	// 使其失败的那个字符一起按字面文本处理，即使该字符本身是 '<'。
	for i < len(it.s) {
		next := strings.IndexByte(it.s[i:], '<')
		if next < 0 {
			i = len(it.s)
			break
		}
		i += next
		end, ok := tagEnd(it.s, i)
		if ok {
			it.tagStart, it.tagEnd = i, end
			break
		}
		i = end
	}
	it.pos = i
	return Chunk{Text: it.s[start:i], Tag: false}, true
}

func (it *Isolator) tagAt(i int) (int, bool) {
	if i == it.tagStart {
		return it.tagEnd, true
	}
	return tagEnd(it.s, i)
}

// All 以迭代器形式返回 s 的所有段。
func All(s string) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		it := NewIsolator(s)
		for {
			c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Isolate 将 s 切分为普通文本与标签段，例如
// "a<b>c</b>d" -> ["a" "<b>" "c" "</b>" "d"]。
func Isolate(s string) []Chunk {
	var chunks []Chunk
	for c := range All(s) {
		chunks = append(chunks, c)
	}
	return chunks
}

// IsClosing reports whether a tag chunk is a closing tag such as "</b>".
func IsClosing(text string) bool {
	return strings.HasPrefix(text, "</")
}

// tagEnd 尝试在 s[i]（必须为 '<'）处识别一个标签，返回标签结束位置（已吸收其后的空白）。
// 识别失败时返回候选被放弃之后的位置，即导致失败的字符之后。
//
// 规则：
//   - '<' 后紧跟 '/' 表示闭合标签；
//   - 标签名只能由 ASCII 字母组成（可以为空），遇到 '>'、'=' 或空格时结束；
//   - 开始标签要求剩余文本中存在字面量 "</name>"，否则不视为标签；
//   - 闭合标签内不允许出现 '=' 或空格。
func tagEnd(s string, i int) (int, bool) {
	closing := false
	expectingName := true
	nameStart := i + 1
	for j := i + 1; j < len(s); j++ {
		c := s[j]
		switch c {
		case '>', '=', ' ':
			if expectingName {
				name := s[nameStart:j]
				if !closing && !strings.Contains(s[j:], "</"+name+">") {
					return j + 1, false
				}
				expectingName = false
			}
			if c == '>' {
				j++
				for j < len(s) && isASCIISpace(s[j]) {
					j++
				}
				return j, true
			}
			if closing {
				return j + 1, false
			}
		case '/':
			if j == i+1 {
				closing = true
				nameStart = j + 1
			} else if expectingName {
				return j + 1, false
			}
		default:
			if expectingName && !isASCIILetter(c) {
				return j + 1, false
			}
		}
	}
	return len(s), false
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
