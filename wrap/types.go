package wrap

// 该文件定义折行结果，供 API 调用方、命令行与调试 JSON 共用。

// Line 表示折行后的一行。
type Line struct {
	Content string  `json:"content"` // 含标签的原始文本
	Width   float64 `json:"width"`   // 可见宽度，不含标签
}

// Strings 返回各行的 Content。
func Strings(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Content
	}
	return out
}
