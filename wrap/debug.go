package wrap

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON 将折行结果输出为 JSON，便于调试或与渲染端对照。
func WriteDebugJSON(lines []Line, path string) error {
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
