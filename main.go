package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/tagwrap/markup"
	"github.com/ByLCY/tagwrap/measure"
	"github.com/ByLCY/tagwrap/wrap"
)

// config 收集命令行参数。
type config struct {
	input      string
	output     string
	debug      string
	width      int
	multiplier float64
	algorithm  string
	font       string
	fontSize   float64
	fontStyle  string
	isolate    bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.input, "in", "-", "输入文本路径，- 表示标准输入")
	flag.StringVar(&cfg.output, "out", "-", "输出路径，- 表示标准输出")
	flag.StringVar(&cfg.debug, "debug", "", "折行结果调试 JSON 输出路径")
	flag.IntVar(&cfg.width, "width", 80, "基础行宽")
	flag.Float64Var(&cfg.multiplier, "multiplier", 1.0, "行宽倍率，实际行宽为 round(width × multiplier)")
	flag.StringVar(&cfg.algorithm, "algorithm", "optimal", "分行算法：optimal/knuth/greedy")
	flag.StringVar(&cfg.font, "font", "", "按字体度量宽度（TTF/OTF 路径），此时行宽单位为 mm")
	flag.Float64Var(&cfg.fontSize, "size", 12, "字号（pt），仅在指定 -font 时使用")
	flag.StringVar(&cfg.fontStyle, "style", "", "字体样式，例如 bold、light italic")
	flag.BoolVar(&cfg.isolate, "isolate", false, "只输出标签切分结果（JSON）")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("tagwrap: %v", err)
	}
}

// run 串联读取、切分/折行与输出。
func run(cfg config) error {
	text, err := readInput(cfg.input)
	if err != nil {
		return err
	}

	var out strings.Builder
	if cfg.isolate {
		if err := writeChunks(&out, text); err != nil {
			return err
		}
		return writeOutput(cfg.output, out.String())
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}
	width, err := wrap.EffectiveWidth(cfg.width, cfg.multiplier)
	if err != nil {
		return err
	}
	lines, err := wrap.Lines(text, float64(width), opts)
	if err != nil {
		return fmt.Errorf("折行失败: %w", err)
	}

	if cfg.debug != "" {
		if err := writeDebug(lines, cfg.debug); err != nil {
			return err
		}
	}
	for _, l := range lines {
		out.WriteString(l.Content)
		out.WriteByte('\n')
	}
	return writeOutput(cfg.output, out.String())
}

func buildOptions(cfg config) (wrap.Options, error) {
	alg, ok := wrap.AlgorithmByName(cfg.algorithm)
	if !ok {
		return wrap.Options{}, fmt.Errorf("未知的分行算法 %q", cfg.algorithm)
	}
	opts := wrap.Options{Algorithm: alg}
	if cfg.font != "" {
		face, err := measure.LoadFace(cfg.font, cfg.fontSize, cfg.fontStyle)
		if err != nil {
			return wrap.Options{}, err
		}
		opts.Measurer = face
	}
	return opts, nil
}

// chunkJSON 是 -isolate 模式的输出项；标签段附带解析出的名称与属性。
type chunkJSON struct {
	markup.Chunk
	Desc *markup.Tag `json:"tag,omitempty"`
}

func writeChunks(w io.Writer, text string) error {
	chunks := []chunkJSON{}
	for c := range markup.All(text) {
		item := chunkJSON{Chunk: c}
		if c.Tag {
			if tag, err := markup.ParseTag(c.Text); err == nil {
				item.Desc = &tag
			}
		}
		chunks = append(chunks, item)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(chunks)
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		text, err := readText(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("读取标准输入失败: %w", err)
		}
		return text, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("无法读取输入文件 %s: %w", path, err)
	}
	defer f.Close()
	text, err := readText(f)
	if err != nil {
		return "", fmt.Errorf("无法读取输入文件 %s: %w", path, err)
	}
	return text, nil
}

// readText 读取全部输入；末尾的换行不视为一个额外的空段落。
func readText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func writeOutput(path, content string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("写入输出文件失败: %w", err)
	}
	return nil
}

func writeDebug(lines []wrap.Line, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := wrap.WriteDebugJSON(lines, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
