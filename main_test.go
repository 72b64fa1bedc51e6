package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadTextTrimsFinalNewline(t *testing.T) {
	for in, want := range map[string]string{
		"a b\n":   "a b",
		"a b":     "a b",
		"a\n\n":   "a\n",
		"a b\r\n": "a b\r",
		"":        "",
	} {
		got, err := readText(strings.NewReader(in))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: got=%q want=%q", in, got, want)
		}
	}
}

// 文件输入与标准输入得到相同的文本，不会多出一个空行。
func TestRunFileInputHasNoTrailingEmptyLine(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out", "lines.txt")
	if err := os.WriteFile(in, []byte("The <b>quick</b> fox\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	cfg := config{input: in, output: out, width: 10, multiplier: 1, algorithm: "optimal"}
	if err := run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if want := "The <b>quick</b>\nfox\n"; string(data) != want {
		t.Fatalf("got=%q want=%q", data, want)
	}
}

func TestRunRejectsUnknownAlgorithm(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(in, []byte("text"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	cfg := config{input: in, width: 10, multiplier: 1, algorithm: "balanced"}
	if err := run(cfg); err == nil {
		t.Fatalf("expected error for unknown algorithm")
	}
}
