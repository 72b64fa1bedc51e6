package markup

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	tagLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n\v\f]+`},
		{Name: "Close", Pattern: `</`},
		{Name: "Open", Pattern: `<`},
		{Name: "End", Pattern: `>`},
		{Name: "Eq", Pattern: `=`},
		{Name: "String", Pattern: `"[^"]*"`},
		{Name: "Ident", Pattern: `[^ \t\r\n\v\f<>="]+`},
	})

	tagParser = participle.MustBuild[tagNode](
		participle.Lexer(tagLexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	)
)

// tagNode is the grammar root for a single recognized tag chunk.
type tagNode struct {
	Close *closeNode `parser:"  @@"`
	Open  *openNode  `parser:"| @@"`
}

type closeNode struct {
	Name string `parser:"Close @Ident? End"`
}

type openNode struct {
	Name  string      `parser:"Open @Ident?"`
	Value *string     `parser:"( Eq @( String | Ident ) )?"`
	Attrs []*attrNode `parser:"@@* End"`
}

type attrNode struct {
	Key   string  `parser:"@Ident"`
	Value *string `parser:"( Eq @( String | Ident ) )?"`
}

// Tag describes a tag chunk without interpreting it: "<size=16>" has Name
// "size" and Value "16", "</size>" has Name "size" and Closing set.
type Tag struct {
	Name    string `json:"name"`
	Closing bool   `json:"closing,omitempty"`
	Value   string `json:"value,omitempty"`
	Attrs   []Attr `json:"attrs,omitempty"`
}

// Attr is an extra key[=value] pair after the tag name.
type Attr struct {
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
}

// ParseTag describes a chunk previously classified as a tag by the Isolator.
// Trailing whitespace absorbed into the chunk is ignored. Tags the isolator
// accepts but this grammar does not (for example an attribute value holding
// '<') return an error; callers should keep the chunk as-is in that case.
func ParseTag(chunk string) (Tag, error) {
	text := strings.TrimRight(chunk, " \t\r\n\v\f")
	node, err := tagParser.ParseString("", text)
	if err != nil {
		return Tag{}, fmt.Errorf("markup: 无法解析标签 %q: %w", text, err)
	}
	switch {
	case node.Close != nil:
		return Tag{Name: node.Close.Name, Closing: true}, nil
	case node.Open == nil:
		return Tag{}, fmt.Errorf("markup: %q 不是标签", text)
	}
	tag := Tag{Name: node.Open.Name}
	if node.Open.Value != nil {
		tag.Value = *node.Open.Value
	}
	for _, a := range node.Open.Attrs {
		attr := Attr{Key: a.Key}
		if a.Value != nil {
			attr.Value = *a.Value
		}
		tag.Attrs = append(tag.Attrs, attr)
	}
	return tag, nil
}
