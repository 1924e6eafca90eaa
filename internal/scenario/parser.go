// Package scenario reads batch files describing one wall and a sequence of
// spiders, and runs every spider against that wall.
package scenario

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a parsed scenario. Every token is one non-blank source line:
//
//	# comment
//	<maxX> <maxY>
//	<x> <y> <Direction>
//	<instructions>
//	...
type File struct {
	Pos  lexer.Position
	Wall string       `parser:"@Line"`
	Runs []*SpiderRun `parser:"@@*"`
}

// SpiderRun is one spider and its instruction line. A trailing spider without
// an instruction line gets empty instructions.
type SpiderRun struct {
	Pos          lexer.Position
	Start        string `parser:"@Line"`
	Instructions string `parser:"@Line?"`
}

var scenarioLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `[ \t]*#[^\r\n]*`},
	{Name: "Line", Pattern: `[ \t]*[^\s#][^\r\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(scenarioLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads a scenario from r; name is used in error positions.
func Parse(name string, r io.Reader) (*File, error) {
	f, err := parser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return f, nil
}

func ParseString(name, data string) (*File, error) {
	f, err := parser.ParseString(name, data)
	if err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return f, nil
}

// LoadFile parses the scenario stored at path.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}
