package mission

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a parsed mission file: the plateau bounds followed by any number
// of robots, each a pose line and a command line.
//
//	5 3
//	1 1 E
//	RFRFRFRF
type Script struct {
	Plateau *Plateau `parser:"EOL* @@"`
	Robots  []*Robot `parser:"@@*"`
}

type Plateau struct {
	Pos  lexer.Position
	MaxX int `parser:"@Int"`
	MaxY int `parser:"@Int EOL*"`
}

// Robot is one robot block. Heading and Commands are kept as written; the
// navigator decides whether they are valid. A numeric heading lexes as Int
// and is kept too. The newline after the pose is optional at the end of
// input; the next robot always starts with an Int, so it cannot be taken
// for commands.
type Robot struct {
	Pos      lexer.Position
	X        int    `parser:"@Int"`
	Y        int    `parser:"@Int"`
	Heading  string `parser:"@(Word | Int) EOL?"`
	Commands string `parser:"@Word? EOL*"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Word", Pattern: `[^\s#]+`},
})

var parser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)

// Parse reads a mission script. name is used in error positions.
func Parse(name string, r io.Reader) (*Script, error) {
	s, err := parser.Parse(name, r)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return s, nil
}

// ParseString is Parse for in-memory input.
func ParseString(name, src string) (*Script, error) {
	s, err := parser.ParseString(name, src)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return s, nil
}
