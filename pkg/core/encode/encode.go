// Package encode parses channel encoding shorthands such as "a*b".
//
// A position shorthand names the field bound to the x channel and,
// optionally, the field bound to the y channel, separated by '*'. Field
// names containing characters outside the identifier set can be quoted:
//
//	genre*sold
//	"release date"*'unit price'
package encode

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/matzehuels/chartgeom/pkg/errors"
)

// shorthandLexer tokenizes position shorthands.
var shorthandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_.]*`},
	{Name: "Cross", Pattern: `\*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// shorthand is the parsed form of "a*b".
type shorthand struct {
	Fields []*field `parser:"@@ ( Cross @@ )*"`
}

type field struct {
	Ident  string `parser:"  @Ident"`
	Quoted string `parser:"| @String"`
}

func (f *field) name() string {
	if f.Ident != "" {
		return f.Ident
	}
	if len(f.Quoted) >= 2 {
		return f.Quoted[1 : len(f.Quoted)-1]
	}
	return ""
}

var parser = participle.MustBuild[shorthand](
	participle.Lexer(shorthandLexer),
	participle.Elide("Whitespace"),
)

// Position is a parsed position encoding.
type Position struct {
	X string
	Y string // empty when only x is bound
}

// Fields returns the bound field names in channel order.
func (p Position) Fields() []string {
	if p.Y == "" {
		return []string{p.X}
	}
	return []string{p.X, p.Y}
}

// String returns the canonical shorthand.
func (p Position) String() string {
	if p.Y == "" {
		return p.X
	}
	return p.X + "*" + p.Y
}

// ParsePosition parses a position shorthand binding at most two fields.
func ParsePosition(s string) (Position, error) {
	ast, err := parser.ParseString("", s)
	if err != nil {
		return Position{}, errors.Wrap(errors.ErrCodeInvalidEncoding, err, "parse position %q", s)
	}
	if len(ast.Fields) > 2 {
		return Position{}, errors.New(errors.ErrCodeInvalidEncoding,
			"position %q binds %d fields, want at most 2", s, len(ast.Fields))
	}
	var pos Position
	for i, f := range ast.Fields {
		name := f.name()
		if name == "" {
			return Position{}, errors.New(errors.ErrCodeInvalidEncoding, "position %q has an empty field", s)
		}
		if i == 0 {
			pos.X = name
		} else {
			pos.Y = name
		}
	}
	return pos, nil
}
