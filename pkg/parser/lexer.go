package parser

import "github.com/alecthomas/participle/v2/lexer"

// refereeLexer tokenizes Referee source text. Kept as a single flat rule
// set (no lexer states) since, unlike Guix's templates, nothing here
// needs to switch modes mid-token.
var refereeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	// Duration must be tried before Float/Int so a unit-suffixed literal
	// like "10s" or "500ms" lexes as one token (spec.md §3's unit-suffix
	// time literals) instead of a number followed by a dangling Ident.
	{Name: "Duration", Pattern: `\d+(ns|us|ms|min|s)`},
	{Name: "HexInt", Pattern: `0[xX][0-9a-fA-F]+`},
	{Name: "OctInt", Pattern: `0[oO][0-7]+`},
	{Name: "BinInt", Pattern: `0[bB][01]+`},
	{Name: "Float", Pattern: `\d+\.\d+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Op", Pattern: `(=>|<=>|==|!=|<=|>=|\.\.|[-+*/%<>=.,:;()\[\]{}])`},
})
