// Package parser parses Referee specification source text into a typed
// module.Module plus the list of ast.Spec pattern occurrences it declares,
// using participle the way the teacher repo builds its own language
// front end.
package parser

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"

	"github.com/rafiw/referee-sub000/internal/intern"
	"github.com/rafiw/referee-sub000/pkg/ast"
	"github.com/rafiw/referee-sub000/pkg/module"
)

// Parser is the Referee language parser.
type Parser struct {
	parser  *participle.Parser[Program]
	strings *intern.Table
}

// New creates a Referee parser. strings is the interning table the
// resulting module and expressions are built against; callers downstream
// (typecheck, canon, rewrite, printer) must share the same table.
func New(strings *intern.Table) (*Parser, error) {
	p, err := participle.Build[Program](
		participle.Lexer(refereeLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(4),
	)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to build grammar: %w", err)
	}
	return &Parser{parser: p, strings: strings}, nil
}

// Result is a fully parsed and built (but not yet type-checked) source
// file: the module's declarations plus its specification occurrences.
type Result struct {
	Module *module.Module
	Specs  []*ast.Spec
	Store  *ast.Store
}

// Parse reads and builds a Referee source file from r.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	prog, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	return p.build(prog)
}

// ParseString builds a Referee source file from a string.
func (p *Parser) ParseString(source string) (*Result, error) {
	prog, err := p.parser.ParseString("", source)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	return p.build(prog)
}

// ParseBytes builds a Referee source file from raw bytes, filename used
// only for diagnostics.
func (p *Parser) ParseBytes(filename string, source []byte) (*Result, error) {
	prog, err := p.parser.ParseBytes(filename, source)
	if err != nil {
		return nil, fmt.Errorf("parser: %w in %s", err, filename)
	}
	return p.build(prog)
}

func (p *Parser) build(prog *Program) (*Result, error) {
	b := newBuilder(p.strings)
	if err := b.program(prog); err != nil {
		return nil, err
	}
	return &Result{Module: b.mod, Specs: b.specs, Store: b.store}, nil
}
