// Package printer serializes a canonical AST back to text (spec.md §4.6),
// grounded in the original's Printer visitor: unary temporal operators
// print prefix with parentheses (F(x)), binary temporal operators print
// infix inside parentheses ((a Us b)), other binary operators print infix
// with spaces, and the result is deterministic.
package printer

import (
	"strconv"
	"strings"

	"github.com/rafiw/referee-sub000/internal/intern"
	"github.com/rafiw/referee-sub000/pkg/ast"
)

// Printer renders expressions using strings resolved from a shared
// interning table.
type Printer struct {
	strings *intern.Table
}

// New creates a Printer that resolves interned names through strings.
func New(strings *intern.Table) *Printer {
	return &Printer{strings: strings}
}

// Print returns e's canonical textual form.
func (p *Printer) Print(e *ast.Expr) string {
	var b strings.Builder
	p.write(&b, e)
	return b.String()
}

var binaryOps = map[ast.Kind]string{
	ast.KindAdd: "+", ast.KindSub: "-", ast.KindMul: "*", ast.KindDiv: "/", ast.KindMod: "%",
	ast.KindEq: "==", ast.KindNe: "!=", ast.KindLt: "<", ast.KindLe: "<=", ast.KindGt: ">", ast.KindGe: ">=",
	ast.KindAnd: "and", ast.KindOr: "or", ast.KindXor: "xor", ast.KindImp: "=>", ast.KindEqu: "<=>",
	ast.KindIndex: "[]",
}

var temporalBinaryOps = map[ast.Kind]string{
	ast.KindUs: "Us", ast.KindUw: "Uw", ast.KindRs: "Rs", ast.KindRw: "Rw",
	ast.KindSs: "Ss", ast.KindSw: "Sw", ast.KindTs: "Ts", ast.KindTw: "Tw",
}

var temporalUnaryOps = map[ast.Kind]string{
	ast.KindF: "F", ast.KindG: "G", ast.KindXs: "Xs", ast.KindXw: "Xw",
	ast.KindO: "O", ast.KindH: "H", ast.KindYs: "Ys", ast.KindYw: "Yw",
}

func (p *Printer) write(b *strings.Builder, e *ast.Expr) {
	switch e.Kind {
	case ast.KindTrue:
		b.WriteString("true")
	case ast.KindFalse:
		b.WriteString("false")
	case ast.KindBoolLit:
		if e.Lit.(bool) {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case ast.KindIntLit:
		b.WriteString(strconv.FormatInt(e.Lit.(int64), 10))
	case ast.KindNumberLit:
		b.WriteString(strconv.FormatFloat(e.Lit.(float64), 'g', -1, 64))
	case ast.KindStringLit:
		b.WriteByte('"')
		b.WriteString(p.strings.Text(e.Lit.(intern.Symbol)))
		b.WriteByte('"')

	case ast.KindNeg:
		b.WriteByte('-')
		p.write(b, e.A)
	case ast.KindNot:
		b.WriteString("not ")
		p.write(b, e.A)

	case ast.KindContext:
		b.WriteString(p.strings.Text(e.Name))
	case ast.KindData:
		p.write(b, e.A)
		b.WriteByte('.')
		b.WriteString(p.strings.Text(e.Name))
	case ast.KindConf:
		p.write(b, e.A)
		b.WriteByte('.')
		b.WriteString(p.strings.Text(e.Name))
	case ast.KindMember:
		p.write(b, e.A)
		b.WriteByte('.')
		b.WriteString(p.strings.Text(e.Name))
	case ast.KindIndex:
		p.write(b, e.A)
		b.WriteByte('[')
		p.write(b, e.B)
		b.WriteByte(']')
	case ast.KindParen:
		b.WriteByte('(')
		p.write(b, e.A)
		b.WriteByte(')')
	case ast.KindChoice:
		b.WriteString("if ")
		p.write(b, e.A)
		b.WriteString(" then ")
		p.write(b, e.B)
		b.WriteString(" else ")
		p.write(b, e.C)

	case ast.KindAt:
		b.WriteString("At(")
		b.WriteString(p.strings.Text(e.Name))
		b.WriteString(", ")
		p.write(b, e.A)
		b.WriteByte(')')

	case ast.KindIntegral:
		b.WriteString("Int(")
		p.write(b, e.A)
		b.WriteString(", ")
		p.write(b, e.B)
		b.WriteByte(')')

	default:
		if op, ok := binaryOps[e.Kind]; ok {
			p.write(b, e.A)
			b.WriteByte(' ')
			b.WriteString(op)
			b.WriteByte(' ')
			p.write(b, e.B)
			return
		}
		if op, ok := temporalUnaryOps[e.Kind]; ok {
			b.WriteString(op)
			b.WriteByte('(')
			p.write(b, e.A)
			b.WriteByte(')')
			return
		}
		if op, ok := temporalBinaryOps[e.Kind]; ok {
			b.WriteByte('(')
			p.write(b, e.A)
			b.WriteByte(' ')
			b.WriteString(op)
			b.WriteByte(' ')
			p.write(b, e.B)
			b.WriteByte(')')
			return
		}
		b.WriteString("???")
	}
}
