package parser

import "github.com/alecthomas/participle/v2/lexer"

// Program is the root of a parsed Referee source file: an unordered list
// of type/data/configuration declarations and specification-pattern
// statements (spec.md §3).
type Program struct {
	Statements []*Statement `@@*`
}

type Statement struct {
	Data *DataDecl `(   @@`
	Conf *ConfDecl `  | @@`
	Type *TypeDecl `  | @@`
	Spec *SpecStmt `  | @@ ) ";"?`
}

// --- Declarations ---

type DataDecl struct {
	Pos  lexer.Position
	Name string    `"data" @Ident ":"`
	Type *TypeExpr `@@`
}

type ConfDecl struct {
	Pos  lexer.Position
	Name string    `"conf" @Ident ":"`
	Type *TypeExpr `@@`
}

type TypeDecl struct {
	Pos  lexer.Position
	Name string    `"type" @Ident "="`
	Type *TypeExpr `@@`
}

type TypeExpr struct {
	Pos    lexer.Position
	Struct *StructType `(   @@`
	Array  *ArrayType  `  | @@`
	Enum   *EnumType   `  | @@`
	Name   string      `  | @Ident )`
}

type StructType struct {
	Members []*Member `"struct" "{" (@@ ";"?)* "}"`
}

type Member struct {
	Name string    `@Ident ":"`
	Type *TypeExpr `@@`
}

type ArrayType struct {
	Size int       `"array" "[" @Int "]" "of"`
	Elem *TypeExpr `@@`
}

type EnumType struct {
	Items []string `"enum" "{" (@Ident ("," @Ident)*)? "}"`
}

// --- Specification patterns ---

// SpecStmt is a single specification pattern occurrence: a keyword naming
// the pattern, its predicate argument list, up to two bracketed time
// bounds, an optional "otherwise" default-constraint clause, and an
// optional trailing scope restriction (spec.md §3, §4.5.1).
type SpecStmt struct {
	Pos  lexer.Position
	Kind string `@( "universality" | "absence" | "existence" | "transient_state" | "steady_state" | "minimum_duration" | "maximum_duration" | "recurrence" | "precedence_chain_12" | "precedence_chain_21" | "precedence" | "response_chain_12" | "response_chain_21" | "response_invariance" | "response" | "until" )`

	Args      []*Expression `"(" (@@ ("," @@)*)? ")"`
	Times     []*TimeBound  `@@*`
	Otherwise *Expression   `("otherwise" @@)?`
	Scope     *ScopeSuffix  `@@?`
}

// TimeBound is a bracketed [lo,hi] interval; either bound may be omitted
// (producing a one-sided Min/Max bound in builder.go).
type TimeBound struct {
	Lo *Expression `"[" @@?`
	Hi *Expression `"," @@? "]"`
}

// ScopeSuffix restricts the enclosing SpecStmt to a trace segment
// (spec.md §3's six scope wrappers).
type ScopeSuffix struct {
	Kind      string        `@("globally" | "before" | "after" | "while" | "between")`
	Args      []*Expression `("(" (@@ ("," @@)*)? ")")?`
	UntilArgs []*Expression `("until" "(" (@@ ("," @@)*)? ")")?`
}

// --- Expressions ---
//
// Each level below implements one precedence tier, loosest to tightest:
// implication, equivalence, disjunction/xor, conjunction, temporal
// binary, equality/ordering, additive, multiplicative, unary, postfix,
// primary. builder.go folds the repeated-operator captures left-to-right.

type Expression struct {
	Left *Equivalence    `@@`
	Ops  []*ImplicationOp `@@*`
}

type ImplicationOp struct {
	Op    string       `@"=>"`
	Right *Equivalence `@@`
}

type Equivalence struct {
	Left *Disjunction    `@@`
	Ops  []*EquivalenceOp `@@*`
}

type EquivalenceOp struct {
	Op    string       `@"<=>"`
	Right *Disjunction `@@`
}

type Disjunction struct {
	Left *Conjunction    `@@`
	Ops  []*DisjunctionOp `@@*`
}

type DisjunctionOp struct {
	Op    string       `@("or" | "xor")`
	Right *Conjunction `@@`
}

type Conjunction struct {
	Left *Temporal    `@@`
	Ops  []*Conjunction2 `@@*`
}

type Conjunction2 struct {
	Op    string    `@"and"`
	Right *Temporal `@@`
}

// Temporal is the binary temporal-operator tier: "P Us S", "P Ss[0,5] S",
// etc. (spec.md §3's eight binary operators).
type Temporal struct {
	Left *Relational  `@@`
	Ops  []*TemporalOp `@@*`
}

type TemporalOp struct {
	Op    string      `@("Us" | "Uw" | "Rs" | "Rw" | "Ss" | "Sw" | "Ts" | "Tw")`
	Time  *TimeBound  `@@?`
	Right *Relational `@@`
}

type Relational struct {
	Left *Additive    `@@`
	Ops  []*RelationalOp `@@*`
}

type RelationalOp struct {
	Op    string    `@("==" | "!=" | "<=" | ">=" | "<" | ">")`
	Right *Additive `@@`
}

type Additive struct {
	Left *Multiplicative    `@@`
	Ops  []*AdditiveOp `@@*`
}

type AdditiveOp struct {
	Op    string          `@("+" | "-")`
	Right *Multiplicative `@@`
}

type Multiplicative struct {
	Left *Unary    `@@`
	Ops  []*MultiplicativeOp `@@*`
}

type MultiplicativeOp struct {
	Op    string `@("*" | "/" | "%")`
	Right *Unary `@@`
}

type Unary struct {
	Neg    *Unary   `(   "-" @@`
	Not    *Unary   `  | "not" @@`
	Postf  *Postfix `  | @@ )`
}

// Postfix is a primary with trailing member/index access chained on.
type Postfix struct {
	Base     *Primary       `@@`
	Trailers []*PostfixStep `@@*`
}

type PostfixStep struct {
	Member string      `(   "." @Ident`
	Index  *Expression `  | "[" @@ "]" )`
}

// Primary is a literal, parenthesized expression, conditional, At-binding,
// prefix temporal-unary call, or a bare name resolved against the module
// at build time (spec.md's ExprData rule: a name is a context, a data
// property, or a configuration value depending on what was declared).
type Primary struct {
	Pos      lexer.Position
	Duration *string     `(   @Duration`
	Hex      *string     `  | @HexInt`
	Oct      *string     `  | @OctInt`
	Bin      *string     `  | @BinInt`
	Float    *string     `  | @Float`
	Int      *int64      `  | @Int`
	Str      *string     `  | @String`
	True     bool        `  | @"true"`
	False    bool        `  | @"false"`
	Choice   *ChoiceExpr `  | @@`
	At       *AtExpr     `  | @@`
	Temporal *TemporalUnary `  | @@`
	Paren    *Expression `  | "(" @@ ")"`
	Name     string      `  | @Ident )`
}

type ChoiceExpr struct {
	Cond *Expression `"if" @@`
	Then *Expression `"then" @@`
	Else *Expression `"else" @@`
}

type AtExpr struct {
	Name string      `"At" "(" @Ident ","`
	Body *Expression `@@ ")"`
}

// TemporalUnary is a prefix single-operand temporal call: F(x), G[0,5s](x),
// O(x), H(x), Xs(x), Xw(x), Ys(x), Yw(x) (spec.md §3).
type TemporalUnary struct {
	Op   string      `@("F" | "G" | "O" | "H" | "Xs" | "Xw" | "Ys" | "Yw")`
	Time *TimeBound  `@@?`
	Arg  *Expression `"(" @@ ")"`
}
