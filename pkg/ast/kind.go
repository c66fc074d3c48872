package ast

// Kind tags which of the expression-algebra variants an Expr is (spec.md
// §3's expression table). Each kind has a fixed arity and a fixed meaning
// for the A/B/C child slots and the Name/Lit payload slots, documented on
// Expr.
type Kind int

const (
	// Constants
	KindBoolLit Kind = iota
	KindIntLit
	KindNumberLit
	KindStringLit
	KindTrue
	KindFalse

	// Arithmetic
	KindNeg
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindMod

	// Relational
	KindEq
	KindNe
	KindLt
	KindLe
	KindGt
	KindGe

	// Boolean
	KindNot
	KindAnd
	KindOr
	KindXor
	KindImp
	KindEqu
	KindChoice

	// Access
	KindContext
	KindData
	KindConf
	KindMember
	KindIndex
	KindParen

	// Binding
	KindAt

	// Future temporal
	KindF
	KindG
	KindXs
	KindXw
	KindUs
	KindUw
	KindRs
	KindRw

	// Past temporal
	KindO
	KindH
	KindYs
	KindYw
	KindSs
	KindSw
	KindTs
	KindTw

	// Integral
	KindIntegral
)

var kindNames = map[Kind]string{
	KindBoolLit:   "Bool",
	KindIntLit:    "Int",
	KindNumberLit: "Number",
	KindStringLit: "String",
	KindTrue:      "True",
	KindFalse:     "False",
	KindNeg:       "Neg",
	KindAdd:       "Add",
	KindSub:       "Sub",
	KindMul:       "Mul",
	KindDiv:       "Div",
	KindMod:       "Mod",
	KindEq:        "Eq",
	KindNe:        "Ne",
	KindLt:        "Lt",
	KindLe:        "Le",
	KindGt:        "Gt",
	KindGe:        "Ge",
	KindNot:       "Not",
	KindAnd:       "And",
	KindOr:        "Or",
	KindXor:       "Xor",
	KindImp:       "Imp",
	KindEqu:       "Equ",
	KindChoice:    "Choice",
	KindContext:   "Context",
	KindData:      "Data",
	KindConf:      "Conf",
	KindMember:    "Member",
	KindIndex:     "Index",
	KindParen:     "Paren",
	KindAt:        "At",
	KindF:         "F",
	KindG:         "G",
	KindXs:        "Xs",
	KindXw:        "Xw",
	KindUs:        "Us",
	KindUw:        "Uw",
	KindRs:        "Rs",
	KindRw:        "Rw",
	KindO:         "O",
	KindH:         "H",
	KindYs:        "Ys",
	KindYw:        "Yw",
	KindSs:        "Ss",
	KindSw:        "Sw",
	KindTs:        "Ts",
	KindTw:        "Tw",
	KindIntegral:  "Int",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}

// IsFutureTemporal reports whether k is one of F/G/Xs/Xw/Us/Uw/Rs/Rw.
func (k Kind) IsFutureTemporal() bool {
	switch k {
	case KindF, KindG, KindXs, KindXw, KindUs, KindUw, KindRs, KindRw:
		return true
	}
	return false
}

// IsPastTemporal reports whether k is one of O/H/Ys/Yw/Ss/Sw/Ts/Tw.
func (k Kind) IsPastTemporal() bool {
	switch k {
	case KindO, KindH, KindYs, KindYw, KindSs, KindSw, KindTs, KindTw:
		return true
	}
	return false
}

// IsTemporal reports whether k may carry a Time bound (temporal or
// integral kinds, per spec.md §3: "Every temporal and integral variant
// may optionally carry a Time bound").
func (k Kind) IsTemporal() bool {
	return k.IsFutureTemporal() || k.IsPastTemporal() || k == KindIntegral
}

// IsKernel reports whether k is one of the kernel operators the output
// AST contract (spec.md §6) restricts a fully-canonical tree to.
func (k Kind) IsKernel() bool {
	switch k {
	case KindBoolLit, KindIntLit, KindNumberLit, KindStringLit, KindTrue, KindFalse,
		KindNeg, KindAdd, KindSub, KindMul, KindDiv, KindMod,
		KindEq, KindNe, KindLt, KindLe, KindGt, KindGe,
		KindNot, KindAnd, KindOr,
		KindContext, KindData, KindConf, KindMember, KindIndex, KindParen,
		KindAt,
		KindXs, KindXw, KindUs, KindRw,
		KindYs, KindYw, KindSs, KindTw:
		return true
	}
	return false
}
