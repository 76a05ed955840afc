// Package formula implements the derived-property expression tree and its
// pure interpreter. Evaluation is total over the declared operator and
// function set: every failure becomes an error-kinded value, never a panic.
package formula

// Expr is one node of a formula expression tree.
// The set of implementations is closed: PropertyRef, Literal, Binary, Call.
type Expr interface {
	isExpr()
}

// PropertyRef references another property of the owning node by property id.
type PropertyRef struct {
	ID string
}

// Literal is a constant string, number, boolean, or date value.
type Literal struct {
	Value Value
}

// Op is one case of the closed binary operator enumeration.
type Op string

// Binary operator constants.
const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpMod Op = "%"
	OpEq  Op = "=="
	OpNe  Op = "!="
	OpGt  Op = ">"
	OpGe  Op = ">="
	OpLt  Op = "<"
	OpLe  Op = "<="
	OpAnd Op = "and"
	OpOr  Op = "or"
)

// Binary applies a binary arithmetic, comparison, or boolean operator.
type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

// Fn is one case of the closed function enumeration.
type Fn string

// Function constants.
const (
	FnAbs       Fn = "abs"
	FnCeil      Fn = "ceil"
	FnFloor     Fn = "floor"
	FnRound     Fn = "round"
	FnSqrt      Fn = "sqrt"
	FnMin       Fn = "min"
	FnMax       Fn = "max"
	FnNot       Fn = "not"
	FnEmpty     Fn = "empty"
	FnLength    Fn = "length"
	FnConcat    Fn = "concat"
	FnContains  Fn = "contains"
	FnIf        Fn = "if"
	FnToNumber  Fn = "toNumber"
	FnTimestamp Fn = "timestamp"
)

// Call applies a function from the fixed function set.
type Call struct {
	Fn   Fn
	Args []Expr
}

func (PropertyRef) isExpr() {}
func (Literal) isExpr()     {}
func (Binary) isExpr()      {}
func (Call) isExpr()        {}
