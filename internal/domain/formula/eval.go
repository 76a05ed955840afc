package formula

import (
	"math"
	"strconv"
	"strings"
)

// Env supplies property values to the evaluator.
// Implementations resolve property ids against a schema and a node's raw properties.
type Env interface {
	// Property returns the value stored under the given property id.
	// Returns false when the property is absent or unresolvable.
	Property(id string) (Value, bool)
}

// EnvFunc adapts a function to the Env interface.
type EnvFunc func(id string) (Value, bool)

// Property implements Env.
func (f EnvFunc) Property(id string) (Value, bool) { return f(id) }

// Eval evaluates an expression against an environment.
// The result is always a well-formed Value: failures of any kind (undefined
// property, type mismatch, division by zero, unknown operator) yield a
// KindError value rather than a panic or partial result.
func Eval(e Expr, env Env) Value {
	switch ex := e.(type) {
	case PropertyRef:
		if env == nil {
			return Errorf("property %q: no environment", ex.ID)
		}
		v, ok := env.Property(ex.ID)
		if !ok {
			return Errorf("property %q is undefined", ex.ID)
		}
		return v
	case Literal:
		return ex.Value
	case Binary:
		return evalBinary(ex, env)
	case Call:
		return evalCall(ex, env)
	case nil:
		return Errorf("empty expression")
	}
	return Errorf("unknown expression node %T", e)
}

func evalBinary(b Binary, env Env) Value {
	l := Eval(b.Left, env)
	if l.Kind() == KindError {
		return l
	}
	r := Eval(b.Right, env)
	if r.Kind() == KindError {
		return r
	}

	switch b.Op {
	case OpAdd:
		// + concatenates strings, adds numbers.
		if l.Kind() == KindString && r.Kind() == KindString {
			return String(l.Str() + r.Str())
		}
		return numericOp(b.Op, l, r)
	case OpSub, OpMul, OpDiv, OpMod:
		return numericOp(b.Op, l, r)
	case OpEq, OpNe:
		return equalityOp(b.Op, l, r)
	case OpGt, OpGe, OpLt, OpLe:
		return orderingOp(b.Op, l, r)
	case OpAnd, OpOr:
		return booleanOp(b.Op, l, r)
	}
	return Errorf("unknown operator %q", b.Op)
}

func numericOp(op Op, l, r Value) Value {
	ln, ok := l.asNumber()
	if !ok {
		return Errorf("operator %q: left operand is not a number", op)
	}
	rn, ok := r.asNumber()
	if !ok {
		return Errorf("operator %q: right operand is not a number", op)
	}

	switch op {
	case OpAdd:
		return Number(ln + rn)
	case OpSub:
		return Number(ln - rn)
	case OpMul:
		return Number(ln * rn)
	case OpDiv:
		if rn == 0 {
			return Errorf("division by zero")
		}
		return Number(ln / rn)
	case OpMod:
		if rn == 0 {
			return Errorf("modulo by zero")
		}
		return Number(math.Mod(ln, rn))
	}
	return Errorf("unknown numeric operator %q", op)
}

func equalityOp(op Op, l, r Value) Value {
	if l.Kind() != r.Kind() {
		return Errorf("operator %q: mismatched operand kinds", op)
	}

	var eq bool
	switch l.Kind() {
	case KindNumber:
		eq = l.Num() == r.Num()
	case KindString:
		eq = l.Str() == r.Str()
	case KindBool:
		eq = l.Bool() == r.Bool()
	case KindDate:
		eq = l.Time().Equal(r.Time())
	case KindError:
		return Errorf("operator %q on error value", op)
	}

	if op == OpNe {
		eq = !eq
	}
	return Boolean(eq)
}

func orderingOp(op Op, l, r Value) Value {
	var cmp float64
	switch {
	case l.Kind() == KindString && r.Kind() == KindString:
		cmp = float64(strings.Compare(l.Str(), r.Str()))
	case l.Kind() == KindDate && r.Kind() == KindDate:
		cmp = float64(l.Time().Compare(r.Time()))
	default:
		ln, lok := l.asNumber()
		rn, rok := r.asNumber()
		if !lok || !rok {
			return Errorf("operator %q: operands are not comparable", op)
		}
		cmp = ln - rn
	}

	switch op {
	case OpGt:
		return Boolean(cmp > 0)
	case OpGe:
		return Boolean(cmp >= 0)
	case OpLt:
		return Boolean(cmp < 0)
	case OpLe:
		return Boolean(cmp <= 0)
	}
	return Errorf("unknown ordering operator %q", op)
}

func booleanOp(op Op, l, r Value) Value {
	if l.Kind() != KindBool || r.Kind() != KindBool {
		return Errorf("operator %q: operands must be boolean", op)
	}
	if op == OpAnd {
		return Boolean(l.Bool() && r.Bool())
	}
	return Boolean(l.Bool() || r.Bool())
}

//nolint:cyclop // flat dispatch over the closed function set
func evalCall(c Call, env Env) Value {
	args := make([]Value, len(c.Args))
	for i, a := range c.Args {
		args[i] = Eval(a, env)
		// if() handles its own laziness via the condition only; every other
		// function is strict, and error arguments infect the call.
		if args[i].Kind() == KindError && c.Fn != FnIf {
			return args[i]
		}
	}

	switch c.Fn {
	case FnAbs:
		return unaryNumeric(args, math.Abs)
	case FnCeil:
		return unaryNumeric(args, math.Ceil)
	case FnFloor:
		return unaryNumeric(args, math.Floor)
	case FnRound:
		return unaryNumeric(args, math.Round)
	case FnSqrt:
		return evalSqrt(args)
	case FnMin:
		return evalFold(args, math.Min)
	case FnMax:
		return evalFold(args, math.Max)
	case FnNot:
		if len(args) != 1 || args[0].Kind() != KindBool {
			return Errorf("not() requires one boolean argument")
		}
		return Boolean(!args[0].Bool())
	case FnEmpty:
		if len(args) != 1 {
			return Errorf("empty() requires one argument")
		}
		return Boolean(isEmpty(args[0]))
	case FnLength:
		if len(args) != 1 || args[0].Kind() != KindString {
			return Errorf("length() requires one string argument")
		}
		return Number(float64(len(args[0].Str())))
	case FnConcat:
		var b strings.Builder
		for _, a := range args {
			if a.Kind() != KindString {
				return Errorf("concat() requires string arguments")
			}
			b.WriteString(a.Str())
		}
		return String(b.String())
	case FnContains:
		if len(args) != 2 || args[0].Kind() != KindString || args[1].Kind() != KindString {
			return Errorf("contains() requires two string arguments")
		}
		return Boolean(strings.Contains(args[0].Str(), args[1].Str()))
	case FnIf:
		return evalIf(args)
	case FnToNumber:
		return evalToNumber(args)
	case FnTimestamp:
		if len(args) != 1 || args[0].Kind() != KindDate {
			return Errorf("timestamp() requires one date argument")
		}
		return Number(float64(args[0].Time().UnixMilli()))
	}
	return Errorf("unknown function %q", c.Fn)
}

func unaryNumeric(args []Value, f func(float64) float64) Value {
	if len(args) != 1 {
		return Errorf("function requires one numeric argument")
	}
	n, ok := args[0].asNumber()
	if !ok {
		return Errorf("argument is not a number")
	}
	return Number(f(n))
}

func evalSqrt(args []Value) Value {
	if len(args) != 1 {
		return Errorf("sqrt() requires one argument")
	}
	n, ok := args[0].asNumber()
	if !ok || n < 0 {
		return Errorf("sqrt() requires a non-negative number")
	}
	return Number(math.Sqrt(n))
}

func evalFold(args []Value, f func(a, b float64) float64) Value {
	if len(args) == 0 {
		return Errorf("min/max require at least one argument")
	}
	acc, ok := args[0].asNumber()
	if !ok {
		return Errorf("min/max require numeric arguments")
	}
	for _, a := range args[1:] {
		n, ok := a.asNumber()
		if !ok {
			return Errorf("min/max require numeric arguments")
		}
		acc = f(acc, n)
	}
	return Number(acc)
}

func evalIf(args []Value) Value {
	if len(args) != 3 {
		return Errorf("if() requires three arguments")
	}
	cond := args[0]
	if cond.Kind() == KindError {
		return cond
	}
	if cond.Kind() != KindBool {
		return Errorf("if() condition must be boolean")
	}
	if cond.Bool() {
		return args[1]
	}
	return args[2]
}

func evalToNumber(args []Value) Value {
	if len(args) != 1 {
		return Errorf("toNumber() requires one argument")
	}
	n, ok := args[0].asNumber()
	if !ok {
		return Errorf("toNumber(): value is not numeric")
	}
	return Number(n)
}

// asNumber coerces numbers directly and numeric strings via parsing.
func (v Value) asNumber() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func isEmpty(v Value) bool {
	switch v.kind {
	case KindString:
		return v.str == ""
	case KindNumber:
		return false
	case KindBool:
		return false
	case KindDate:
		return v.date.IsZero()
	case KindError:
		return true
	}
	return true
}

// trimFloat renders a float without a trailing ".0" for integral values.
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
