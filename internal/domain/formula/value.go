package formula

import (
	"fmt"
	"time"
)

// ValueKind tags the result type of a formula evaluation.
type ValueKind int

// Value kind constants.
const (
	KindNumber ValueKind = iota
	KindString
	KindBool
	KindDate
	KindError
)

// Value is a tagged formula result: Number | String | Boolean | Date | Error.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
	date time.Time
	err  error
}

// Number creates a number value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String creates a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Boolean creates a boolean value.
func Boolean(b bool) Value { return Value{kind: KindBool, b: b} }

// Date creates a date value.
func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }

// Errorf creates an error value; it infects every expression containing it.
func Errorf(format string, args ...any) Value {
	return Value{kind: KindError, err: fmt.Errorf(format, args...)}
}

// Kind returns the value's tag.
func (v Value) Kind() ValueKind { return v.kind }

// Num returns the number payload (zero unless KindNumber).
func (v Value) Num() float64 { return v.num }

// Str returns the string payload (empty unless KindString).
func (v Value) Str() string { return v.str }

// Bool returns the boolean payload (false unless KindBool).
func (v Value) Bool() bool { return v.b }

// Time returns the date payload (zero unless KindDate).
func (v Value) Time() time.Time { return v.date }

// Err returns the error payload (nil unless KindError).
func (v Value) Err() error { return v.err }

// Format renders the value for display. Error values render empty.
func (v Value) Format() string {
	switch v.kind {
	case KindNumber:
		return trimFloat(v.num)
	case KindString:
		return v.str
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindDate:
		return v.date.Format("Jan 2, 2006 03:04 PM")
	case KindError:
		return ""
	}
	return ""
}
