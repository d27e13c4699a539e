package sortedlist

import (
	"fmt"
	"math"
	"strconv"

	"github.com/amp-labs/sortedlist/sortable"
)

// Value is a single list element: either an integer or a string. The zero
// Value has KindUnset and is rejected by Insert.
type Value struct {
	kind Kind
	num  int64
	str  string
}

// Compile-time check that Value implements Sortable[Value].
var _ sortable.Sortable[Value] = Value{}

// Int wraps an integer.
func Int(v int64) Value {
	return Value{kind: KindIntegral, num: v}
}

// Text wraps a string.
func Text(s string) Value {
	return Value{kind: KindText, str: s}
}

// ValueOf converts a Go integer or string into a Value. Any other type, and
// unsigned integers that do not fit in an int64, yield ErrUnsupportedKind.
func ValueOf(v any) (Value, error) { //nolint:cyclop
	switch typed := v.(type) {
	case Value:
		if !typed.kind.Valid() {
			return Value{}, fmt.Errorf("%w: %s value", ErrUnsupportedKind, typed.kind)
		}

		return typed, nil
	case int:
		return Int(int64(typed)), nil
	case int8:
		return Int(int64(typed)), nil
	case int16:
		return Int(int64(typed)), nil
	case int32:
		return Int(int64(typed)), nil
	case int64:
		return Int(typed), nil
	case uint:
		return fromUnsigned(uint64(typed))
	case uint8:
		return Int(int64(typed)), nil
	case uint16:
		return Int(int64(typed)), nil
	case uint32:
		return Int(int64(typed)), nil
	case uint64:
		return fromUnsigned(typed)
	case string:
		return Text(typed), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedKind, v)
	}
}

func fromUnsigned(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %d overflows int64", ErrUnsupportedKind, u)
	}

	return Int(int64(u)), nil
}

// Kind returns the element kind carried by v.
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the integer payload and whether v is integral.
func (v Value) Int() (int64, bool) {
	return v.num, v.kind == KindIntegral
}

// Text returns the string payload and whether v is text.
func (v Value) Text() (string, bool) {
	return v.str, v.kind == KindText
}

// Any returns the payload as an int64 or string, or nil for the zero Value.
func (v Value) Any() any {
	switch v.kind {
	case KindIntegral:
		return v.num
	case KindText:
		return v.str
	default:
		return nil
	}
}

// Equals reports whether both values have the same kind and payload.
func (v Value) Equals(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindIntegral:
		return sortable.Int(v.num).Equals(sortable.Int(other.num))
	case KindText:
		return sortable.String(v.str).Equals(sortable.String(other.str))
	default:
		return true
	}
}

// LessThan orders integers numerically and text byte-wise. Values of
// different kinds are ordered by kind so the comparison stays total.
func (v Value) LessThan(other Value) bool {
	return v.lessThan(other, TextOrderLexical)
}

func (v Value) lessThan(other Value, order TextOrder) bool {
	if v.kind != other.kind {
		return v.kind < other.kind
	}

	switch v.kind {
	case KindIntegral:
		return sortable.Int(v.num).LessThan(sortable.Int(other.num))
	case KindText:
		if order == TextOrderNatural {
			return sortable.Natural(v.str).LessThan(sortable.Natural(other.str))
		}

		return sortable.String(v.str).LessThan(sortable.String(other.str))
	default:
		return false
	}
}

// String renders integers in decimal and text quoted.
func (v Value) String() string {
	switch v.kind {
	case KindIntegral:
		return strconv.FormatInt(v.num, 10)
	case KindText:
		return strconv.Quote(v.str)
	default:
		return "<unset>"
	}
}
