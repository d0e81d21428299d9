// Package eval walks expression trees, recording the value and source column
// of every node actually evaluated on the taken control-flow path.
package eval

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ValueKind identifies the runtime type of a Value.
type ValueKind uint8

const (
	// VKInvalid represents an invalid value.
	VKInvalid ValueKind = iota
	// VKBool represents a boolean value.
	VKBool
	// VKInt represents a signed integer value.
	VKInt
	// VKFloat represents a floating-point value.
	VKFloat
	// VKString represents a string value.
	VKString
	// VKSeq represents an ordered sequence of values.
	VKSeq
	// VKAny wraps a host value the engine does not decompose.
	VKAny
)

// String returns a human-readable name for the value kind.
func (k ValueKind) String() string {
	switch k {
	case VKInvalid:
		return "invalid"
	case VKBool:
		return "bool"
	case VKInt:
		return "int"
	case VKFloat:
		return "float"
	case VKString:
		return "string"
	case VKSeq:
		return "seq"
	case VKAny:
		return "any"
	default:
		return fmt.Sprintf("ValueKind(%d)", k)
	}
}

// Value is a runtime value produced while evaluating an assertion.
type Value struct {
	Kind  ValueKind
	Bool  bool    // for VKBool
	Int   int64   // for VKInt
	Float float64 // for VKFloat
	Str   string  // for VKString
	Seq   []Value // for VKSeq
	Any   any     // for VKAny
}

func BoolVal(b bool) Value      { return Value{Kind: VKBool, Bool: b} }
func IntVal(i int64) Value      { return Value{Kind: VKInt, Int: i} }
func FloatVal(f float64) Value  { return Value{Kind: VKFloat, Float: f} }
func StringVal(s string) Value  { return Value{Kind: VKString, Str: s} }
func SeqVal(vs ...Value) Value  { return Value{Kind: VKSeq, Seq: vs} }
func AnyVal(v any) Value        { return Value{Kind: VKAny, Any: v} }

// FromAny converts a host value into an engine value, mapping the common Go
// shapes and wrapping everything else in VKAny.
func FromAny(v any) Value {
	switch x := v.(type) {
	case nil:
		return Value{Kind: VKAny}
	case Value:
		return x
	case bool:
		return BoolVal(x)
	case int:
		return IntVal(int64(x))
	case int32:
		return IntVal(int64(x))
	case int64:
		return IntVal(x)
	case float32:
		return FloatVal(float64(x))
	case float64:
		return FloatVal(x)
	case string:
		return StringVal(x)
	case []any:
		elems := make([]Value, 0, len(x))
		for _, el := range x {
			elems = append(elems, FromAny(el))
		}
		return SeqVal(elems...)
	default:
		return AnyVal(v)
	}
}

// Truthy returns the boolean behind the value; ok is false for non-booleans.
func (v Value) Truthy() (bool, bool) {
	if v.Kind != VKBool {
		return false, false
	}
	return v.Bool, true
}

// Render returns the canonical printed form used in diagrams: quoted strings,
// bracketed sequences, everything else in its native text form. Strings are
// NFC-normalized so display-width column math stays stable under combining
// sequences.
func (v Value) Render() string {
	switch v.Kind {
	case VKBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case VKInt:
		return strconv.FormatInt(v.Int, 10)
	case VKFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case VKString:
		return strconv.Quote(norm.NFC.String(v.Str))
	case VKSeq:
		var b strings.Builder
		b.WriteByte('[')
		for i, el := range v.Seq {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(el.Render())
		}
		b.WriteByte(']')
		return b.String()
	case VKAny:
		if v.Any == nil {
			return "<nil>"
		}
		return fmt.Sprintf("%v", v.Any)
	default:
		return "<invalid>"
	}
}
