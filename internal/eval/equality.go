package eval

import "reflect"

// EqualityFunc is the pluggable equality collaborator behind '===' and
// '!=='. The default is native equality.
type EqualityFunc func(a, b Value) bool

// NativeEqual compares values by their contents, with int/float compared
// numerically across kinds.
func NativeEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		if an, aok := a.numeric(); aok {
			if bn, bok := b.numeric(); bok {
				return an == bn
			}
		}
		return false
	}
	switch a.Kind {
	case VKBool:
		return a.Bool == b.Bool
	case VKInt:
		return a.Int == b.Int
	case VKFloat:
		return a.Float == b.Float
	case VKString:
		return a.Str == b.Str
	case VKSeq:
		if len(a.Seq) != len(b.Seq) {
			return false
		}
		for i := range a.Seq {
			if !NativeEqual(a.Seq[i], b.Seq[i]) {
				return false
			}
		}
		return true
	case VKAny:
		return reflect.DeepEqual(a.Any, b.Any)
	default:
		return false
	}
}

// numeric returns the value as float64 for cross-kind numeric comparison.
func (v Value) numeric() (float64, bool) {
	switch v.Kind {
	case VKInt:
		return float64(v.Int), true
	case VKFloat:
		return v.Float, true
	default:
		return 0, false
	}
}
