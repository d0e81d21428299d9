package eval

import (
	"fmt"
	"strings"
)

// Builtin methods on sequence and string receivers. Kept to the small set
// assertion receivers actually use; anything richer comes from Env.BindMethod.
var builtinMethods = map[string]Method{
	"contains":   methodContains,
	"isEmpty":    methodIsEmpty,
	"nonEmpty":   methodNonEmpty,
	"length":     methodLength,
	"size":       methodLength,
	"startsWith": methodStartsWith,
	"endsWith":   methodEndsWith,
}

func wantArgs(name string, args []Value, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: want %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func methodContains(recv Value, args []Value) (Value, error) {
	if err := wantArgs("contains", args, 1); err != nil {
		return Value{}, err
	}
	switch recv.Kind {
	case VKSeq:
		for _, el := range recv.Seq {
			if NativeEqual(el, args[0]) {
				return BoolVal(true), nil
			}
		}
		return BoolVal(false), nil
	case VKString:
		if args[0].Kind != VKString {
			return Value{}, fmt.Errorf("contains: %w: want string argument, got %s", ErrBadReceiver, args[0].Kind)
		}
		return BoolVal(strings.Contains(recv.Str, args[0].Str)), nil
	default:
		return Value{}, fmt.Errorf("contains: %w: %s", ErrBadReceiver, recv.Kind)
	}
}

func methodIsEmpty(recv Value, args []Value) (Value, error) {
	if err := wantArgs("isEmpty", args, 0); err != nil {
		return Value{}, err
	}
	switch recv.Kind {
	case VKSeq:
		return BoolVal(len(recv.Seq) == 0), nil
	case VKString:
		return BoolVal(recv.Str == ""), nil
	default:
		return Value{}, fmt.Errorf("isEmpty: %w: %s", ErrBadReceiver, recv.Kind)
	}
}

func methodNonEmpty(recv Value, args []Value) (Value, error) {
	v, err := methodIsEmpty(recv, args)
	if err != nil {
		return Value{}, err
	}
	return BoolVal(!v.Bool), nil
}

func methodLength(recv Value, args []Value) (Value, error) {
	if err := wantArgs("length", args, 0); err != nil {
		return Value{}, err
	}
	switch recv.Kind {
	case VKSeq:
		return IntVal(int64(len(recv.Seq))), nil
	case VKString:
		return IntVal(int64(len(recv.Str))), nil
	default:
		return Value{}, fmt.Errorf("length: %w: %s", ErrBadReceiver, recv.Kind)
	}
}

func methodStartsWith(recv Value, args []Value) (Value, error) {
	if err := wantArgs("startsWith", args, 1); err != nil {
		return Value{}, err
	}
	if recv.Kind != VKString || args[0].Kind != VKString {
		return Value{}, fmt.Errorf("startsWith: %w: %s", ErrBadReceiver, recv.Kind)
	}
	return BoolVal(strings.HasPrefix(recv.Str, args[0].Str)), nil
}

func methodEndsWith(recv Value, args []Value) (Value, error) {
	if err := wantArgs("endsWith", args, 1); err != nil {
		return Value{}, err
	}
	if recv.Kind != VKString || args[0].Kind != VKString {
		return Value{}, fmt.Errorf("endsWith: %w: %s", ErrBadReceiver, recv.Kind)
	}
	return BoolVal(strings.HasSuffix(recv.Str, args[0].Str)), nil
}
