package mython

import (
	"fmt"
	"io"
	"strconv"
)

func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindClass:
		return "class"
	case KindInstance:
		return "class instance"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Print renders the value onto out. Numbers print as decimal integers,
// strings as their raw payload, booleans as True/False, classes as
// "Class <name>". Instances print through __str__ when the class defines a
// zero-argument one; otherwise an opaque address-like identifier is used.
// The none handle prints as None.
func (v Value) Print(out io.Writer, ctx Context) error {
	switch v.kind {
	case KindNone:
		_, err := io.WriteString(out, "None")
		return err
	case KindNumber:
		_, err := io.WriteString(out, strconv.Itoa(v.Number()))
		return err
	case KindString:
		_, err := io.WriteString(out, v.Text())
		return err
	case KindBool:
		s := "False"
		if v.Bool() {
			s = "True"
		}
		_, err := io.WriteString(out, s)
		return err
	case KindClass:
		_, err := fmt.Fprintf(out, "Class %s", v.Class().Name())
		return err
	case KindInstance:
		inst := v.Instance()
		if inst.HasMethod(strMethod, 0) {
			result, err := inst.Call(strMethod, nil, ctx)
			if err != nil {
				return err
			}
			return result.Print(out, ctx)
		}
		_, err := fmt.Fprintf(out, "<%s object at %p>", inst.class.Name(), inst)
		return err
	default:
		return errorf("cannot print %s", v.kind)
	}
}

// Truthy implements Mython truthiness: the none handle is false, numbers are
// true when non-zero, strings when non-empty, booleans carry their value, and
// classes and instances are always false.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNumber:
		return v.Number() != 0
	case KindString:
		return v.Text() != ""
	case KindBool:
		return v.Bool()
	default:
		return false
	}
}
