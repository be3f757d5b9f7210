package mython

// None returns the distinguished none handle.
func None() Value { return Value{} }

func NewNumber(n int) Value    { return Value{kind: KindNumber, data: n} }
func NewString(s string) Value { return Value{kind: KindString, data: s} }
func NewBool(b bool) Value     { return Value{kind: KindBool, data: b} }

// NewClass wraps a class definition in an owning handle.
func NewClass(def *ClassDef) Value { return Value{kind: KindClass, data: def} }

// NewObject allocates a fresh, uninitialized instance of class.
func NewObject(class *ClassDef) Value {
	return Value{kind: KindInstance, data: newInstance(class)}
}

// shareInstance wraps an existing instance in a non-owning handle. Reserved
// for the self binding; no user-visible path creates shared handles.
func shareInstance(inst *Instance) Value {
	return Value{kind: KindInstance, data: inst, shared: true}
}
