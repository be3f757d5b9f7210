package mython

// Statement is the contract every AST node implements. Execution is strictly
// left-to-right and fully synchronous; a node either yields a value handle or
// fails with a runtime error.
type Statement interface {
	Execute(closure Closure, ctx Context) (Value, error)
}

// Constant yields a fixed value.
type Constant struct {
	value Value
}

func NewConstant(v Value) *Constant { return &Constant{value: v} }

// VariableValue resolves a dotted path n0.n1...nk: the head in the closure,
// every following segment through instance fields.
type VariableValue struct {
	path []string
}

func NewVariableValue(dottedIDs ...string) *VariableValue {
	return &VariableValue{path: dottedIDs}
}

// Assignment binds closure[name] to the result of rhs.
type Assignment struct {
	name string
	rhs  Statement
}

func NewAssignment(name string, rhs Statement) *Assignment {
	return &Assignment{name: name, rhs: rhs}
}

// FieldAssignment sets object.field to the result of rhs. The object path
// must resolve to a class instance.
type FieldAssignment struct {
	object *VariableValue
	field  string
	rhs    Statement
}

func NewFieldAssignment(object *VariableValue, field string, rhs Statement) *FieldAssignment {
	return &FieldAssignment{object: object, field: field, rhs: rhs}
}

// NewInstanceExpr allocates a fresh instance of a class, running __init__
// when the class defines one matching the argument count.
type NewInstanceExpr struct {
	class *ClassDef
	args  []Statement
}

func NewInstanceOf(class *ClassDef, args ...Statement) *NewInstanceExpr {
	return &NewInstanceExpr{class: class, args: args}
}

// PrintStmt writes its arguments to the context output, space-separated and
// newline-terminated.
type PrintStmt struct {
	args []Statement
}

func NewPrint(args ...Statement) *PrintStmt { return &PrintStmt{args: args} }

// MethodCall invokes object.method(args...).
type MethodCall struct {
	object Statement
	method string
	args   []Statement
}

func NewMethodCall(object Statement, method string, args ...Statement) *MethodCall {
	return &MethodCall{object: object, method: method, args: args}
}

// Stringify renders its argument with print dispatch and yields the text as
// a string value.
type Stringify struct {
	arg Statement
}

func NewStringify(arg Statement) *Stringify { return &Stringify{arg: arg} }

type binaryOperation struct {
	lhs Statement
	rhs Statement
}

type Add struct{ binaryOperation }

func NewAdd(lhs, rhs Statement) *Add { return &Add{binaryOperation{lhs, rhs}} }

type Sub struct{ binaryOperation }

func NewSub(lhs, rhs Statement) *Sub { return &Sub{binaryOperation{lhs, rhs}} }

type Mult struct{ binaryOperation }

func NewMult(lhs, rhs Statement) *Mult { return &Mult{binaryOperation{lhs, rhs}} }

type Div struct{ binaryOperation }

func NewDiv(lhs, rhs Statement) *Div { return &Div{binaryOperation{lhs, rhs}} }

// Or short-circuits: the right operand is not evaluated when the left is
// truthy. Always yields a fresh bool.
type Or struct{ binaryOperation }

func NewOr(lhs, rhs Statement) *Or { return &Or{binaryOperation{lhs, rhs}} }

// And short-circuits: the right operand is not evaluated when the left is
// falsy. Always yields a fresh bool.
type And struct{ binaryOperation }

func NewAnd(lhs, rhs Statement) *And { return &And{binaryOperation{lhs, rhs}} }

// Not negates the truthiness of its argument.
type Not struct {
	arg Statement
}

func NewNot(arg Statement) *Not { return &Not{arg: arg} }

// Comparator is a polymorphic ordering predicate over two value handles.
type Comparator func(lhs, rhs Value, ctx Context) (bool, error)

// Comparison applies a comparator to its operands and yields a bool.
type Comparison struct {
	binaryOperation
	cmp Comparator
}

func NewComparison(cmp Comparator, lhs, rhs Statement) *Comparison {
	return &Comparison{binaryOperation: binaryOperation{lhs, rhs}, cmp: cmp}
}

// Compound executes statements sequentially, discarding their results.
type Compound struct {
	stmts []Statement
}

func NewCompound(stmts ...Statement) *Compound { return &Compound{stmts: stmts} }

func (s *Compound) Append(stmt Statement) { s.stmts = append(s.stmts, stmt) }

// IfElse evaluates the condition and runs one of its branches. The else
// branch may be nil.
type IfElse struct {
	condition Statement
	ifBody    Statement
	elseBody  Statement
}

func NewIfElse(condition, ifBody, elseBody Statement) *IfElse {
	return &IfElse{condition: condition, ifBody: ifBody, elseBody: elseBody}
}

// ClassDefinition binds a class value in the closure under its declared name.
type ClassDefinition struct {
	class Value
}

func NewClassDefinition(class Value) *ClassDefinition {
	return &ClassDefinition{class: class}
}

// ReturnStmt transfers control out of the enclosing method body carrying its
// value. A return whose expression evaluates to the none handle completes the
// method normally instead of transferring (the language's historical
// behavior, kept deliberately).
type ReturnStmt struct {
	stmt Statement
}

func NewReturn(stmt Statement) *ReturnStmt { return &ReturnStmt{stmt: stmt} }

// MethodBody wraps a method's body and is the sole handler of the return
// transfer raised by ReturnStmt.
type MethodBody struct {
	body Statement
}

func NewMethodBody(body Statement) *MethodBody { return &MethodBody{body: body} }
