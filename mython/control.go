package mython

import "errors"

// returnSignal carries a returned value out of nested statements. It travels
// through the ordinary error channel; every statement propagates it untouched
// and MethodBody is the sole handler.
type returnSignal struct {
	value Value
}

func (s *returnSignal) Error() string { return "return outside of a method body" }

func (s *ReturnStmt) Execute(closure Closure, ctx Context) (Value, error) {
	result, err := s.stmt.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	if result.IsNone() {
		// return of the none handle does not transfer control; the method
		// falls through and completes normally.
		return None(), nil
	}
	return None(), &returnSignal{value: result}
}

func (s *MethodBody) Execute(closure Closure, ctx Context) (Value, error) {
	result, err := s.body.Execute(closure, ctx)
	if err != nil {
		var ret *returnSignal
		if errors.As(err, &ret) {
			return ret.value, nil
		}
		return None(), err
	}
	return result, nil
}
