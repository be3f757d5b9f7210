package mython

import (
	"io"
	"strings"
)

func (s *NewInstanceExpr) Execute(closure Closure, ctx Context) (Value, error) {
	object := NewObject(s.class)
	inst := object.Instance()
	if !inst.HasMethod(initMethod, len(s.args)) {
		return object, nil
	}
	args, err := evalArgs(s.args, closure, ctx)
	if err != nil {
		return None(), err
	}
	if _, err := inst.Call(initMethod, args, ctx); err != nil {
		return None(), err
	}
	return object, nil
}

func (s *MethodCall) Execute(closure Closure, ctx Context) (Value, error) {
	object, err := s.object.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	inst := object.Instance()
	if inst == nil {
		return None(), errorf("cannot call method on %s", object.Kind())
	}
	args, err := evalArgs(s.args, closure, ctx)
	if err != nil {
		return None(), err
	}
	return inst.Call(s.method, args, ctx)
}

func evalArgs(argStmts []Statement, closure Closure, ctx Context) ([]Value, error) {
	args := make([]Value, len(argStmts))
	for i, stmt := range argStmts {
		val, err := stmt.Execute(closure, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}
	return args, nil
}

func (s *PrintStmt) Execute(closure Closure, ctx Context) (Value, error) {
	out := ctx.Output()
	for i, arg := range s.args {
		if i > 0 {
			if _, err := io.WriteString(out, " "); err != nil {
				return None(), err
			}
		}
		result, err := arg.Execute(closure, ctx)
		if err != nil {
			return None(), err
		}
		if err := result.Print(out, ctx); err != nil {
			return None(), err
		}
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return None(), err
	}
	return None(), nil
}

func (s *Stringify) Execute(closure Closure, ctx Context) (Value, error) {
	result, err := s.arg.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	var sb strings.Builder
	if err := result.Print(&sb, ctx); err != nil {
		return None(), err
	}
	return NewString(sb.String()), nil
}
