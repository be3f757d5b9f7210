package mython

func (s *Constant) Execute(Closure, Context) (Value, error) {
	return s.value, nil
}

func (s *VariableValue) Execute(closure Closure, ctx Context) (Value, error) {
	head, ok := closure[s.path[0]]
	if !ok {
		return None(), errorf("unknown variable %s", s.path[0])
	}
	if len(s.path) == 1 {
		return head, nil
	}
	inst := head.Instance()
	if inst == nil {
		return None(), errorf("%s is not a class instance", s.path[0])
	}
	for _, field := range s.path[1 : len(s.path)-1] {
		next, ok := inst.fields[field]
		if !ok {
			return None(), errorf("unknown field %s", field)
		}
		if inst = next.Instance(); inst == nil {
			return None(), errorf("%s is not a class instance", field)
		}
	}
	tail := s.path[len(s.path)-1]
	result, ok := inst.fields[tail]
	if !ok {
		return None(), errorf("unknown field %s", tail)
	}
	return result, nil
}

func (s *Assignment) Execute(closure Closure, ctx Context) (Value, error) {
	result, err := s.rhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	closure[s.name] = result
	return result, nil
}

func (s *FieldAssignment) Execute(closure Closure, ctx Context) (Value, error) {
	object, err := s.object.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	inst := object.Instance()
	if inst == nil {
		return None(), errorf("cannot assign field of %s", object.Kind())
	}
	result, err := s.rhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	inst.fields[s.field] = result
	return result, nil
}

func (s *Compound) Execute(closure Closure, ctx Context) (Value, error) {
	for _, stmt := range s.stmts {
		if _, err := stmt.Execute(closure, ctx); err != nil {
			return None(), err
		}
	}
	return None(), nil
}

func (s *IfElse) Execute(closure Closure, ctx Context) (Value, error) {
	condition, err := s.condition.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	if IsTrue(condition) {
		return s.ifBody.Execute(closure, ctx)
	}
	if s.elseBody != nil {
		return s.elseBody.Execute(closure, ctx)
	}
	return None(), nil
}

func (s *ClassDefinition) Execute(closure Closure, ctx Context) (Value, error) {
	closure[s.class.Class().Name()] = s.class
	return s.class, nil
}
