package mython

func (s *binaryOperation) operands(closure Closure, ctx Context) (Value, Value, error) {
	lhs, err := s.lhs.Execute(closure, ctx)
	if err != nil {
		return None(), None(), err
	}
	rhs, err := s.rhs.Execute(closure, ctx)
	if err != nil {
		return None(), None(), err
	}
	return lhs, rhs, nil
}

func (s *Add) Execute(closure Closure, ctx Context) (Value, error) {
	lhs, rhs, err := s.operands(closure, ctx)
	if err != nil {
		return None(), err
	}
	return addValues(lhs, rhs, ctx)
}

func (s *Sub) Execute(closure Closure, ctx Context) (Value, error) {
	lhs, rhs, err := s.operands(closure, ctx)
	if err != nil {
		return None(), err
	}
	return subValues(lhs, rhs)
}

func (s *Mult) Execute(closure Closure, ctx Context) (Value, error) {
	lhs, rhs, err := s.operands(closure, ctx)
	if err != nil {
		return None(), err
	}
	return multValues(lhs, rhs)
}

func (s *Div) Execute(closure Closure, ctx Context) (Value, error) {
	lhs, rhs, err := s.operands(closure, ctx)
	if err != nil {
		return None(), err
	}
	return divValues(lhs, rhs)
}

func (s *Or) Execute(closure Closure, ctx Context) (Value, error) {
	lhs, err := s.lhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	if IsTrue(lhs) {
		return NewBool(true), nil
	}
	rhs, err := s.rhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	return NewBool(IsTrue(rhs)), nil
}

func (s *And) Execute(closure Closure, ctx Context) (Value, error) {
	lhs, err := s.lhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	if !IsTrue(lhs) {
		return NewBool(false), nil
	}
	rhs, err := s.rhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	return NewBool(IsTrue(rhs)), nil
}

func (s *Not) Execute(closure Closure, ctx Context) (Value, error) {
	result, err := s.arg.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	return NewBool(!IsTrue(result)), nil
}

func (s *Comparison) Execute(closure Closure, ctx Context) (Value, error) {
	lhs, rhs, err := s.operands(closure, ctx)
	if err != nil {
		return None(), err
	}
	result, err := s.cmp(lhs, rhs, ctx)
	if err != nil {
		return None(), err
	}
	return NewBool(result), nil
}
