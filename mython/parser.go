package mython

import "fmt"

// Parser builds the executable tree from the lexer's token cursor. It keeps a
// table of declared classes so that ClassName(args) expressions can bind the
// class definition directly into NewInstanceExpr nodes.
type Parser struct {
	lex     *Lexer
	classes map[string]*ClassDef
}

// NewParser wraps a token cursor. The classes table may be pre-populated (a
// REPL session reuses one across inputs); pass nil for a fresh one.
func NewParser(lex *Lexer, classes map[string]*ClassDef) *Parser {
	if classes == nil {
		classes = make(map[string]*ClassDef)
	}
	return &Parser{lex: lex, classes: classes}
}

// ParseProgram consumes the whole token stream and returns the top-level
// compound statement.
func (p *Parser) ParseProgram() (*Compound, error) {
	program := NewCompound()
	for p.cur().Type != tokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Append(stmt)
	}
	return program, nil
}

func (p *Parser) cur() Token { return p.lex.Current() }

func (p *Parser) advance() (Token, error) { return p.lex.Advance() }

func (p *Parser) errorf(format string, args ...any) error {
	return &SyntaxError{Message: fmt.Sprintf(format, args...), Line: p.cur().Line}
}

func (p *Parser) expect(tt TokenType) error {
	if p.cur().Type != tt {
		return p.errorf("expected %s, got %s", tt, p.cur())
	}
	_, err := p.advance()
	return err
}

func (p *Parser) expectChar(c byte) error {
	if p.cur().Type != tokenChar || p.cur().Ch != c {
		return p.errorf("expected %q, got %s", string(c), p.cur())
	}
	_, err := p.advance()
	return err
}

func (p *Parser) atChar(c byte) bool {
	return p.cur().Type == tokenChar && p.cur().Ch == c
}

// acceptChar consumes c when it is the current token.
func (p *Parser) acceptChar(c byte) (bool, error) {
	if !p.atChar(c) {
		return false, nil
	}
	_, err := p.advance()
	return true, err
}

func (p *Parser) parseStatement() (Statement, error) {
	switch p.cur().Type {
	case tokenClass:
		return p.parseClassDefinition()
	case tokenIf:
		return p.parseIf()
	case tokenPrint:
		return p.parsePrint()
	case tokenReturn:
		return p.parseReturn()
	default:
		return p.parseSimpleStatement()
	}
}

// parseClassDefinition handles
//
//	class Name[(Parent)]:
//	  def method(params):
//	    suite
//
// and registers the class for later ClassName(...) construction.
func (p *Parser) parseClassDefinition() (Statement, error) {
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	name := p.cur()
	if name.Type != tokenID {
		return nil, p.errorf("expected class name, got %s", name)
	}
	if _, err := p.advance(); err != nil {
		return nil, err
	}

	var parent *ClassDef
	open, err := p.acceptChar('(')
	if err != nil {
		return nil, err
	}
	if open {
		parentTok := p.cur()
		if parentTok.Type != tokenID {
			return nil, p.errorf("expected parent class name, got %s", parentTok)
		}
		parent = p.classes[parentTok.Literal]
		if parent == nil {
			return nil, p.errorf("unknown parent class %s", parentTok.Literal)
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if err := p.expect(tokenNewline); err != nil {
		return nil, err
	}
	if err := p.expect(tokenIndent); err != nil {
		return nil, err
	}

	// Register before parsing the body so methods can construct instances of
	// their own class.
	class := NewClassDef(name.Literal, nil, parent)
	p.classes[name.Literal] = class

	var methods []Method
	for p.cur().Type == tokenDef {
		method, err := p.parseMethod()
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	if err := p.expect(tokenDedent); err != nil {
		return nil, err
	}

	class.methods = methods
	return NewClassDefinition(NewClass(class)), nil
}

func (p *Parser) parseMethod() (Method, error) {
	if _, err := p.advance(); err != nil {
		return Method{}, err
	}
	name := p.cur()
	if name.Type != tokenID {
		return Method{}, p.errorf("expected method name, got %s", name)
	}
	if _, err := p.advance(); err != nil {
		return Method{}, err
	}
	if err := p.expectChar('('); err != nil {
		return Method{}, err
	}

	var params []string
	for p.cur().Type == tokenID {
		params = append(params, p.cur().Literal)
		if _, err := p.advance(); err != nil {
			return Method{}, err
		}
		comma, err := p.acceptChar(',')
		if err != nil {
			return Method{}, err
		}
		if !comma {
			break
		}
	}
	if err := p.expectChar(')'); err != nil {
		return Method{}, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return Method{}, err
	}
	return Method{Name: name.Literal, FormalParams: params, Body: NewMethodBody(body)}, nil
}

// parseSuite consumes ":" NEWLINE INDENT statements DEDENT.
func (p *Parser) parseSuite() (Statement, error) {
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if err := p.expect(tokenNewline); err != nil {
		return nil, err
	}
	if err := p.expect(tokenIndent); err != nil {
		return nil, err
	}
	suite := NewCompound()
	for p.cur().Type != tokenDedent && p.cur().Type != tokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		suite.Append(stmt)
	}
	if err := p.expect(tokenDedent); err != nil {
		return nil, err
	}
	return suite, nil
}

func (p *Parser) parseIf() (Statement, error) {
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	ifBody, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	var elseBody Statement
	if p.cur().Type == tokenElse {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		if elseBody, err = p.parseSuite(); err != nil {
			return nil, err
		}
	}
	return NewIfElse(condition, ifBody, elseBody), nil
}

func (p *Parser) parsePrint() (Statement, error) {
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	var args []Statement
	for p.cur().Type != tokenNewline && p.cur().Type != tokenEOF {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		comma, err := p.acceptChar(',')
		if err != nil {
			return nil, err
		}
		if !comma {
			break
		}
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return NewPrint(args...), nil
}

func (p *Parser) parseReturn() (Statement, error) {
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur().Type == tokenNewline || p.cur().Type == tokenEOF {
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		return NewReturn(NewConstant(None())), nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return NewReturn(expr), nil
}

// parseSimpleStatement parses an assignment or a bare expression statement.
// The expression is parsed first; when it turns out to be a plain dotted path
// followed by "=", it is reinterpreted as the assignment target.
func (p *Parser) parseSimpleStatement() (Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.atChar('=') {
		target, ok := expr.(*VariableValue)
		if !ok {
			return nil, p.errorf("invalid assignment target")
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		if len(target.path) == 1 {
			return NewAssignment(target.path[0], rhs), nil
		}
		object := NewVariableValue(target.path[:len(target.path)-1]...)
		return NewFieldAssignment(object, target.path[len(target.path)-1], rhs), nil
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return expr, nil
}

// endOfStatement consumes the statement's NEWLINE. EOF is accepted so that a
// final line without a trailing newline still parses.
func (p *Parser) endOfStatement() error {
	if p.cur().Type == tokenEOF {
		return nil
	}
	return p.expect(tokenNewline)
}

func (p *Parser) parseExpression() (Statement, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Statement, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == tokenOr {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = NewOr(lhs, rhs)
	}
	return lhs, nil
}

func (p *Parser) parseAnd() (Statement, error) {
	lhs, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == tokenAnd {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lhs = NewAnd(lhs, rhs)
	}
	return lhs, nil
}

func (p *Parser) parseNot() (Statement, error) {
	if p.cur().Type == tokenNot {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return NewNot(arg), nil
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() (Statement, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	var cmp Comparator
	switch {
	case p.cur().Type == tokenEQ:
		cmp = Equal
	case p.cur().Type == tokenNotEQ:
		cmp = NotEqual
	case p.cur().Type == tokenLTE:
		cmp = LessOrEqual
	case p.cur().Type == tokenGTE:
		cmp = GreaterOrEqual
	case p.atChar('<'):
		cmp = Less
	case p.atChar('>'):
		cmp = Greater
	default:
		return lhs, nil
	}
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return NewComparison(cmp, lhs, rhs), nil
}

func (p *Parser) parseAdditive() (Statement, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.atChar('+') || p.atChar('-') {
		op := p.cur().Ch
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			lhs = NewAdd(lhs, rhs)
		} else {
			lhs = NewSub(lhs, rhs)
		}
	}
	return lhs, nil
}

func (p *Parser) parseMultiplicative() (Statement, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.atChar('*') || p.atChar('/') {
		op := p.cur().Ch
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			lhs = NewMult(lhs, rhs)
		} else {
			lhs = NewDiv(lhs, rhs)
		}
	}
	return lhs, nil
}

func (p *Parser) parseUnary() (Statement, error) {
	minus, err := p.acceptChar('-')
	if err != nil {
		return nil, err
	}
	if minus {
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return NewSub(NewConstant(NewNumber(0)), arg), nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Statement, error) {
	tok := p.cur()
	switch tok.Type {
	case tokenNumber:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return NewConstant(NewNumber(tok.Number)), nil
	case tokenString:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return NewConstant(NewString(tok.Literal)), nil
	case tokenTrue:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return NewConstant(NewBool(true)), nil
	case tokenFalse:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return NewConstant(NewBool(false)), nil
	case tokenNone:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return NewConstant(None()), nil
	case tokenID:
		return p.parseDotted()
	case tokenChar:
		if tok.Ch == '(' {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			return expr, nil
		}
	}
	return nil, p.errorf("unexpected token %s", tok)
}

// parseDotted parses ID ('.' ID)* with an optional trailing argument list:
// a plain path yields VariableValue, Name(args) yields instance construction
// when Name is a declared class, str(x) yields Stringify, and path.m(args)
// yields a method call.
func (p *Parser) parseDotted() (Statement, error) {
	path := []string{p.cur().Literal}
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	for p.atChar('.') {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur().Type != tokenID {
			return nil, p.errorf("expected field name, got %s", p.cur())
		}
		path = append(path, p.cur().Literal)
		if _, err := p.advance(); err != nil {
			return nil, err
		}
	}
	if !p.atChar('(') {
		return NewVariableValue(path...), nil
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	if len(path) == 1 {
		if path[0] == "str" {
			if len(args) != 1 {
				return nil, p.errorf("str expects one argument")
			}
			return NewStringify(args[0]), nil
		}
		class, ok := p.classes[path[0]]
		if !ok {
			return nil, p.errorf("unknown class %s", path[0])
		}
		return NewInstanceOf(class, args...), nil
	}
	object := NewVariableValue(path[:len(path)-1]...)
	return NewMethodCall(object, path[len(path)-1], args...), nil
}

func (p *Parser) parseArgs() ([]Statement, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var args []Statement
	if p.atChar(')') {
		_, err := p.advance()
		return nil, err
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		comma, err := p.acceptChar(',')
		if err != nil {
			return nil, err
		}
		if !comma {
			break
		}
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	return args, nil
}
