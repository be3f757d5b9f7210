package mython

import (
	"errors"
	"io"
	"os"
	"strings"
)

const defaultRecursionLimit = 1000

// Config controls where program output goes and how deep method recursion
// may grow before the interpreter aborts the run.
type Config struct {
	Output         io.Writer
	RecursionLimit int
}

// Interpreter compiles and runs Mython programs.
type Interpreter struct {
	config Config
}

// NewInterpreter constructs an Interpreter with sane defaults: output to
// stdout and the default recursion limit.
func NewInterpreter(cfg Config) *Interpreter {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.RecursionLimit == 0 {
		cfg.RecursionLimit = defaultRecursionLimit
	}
	return &Interpreter{config: cfg}
}

// Program is a compiled Mython source, ready to execute.
type Program struct {
	body   *Compound
	source string
}

// Compile lexes and parses source into an executable program.
func (in *Interpreter) Compile(source string) (*Program, error) {
	body, err := compileInto(source, nil)
	if err != nil {
		return nil, err
	}
	return &Program{body: body, source: source}, nil
}

func compileInto(source string, classes map[string]*ClassDef) (*Compound, error) {
	lex, err := NewLexer(strings.NewReader(source))
	if err != nil {
		return nil, withCodeFrame(err, source)
	}
	body, err := NewParser(lex, classes).ParseProgram()
	if err != nil {
		return nil, withCodeFrame(err, source)
	}
	return body, nil
}

// Run compiles source and executes it in a fresh global closure.
func (in *Interpreter) Run(source string) error {
	program, err := in.Compile(source)
	if err != nil {
		return err
	}
	return in.Execute(program)
}

// Execute runs a compiled program in a fresh global closure.
func (in *Interpreter) Execute(program *Program) error {
	ctx := NewContextWithLimit(in.config.Output, in.config.RecursionLimit)
	return runBody(program.body, make(Closure), ctx)
}

func runBody(body *Compound, closure Closure, ctx Context) error {
	if _, err := body.Execute(closure, ctx); err != nil {
		var ret *returnSignal
		if errors.As(err, &ret) {
			return errorf("return outside of a method body")
		}
		return err
	}
	return nil
}

// Session keeps classes and global bindings alive across Eval calls; the
// REPL runs on one.
type Session struct {
	interp  *Interpreter
	classes map[string]*ClassDef
	closure Closure
	ctx     Context
}

// NewSession starts an interactive evaluation session.
func (in *Interpreter) NewSession() *Session {
	return &Session{
		interp:  in,
		classes: make(map[string]*ClassDef),
		closure: make(Closure),
		ctx:     NewContextWithLimit(in.config.Output, in.config.RecursionLimit),
	}
}

// Eval compiles and executes one input against the session's persistent
// state.
func (s *Session) Eval(source string) error {
	body, err := compileInto(source, s.classes)
	if err != nil {
		return err
	}
	return runBody(body, s.closure, s.ctx)
}
