package mython

import (
	"strings"
	"testing"
)

func parseSource(t *testing.T, source string) (*Compound, error) {
	t.Helper()
	lex, err := NewLexer(strings.NewReader(source))
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	return NewParser(lex, nil).ParseProgram()
}

func TestParseAssignmentShapes(t *testing.T) {
	program, err := parseSource(t, "x = 1\nself.y = 2\na.b.c = 3\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(program.stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(program.stmts))
	}
	if _, ok := program.stmts[0].(*Assignment); !ok {
		t.Fatalf("statement 0: expected Assignment, got %T", program.stmts[0])
	}
	fa, ok := program.stmts[1].(*FieldAssignment)
	if !ok {
		t.Fatalf("statement 1: expected FieldAssignment, got %T", program.stmts[1])
	}
	if fa.field != "y" || len(fa.object.path) != 1 || fa.object.path[0] != "self" {
		t.Fatalf("unexpected field assignment shape: %v.%s", fa.object.path, fa.field)
	}
	fa = program.stmts[2].(*FieldAssignment)
	if fa.field != "c" || len(fa.object.path) != 2 {
		t.Fatalf("unexpected dotted target: %v.%s", fa.object.path, fa.field)
	}
}

func TestParseRegistersClasses(t *testing.T) {
	classes := make(map[string]*ClassDef)
	lex, err := NewLexer(strings.NewReader("class A:\n  def m():\n    return 1\n"))
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if _, err := NewParser(lex, classes).ParseProgram(); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	class, ok := classes["A"]
	if !ok {
		t.Fatal("expected class A registered")
	}
	if class.GetMethod("m") == nil {
		t.Fatal("expected method m on class A")
	}
}

func TestParseInheritanceRequiresKnownParent(t *testing.T) {
	_, err := parseSource(t, "class B(A):\n  def m():\n    return 1\n")
	if err == nil {
		t.Fatal("expected unknown parent error")
	}
}

func TestParseUnknownClassConstruction(t *testing.T) {
	_, err := parseSource(t, "x = Missing()\n")
	if err == nil {
		t.Fatal("expected unknown class error")
	}
}

func TestParseMethodParams(t *testing.T) {
	classes := make(map[string]*ClassDef)
	source := "class P:\n  def pair(a, b):\n    return a\n"
	lex, err := NewLexer(strings.NewReader(source))
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if _, err := NewParser(lex, classes).ParseProgram(); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	m := classes["P"].GetMethod("pair")
	if m == nil || len(m.FormalParams) != 2 || m.FormalParams[0] != "a" || m.FormalParams[1] != "b" {
		t.Fatalf("unexpected params: %+v", m)
	}
}

func TestParseErrorsCarryLine(t *testing.T) {
	_, err := parseSource(t, "x = 1\ny = )\n")
	if err == nil {
		t.Fatal("expected parse error")
	}
	syn, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected syntax error, got %T", err)
	}
	if syn.Line != 2 {
		t.Fatalf("expected line 2, got %d", syn.Line)
	}
}

func TestParseRejectsBadTargets(t *testing.T) {
	if _, err := parseSource(t, "1 = 2\n"); err == nil {
		t.Fatal("expected invalid target error")
	}
	if _, err := parseSource(t, "x.y() = 2\n"); err == nil {
		t.Fatal("expected invalid target error")
	}
}
