package mython

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func runProgram(t *testing.T, source string) string {
	t.Helper()
	var out bytes.Buffer
	interp := NewInterpreter(Config{Output: &out})
	if err := interp.Run(source); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return out.String()
}

func runExpectError(t *testing.T, source string, fragment string) {
	t.Helper()
	var out bytes.Buffer
	interp := NewInterpreter(Config{Output: &out})
	err := interp.Run(source)
	if err == nil {
		t.Fatalf("expected error containing %q", fragment)
	}
	if !strings.Contains(err.Error(), fragment) {
		t.Fatalf("expected error containing %q, got %v", fragment, err)
	}
}

func TestRunArithmetic(t *testing.T) {
	if got := runProgram(t, "print 2 + 3 * 4\n"); got != "14\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunStringConcat(t *testing.T) {
	source := "x = 'hello'\nprint x + ' world'\n"
	if got := runProgram(t, source); got != "hello world\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunClassWithStr(t *testing.T) {
	source := `class Dog:
  def __str__():
    return 'woof'
d = Dog()
print d
`
	if got := runProgram(t, source); got != "woof\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunInheritanceOverride(t *testing.T) {
	source := `class A:
  def __str__():
    return 'A'
class B(A):
  def __str__():
    return 'B'
print B()
`
	if got := runProgram(t, source); got != "B\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunInheritanceFallback(t *testing.T) {
	source := `class A:
  def __str__():
    return 'A'
class B(A):
  def noop():
    return 1
print B()
`
	if got := runProgram(t, source); got != "A\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunIfElse(t *testing.T) {
	source := `x = 0
if x:
  print 'y'
else:
  print 'n'
`
	if got := runProgram(t, source); got != "n\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunReturnInsideNestedIf(t *testing.T) {
	source := `class M:
  def m():
    if True:
      return 5
x = M()
print x.m()
`
	if got := runProgram(t, source); got != "5\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunInitAndFields(t *testing.T) {
	source := `class Point:
  def __init__(x, y):
    self.x = x
    self.y = y
  def total():
    return self.x + self.y
p = Point(3, 4)
print p.total()
print p.x, p.y
`
	if got := runProgram(t, source); got != "7\n3 4\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunDunderAdd(t *testing.T) {
	source := `class Vec:
  def __init__(v):
    self.v = v
  def __add__(other):
    return Vec(self.v + other.v)
  def __str__():
    return str(self.v)
a = Vec(1)
b = Vec(2)
print a + b
`
	if got := runProgram(t, source); got != "3\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunDunderComparisons(t *testing.T) {
	source := `class N:
  def __init__(v):
    self.v = v
  def __eq__(other):
    return self.v == other.v
  def __lt__(other):
    return self.v < other.v
a = N(1)
b = N(2)
print a == b, a < b, a > b, a <= b, a >= b, a != b
`
	if got := runProgram(t, source); got != "False True False True False True\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunBooleanOperators(t *testing.T) {
	source := `print True and False
print True or False
print not ''
print 1 and 'x'
`
	if got := runProgram(t, source); got != "False\nTrue\nTrue\nTrue\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunShortCircuitObservable(t *testing.T) {
	source := `class Loud:
  def ping():
    print 'ping'
    return 1
l = Loud()
x = True or l.ping()
y = False and l.ping()
print x, y
`
	if got := runProgram(t, source); got != "True False\n" {
		t.Fatalf("rhs must not run: %q", got)
	}
}

func TestRunStringify(t *testing.T) {
	source := "print str(42) + '!'\nprint str(None)\n"
	if got := runProgram(t, source); got != "42!\nNone\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunUnaryMinus(t *testing.T) {
	source := "x = 5\nprint -x + 2\n"
	if got := runProgram(t, source); got != "-3\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunComments(t *testing.T) {
	source := "# full line comment\nprint 1 # trailing\n"
	if got := runProgram(t, source); got != "1\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunErrors(t *testing.T) {
	runExpectError(t, "print x\n", "unknown variable")
	runExpectError(t, "print 1 / 0\n", "division by zero")
	runExpectError(t, "return 1\n", "return outside of a method body")
	runExpectError(t, "print 1 + 'x'\n", "cannot add")
	runExpectError(t, `class C:
  def m(a):
    return a
c = C()
c.m()
`, "unable to call")
}

func TestRunSyntaxErrors(t *testing.T) {
	var out bytes.Buffer
	interp := NewInterpreter(Config{Output: &out})
	err := interp.Run("if x:\n   print 1\n")
	if err == nil {
		t.Fatal("expected indent error")
	}
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("expected syntax error, got %T", err)
	}
	if syn.Line != 2 {
		t.Fatalf("expected error on line 2, got %d", syn.Line)
	}

	if err := interp.Run("class :\n"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRunRecursionLimit(t *testing.T) {
	var out bytes.Buffer
	interp := NewInterpreter(Config{Output: &out, RecursionLimit: 16})
	source := `class R:
  def go():
    return self.go()
r = R()
print r.go()
`
	err := interp.Run(source)
	if err == nil {
		t.Fatal("expected recursion limit error")
	}
	if !strings.Contains(err.Error(), "call depth") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSessionKeepsState(t *testing.T) {
	var out bytes.Buffer
	session := NewInterpreter(Config{Output: &out}).NewSession()
	if err := session.Eval("x = 41\n"); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if err := session.Eval("print x + 1\n"); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if out.String() != "42\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestSessionKeepsClasses(t *testing.T) {
	var out bytes.Buffer
	session := NewInterpreter(Config{Output: &out}).NewSession()
	class := `class Greeter:
  def __str__():
    return 'hi'
`
	if err := session.Eval(class); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if err := session.Eval("print Greeter()\n"); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if out.String() != "hi\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestCompileOnly(t *testing.T) {
	interp := NewInterpreter(Config{})
	if _, err := interp.Compile("print 1\n"); err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if _, err := interp.Compile("print (\n"); err == nil {
		t.Fatal("expected compile error")
	}
}
