package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.my")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestRunCommandExecutesScript(t *testing.T) {
	path := writeScript(t, "print 2 + 3 * 4\n")
	var out bytes.Buffer
	if err := runCommand([]string{path}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out.String() != "14\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunCommandCheckOnly(t *testing.T) {
	path := writeScript(t, "print 1\n")
	var out bytes.Buffer
	if err := runCommand([]string{"-check", path}, &out); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("check must not execute, wrote %q", out.String())
	}

	bad := writeScript(t, "if x\n")
	if err := runCommand([]string{"-check", bad}, &out); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestRunCommandReportsRuntimeError(t *testing.T) {
	path := writeScript(t, "print 1 / 0\n")
	var out bytes.Buffer
	if err := runCommand([]string{path}, &out); err == nil {
		t.Fatal("expected runtime error")
	}
}

func TestRunCommandMissingScript(t *testing.T) {
	var out bytes.Buffer
	if err := runCommand(nil, &out); err == nil {
		t.Fatal("expected usage error")
	}
	if err := runCommand([]string{filepath.Join(t.TempDir(), "absent.my")}, &out); err == nil {
		t.Fatal("expected read error")
	}
}

func TestREPLSubmitLine(t *testing.T) {
	m := newREPLModel()

	m = m.submitLine("x = 2")
	m = m.submitLine("print x * 21")
	if len(m.history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(m.history))
	}
	last := m.history[len(m.history)-1]
	if last.isErr || last.output != "42" {
		t.Fatalf("unexpected entry %+v", last)
	}
}

func TestREPLBlockInput(t *testing.T) {
	m := newREPLModel()
	m = m.submitLine("class Dog:")
	m = m.submitLine("  def __str__():")
	m = m.submitLine("    return 'woof'")
	if len(m.pending) != 3 {
		t.Fatalf("expected pending block, got %d lines", len(m.pending))
	}
	m = m.submitLine("")
	if len(m.pending) != 0 {
		t.Fatal("expected block flush")
	}
	m = m.submitLine("print Dog()")
	last := m.history[len(m.history)-1]
	if last.isErr || last.output != "woof" {
		t.Fatalf("unexpected entry %+v", last)
	}
}

func TestREPLReportsErrors(t *testing.T) {
	m := newREPLModel()
	m = m.submitLine("print missing")
	last := m.history[len(m.history)-1]
	if !last.isErr {
		t.Fatalf("expected error entry, got %+v", last)
	}
}
