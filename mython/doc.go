// Package mython implements an interpreter for Mython, a small dynamically
// typed, class-based, indentation-delimited language modeled on a strict
// subset of Python.
//
// The package splits into an indentation-sensitive lexer producing a token
// cursor (Lexer), a recursive-descent parser (Parser), a polymorphic runtime
// value model with single-inheritance classes and dunder dispatch (Value,
// ClassDef, Instance), and a tree-walking executor over Statement nodes.
// Interpreter ties them together; Session adds the persistent state an
// interactive loop needs.
//
//	interp := mython.NewInterpreter(mython.Config{Output: os.Stdout})
//	err := interp.Run("print 2 + 3 * 4")
//
// The language has integers, strings and booleans only: no floats, no
// container types, no user-level exceptions and no imports. Errors abort the
// run through a single runtime-error channel.
package mython
