package ast

import (
	"testing"

	"github.com/klambda-lang/klambda/internal/reader"
)

func TestGetAllTailCallsSimpleRecursion(t *testing.T) {
	// (defun loop (x) (if (= x 0) x (loop (- x 1))))
	forms, _, err := reader.ReadAll("(defun loop (x) (shen_if (= x 0) x (loop (- x 1))))")
	if err != nil {
		t.Fatalf("unexpected read error: %s", err)
	}
	defun := forms[0]
	paths := GetAllTailCalls(defun)
	if len(paths) != 1 {
		t.Fatalf("expected exactly one tail call, got %d: %v", len(paths), paths)
	}
	// Path is relative to the body (defun's 4th element): (shen_if ... ... (loop ...))
	// shen_if's else branch is index 3.
	if len(paths[0]) != 1 || paths[0][0] != 3 {
		t.Errorf("tail call path = %v, want [3]", paths[0])
	}
}

func TestGetAllTailCallsRejectsNonTailPosition(t *testing.T) {
	// (defun f (x) (+ 1 (f (- x 1)))) -- the recursive call sits inside
	// +'s argument position, not f's own tail position.
	forms, _, err := reader.ReadAll("(defun f (x) (+ 1 (f (- x 1))))")
	if err != nil {
		t.Fatalf("unexpected read error: %s", err)
	}
	paths := GetAllTailCalls(forms[0])
	if len(paths) != 0 {
		t.Errorf("expected no genuine tail calls, got %v", paths)
	}
}

func TestGetAllTailCallsThroughCond(t *testing.T) {
	forms, _, err := reader.ReadAll("(defun f (x) (cond ((= x 0) x) (shen_true (f (- x 1)))))")
	if err != nil {
		t.Fatalf("unexpected read error: %s", err)
	}
	paths := GetAllTailCalls(forms[0])
	if len(paths) != 1 {
		t.Fatalf("expected exactly one tail call through cond, got %d: %v", len(paths), paths)
	}
}

func TestGetAllTailCallsNotThroughTrapError(t *testing.T) {
	// A call inside trap-error's protected expression is a genuine
	// candidate found by FindRecursiveCalls, but never a true tail call
	// per chainHeads deliberately omitting trap-error.
	forms, _, err := reader.ReadAll("(defun f (x) (trap-error (f (- x 1)) (lambda e x)))")
	if err != nil {
		t.Fatalf("unexpected read error: %s", err)
	}
	paths := GetAllTailCalls(forms[0])
	if len(paths) != 0 {
		t.Errorf("expected no genuine tail calls through trap-error, got %v", paths)
	}
}

func TestMarkRecurReplacesCallWithRecurMarker(t *testing.T) {
	forms, _, err := reader.ReadAll("(defun loop (x) (shen_if (= x 0) x (loop (- x 1))))")
	if err != nil {
		t.Fatalf("unexpected read error: %s", err)
	}
	defun := forms[0]
	body := defun.AsCons()[3]
	paths := GetAllTailCalls(defun)
	for _, p := range paths {
		MarkRecur(body, p)
	}
	marked, ok := At(body, paths[0])
	if !ok {
		t.Fatalf("path %v no longer resolves after MarkRecur", paths[0])
	}
	if !marked.IsRecur() {
		t.Errorf("expected the tail-call site to become a Recur marker, got %#v", marked)
	}
	if len(marked.AsRecurArgs()) != 1 {
		t.Errorf("expected the Recur marker to carry 1 argument, got %d", len(marked.AsRecurArgs()))
	}
}
