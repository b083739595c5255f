package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klambda-lang/klambda/internal/primitives"
	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/runtime"
)

func newTestContext(t *testing.T) *runtime.Context {
	t.Helper()
	ctx := runtime.NewWithIO(strings.NewReader(""), &bytes.Buffer{})
	primitives.Register(ctx)
	return ctx
}

func TestLoadStringEvaluatesEachTopLevelForm(t *testing.T) {
	ctx := newTestContext(t)
	results, err := LoadString(ctx, "(+ 1 2) (* 2 3)")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, int64(3), results[0].Value.AsInt())
	assert.NoError(t, results[1].Err)
	assert.Equal(t, int64(6), results[1].Value.AsInt())
}

func TestLoadStringReturnsFatalErrorOnReadFailure(t *testing.T) {
	ctx := newTestContext(t)
	_, err := LoadString(ctx, "(+ 1 2")
	assert.Error(t, err, "expected a fatal error for unbalanced parens")
}

func TestRunContinuesPastNonFatalRuntimeErrors(t *testing.T) {
	ctx := newTestContext(t)
	results, err := LoadString(ctx, "(/ 1 0) (+ 1 1)")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Error(t, results[0].Err, "expected the division-by-zero form to report a runtime error")
	assert.NoError(t, results[1].Err, "evaluation should continue past the error")
	assert.Equal(t, int64(2), results[1].Value.AsInt())
}

func TestErrorsCollectsOnlyFailedResults(t *testing.T) {
	ctx := newTestContext(t)
	results, err := LoadString(ctx, "(/ 1 0) (+ 1 1)")
	require.NoError(t, err)
	assert.Len(t, Errors(results), 1)
}

func TestIsDefunRecognisesDefunForms(t *testing.T) {
	ctx := newTestContext(t)
	forms, sani, err := reader.ReadAllWith("(defun f (x) x) (+ 1 2)", ctx.Sanitizer)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	ctx.Sanitizer = sani
	if !IsDefun(forms[0]) {
		t.Errorf("expected the defun form to be recognised")
	}
	if IsDefun(forms[1]) {
		t.Errorf("expected the plain application to not be recognised as a defun")
	}
}

func TestLoadStringInstallsDefunIntoFunctionTable(t *testing.T) {
	ctx := newTestContext(t)
	results, err := LoadString(ctx, "(defun double (x) (* x 2)) (double 21)")
	if err != nil {
		t.Fatalf("unexpected fatal error: %s", err)
	}
	last := results[len(results)-1]
	if last.Err != nil {
		t.Fatalf("unexpected error calling double: %s", last.Err)
	}
	if !last.Value.IsInt() || last.Value.AsInt() != 42 {
		t.Errorf("(double 21) = %#v, want int 42", last.Value)
	}
}
