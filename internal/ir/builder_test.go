package ir_test

import (
	"strings"
	"testing"

	"github.com/VVsxmja/rcc/internal/ast"
	"github.com/VVsxmja/rcc/internal/diag"
	"github.com/VVsxmja/rcc/internal/ir"
	"github.com/VVsxmja/rcc/internal/lexer"
	"github.com/VVsxmja/rcc/internal/parser"
	"github.com/VVsxmja/rcc/internal/preprocess"
)

func mustBuild(t *testing.T, src string) *ir.Builder {
	t.Helper()
	tu := mustParse(t, src)
	b := ir.NewBuilder("test")
	b.SetSource(src, "test.rc")
	if err := b.Build(tu); err != nil {
		b.Dispose()
		t.Fatalf("Build(%q): unexpected error: %v", src, err)
	}
	return b
}

func mustParse(t *testing.T, src string) *ast.TranslationUnit {
	t.Helper()
	stripped, err := preprocess.Strip(src)
	if err != nil {
		t.Fatalf("preprocess.Strip: %v", err)
	}
	toks, err := lexer.ExtractTokens(stripped)
	if err != nil {
		t.Fatalf("lexer.ExtractTokens: %v", err)
	}
	tu, err := parser.New(toks).SetSource(stripped, "test.rc").ParseTranslationUnit()
	if err != nil {
		t.Fatalf("ParseTranslationUnit: %v", err)
	}
	return tu
}

func buildErr(t *testing.T, src string) error {
	t.Helper()
	tu := mustParse(t, src)
	b := ir.NewBuilder("test")
	defer b.Dispose()
	b.SetSource(src, "test.rc")
	return b.Build(tu)
}

func TestBuildSimpleFunctionHasEntryAndReturnBlocks(t *testing.T) {
	b := mustBuild(t, "int add(int a, int b) { return a + b; }")
	defer b.Dispose()

	text := b.Module().String()
	for _, want := range []string{"define i32 @add", "entry:", "return:", "ret i32"} {
		if !strings.Contains(text, want) {
			t.Errorf("module IR does not contain %q:\n%s", want, text)
		}
	}
}

func TestBuildVoidFunctionReturnsVoid(t *testing.T) {
	b := mustBuild(t, "void noop() { return; }")
	defer b.Dispose()

	text := b.Module().String()
	if !strings.Contains(text, "define void @noop") {
		t.Errorf("module IR does not declare a void @noop:\n%s", text)
	}
	if !strings.Contains(text, "ret void") {
		t.Errorf("module IR does not contain ret void:\n%s", text)
	}
}

func TestBuildLocalVariableAllocatedInEntryBlock(t *testing.T) {
	b := mustBuild(t, "int f() { int x = 1; while (x) { int y = x; x = y - 1; } return x; }")
	defer b.Dispose()

	text := b.Module().String()
	start, end := strings.Index(text, "entry:"), strings.Index(text, "return:")
	if start < 0 || end < start {
		t.Fatalf("module IR has no entry block followed by a return block:\n%s", text)
	}
	if !strings.Contains(text[start:end], "%y = alloca i32") {
		t.Errorf("local y declared in the loop body is not allocated in the entry block:\n%s", text)
	}
}

func TestBuildRejectsUndefinedVariable(t *testing.T) {
	err := buildErr(t, "int f() { return y; }")
	if err == nil {
		t.Fatalf("expected an UndefinedVariable error")
	}
	derr, ok := err.(*diag.Error)
	if !ok {
		t.Fatalf("expected *diag.Error, got %T", err)
	}
	if derr.Kind != diag.UndefinedVariable {
		t.Errorf("Kind = %s, want %s", derr.Kind, diag.UndefinedVariable)
	}
}

func TestBuildRejectsReturnTypeMismatch(t *testing.T) {
	err := buildErr(t, "void f() { return 1; }")
	if err == nil {
		t.Fatalf("expected a ReturnTypeMismatch error")
	}
	derr, ok := err.(*diag.Error)
	if !ok {
		t.Fatalf("expected *diag.Error, got %T", err)
	}
	if derr.Kind != diag.ReturnTypeMismatch {
		t.Errorf("Kind = %s, want %s", derr.Kind, diag.ReturnTypeMismatch)
	}
}

func TestBuildRejectsArityMismatch(t *testing.T) {
	err := buildErr(t, "int f(int a) { return a; } int g() { return f(1, 2); }")
	if err == nil {
		t.Fatalf("expected an ArityMismatch error")
	}
	if derr, ok := err.(*diag.Error); !ok || derr.Kind != diag.ArityMismatch {
		t.Fatalf("expected ArityMismatch, got %v", err)
	}
}

func TestBuildRejectsAssignToNonLvalue(t *testing.T) {
	err := buildErr(t, "int f(int a) { (a) = 1; return a; }")
	if err == nil {
		t.Fatalf("expected an AssignTargetNotLvalue error")
	}
	if derr, ok := err.(*diag.Error); !ok || derr.Kind != diag.AssignTargetNotLvalue {
		t.Fatalf("expected AssignTargetNotLvalue, got %v", err)
	}
}

func TestBuildDeadCodeAfterReturnIsRemoved(t *testing.T) {
	b := mustBuild(t, "int f() { return 1; return 2; }")
	defer b.Dispose()

	text := b.Module().String()
	if strings.Count(text, "br label %return") != 1 {
		t.Errorf("expected exactly one branch to the return block after dead-code cleanup:\n%s", text)
	}
}

func TestBuildDuplicateParameterRejected(t *testing.T) {
	err := buildErr(t, "int f(int a, int a) { return a; }")
	if err == nil {
		t.Fatalf("expected a DuplicateParameter error")
	}
	if derr, ok := err.(*diag.Error); !ok || derr.Kind != diag.DuplicateParameter {
		t.Fatalf("expected DuplicateParameter, got %v", err)
	}
}
