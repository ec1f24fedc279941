// Package ir lowers a *ast.TranslationUnit into an LLVM module using the
// tinygo.org/x/go-llvm bindings, following the single-return-block
// convention: every defined function has exactly one `entry` block, one
// `return` block, and branches to `return` instead of returning directly
// (mirroring how the teacher's IR state is threaded through a builder
// cursor, a scope stack, and a global symbol table, grounded on
// hhramberg-go-vslc's src/ir/llvm/transform.go genFuncHeader/genFuncBody).
package ir

import (
	"fmt"

	"tinygo.org/x/go-llvm"

	"github.com/VVsxmja/rcc/internal/ast"
	"github.com/VVsxmja/rcc/internal/diag"
	"github.com/VVsxmja/rcc/internal/rtrace"
	"github.com/VVsxmja/rcc/internal/types"
)

// funcInfo records a declared function's signature and definition state,
// the module-level analogue of the teacher's globals symTab entries.
type funcInfo struct {
	value      llvm.Value
	returnType types.Type
	paramTypes []types.Type
	defined    bool
}

// globalInfo records a declared module-level variable.
type globalInfo struct {
	value llvm.Value
	typ   types.Type
}

// Builder owns the IR State described in the data model: a module, a
// positioned (possibly detached) builder cursor, the current function's
// local variable slots, and its return slot.
type Builder struct {
	ctx llvm.Context
	bld llvm.Builder
	mod llvm.Module

	functions map[string]*funcInfo
	globals   map[string]*globalInfo

	fn *functionState // nil when the cursor is detached (module-level context)

	source string
	file   string
}

// functionState is the part of the IR State scoped to one function
// definition: the entry/return blocks, the live insertion point, whether
// that point has already been terminated, local variable slots, and the
// return slot.
type functionState struct {
	value       llvm.Value
	name        string
	returnType  types.Type
	entryBlock  llvm.BasicBlock
	returnBlock llvm.BasicBlock
	current     llvm.BasicBlock
	terminated  bool
	locals      map[string]llvm.Value
	returnValue llvm.Value // valid iff returnType != types.Void
}

// NewBuilder creates a fresh module named moduleName. The caller must call
// Dispose when done with the returned Builder and its Module.
func NewBuilder(moduleName string) *Builder {
	ctx := llvm.NewContext()
	return &Builder{
		ctx:       ctx,
		bld:       ctx.NewBuilder(),
		mod:       ctx.NewModule(moduleName),
		functions: make(map[string]*funcInfo),
		globals:   make(map[string]*globalInfo),
	}
}

// SetSource attaches source text and a file name, used only to render a
// caret line in diagnostics raised during lowering.
func (b *Builder) SetSource(source, file string) *Builder {
	b.source = source
	b.file = file
	return b
}

// Module returns the module under construction. Valid only after Build
// succeeds (or for inspecting partial state after a failed Build).
func (b *Builder) Module() llvm.Module { return b.mod }

// Dispose releases the builder cursor, module, and context. The Module()
// value becomes invalid afterwards.
func (b *Builder) Dispose() {
	b.bld.Dispose()
	b.mod.Dispose()
	b.ctx.Dispose()
}

func (b *Builder) errorf(kind diag.Kind, pos ast.Node, format string, args ...any) error {
	return diag.New(kind, pos.Pos(), format, args...).WithSource(b.source, b.file)
}

func (b *Builder) intType() llvm.Type { return b.ctx.Int32Type() }

func (b *Builder) llvmType(t types.Type) llvm.Type {
	if t == types.Void {
		return b.ctx.VoidType()
	}
	return b.intType()
}

// Build lowers every top-level declaration of tu into the module, in
// order. The first error aborts the whole run, per the single-diagnostic
// propagation policy.
func (b *Builder) Build(tu *ast.TranslationUnit) error {
	for _, decl := range tu.Declarations {
		if err := b.lowerTopLevel(decl); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) lowerTopLevel(decl ast.Statement) error {
	switch n := decl.(type) {
	case *ast.FunctionDecl:
		return b.declareFunction(n)
	case *ast.VariableDecl:
		return b.declareGlobalVariable(n)
	default:
		return fmt.Errorf("ir: unexpected top-level declaration %T", decl)
	}
}

func (b *Builder) traceBlock(label string) {
	rtrace.Tracef(2, "ir: positioned at %s", label)
}
