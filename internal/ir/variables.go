package ir

import (
	"tinygo.org/x/go-llvm"

	"github.com/VVsxmja/rcc/internal/ast"
	"github.com/VVsxmja/rcc/internal/diag"
	"github.com/VVsxmja/rcc/internal/types"
)

// declareGlobalVariable implements spec.md §4.4.1's global-context variable
// rule: register a module global, requiring any initializer to be a
// constant expression.
func (b *Builder) declareGlobalVariable(decl *ast.VariableDecl) error {
	if decl.Type == types.Void {
		return b.errorf(diag.VoidVariable, decl, "variable %q must not be void", decl.Name)
	}
	if _, ok := b.functions[decl.Name]; ok {
		return b.errorf(diag.Redefined, decl, "identifier %q already declared as a function", decl.Name)
	}
	if _, ok := b.globals[decl.Name]; ok {
		return b.errorf(diag.Redefined, decl, "global %q already declared", decl.Name)
	}

	g := llvm.AddGlobal(b.mod, b.llvmType(decl.Type), decl.Name)
	if decl.Initializer != nil {
		c, ok := decl.Initializer.(*ast.Constant)
		if !ok {
			return b.errorf(diag.NonConstantGlobalInit, decl, "initializer of global %q must be a constant", decl.Name)
		}
		g.SetInitializer(llvm.ConstInt(b.intType(), uint64(uint32(c.Value)), false))
	} else {
		g.SetInitializer(llvm.ConstInt(b.intType(), 0, false))
	}

	b.globals[decl.Name] = &globalInfo{value: g, typ: decl.Type}
	return nil
}

// lowerLocalVariable implements spec.md §4.4.1's local-context variable
// rule: the alloca lands in the function's entry block regardless of the
// statement's textual position, so it dominates every later use; only the
// initializer's store executes at the current position.
func (b *Builder) lowerLocalVariable(decl *ast.VariableDecl) error {
	if decl.Type == types.Void {
		return b.errorf(diag.VoidVariable, decl, "variable %q must not be void", decl.Name)
	}
	if _, ok := b.fn.locals[decl.Name]; ok {
		return b.errorf(diag.Redefined, decl, "variable %q already declared in this function", decl.Name)
	}

	slot := b.allocaInEntry(b.llvmType(decl.Type), decl.Name)
	b.fn.locals[decl.Name] = slot

	if decl.Initializer != nil {
		val, err := b.lowerRValue(decl.Initializer)
		if err != nil {
			return err
		}
		if b.fn.terminated {
			return nil
		}
		b.bld.CreateStore(val, slot)
	}
	return nil
}

// allocaInEntry inserts an alloca into the function's entry block: at its
// current end while entry has no terminator yet, or just before that
// terminator once control flow has branched away from entry. Either way
// the builder's insertion point is restored afterward.
func (b *Builder) allocaInEntry(ty llvm.Type, name string) llvm.Value {
	entry := b.fn.entryBlock
	savedBlock := b.fn.current
	savedTerminated := b.fn.terminated

	term := entry.LastInstruction()
	var v llvm.Value
	if term.IsNil() || term.IsATerminatorInst().IsNil() {
		b.bld.SetInsertPointAtEnd(entry)
		v = b.bld.CreateAlloca(ty, name)
	} else {
		b.bld.SetInsertPointBefore(term)
		v = b.bld.CreateAlloca(ty, name)
	}

	b.bld.SetInsertPointAtEnd(savedBlock)
	b.fn.terminated = savedTerminated
	return v
}
