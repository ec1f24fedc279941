package ir

import (
	"tinygo.org/x/go-llvm"

	"github.com/VVsxmja/rcc/internal/ast"
	"github.com/VVsxmja/rcc/internal/diag"
	"github.com/VVsxmja/rcc/internal/types"
)

// lowerBlock lowers each inner declaration/statement of a block in order,
// per spec.md §4.4.2's Block rule.
func (b *Builder) lowerBlock(block *ast.Block) error {
	for _, inner := range block.Inner {
		if err := b.lowerBlockInner(inner); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) lowerBlockInner(s ast.Statement) error {
	switch n := s.(type) {
	case *ast.VariableDecl:
		return b.lowerLocalVariable(n)
	case *ast.FunctionDecl:
		return b.errorf(diag.LocalFunctionUnsup, n, "nested function declarations are not supported")
	default:
		return b.lowerStatement(s)
	}
}

func (b *Builder) lowerStatement(s ast.Statement) error {
	switch n := s.(type) {
	case *ast.Empty:
		return nil

	case *ast.ExpressionStatement:
		// Lowered even past a terminator so a reference to an undefined
		// name or a bad assignment target in unreachable code still
		// surfaces as a diagnostic; cleanupDeadCode strips the resulting
		// instructions afterward if the block turns out to already be
		// terminated.
		_, err := b.lowerExpr(n.Expr)
		return err

	case *ast.Block:
		return b.lowerBlock(n)

	case *ast.If:
		return b.lowerIf(n)

	case *ast.While:
		return b.lowerWhile(n)

	case *ast.Return:
		return b.lowerReturn(n)

	default:
		return b.errorf(diag.UnexpectedToken, s, "unsupported statement node %T", s)
	}
}

func (b *Builder) lowerIf(n *ast.If) error {
	if b.fn.terminated {
		return nil
	}
	cond, err := b.lowerRValue(n.Cond)
	if err != nil {
		return err
	}
	boolCond := b.boolCast(cond)

	fn := b.fn.value
	thenBB := llvm.AddBasicBlock(fn, "if.then")
	var elseBB llvm.BasicBlock
	if n.Else != nil {
		elseBB = llvm.AddBasicBlock(fn, "if.else")
	}
	endBB := llvm.AddBasicBlock(fn, "if.end")

	if n.Else != nil {
		b.createCondBr(boolCond, thenBB, elseBB)
	} else {
		b.createCondBr(boolCond, thenBB, endBB)
	}

	b.setCurrent(thenBB, "if.then")
	if err := b.lowerStatement(n.Then); err != nil {
		return err
	}
	b.createBr(endBB)

	if n.Else != nil {
		b.setCurrent(elseBB, "if.else")
		if err := b.lowerStatement(n.Else); err != nil {
			return err
		}
		b.createBr(endBB)
	}

	b.setCurrent(endBB, "if.end")
	return nil
}

func (b *Builder) lowerWhile(n *ast.While) error {
	if b.fn.terminated {
		return nil
	}
	fn := b.fn.value
	condBB := llvm.AddBasicBlock(fn, "while.cond")
	bodyBB := llvm.AddBasicBlock(fn, "while.body")
	endBB := llvm.AddBasicBlock(fn, "while.end")

	b.createBr(condBB)

	b.setCurrent(condBB, "while.cond")
	cond, err := b.lowerRValue(n.Cond)
	if err != nil {
		return err
	}
	b.createCondBr(b.boolCast(cond), bodyBB, endBB)

	b.setCurrent(bodyBB, "while.body")
	if err := b.lowerStatement(n.Body); err != nil {
		return err
	}
	b.createBr(condBB)

	b.setCurrent(endBB, "while.end")
	return nil
}

func (b *Builder) lowerReturn(n *ast.Return) error {
	if b.fn.terminated {
		return nil
	}
	if n.Value == nil {
		if b.fn.returnType != types.Void {
			return b.errorf(diag.ReturnTypeMismatch, n, "function %q must return a value", b.fn.name)
		}
		b.createBr(b.fn.returnBlock)
		return nil
	}

	if b.fn.returnType == types.Void {
		return b.errorf(diag.ReturnTypeMismatch, n, "function %q must not return a value", b.fn.name)
	}
	val, err := b.lowerRValue(n.Value)
	if err != nil {
		return err
	}
	b.bld.CreateStore(val, b.fn.returnValue)
	b.createBr(b.fn.returnBlock)
	return nil
}
