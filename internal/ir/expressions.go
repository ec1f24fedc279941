package ir

import (
	"tinygo.org/x/go-llvm"

	"github.com/VVsxmja/rcc/internal/ast"
	"github.com/VVsxmja/rcc/internal/diag"
	"github.com/VVsxmja/rcc/internal/token"
	"github.com/VVsxmja/rcc/internal/types"
)

// ref is the result of lowering an expression: either a pointer to
// storage (an lvalue, produced by Variable and Assign) or an already
// computed value, or neither when the expression is void (only a call to
// a void function). This plays the role the spec's Evaluate node plays in
// the grammar: callers that need an r-value call lowerRValue, which loads
// through a pointer ref and passes a value ref through unchanged.
type ref struct {
	value   llvm.Value
	pointer bool
	void    bool
}

// lowerExpr recursively lowers e per spec.md §4.4.3.
func (b *Builder) lowerExpr(e ast.Expression) (ref, error) {
	switch n := e.(type) {
	case *ast.Constant:
		return ref{value: llvm.ConstInt(b.intType(), uint64(n.Value), false)}, nil

	case *ast.Paren:
		return b.lowerExpr(n.Inner)

	case *ast.Variable:
		slot, err := b.lookupSlot(n)
		if err != nil {
			return ref{}, err
		}
		return ref{value: slot, pointer: true}, nil

	case *ast.Call:
		return b.lowerCall(n)

	case *ast.PrefixUnary:
		return b.lowerPrefixUnary(n)

	case *ast.Binary:
		return b.lowerBinary(n)

	default:
		return ref{}, b.errorf(diag.UnexpectedToken, e, "unsupported expression node %T", e)
	}
}

// lowerRValue lowers e and, if it produced a pointer (an lvalue), loads
// through it; a void expression is never a valid r-value.
func (b *Builder) lowerRValue(e ast.Expression) (llvm.Value, error) {
	r, err := b.lowerExpr(e)
	if err != nil {
		return llvm.Value{}, err
	}
	if r.void {
		return llvm.Value{}, b.errorf(diag.VoidArgument, e, "void expression used as a value")
	}
	if r.pointer {
		return b.bld.CreateLoad(r.value, ""), nil
	}
	return r.value, nil
}

// lookupSlot resolves a Variable reference to its storage pointer:
// local_variables first, then the module's globals.
func (b *Builder) lookupSlot(v *ast.Variable) (llvm.Value, error) {
	if b.fn != nil {
		if slot, ok := b.fn.locals[v.Name]; ok {
			return slot, nil
		}
	}
	if g, ok := b.globals[v.Name]; ok {
		return g.value, nil
	}
	return llvm.Value{}, b.errorf(diag.UndefinedVariable, v, "undefined variable %q", v.Name)
}

func (b *Builder) lowerCall(n *ast.Call) (ref, error) {
	info, ok := b.functions[n.Name]
	if !ok {
		return ref{}, b.errorf(diag.UndefinedFunction, n, "undefined function %q", n.Name)
	}
	if len(n.Args) != len(info.paramTypes) {
		return ref{}, b.errorf(diag.ArityMismatch, n, "function %q expects %d argument(s), got %d",
			n.Name, len(info.paramTypes), len(n.Args))
	}

	args := make([]llvm.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := b.lowerRValue(a)
		if err != nil {
			return ref{}, err
		}
		args[i] = v
	}

	result := b.bld.CreateCall(info.value, args, "")
	if info.returnType == types.Void {
		return ref{void: true}, nil
	}
	return ref{value: result}, nil
}

func (b *Builder) lowerPrefixUnary(n *ast.PrefixUnary) (ref, error) {
	v, err := b.lowerRValue(n.Operand)
	if err != nil {
		return ref{}, err
	}
	switch n.Op {
	case token.Plus:
		return ref{value: v}, nil
	case token.Minus:
		return ref{value: b.bld.CreateSub(llvm.ConstInt(b.intType(), 0, false), v, "")}, nil
	case token.Not:
		return ref{value: b.boolToInt(b.bld.CreateICmp(llvm.IntEQ, v, b.zero(), ""))}, nil
	default:
		return ref{}, b.errorf(diag.UnexpectedToken, n, "unsupported prefix operator %s", n.Op.String())
	}
}

func (b *Builder) lowerBinary(n *ast.Binary) (ref, error) {
	if n.Op == token.Assign {
		return b.lowerAssign(n)
	}
	if n.Op == token.Comma {
		return ref{}, b.errorf(diag.UnsupportedComma, n, "the comma operator is not implemented")
	}

	lhs, err := b.lowerRValue(n.Left)
	if err != nil {
		return ref{}, err
	}
	rhs, err := b.lowerRValue(n.Right)
	if err != nil {
		return ref{}, err
	}

	switch n.Op {
	case token.Plus:
		return ref{value: b.bld.CreateAdd(lhs, rhs, "")}, nil
	case token.Minus:
		return ref{value: b.bld.CreateSub(lhs, rhs, "")}, nil
	case token.Star:
		return ref{value: b.bld.CreateMul(lhs, rhs, "")}, nil
	case token.Slash:
		return ref{value: b.bld.CreateSDiv(lhs, rhs, "")}, nil
	case token.Less:
		return ref{value: b.compare(llvm.IntSLT, lhs, rhs)}, nil
	case token.LessEq:
		return ref{value: b.compare(llvm.IntSLE, lhs, rhs)}, nil
	case token.Greater:
		return ref{value: b.compare(llvm.IntSGT, lhs, rhs)}, nil
	case token.GreaterEq:
		return ref{value: b.compare(llvm.IntSGE, lhs, rhs)}, nil
	case token.EqEq:
		return ref{value: b.compare(llvm.IntEQ, lhs, rhs)}, nil
	case token.NotEq:
		return ref{value: b.compare(llvm.IntNE, lhs, rhs)}, nil
	default:
		return ref{}, b.errorf(diag.UnexpectedToken, n, "unsupported binary operator %s", n.Op.String())
	}
}

func (b *Builder) lowerAssign(n *ast.Binary) (ref, error) {
	target, ok := n.Left.(*ast.Variable)
	if !ok {
		return ref{}, b.errorf(diag.AssignTargetNotLvalue, n, "assignment target must be a variable")
	}
	slot, err := b.lookupSlot(target)
	if err != nil {
		return ref{}, err
	}
	rhs, err := b.lowerRValue(n.Right)
	if err != nil {
		return ref{}, err
	}
	b.bld.CreateStore(rhs, slot)
	return ref{value: slot, pointer: true}, nil
}

// compare emits a signed integer comparison and zero-extends the i1
// result back to the language's only integer width, matching spec.md
// §4.4.3's "boolean-valued integer" result for comparisons and `!`.
func (b *Builder) compare(pred llvm.IntPredicate, lhs, rhs llvm.Value) llvm.Value {
	return b.boolToInt(b.bld.CreateICmp(pred, lhs, rhs, ""))
}

func (b *Builder) boolToInt(bit llvm.Value) llvm.Value {
	return b.bld.CreateZExt(bit, b.intType(), "")
}

func (b *Builder) zero() llvm.Value {
	return llvm.ConstInt(b.intType(), 0, false)
}

// boolCast implements the "cast to a one-bit boolean by comparing ≠ 0"
// step used by If and While conditions.
func (b *Builder) boolCast(v llvm.Value) llvm.Value {
	return b.bld.CreateICmp(llvm.IntNE, v, b.zero(), "")
}
