package ir

import (
	"tinygo.org/x/go-llvm"

	"github.com/VVsxmja/rcc/internal/ast"
	"github.com/VVsxmja/rcc/internal/diag"
	"github.com/VVsxmja/rcc/internal/types"
)

// declareFunction implements spec.md §4.4.1's function declaration rules:
// lower the signature, reconcile it against any earlier declaration, and
// either register a prototype or lower a full definition.
func (b *Builder) declareFunction(decl *ast.FunctionDecl) error {
	paramTypes := make([]types.Type, len(decl.Params))
	for i, p := range decl.Params {
		if p.Type == types.Void {
			return b.errorf(diag.VoidVariable, decl, "parameter %q must not be void", p.Name)
		}
		paramTypes[i] = p.Type
	}

	existing, ok := b.functions[decl.Name]
	if ok {
		if !signaturesMatch(existing, decl.ReturnType, paramTypes) {
			return b.errorf(diag.Redefined, decl, "function %q redeclared with a different signature", decl.Name)
		}
		if decl.Body != nil && existing.defined {
			return b.errorf(diag.Redefined, decl, "function %q already defined", decl.Name)
		}
	} else {
		if _, isGlobal := b.globals[decl.Name]; isGlobal {
			return b.errorf(diag.Redefined, decl, "identifier %q already declared as a variable", decl.Name)
		}
		llvmParams := make([]llvm.Type, len(paramTypes))
		for i, t := range paramTypes {
			llvmParams[i] = b.llvmType(t)
		}
		ftyp := llvm.FunctionType(b.llvmType(decl.ReturnType), llvmParams, false)
		fn := llvm.AddFunction(b.mod, decl.Name, ftyp)
		for i, p := range fn.Params() {
			p.SetName(decl.Params[i].Name)
		}
		existing = &funcInfo{value: fn, returnType: decl.ReturnType, paramTypes: paramTypes}
		b.functions[decl.Name] = existing
	}

	if decl.Body == nil {
		return nil
	}
	existing.defined = true
	return b.defineFunction(existing, decl)
}

func signaturesMatch(existing *funcInfo, retType types.Type, paramTypes []types.Type) bool {
	if existing.returnType != retType || len(existing.paramTypes) != len(paramTypes) {
		return false
	}
	for i, t := range paramTypes {
		if existing.paramTypes[i] != t {
			return false
		}
	}
	return true
}

// defineFunction lowers a function body under the single-return-block
// convention: entry and return blocks are created first, then the cursor
// returns to entry for parameter allocation and body emission.
func (b *Builder) defineFunction(info *funcInfo, decl *ast.FunctionDecl) error {
	fn := info.value

	entry := llvm.AddBasicBlock(fn, "entry")
	ret := llvm.AddBasicBlock(fn, "return")

	fs := &functionState{
		value:       fn,
		name:        decl.Name,
		returnType:  decl.ReturnType,
		entryBlock:  entry,
		returnBlock: ret,
		locals:      make(map[string]llvm.Value),
	}
	b.fn = fs
	defer func() { b.fn = nil }()

	b.setCurrent(entry, decl.Name+".entry")
	if decl.ReturnType != types.Void {
		fs.returnValue = b.bld.CreateAlloca(b.intType(), "retval")
	}

	b.setCurrent(ret, decl.Name+".return")
	if decl.ReturnType != types.Void {
		loaded := b.bld.CreateLoad(fs.returnValue, "")
		b.createRet(loaded)
	} else {
		b.createRetVoid()
	}

	b.setCurrent(entry, decl.Name+".entry")
	seen := make(map[string]bool, len(decl.Params))
	for i, p := range decl.Params {
		if seen[p.Name] {
			return b.errorf(diag.DuplicateParameter, decl, "duplicate parameter name %q", p.Name)
		}
		seen[p.Name] = true
		slot := b.bld.CreateAlloca(b.llvmType(p.Type), p.Name)
		b.bld.CreateStore(fn.Params()[i], slot)
		fs.locals[p.Name] = slot
	}

	if err := b.lowerBlock(decl.Body); err != nil {
		return err
	}

	cleanupDeadCode(fn)
	if err := checkAllTerminated(fn); err != nil {
		return b.errorf(diag.UnterminatedBlock, decl, "%s", err.Error())
	}

	if ok := llvm.VerifyFunction(fn, llvm.ReturnStatusAction); ok != nil {
		return b.errorf(diag.ModuleVerification, decl, "function %q failed verification: %s", decl.Name, ok.Error())
	}
	return nil
}

// setCurrent repositions the builder cursor at bb and resets the
// terminated flag: each basic block the builder starts from scratch, so
// its termination state can't leak from the block left behind.
func (b *Builder) setCurrent(bb llvm.BasicBlock, label string) {
	b.bld.SetInsertPointAtEnd(bb)
	b.fn.current = bb
	b.fn.terminated = false
	b.traceBlock(label)
}

func (b *Builder) createBr(dst llvm.BasicBlock) {
	if b.fn.terminated {
		return
	}
	b.bld.CreateBr(dst)
	b.fn.terminated = true
}

func (b *Builder) createCondBr(cond llvm.Value, then, els llvm.BasicBlock) {
	if b.fn.terminated {
		return
	}
	b.bld.CreateCondBr(cond, then, els)
	b.fn.terminated = true
}

func (b *Builder) createRet(v llvm.Value) {
	if b.fn.terminated {
		return
	}
	b.bld.CreateRet(v)
	b.fn.terminated = true
}

func (b *Builder) createRetVoid() {
	if b.fn.terminated {
		return
	}
	b.bld.CreateRetVoid()
	b.fn.terminated = true
}
