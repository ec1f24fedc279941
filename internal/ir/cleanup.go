package ir

import (
	"fmt"

	"tinygo.org/x/go-llvm"
)

// cleanupDeadCode implements spec.md §4.4.4: after a function's body is
// lowered, walk every basic block and erase any instruction that follows
// a terminator. This is what makes it safe for a `return` statement to
// branch to the function's return block even when source code textually
// follows it. Dead expression statements and local variable initializers
// are still lowered (so their own errors, if any, were already caught) and
// their instructions are erased here; dead if/while/return statements are
// skipped by the statement lowering and emit nothing.
func cleanupDeadCode(fn llvm.Value) {
	for bb := fn.FirstBasicBlock(); !bb.IsNil(); bb = llvm.NextBasicBlock(bb) {
		for instr := bb.FirstInstruction(); !instr.IsNil(); instr = llvm.NextInstruction(instr) {
			if !instr.IsATerminatorInst().IsNil() {
				eraseAfter(instr)
				break
			}
		}
	}
}

// eraseAfter removes every instruction that follows term within its
// basic block, working from the tail backward so each erase doesn't
// invalidate the next instruction pointer still to be visited.
func eraseAfter(term llvm.Value) {
	var after []llvm.Value
	for instr := llvm.NextInstruction(term); !instr.IsNil(); instr = llvm.NextInstruction(instr) {
		after = append(after, instr)
	}
	for i := len(after) - 1; i >= 0; i-- {
		after[i].EraseFromParentAsInstruction()
	}
}

// checkAllTerminated enforces the invariant that every basic block of a
// defined function ends with a terminator, after dead-code cleanup has
// run.
func checkAllTerminated(fn llvm.Value) error {
	for bb := fn.FirstBasicBlock(); !bb.IsNil(); bb = llvm.NextBasicBlock(bb) {
		last := bb.LastInstruction()
		if last.IsNil() || last.IsATerminatorInst().IsNil() {
			return fmt.Errorf("basic block %q has no terminator", bb.AsValue().Name())
		}
	}
	return nil
}
