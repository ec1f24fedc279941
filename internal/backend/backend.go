// Package backend wraps the small slice of tinygo.org/x/go-llvm the
// pipeline needs past IR construction: module verification, bitcode
// serialization, target machine creation, and object/assembly emission —
// the external collaborator spec.md §4.5 names. Grounded on
// hhramberg-go-vslc's src/ir/llvm/transform.go (GenLLVM's target/triple
// selection and EmitToMemoryBuffer tail), generalized from that compiler's
// fixed five-architecture switch to an arbitrary triple built from a
// config.Target.
package backend

import (
	"os"
	"strings"
	"sync"

	"tinygo.org/x/go-llvm"

	"github.com/VVsxmja/rcc/internal/config"
	"github.com/VVsxmja/rcc/internal/diag"
	"github.com/VVsxmja/rcc/internal/token"
)

var initTargets sync.Once

func ensureTargetsInitialized() {
	initTargets.Do(func() {
		llvm.InitializeAllTargetInfos()
		llvm.InitializeAllTargets()
		llvm.InitializeAllTargetMCs()
		llvm.InitializeAllAsmParsers()
		llvm.InitializeAllAsmPrinters()
	})
}

func fail(kind diag.Kind, format string, args ...any) error {
	return diag.New(kind, token.Position{}, format, args...)
}

// Verify runs LLVM's module verifier (`verify(module) -> Result` in
// spec.md §4.5).
func Verify(m llvm.Module) error {
	if err := llvm.VerifyModule(m, llvm.ReturnStatusAction); err != nil {
		return fail(diag.ModuleVerification, "module verification failed: %s", err.Error())
	}
	return nil
}

// SerializeBitcode implements `serialize_bitcode(module) -> bytes`.
func SerializeBitcode(m llvm.Module) ([]byte, error) {
	buf := llvm.WriteBitcodeToMemoryBuffer(m)
	defer buf.Dispose()
	if buf.Bytes() == nil {
		return nil, fail(diag.WriteFailed, "failed to serialize module to bitcode")
	}
	out := make([]byte, len(buf.Bytes()))
	copy(out, buf.Bytes())
	return out, nil
}

// ParseBitcode re-creates a module from bitcode bytes, the first half of
// spec.md §4.5's generate_object_file contract.
func ParseBitcode(ctx llvm.Context, bitcode []byte) (llvm.Module, error) {
	buf := llvm.NewMemoryBufferFromMemoryRange(bitcode, "bitcode")
	m, err := ctx.ParseBitcode(buf)
	if err != nil {
		return llvm.Module{}, fail(diag.WriteFailed, "failed to parse bitcode: %s", err.Error())
	}
	return m, nil
}

// Triple builds an LLVM target triple from a config.Target, falling back
// to the host's default triple when no architecture is requested —
// mirroring hhramberg-go-vslc's genTargetTriple fallback to
// llvm.DefaultTargetTriple().
func Triple(t config.Target) string {
	if !t.HasExplicitArch() {
		return llvm.DefaultTargetTriple()
	}
	var sb strings.Builder
	sb.WriteString(t.Arch)
	sb.WriteRune('-')
	sb.WriteString(t.VendorOrDefault())
	sb.WriteRune('-')
	sb.WriteString(t.OSOrDefault())
	sb.WriteRune('-')
	sb.WriteString(t.ABIOrDefault())
	return sb.String()
}

// CreateTargetMachine implements `create_target_machine(triple, cpu,
// features, opt, reloc, code_model)`.
func CreateTargetMachine(t config.Target) (llvm.TargetMachine, error) {
	ensureTargetsInitialized()

	triple := Triple(t)
	target, err := llvm.GetTargetFromTriple(triple)
	if err != nil {
		return llvm.TargetMachine{}, fail(diag.TargetInitFailed, "unsupported target triple %q: %s", triple, err.Error())
	}

	tm := target.CreateTargetMachine(triple, t.CPUOrDefault(), t.Features,
		optLevel(t.OptLevel), relocMode(t.RelocMode), codeModel(t.CodeModel))
	return tm, nil
}

func optLevel(s string) llvm.CodeGenOptLevel {
	switch s {
	case "none":
		return llvm.CodeGenLevelNone
	case "less":
		return llvm.CodeGenLevelLess
	case "aggressive":
		return llvm.CodeGenLevelAggressive
	default:
		return llvm.CodeGenLevelDefault
	}
}

func relocMode(s string) llvm.RelocMode {
	switch s {
	case "static":
		return llvm.RelocStatic
	case "pic":
		return llvm.RelocPIC
	case "dynamic_no_pic":
		return llvm.RelocDynamicNoPic
	default:
		return llvm.RelocDefault
	}
}

func codeModel(s string) llvm.CodeModel {
	switch s {
	case "small":
		return llvm.CodeModelSmall
	case "kernel":
		return llvm.CodeModelKernel
	case "medium":
		return llvm.CodeModelMedium
	case "large":
		return llvm.CodeModelLarge
	default:
		return llvm.CodeModelDefault
	}
}

// FileType mirrors spec.md §4.5's `FileType ∈ {Object, Assembly}`.
type FileType int

const (
	Object FileType = iota
	Assembly
)

func (f FileType) llvmFileType() llvm.CodeGenFileType {
	if f == Assembly {
		return llvm.AssemblyFile
	}
	return llvm.ObjectFile
}

// WriteToFile implements `write_to_file(module, FileType, path)`: apply
// the target machine's data layout and triple to the module, emit to an
// in-memory buffer, then write it out.
func WriteToFile(m llvm.Module, tm llvm.TargetMachine, ft FileType, path string) error {
	td := tm.CreateTargetData()
	defer td.Dispose()
	m.SetDataLayout(td.String())
	m.SetTarget(tm.Triple())

	buf, err := tm.EmitToMemoryBuffer(m, ft.llvmFileType())
	if err != nil {
		return fail(diag.WriteFailed, "failed to emit %s: %s", fileTypeName(ft), err.Error())
	}
	defer buf.Dispose()

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fail(diag.WriteFailed, "failed to write %q: %s", path, err.Error())
	}
	return nil
}

func fileTypeName(ft FileType) string {
	if ft == Assembly {
		return "assembly"
	}
	return "object code"
}

