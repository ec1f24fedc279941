// Package config loads the YAML-driven backend target configuration used
// by the compile-binary and compile-assembly subcommands: architecture,
// vendor, OS, ABI, CPU, feature string, and code generation tuning,
// following the "small typed struct with yaml tags, unmarshalled with
// goccy/go-yaml" shape the rest of the module's ambient stack uses for
// structured configuration.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Target describes the machine a compile-binary/compile-assembly run
// should target. Every field is optional; a zero Target means "use the
// host's default target triple and a generic CPU", mirroring
// hhramberg-go-vslc's genTargetTriple fallback to llvm.DefaultTargetTriple
// when no target architecture is requested.
type Target struct {
	Arch     string `yaml:"arch"`     // e.g. "x86_64", "aarch64"; empty means host default
	Vendor   string `yaml:"vendor"`   // e.g. "pc", "apple"; default "pc" if Arch is set
	OS       string `yaml:"os"`       // e.g. "linux", "darwin"; default "none" if Arch is set
	ABI      string `yaml:"abi"`      // e.g. "gnu"; default "gnu" if Arch is set
	CPU      string `yaml:"cpu"`      // default "generic"
	Features string `yaml:"features"`

	OptLevel  string `yaml:"opt_level"`  // "none" | "less" | "default" | "aggressive"
	RelocMode string `yaml:"reloc_mode"` // "default" | "static" | "pic" | "dynamic_no_pic"
	CodeModel string `yaml:"code_model"` // "default" | "small" | "kernel" | "medium" | "large"
}

// Default returns the zero-value Target: host-default triple, generic
// CPU, no extra features, default optimization/reloc/code-model.
func Default() Target {
	return Target{}
}

// Load reads and parses a YAML target configuration file. A missing file
// is not an error path this package handles; callers that want to fall
// back to Default() on ENOENT check os.IsNotExist themselves.
func Load(path string) (Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Target{}, err
	}
	var t Target
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Target{}, err
	}
	return t, nil
}

// HasExplicitArch reports whether this configuration requests a specific
// target architecture rather than deferring to the host's default triple.
func (t Target) HasExplicitArch() bool { return t.Arch != "" }

func (t Target) CPUOrDefault() string {
	if t.CPU != "" {
		return t.CPU
	}
	return "generic"
}

func (t Target) VendorOrDefault() string {
	if t.Vendor != "" {
		return t.Vendor
	}
	return "pc"
}

func (t Target) OSOrDefault() string {
	if t.OS != "" {
		return t.OS
	}
	return "none"
}

func (t Target) ABIOrDefault() string {
	if t.ABI != "" {
		return t.ABI
	}
	return "gnu"
}
