package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsZeroValue(t *testing.T) {
	d := Default()
	if d.HasExplicitArch() {
		t.Errorf("Default() has an explicit arch: %+v", d)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.yaml")
	contents := "arch: aarch64\nos: linux\nopt_level: aggressive\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	target, err := Load(path)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if target.Arch != "aarch64" || target.OS != "linux" || target.OptLevel != "aggressive" {
		t.Errorf("Load() = %+v, want Arch=aarch64 OS=linux OptLevel=aggressive", target)
	}
	if !target.HasExplicitArch() {
		t.Errorf("HasExplicitArch() = false, want true")
	}
}

func TestLoadMissingFileReturnsNotExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !os.IsNotExist(err) {
		t.Fatalf("Load(missing) = %v, want an os.IsNotExist error", err)
	}
}
