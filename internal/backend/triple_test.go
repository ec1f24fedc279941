package backend

import (
	"testing"

	"github.com/VVsxmja/rcc/internal/config"
)

func TestTripleWithExplicitArchUsesDefaultsForTheRest(t *testing.T) {
	got := Triple(config.Target{Arch: "aarch64"})
	if want := "aarch64-pc-none-gnu"; got != want {
		t.Errorf("Triple() = %q, want %q", got, want)
	}
}

func TestTripleHonorsEveryField(t *testing.T) {
	got := Triple(config.Target{Arch: "x86_64", Vendor: "apple", OS: "darwin", ABI: "macho"})
	if want := "x86_64-apple-darwin-macho"; got != want {
		t.Errorf("Triple() = %q, want %q", got, want)
	}
}

func TestFileTypeNaming(t *testing.T) {
	if got, want := fileTypeName(Object), "object code"; got != want {
		t.Errorf("fileTypeName(Object) = %q, want %q", got, want)
	}
	if got, want := fileTypeName(Assembly), "assembly"; got != want {
		t.Errorf("fileTypeName(Assembly) = %q, want %q", got, want)
	}
}
