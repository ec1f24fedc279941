package ir_test

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestBuildTextualIRSnapshot(t *testing.T) {
	b := mustBuild(t, `
int fib(int n) {
  if (n < 2) {
    return n;
  }
  return fib(n - 1) + fib(n - 2);
}
`)
	defer b.Dispose()

	snaps.MatchSnapshot(t, "fib_ir", b.Module().String())
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
