// Package rtrace provides the verbosity-filtered tracing referenced in
// spec.md §6: a single environment variable gates optional diagnostic
// output, the same role the teacher's LexerOption WithTracing and the
// CLI's --verbose flags play, except process-wide and settable without
// threading a flag through every stage.
package rtrace

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// EnvVar is the environment variable read once at first use to determine
// the trace level. 0 (or unset/unparseable) disables tracing entirely.
const EnvVar = "RCC_TRACE"

var (
	once  sync.Once
	level int
)

func currentLevel() int {
	once.Do(func() {
		if v, err := strconv.Atoi(os.Getenv(EnvVar)); err == nil {
			level = v
		}
	})
	return level
}

// SetLevel overrides the trace level directly, short-circuiting the
// RCC_TRACE lookup; the CLI's --verbose flag calls this once at startup,
// before any subcommand runs, so the override always wins over the
// environment variable.
func SetLevel(l int) {
	once.Do(func() {})
	level = l
}

// Tracef writes a trace line to stderr if the current level is at least
// minLevel. Levels are small integers (1 = coarse stage transitions, 2 =
// per-token/per-node detail); there is no registry of levels beyond that
// convention.
func Tracef(minLevel int, format string, args ...any) {
	if currentLevel() < minLevel {
		return
	}
	fmt.Fprintf(os.Stderr, "[trace] "+format+"\n", args...)
}
