package step

import (
	"context"

	"github.com/specialistvlad/porygon/internal/discord"
)

// Step is one merged operation for a single scope value. Implementations
// also expose a kind-specific Append for their operand type; the framework
// only needs what is below.
type Step[K Scope] interface {
	// Name of the step kind, e.g. "init". Used for logging.
	Name() string

	// Len is the number of operands merged so far.
	Len() int

	// Execute runs the merged operation. It is called at most once, after
	// registration has finished.
	Execute(ctx context.Context, args Args[K]) error
}

// Args is the execution context handed to Step.Execute.
type Args[K Scope] struct {
	// Session is the shared, read-only client handle.
	Session *discord.Session

	// Scope is the scope value the step was registered under.
	Scope K
}

// Named is anything with a step kind name.
type Named interface {
	Name() string
}

// NameIn returns the step's name qualified by its scope, for logging.
func NameIn[K Scope](s Named, scope K) string {
	return s.Name() + scope.Suffix()
}
