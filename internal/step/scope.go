package step

import (
	"context"

	"github.com/specialistvlad/porygon/internal/discord"
)

// Decision is returned by Scope.TrySkip. A bool would do, but the two
// meanings are too easy to mix up.
type Decision int

const (
	Proceed Decision = iota
	Skip
)

// ShouldSkip reports whether the step under the scope must not run.
func (d Decision) ShouldSkip() bool {
	return d == Skip
}

func (d Decision) String() string {
	if d.ShouldSkip() {
		return "skip"
	}
	return "proceed"
}

// Scope identifies a group of merged operands for one step kind. Scope values
// are map keys, so they must be comparable.
type Scope interface {
	comparable

	// TrySkip decides, at execution time, whether the step registered under
	// this scope should be omitted for this run. It may perform network I/O.
	TrySkip(ctx context.Context, sess *discord.Session) Decision

	// Suffix disambiguates the step's name in logs.
	Suffix() string
}

// Unit is the empty scope used by step kinds that have exactly one instance.
type Unit struct{}

// TrySkip always proceeds.
func (Unit) TrySkip(context.Context, *discord.Session) Decision { return Proceed }

// Suffix is empty for the unit scope.
func (Unit) Suffix() string { return "" }
