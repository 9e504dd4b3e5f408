package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertStepRan checks the captured log output to confirm that the named
// setup step (kind plus scope suffix, e.g. "init:Global") completed.
func AssertStepRan(t *testing.T, logs, stepName string) {
	t.Helper()
	require.True(t,
		containsLine(logs, "Setup step complete.", fmt.Sprintf("step=%s", stepName)),
		"expected setup step %q to complete, logs:\n%s", stepName, logs,
	)
}

// AssertStepSkipped confirms the named setup step was skipped.
func AssertStepSkipped(t *testing.T, logs, stepName string) {
	t.Helper()
	require.True(t,
		containsLine(logs, "Setup step skipped.", fmt.Sprintf("step=%s", stepName)),
		"expected setup step %q to be skipped, logs:\n%s", stepName, logs,
	)
}

// CountLines returns how many log lines contain every fragment.
func CountLines(logs string, fragments ...string) int {
	n := 0
	for _, line := range strings.Split(logs, "\n") {
		if lineHasAll(line, fragments) {
			n++
		}
	}
	return n
}

func containsLine(logs string, fragments ...string) bool {
	return CountLines(logs, fragments...) > 0
}

func lineHasAll(line string, fragments []string) bool {
	for _, f := range fragments {
		if !strings.Contains(line, f) {
			return false
		}
	}
	return true
}
