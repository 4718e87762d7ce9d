package recursion

import (
	"fmt"
	"io"

	apperrors "github.com/Oureyelet/funclab/internal/errors"
)

// DefaultMaxDepth is the recursion depth limit used when no explicit guard
// is configured. Deep enough for any lesson input, shallow enough to stop a
// runaway descent long before the goroutine stack is at risk.
const DefaultMaxDepth = 10_000

// Guard bounds the depth of guarded recursive demos. The zero value means
// unguarded; construct with NewGuard for a working limit.
type Guard struct {
	limit int
}

// NewGuard returns a Guard with the given depth limit. Non-positive limits
// fall back to DefaultMaxDepth.
func NewGuard(limit int) Guard {
	if limit <= 0 {
		limit = DefaultMaxDepth
	}
	return Guard{limit: limit}
}

// Limit returns the configured depth limit.
func (g Guard) Limit() int { return g.limit }

// CountDownGuarded is the runaway countdown with a safety net: it descends
// like CountDownUnbounded, printing "push n" without a termination condition
// on the input, but stops with a DepthError once the guard's limit is
// reached. It exists so the stack-exhaustion demonstration can run under
// automated tests.
func CountDownGuarded(w io.Writer, count int, g Guard) error {
	return countDownGuarded(w, count, 1, g)
}

func countDownGuarded(w io.Writer, count, depth int, g Guard) error {
	if depth > g.limit {
		return apperrors.DepthError{Function: "countDown", Limit: g.limit}
	}
	if _, err := fmt.Fprintf(w, "push %d\n", count); err != nil {
		return err
	}
	return countDownGuarded(w, count-1, depth+1, g)
}
