package ratings

import (
	"fmt"
	"strings"
)

// InsufficientDataWarning is attached to a result when a team, or the whole division,
// has too few completed games to be rated. It never aborts a run.
type InsufficientDataWarning struct {
	// Team is empty when the warning covers the whole input.
	Team     string
	Games    int
	Required int
	Reason   string
}

func (w *InsufficientDataWarning) Error() string {
	if w.Team == "" {
		return "insufficient data: " + w.Reason
	}
	return fmt.Sprintf("insufficient data for %s: %d completed games, need %d", w.Team, w.Games, w.Required)
}

// ReferenceWarning explains why the unpenalized reference fit was left out.
type ReferenceWarning struct {
	Reason string
}

func (w *ReferenceWarning) Error() string {
	return "reference ratings omitted: " + w.Reason
}

// ConvergenceWarning marks a fit that hit the iteration cap. The coefficients from the
// last sweep are still returned.
type ConvergenceWarning struct {
	Iterations int
}

func (w *ConvergenceWarning) Error() string {
	return fmt.Sprintf("solver did not converge within %d iterations", w.Iterations)
}

// DuplicateGameWarning lists game ids that appeared more than once. Only the first copy
// was fitted.
type DuplicateGameWarning struct {
	IDs []string
}

func (w *DuplicateGameWarning) Error() string {
	return fmt.Sprintf("ignored %d duplicate game records: %s", len(w.IDs), strings.Join(w.IDs, ", "))
}
