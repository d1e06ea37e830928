package ratings

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// referenceFit solves the unpenalized least squares problem with an intercept and the
// last team as the zero reference. It returns one coefficient per team, or a
// *ReferenceWarning when the reduced system is not well-posed.
func referenceFit(d design) ([]float64, error) {
	p := len(d.keys)
	if d.n < p {
		return nil, &ReferenceWarning{Reason: fmt.Sprintf("%d games for %d unknowns", d.n, p)}
	}

	a := mat.NewDense(d.n, p, nil)
	for i := 0; i < d.n; i++ {
		a.Set(i, 0, 1)
		for j := 0; j < p-1; j++ {
			a.Set(i, j+1, d.x.At(i, j))
		}
	}
	b := mat.NewDense(d.n, 1, append([]float64(nil), d.y...))

	var sol mat.Dense
	if err := sol.Solve(a, b); err != nil {
		return nil, &ReferenceWarning{Reason: fmt.Sprintf("schedule is not connected enough: %v", err)}
	}

	out := make([]float64, p)
	for j := 0; j < p-1; j++ {
		v := sol.At(j+1, 0)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ReferenceWarning{Reason: "solution is not finite"}
		}
		out[j] = v
	}
	return out, nil
}
