package ratings

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
)

// design is the regression input: one row per completed game, one column per team
// (+1 home, -1 away), response = clipped home margin. Columns follow sorted team keys.
type design struct {
	n      int
	keys   []string
	names  []string
	played []int
	x      *mat.Dense
	y      []float64
}

func buildDesign(completed []games.Game, marginCap int) design {
	names := make(map[string]string)
	played := make(map[string]int)
	for _, g := range completed {
		for _, team := range []string{g.HomeTeam, g.AwayTeam} {
			key := games.NormalizeTeam(team)
			if _, ok := names[key]; !ok {
				names[key] = team
			}
			played[key]++
		}
	}

	d := design{n: len(completed)}
	for key := range names {
		d.keys = append(d.keys, key)
	}
	sort.Strings(d.keys)
	col := make(map[string]int, len(d.keys))
	for j, key := range d.keys {
		col[key] = j
		d.names = append(d.names, names[key])
		d.played = append(d.played, played[key])
	}
	if d.n == 0 || len(d.keys) == 0 {
		return d
	}

	d.x = mat.NewDense(d.n, len(d.keys), nil)
	d.y = make([]float64, d.n)
	limit := float64(marginCap)
	for i, g := range completed {
		margin, _ := g.Margin()
		d.x.Set(i, col[games.NormalizeTeam(g.HomeTeam)], 1)
		d.x.Set(i, col[games.NormalizeTeam(g.AwayTeam)], -1)
		d.y[i] = math.Max(-limit, math.Min(limit, float64(margin)))
	}
	return d
}

// goodness reports R² and RMSE for intercept + X·beta.
func (d design) goodness(intercept float64, beta []float64) (rsq, rmse float64) {
	var pred mat.VecDense
	pred.MulVec(d.x, mat.NewVecDense(len(beta), beta))

	mean := floats.Sum(d.y) / float64(d.n)
	var ssRes, ssTot float64
	for i, obs := range d.y {
		r := obs - (intercept + pred.AtVec(i))
		ssRes += r * r
		ssTot += (obs - mean) * (obs - mean)
	}
	if ssTot > 0 {
		rsq = 1 - ssRes/ssTot
	}
	return rsq, math.Sqrt(ssRes / float64(d.n))
}

type lassoFit struct {
	intercept  float64
	beta       []float64
	iterations int
	converged  bool
}

// lasso minimizes (1/2n)‖y − b0 − Xβ‖² + α‖β‖₁ by cyclic coordinate descent over
// centred columns, starting from zero. The intercept is not penalized.
func lasso(d design, alpha float64, maxIter int, tol float64) lassoFit {
	n := float64(d.n)
	p := len(d.keys)

	cols := make([][]float64, p)
	means := make([]float64, p)
	scale := make([]float64, p)
	for j := range cols {
		cols[j] = mat.Col(nil, j, d.x)
		means[j] = floats.Sum(cols[j]) / n
		floats.AddConst(-means[j], cols[j])
		scale[j] = floats.Dot(cols[j], cols[j]) / n
	}
	yMean := floats.Sum(d.y) / n
	resid := make([]float64, d.n)
	copy(resid, d.y)
	floats.AddConst(-yMean, resid)

	fit := lassoFit{beta: make([]float64, p)}
	for fit.iterations < maxIter {
		fit.iterations++
		maxDelta := 0.0
		for j := 0; j < p; j++ {
			// A column without variance carries no information once centred.
			if scale[j] == 0 {
				continue
			}
			rho := floats.Dot(cols[j], resid)/n + scale[j]*fit.beta[j]
			next := softThreshold(rho, alpha) / scale[j]
			delta := next - fit.beta[j]
			if delta == 0 {
				continue
			}
			floats.AddScaled(resid, -delta, cols[j])
			fit.beta[j] = next
			maxDelta = math.Max(maxDelta, math.Abs(delta))
		}
		if maxDelta < tol {
			fit.converged = true
			break
		}
	}
	fit.intercept = yMean - floats.Dot(means, fit.beta)
	return fit
}

func softThreshold(v, t float64) float64 {
	switch {
	case v > t:
		return v - t
	case v < -t:
		return v + t
	default:
		return 0
	}
}
