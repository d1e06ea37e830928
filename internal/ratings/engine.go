package ratings

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
)

// ErrInvalidAlpha is returned by New when the penalty is not a positive number.
var ErrInvalidAlpha = errors.New("alpha must be > 0")

// Defaults applied by New to zero-valued settings.
const (
	DefaultMinGames      = 1
	DefaultMarginCap     = 99
	DefaultMaxIterations = 5000
	DefaultTolerance     = 1e-6
)

// Config tunes the rating fit.
type Config struct {
	Alpha         float64
	MinGames      int
	MarginCap     int
	MaxIterations int
	Tolerance     float64
}

// TeamRating is one rated team. Ratings are only comparable within a single run.
type TeamRating struct {
	TeamKey     string   `json:"team_key"`
	TeamName    string   `json:"team_name"`
	Rating      float64  `json:"rating"`
	GamesPlayed int      `json:"games_played"`
	Reference   *float64 `json:"reference,omitempty"`
}

// FitStats describes the regression behind a result.
type FitStats struct {
	Games         int     `json:"games"`
	Teams         int     `json:"teams"`
	HomeAdvantage float64 `json:"home_advantage"`
	RSquared      float64 `json:"r_squared"`
	RMSE          float64 `json:"rmse"`
	Iterations    int     `json:"iterations"`
	Converged     bool    `json:"converged"`
}

// Result is the output of one rating run.
type Result struct {
	Ratings []TeamRating `json:"ratings"`
	Stats   FitStats     `json:"stats"`
	// LowConfidence is set when the solver stopped at the iteration cap.
	LowConfidence bool    `json:"low_confidence"`
	Warnings      []error `json:"-"`
}

// Engine fits Lasso ratings over completed games.
type Engine struct {
	cfg Config
}

// New validates cfg. Zero values for everything but Alpha fall back to defaults.
func New(cfg Config) (*Engine, error) {
	if !(cfg.Alpha > 0) || math.IsInf(cfg.Alpha, 0) {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidAlpha, cfg.Alpha)
	}
	if cfg.MinGames < 1 {
		cfg.MinGames = DefaultMinGames
	}
	if cfg.MarginCap <= 0 {
		cfg.MarginCap = DefaultMarginCap
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if !(cfg.Tolerance > 0) {
		cfg.Tolerance = DefaultTolerance
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the effective settings.
func (e *Engine) Config() Config {
	return e.cfg
}

// Rate fits ratings for every team with a completed game. Unplayed games are ignored and
// repeated game ids count once, the first occurrence winning. The same input always
// yields the same ordered output.
func (e *Engine) Rate(list []games.Game) Result {
	res := Result{Ratings: []TeamRating{}}
	list, dups := uniqueGames(list)
	if len(dups) > 0 {
		res.Warnings = append(res.Warnings, &DuplicateGameWarning{IDs: dups})
	}
	completed := games.Completed(list)
	d := buildDesign(completed, e.cfg.MarginCap)

	res.Stats.Games = d.n
	res.Stats.Teams = len(d.keys)
	if d.n == 0 {
		res.Warnings = append(res.Warnings, &InsufficientDataWarning{Reason: "no completed games"})
		return res
	}
	if len(d.keys) < 2 {
		res.Warnings = append(res.Warnings, &InsufficientDataWarning{Reason: fmt.Sprintf("%d team with completed games, need at least 2", len(d.keys))})
		return res
	}

	fit := lasso(d, e.cfg.Alpha, e.cfg.MaxIterations, e.cfg.Tolerance)
	res.Stats.HomeAdvantage = fit.intercept
	res.Stats.Iterations = fit.iterations
	res.Stats.Converged = fit.converged
	res.Stats.RSquared, res.Stats.RMSE = d.goodness(fit.intercept, fit.beta)
	if !fit.converged {
		res.LowConfidence = true
		res.Warnings = append(res.Warnings, &ConvergenceWarning{Iterations: fit.iterations})
	}

	reference, err := referenceFit(d)
	if err != nil {
		res.Warnings = append(res.Warnings, err)
	}

	rated := make([]int, 0, len(d.keys))
	for j := range d.keys {
		if d.played[j] < e.cfg.MinGames {
			res.Warnings = append(res.Warnings, &InsufficientDataWarning{
				Team:     d.names[j],
				Games:    d.played[j],
				Required: e.cfg.MinGames,
			})
			continue
		}
		rated = append(rated, j)
	}

	ratings := centred(fit.beta, rated)
	var refs []float64
	if reference != nil {
		refs = centred(reference, rated)
	}
	for i, j := range rated {
		tr := TeamRating{
			TeamKey:     d.keys[j],
			TeamName:    d.names[j],
			Rating:      ratings[i],
			GamesPlayed: d.played[j],
		}
		if refs != nil {
			v := refs[i]
			tr.Reference = &v
		}
		res.Ratings = append(res.Ratings, tr)
	}
	sortRatings(res.Ratings)
	return res
}

func uniqueGames(list []games.Game) ([]games.Game, []string) {
	seen := make(map[string]struct{}, len(list))
	out := make([]games.Game, 0, len(list))
	var dups []string
	for _, g := range list {
		if g.ID != "" {
			if _, ok := seen[g.ID]; ok {
				dups = append(dups, g.ID)
				continue
			}
			seen[g.ID] = struct{}{}
		}
		out = append(out, g)
	}
	return out, dups
}

// centred returns values[idx] shifted to mean zero.
func centred(values []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	if len(idx) == 0 {
		return out
	}
	sum := 0.0
	for i, j := range idx {
		out[i] = values[j]
		sum += values[j]
	}
	mean := sum / float64(len(idx))
	for i := range out {
		out[i] -= mean
	}
	return out
}

func sortRatings(list []TeamRating) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Rating != list[j].Rating {
			return list[i].Rating > list[j].Rating
		}
		if list[i].TeamName != list[j].TeamName {
			return list[i].TeamName < list[j].TeamName
		}
		return list[i].TeamKey < list[j].TeamKey
	})
}
