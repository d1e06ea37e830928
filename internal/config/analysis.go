package config

// AnalysisConfig is the configuration surface consumed by the comparator and rating engine.
type AnalysisConfig struct {
	Alpha             float64  `yaml:"alpha"`
	FieldPriority     []string `yaml:"field_priority"`
	MinGamesForRating int      `yaml:"min_games_for_rating"`
	MarginCap         int      `yaml:"margin_cap"`
	MaxIterations     int      `yaml:"max_iterations"`
	Tolerance         float64  `yaml:"tolerance"`
}

func defaultAnalysis() AnalysisConfig {
	return AnalysisConfig{
		Alpha:             defaultAlpha,
		FieldPriority:     append([]string(nil), defaultFieldPriority...),
		MinGamesForRating: defaultMinGames,
		MarginCap:         defaultMarginCap,
		MaxIterations:     defaultMaxIterations,
		Tolerance:         defaultTolerance,
	}
}

func (a AnalysisConfig) withEnv() AnalysisConfig {
	a.Alpha = floatEnvOrDefault(envAlpha, a.Alpha)
	a.FieldPriority = listEnvOrDefault(envFieldPriority, a.FieldPriority)
	a.MinGamesForRating = intEnvOrDefault(envMinGames, a.MinGamesForRating)
	a.MarginCap = intEnvOrDefault(envMarginCap, a.MarginCap)
	a.MaxIterations = intEnvOrDefault(envMaxIterations, a.MaxIterations)
	a.Tolerance = floatEnvOrDefault(envTolerance, a.Tolerance)
	return a
}
