package pipeline

import "github.com/preston-bernstein/hoops-analytics/internal/testutil"

const (
	sixth   = "6th Girls"
	seventh = "7th Girls"
)

var (
	rawGame = testutil.RawGame
	parsed  = testutil.ParseGames
)
