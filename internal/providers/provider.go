package providers

import (
	"context"

	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
)

// GameProvider fetches the raw schedule records of one division. Records are returned
// unvalidated; callers run them through games.ParseBatch.
type GameProvider interface {
	FetchGames(ctx context.Context, division string) ([]games.RawGame, error)
}

// GameProviderFunc adapts a function into a GameProvider.
type GameProviderFunc func(ctx context.Context, division string) ([]games.RawGame, error)

// FetchGames calls f.
func (f GameProviderFunc) FetchGames(ctx context.Context, division string) ([]games.RawGame, error) {
	return f(ctx, division)
}
