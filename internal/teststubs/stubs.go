package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/hoops-analytics/internal/domain/games"
)

// StubProvider is a test double for providers.GameProvider.
type StubProvider struct {
	// Games is keyed by division.
	Games map[string][]games.RawGame
	// Errs fails individual divisions; Err fails every call.
	Errs map[string]error
	Err  error

	Calls atomic.Int32

	mu        sync.Mutex
	divisions []string
}

// FetchGames returns the configured games and error while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, division string) ([]games.RawGame, error) {
	_ = ctx
	s.Calls.Add(1)
	s.mu.Lock()
	s.divisions = append(s.divisions, division)
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if err := s.Errs[division]; err != nil {
		return nil, err
	}
	return s.Games[division], nil
}

// Divisions lists the divisions requested, in call order.
func (s *StubProvider) Divisions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.divisions...)
}
