package exposure

import (
	"context"
	"fmt"
	"os"

	domaingames "github.com/preston-bernstein/hoops-analytics/internal/domain/games"
)

// FileSource reads a schedule page saved by a browser, for pages that render client side.
type FileSource struct {
	Path string
}

// NewFileSource returns a provider backed by a saved HTML page.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// FetchGames parses the saved page for the division.
func (f *FileSource) FetchGames(ctx context.Context, division string) ([]domaingames.RawGame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%s: open saved page: %w", providerName, err)
	}
	defer file.Close()
	return ParseSchedule(file, division)
}
