package fixture

import (
	"context"
	"strconv"
	"time"

	domaingames "github.com/preston-bernstein/hoops-analytics/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics/internal/timeutil"
)

var (
	teamNames = []string{"Lakeside Lady Hawks", "Shorewood Storm", "Northgate Select", "Riverview Elite"}
	venues    = []string{"Lakeside High School", "Shorewood Rec Center"}
	// Indexed by round-robin slot.
	sampleScores = [][2]int{{44, 40}, {52, 31}, {38, 29}, {47, 45}, {36, 41}, {30, 33}}
)

// Provider returns a static round-robin schedule for any division, useful for local runs.
// Games dated before today carry scores; the rest are not yet played.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchGames returns a deterministic set of example games for the division.
func (p *Provider) FetchGames(ctx context.Context, division string) ([]domaingames.RawGame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	today := p.now().UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -2)

	var out []domaingames.RawGame
	idx := 0
	for i := 0; i < len(teamNames); i++ {
		for j := i + 1; j < len(teamNames); j++ {
			day := start.AddDate(0, 0, idx/2)
			raw := domaingames.RawGame{
				HomeTeam: domaingames.Raw(teamNames[i]),
				AwayTeam: domaingames.Raw(teamNames[j]),
				Date:     domaingames.Raw(timeutil.FormatDate(day)),
				Time:     domaingames.Raw(gameTime(idx)),
				Venue:    domaingames.Raw(venues[idx%len(venues)]),
				Court:    domaingames.Raw("Court " + strconv.Itoa(idx%2+1)),
				Division: domaingames.Raw(division),
				GameType: domaingames.Raw("Pool"),
			}
			if day.Before(today) {
				raw.HomeScore = domaingames.Raw(strconv.Itoa(sampleScores[idx][0]))
				raw.AwayScore = domaingames.Raw(strconv.Itoa(sampleScores[idx][1]))
			}
			out = append(out, raw)
			idx++
		}
	}
	return out, nil
}

func gameTime(idx int) string {
	if idx%2 == 0 {
		return "9:00 AM"
	}
	return "10:30 AM"
}
