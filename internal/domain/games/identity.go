package games

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/segmentio/fasthash/jody"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeTeam builds the team key: lowercase, trimmed, apostrophes removed,
// whitespace runs replaced by underscores.
func NormalizeTeam(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("'", "", "’", "").Replace(key)
	return whitespaceRun.ReplaceAllString(key, "_")
}

// DivisionSlug is the on-disk directory name for a division.
func DivisionSlug(division string) string {
	return NormalizeTeam(division)
}

// GameID derives the stable identity of a game from its division, the unordered pair of
// team keys and the canonical date. Scores, time and venue never participate.
func GameID(division, home, away, date string) string {
	teams := []string{NormalizeTeam(home), NormalizeTeam(away)}
	sort.Strings(teams)

	hash := jody.HashString64(DivisionSlug(division))
	for _, part := range []string{teams[0], teams[1], date} {
		hash = jody.AddString64(hash, "|")
		hash = jody.AddString64(hash, part)
	}
	return fmt.Sprintf("%016x", hash)
}
