package exposure

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	domaingames "github.com/preston-bernstein/hoops-analytics/internal/domain/games"
)

// ParseSchedule walks a rendered schedule page in document order. Each game card takes
// the date of the closest date header above it. Cards whose footer names another
// division are skipped; an empty division keeps every card.
//
// Values are handed over as printed. Cards missing a team name are still returned so
// that validation reports them.
func ParseSchedule(r io.Reader, division string) ([]domaingames.RawGame, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: parse schedule: %w", providerName, err)
	}

	want := normalize(division)
	var (
		out         []domaingames.RawGame
		currentDate string
	)
	doc.Find(selectScheduleItems).Each(func(_ int, s *goquery.Selection) {
		if !s.HasClass("card") {
			if text := cleanText(s.Find("span").First().Text()); len(text) > 5 {
				currentDate = text
			}
			return
		}
		if !isGameCard(s) {
			return
		}
		raw := parseCard(s)
		raw.Date = domaingames.Raw(currentDate)
		if want != "" && raw.Division.Present && normalize(raw.Division.Value) != want {
			return
		}
		out = append(out, raw)
	})
	return out, nil
}

func isGameCard(card *goquery.Selection) bool {
	return card.Find(selectCardBody).Find(selectFinalScore).Length() >= 2
}

func parseCard(card *goquery.Selection) domaingames.RawGame {
	var raw domaingames.RawGame

	header := card.Find(selectCardHeader).First()
	if t := cleanText(header.Find("div").First().Text()); t != "" {
		raw.Time = domaingames.Raw(t)
	}
	spans := header.Find("span")
	if spans.Length() >= 2 {
		raw.Venue = domaingames.Raw(cleanText(spans.Eq(0).Text()))
		court := cleanText(spans.Eq(1).Text())
		if strings.Contains(court, "(") && strings.Contains(court, ")") {
			raw.Court = domaingames.Raw(strings.Trim(court, "()"))
		}
	}

	body := card.Find(selectCardBody).First()
	rows := body.ChildrenFiltered(selectTeamRow)
	if rows.Length() < 2 {
		rows = body.Find(selectTeamRow)
	}
	if rows.Length() >= 2 {
		raw.AwayTeam, raw.AwayScore = parseTeamRow(rows.Eq(0))
		raw.HomeTeam, raw.HomeScore = parseTeamRow(rows.Eq(1))
	}

	footer := cleanText(card.Find(selectCardFooter).First().Text())
	if footer != "" {
		div, kind, found := strings.Cut(footer, ",")
		raw.Division = domaingames.Raw(strings.TrimSpace(div))
		if found {
			raw.GameType = domaingames.Raw(strings.TrimSpace(kind))
		}
	}
	return raw
}

func parseTeamRow(row *goquery.Selection) (name, score domaingames.RawField) {
	text := cleanText(row.Find("a").First().Text())
	if text == "" {
		text = cleanText(row.Find(selectTeamText).First().Text())
	}
	if text != "" {
		name = domaingames.Raw(text)
	}
	if s := row.Find(selectFinalScore).First(); s.Length() > 0 {
		score = domaingames.Raw(cleanText(s.Text()))
	}
	return name, score
}

func normalize(v string) string {
	return strings.ToLower(cleanText(v))
}

func cleanText(v string) string {
	return strings.Join(strings.Fields(v), " ")
}
