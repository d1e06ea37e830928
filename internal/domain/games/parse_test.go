package games

import (
	"encoding/json"
	"errors"
	"testing"
)

func rawGame(home, away, date string) RawGame {
	return RawGame{
		HomeTeam: Raw(home),
		AwayTeam: Raw(away),
		Date:     Raw(date),
	}
}

func TestParseGameNormalizesFields(t *testing.T) {
	raw := RawGame{
		HomeTeam:  Raw("  Shorewood "),
		AwayTeam:  Raw("Lake   Forest Park"),
		HomeScore: Raw("52"),
		AwayScore: Raw("48"),
		Date:      Raw("Saturday, January 13, 2024"),
		Time:      Raw(" 9:00  AM "),
		Venue:     Raw("Central Gym"),
		Court:     Raw("(Court 2)"),
		GameType:  Raw("Pool A"),
	}

	g, warnings, err := ParseGame(raw, "4th Girls")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if g.HomeTeam != "Shorewood" || g.AwayTeam != "Lake Forest Park" {
		t.Fatalf("unexpected teams %q / %q", g.HomeTeam, g.AwayTeam)
	}
	if g.Date != "2024-01-13" || g.Time != "9:00 AM" {
		t.Fatalf("unexpected date/time %s %s", g.Date, g.Time)
	}
	if g.Court != "Court 2" || g.Division != "4th Girls" || g.GameType != "Pool A" {
		t.Fatalf("unexpected court/division/type %+v", g)
	}
	if !g.Completed() || *g.HomeScore != 52 || *g.AwayScore != 48 {
		t.Fatalf("unexpected scores %+v", g)
	}
	if g.ID != GameID("4th Girls", "Shorewood", "Lake Forest Park", "2024-01-13") {
		t.Fatalf("expected derived game id, got %s", g.ID)
	}
}

func TestParseGameRawDivisionWins(t *testing.T) {
	raw := rawGame("A", "B", "2024-01-10")
	raw.Division = Raw("5th Girls")
	g, _, err := ParseGame(raw, "4th Girls")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if g.Division != "5th Girls" {
		t.Fatalf("expected raw division, got %s", g.Division)
	}
}

func TestParseGameDropsInvalidRecords(t *testing.T) {
	cases := map[string]RawGame{
		"home_team": rawGame("", "B", "2024-01-10"),
		"away_team": rawGame("A", "   ", "2024-01-10"),
		"date":      rawGame("A", "B", "sometime soon"),
	}
	for field, raw := range cases {
		_, _, err := ParseGame(raw, "div")
		if err == nil {
			t.Fatalf("%s: expected error", field)
		}
		pErr, ok := AsParseError(err)
		if !ok || pErr.Field != field {
			t.Fatalf("%s: expected ParseError on field, got %v", field, err)
		}
		if !errors.Is(err, ErrInvalidRecord) {
			t.Fatalf("%s: expected errors.Is ErrInvalidRecord", field)
		}
	}

	if _, _, err := ParseGame(rawGame("Shorewood", "shorewood", "2024-01-10"), "div"); err == nil {
		t.Fatalf("expected error when a team plays itself")
	}
	if _, _, err := ParseGame(RawGame{HomeTeam: Raw("A"), AwayTeam: Raw("B")}, "div"); err == nil {
		t.Fatalf("expected error when date key is missing")
	}
}

func TestParseGameScoreHandling(t *testing.T) {
	cases := []struct {
		name        string
		home, away  RawField
		wantHome    *int
		wantAway    *int
		wantWarning int
	}{
		{"absent", RawField{}, RawField{}, nil, nil, 0},
		{"blank", Raw(" "), Raw(""), nil, nil, 0},
		{"placeholders", Raw("(H)"), Raw("(A)"), nil, nil, 0},
		{"float export", Raw("52.0"), Raw("40"), IntPtr(52), IntPtr(40), 0},
		{"non numeric", Raw("fifty"), Raw("40"), nil, IntPtr(40), 1},
		{"negative", Raw("-3"), Raw("x"), nil, nil, 2},
		{"fractional", Raw("40.5"), Raw("40"), nil, IntPtr(40), 1},
	}
	for _, tc := range cases {
		raw := rawGame("A", "B", "2024-01-10")
		raw.HomeScore = tc.home
		raw.AwayScore = tc.away
		g, warnings, err := ParseGame(raw, "div")
		if err != nil {
			t.Fatalf("%s: expected game retained, got %v", tc.name, err)
		}
		if len(warnings) != tc.wantWarning {
			t.Fatalf("%s: expected %d warnings, got %v", tc.name, tc.wantWarning, warnings)
		}
		if !sameScore(g.HomeScore, tc.wantHome) || !sameScore(g.AwayScore, tc.wantAway) {
			t.Fatalf("%s: unexpected scores home=%v away=%v", tc.name, g.HomeScore, g.AwayScore)
		}
	}
}

func TestParseBatchIsolatesBadRecords(t *testing.T) {
	good := rawGame("A", "B", "2024-01-10")
	badScore := rawGame("C", "D", "2024-01-11")
	badScore.HomeScore = Raw("n/a")
	bad := rawGame("", "D", "2024-01-11")

	out, problems := ParseBatch([]RawGame{good, bad, badScore}, "div")
	if len(out) != 2 || out[0].HomeTeam != "A" || out[1].HomeTeam != "C" {
		t.Fatalf("expected two games in order, got %+v", out)
	}
	if len(problems) != 2 {
		t.Fatalf("expected one drop and one warning, got %v", problems)
	}
	drop, _ := AsParseError(problems[0])
	warn, _ := AsParseError(problems[1])
	if drop.Index != 1 || drop.Field != "home_team" {
		t.Fatalf("unexpected drop %+v", drop)
	}
	if warn.Index != 2 || warn.Field != "home_score" {
		t.Fatalf("unexpected warning %+v", warn)
	}
}

func TestParseBatchCleanRecordsHaveNoProblems(t *testing.T) {
	played := rawGame("A", "B", "2024-01-10")
	played.HomeScore = Raw("40")
	played.AwayScore = Raw("38")
	unplayed := rawGame("C", "D", "2024-01-11")
	unplayed.HomeScore = Raw("(H)")

	out, problems := ParseBatch([]RawGame{played, unplayed}, "div")
	if len(problems) != 0 {
		t.Fatalf("expected no problems for clean records, got %v", problems)
	}
	if len(out) != 2 || !out[0].Completed() || out[1].Completed() {
		t.Fatalf("unexpected games %+v", out)
	}
	for i, raw := range []RawGame{played, unplayed} {
		if _, warnings, err := ParseGame(raw, "div"); err != nil || len(warnings) != 0 {
			t.Fatalf("record %d: expected no warnings, got %v (err %v)", i, warnings, err)
		}
	}
}

func TestParseRecordsIsolatesMalformedRecords(t *testing.T) {
	records := []json.RawMessage{
		json.RawMessage(`{"home_team": "A", "away_team": "B", "home_score": 3, "away_score": 1, "date": "2024-01-10"}`),
		json.RawMessage(`{"home_team": {"name": "C"}, "away_team": "D", "date": "2024-01-10"}`),
		json.RawMessage(`{"home_team": "E", "away_team": "F", "date": "2024-01-11", "away_score": "x"}`),
	}
	out, problems := ParseRecords(records, "div")
	if len(out) != 2 || out[0].HomeTeam != "A" || out[1].HomeTeam != "E" {
		t.Fatalf("expected the two decodable games in order, got %+v", out)
	}
	if len(problems) != 2 {
		t.Fatalf("expected a dropped record and a score warning, got %v", problems)
	}
	drop, _ := AsParseError(problems[0])
	warn, _ := AsParseError(problems[1])
	if drop == nil || drop.Index != 1 || drop.Field != "record" {
		t.Fatalf("unexpected drop %+v", drop)
	}
	if warn == nil || warn.Index != 2 || warn.Field != "away_score" {
		t.Fatalf("unexpected warning %+v", warn)
	}
}

func sameScore(got, want *int) bool {
	if got == nil || want == nil {
		return got == nil && want == nil
	}
	return *got == *want
}
