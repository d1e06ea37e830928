package games

import "testing"

func TestCompletedRequiresBothScores(t *testing.T) {
	cases := []struct {
		name string
		game Game
		want bool
	}{
		{"unplayed", Game{}, false},
		{"home only", Game{HomeScore: IntPtr(40)}, false},
		{"away only", Game{AwayScore: IntPtr(40)}, false},
		{"final", Game{HomeScore: IntPtr(40), AwayScore: IntPtr(38)}, true},
	}
	for _, tc := range cases {
		if got := tc.game.Completed(); got != tc.want {
			t.Fatalf("%s: expected completed=%v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestMarginIsHomeMinusAway(t *testing.T) {
	g := Game{HomeScore: IntPtr(31), AwayScore: IntPtr(44)}
	margin, ok := g.Margin()
	if !ok || margin != -13 {
		t.Fatalf("expected margin -13, got %d (ok=%v)", margin, ok)
	}
	if _, ok := (Game{}).Margin(); ok {
		t.Fatalf("expected no margin for unplayed game")
	}
}

func TestScoreLabel(t *testing.T) {
	if _, ok := (Game{}).ScoreLabel(); ok {
		t.Fatalf("expected no label without scores")
	}
	if got, _ := (Game{HomeScore: IntPtr(50), AwayScore: IntPtr(40)}).ScoreLabel(); got != "50-40" {
		t.Fatalf("expected 50-40, got %s", got)
	}
	if got, _ := (Game{AwayScore: IntPtr(12)}).ScoreLabel(); got != "-12" {
		t.Fatalf("expected -12 for missing home side, got %s", got)
	}
}

func TestVenueLabel(t *testing.T) {
	cases := map[string]Game{
		"":                      {},
		"Central Gym":           {Venue: "Central Gym"},
		"Central Gym (Court 2)": {Venue: "Central Gym", Court: "Court 2"},
		"(Court 2)":             {Court: "Court 2"},
	}
	for want, g := range cases {
		if got := g.VenueLabel(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestInvolvesMatchesNormalizedNames(t *testing.T) {
	g := Game{HomeTeam: "Shorewood", AwayTeam: "O'Dea Blue"}
	if !g.Involves("  shorewood ") || !g.Involves("odea   blue") {
		t.Fatalf("expected normalized team match")
	}
	if g.Involves("Lakeside") || g.Involves("") {
		t.Fatalf("expected no match for other teams")
	}
}

func TestCompletedFilterKeepsOrder(t *testing.T) {
	in := []Game{
		{ID: "a", HomeScore: IntPtr(1), AwayScore: IntPtr(2)},
		{ID: "b"},
		{ID: "c", HomeScore: IntPtr(3), AwayScore: IntPtr(0)},
	}
	out := Completed(in)
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "c" {
		t.Fatalf("unexpected completed games %+v", out)
	}
}
