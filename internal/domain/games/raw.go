package games

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RawField holds one scraped value. Scrapers and older snapshot files emit strings,
// numbers or null interchangeably, so decoding accepts all of them.
type RawField struct {
	Value   string
	Present bool
}

// Raw wraps a present string value.
func Raw(v string) RawField {
	return RawField{Value: v, Present: true}
}

// UnmarshalJSON accepts string, number, bool or null.
func (f *RawField) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = RawField{}
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = Raw(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return err
		}
		*f = Raw(strconv.FormatBool(b))
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return err
		}
		*f = Raw(n.String())
	}
	return nil
}

// MarshalJSON writes absent values as null.
func (f RawField) MarshalJSON() ([]byte, error) {
	if !f.Present {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// RawGame is the loosely typed record handed over by a scraper before validation.
type RawGame struct {
	HomeTeam  RawField `json:"home_team"`
	AwayTeam  RawField `json:"away_team"`
	HomeScore RawField `json:"home_score"`
	AwayScore RawField `json:"away_score"`
	Date      RawField `json:"date"`
	Time      RawField `json:"time"`
	Venue     RawField `json:"venue"`
	Court     RawField `json:"court"`
	Division  RawField `json:"division"`
	GameType  RawField `json:"game_type"`
}

// ToRaw converts a parsed game back into raw form, mainly for fixtures and tests.
func ToRaw(g Game) RawGame {
	raw := RawGame{
		HomeTeam: Raw(g.HomeTeam),
		AwayTeam: Raw(g.AwayTeam),
		Date:     Raw(g.Date),
		Time:     Raw(g.Time),
		Venue:    Raw(g.Venue),
		Court:    Raw(g.Court),
		Division: Raw(g.Division),
		GameType: Raw(g.GameType),
	}
	if g.HomeScore != nil {
		raw.HomeScore = Raw(strconv.Itoa(*g.HomeScore))
	}
	if g.AwayScore != nil {
		raw.AwayScore = Raw(strconv.Itoa(*g.AwayScore))
	}
	return raw
}
