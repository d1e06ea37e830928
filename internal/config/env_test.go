package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestDurationEnvFallsBack(t *testing.T) {
	for _, raw := range []string{"not-a-duration", "0s", "-1s"} {
		t.Setenv("DURATION_TEST", raw)
		if got := durationEnvOrDefault("DURATION_TEST", time.Minute); got != time.Minute {
			t.Fatalf("expected fallback for %q, got %s", raw, got)
		}
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("INT_TEST", "7")
	if got := intEnvOrDefault("INT_TEST", 1); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	t.Setenv("INT_TEST", "nope")
	if got := intEnvOrDefault("INT_TEST", 1); got != 1 {
		t.Fatalf("expected fallback, got %d", got)
	}
}

func TestFloatEnvOrDefault(t *testing.T) {
	t.Setenv("FLOAT_TEST", "0.3")
	if got := floatEnvOrDefault("FLOAT_TEST", 1); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
	t.Setenv("FLOAT_TEST", "abc")
	if got := floatEnvOrDefault("FLOAT_TEST", 1); got != 1 {
		t.Fatalf("expected fallback, got %v", got)
	}
}

func TestListEnvOrDefault(t *testing.T) {
	t.Setenv("LIST_TEST", " a , ,b")
	got := listEnvOrDefault("LIST_TEST", nil)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected list %v", got)
	}
	t.Setenv("LIST_TEST", " ")
	if got := listEnvOrDefault("LIST_TEST", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("expected default list, got %v", got)
	}
}
