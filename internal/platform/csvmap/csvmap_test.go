package csvmap

import (
	"reflect"
	"testing"
)

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Game_Date", "game_date"},
		{"  Home Team  ", "home_team"},
		{"\uFEFFyear", "year"},
		{"Away-Team", "away_team"},
		{"Pts.For", "pts_for"},
		{"GRUPP", "grupp"},
		{"Händelse", "händelse"},
		{"a   b\tc", "a_b_c"},
		{"", ""},
	}

	for _, tc := range cases {
		got := NormalizeHeader(tc.in)
		if got != tc.want {
			t.Fatalf("NormalizeHeader(%q) = %q, want %q", tc.in, got, tc.want)
		}
		// normalization must be a fixed point of itself
		if again := NormalizeHeader(got); again != got {
			t.Fatalf("NormalizeHeader(%q) not idempotent: %q -> %q", tc.in, got, again)
		}
	}
}

func TestDetectDelimiter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line string
		want rune
	}{
		{"a;b;c", ';'},
		{"a,b,c", ','},
		{"a\tb\tc", '\t'},
		{"a;b,c;d;e", ';'},
		{"a;b,c", ';'}, // tie keeps the higher-priority candidate
		{"plain text", ';'},
		{"", ';'},
	}

	for _, tc := range cases {
		if got := DetectDelimiter(tc.line); got != tc.want {
			t.Fatalf("DetectDelimiter(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestMapHeadersAliases(t *testing.T) {
	t.Parallel()

	m := MapHeaders([]string{"Game_Date", "Home", "Home Score", "Away", "Away Score", "Weather"})

	wantTargets := []string{"match_date", "home_team_id", "home_score", "away_team_id", "away_score"}
	for i, want := range wantTargets {
		got, ok := m.Target(i)
		if !ok || got != want {
			t.Fatalf("Target(%d) = %q, %v, want %q", i, got, ok, want)
		}
	}

	if _, ok := m.Target(5); ok {
		t.Fatalf("expected Weather column to stay unmapped")
	}
	if !reflect.DeepEqual(m.Unknown, []string{"Weather"}) {
		t.Fatalf("Unknown = %v, want [Weather]", m.Unknown)
	}
	if !m.Mapped() {
		t.Fatalf("expected mapping to be non-empty")
	}
}

func TestMapHeadersDuplicateDestination(t *testing.T) {
	t.Parallel()

	m := MapHeaders([]string{"date", "match_date"})

	if dest, ok := m.Target(0); !ok || dest != "match_date" {
		t.Fatalf("Target(0) = %q, %v", dest, ok)
	}
	if dest, ok := m.Target(1); !ok || dest != "match_date" {
		t.Fatalf("Target(1) = %q, %v", dest, ok)
	}
	if len(m.Notes) != 1 {
		t.Fatalf("Notes = %v, want one duplicate note", m.Notes)
	}
}

func TestMapHeadersNothingUsable(t *testing.T) {
	t.Parallel()

	m := MapHeaders([]string{"Weather", "Referee"})

	if m.Mapped() {
		t.Fatalf("expected no mapped columns")
	}
	if len(m.Unknown) != 2 {
		t.Fatalf("Unknown = %v, want both headers reported", m.Unknown)
	}
	if _, ok := m.Target(0); ok {
		t.Fatalf("Target(0) should be unmapped")
	}
	if _, ok := m.Target(7); ok {
		t.Fatalf("out-of-range index should be unmapped")
	}
}
