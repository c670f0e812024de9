package standings

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/mittlag/flaggstats/internal/domain/game"
)

func completedGame(home string, hs int, away string, as int) game.Game {
	return game.Game{
		HomeTeamID: &home,
		HomeScore:  &hs,
		AwayTeamID: &away,
		AwayScore:  &as,
	}
}

func TestAccumulate(t *testing.T) {
	t.Parallel()

	games := []game.Game{
		completedGame("A", 21, "B", 14),
		completedGame("C", 10, "A", 10),
	}

	table := Accumulate(games)

	a := table["A"]
	if a == nil {
		t.Fatalf("team A missing from table")
	}
	if a.GamesPlayed != 2 || a.Wins != 1 || a.Losses != 0 || a.Ties != 1 {
		t.Fatalf("A record = %+v", a)
	}
	if a.PointsFor != 31 || a.PointsAgainst != 24 || a.Diff() != 7 {
		t.Fatalf("A points = %+v", a)
	}

	b := table["B"]
	if b.GamesPlayed != 1 || b.Losses != 1 || b.PointsFor != 14 || b.PointsAgainst != 21 {
		t.Fatalf("B record = %+v", b)
	}

	c := table["C"]
	if c.GamesPlayed != 1 || c.Ties != 1 || c.Wins != 0 || c.Losses != 0 {
		t.Fatalf("C record = %+v", c)
	}
}

func TestAccumulate_SkipsIncompleteGames(t *testing.T) {
	t.Parallel()

	home := "A"
	score := 21
	games := []game.Game{
		{HomeTeamID: &home, HomeScore: &score}, // no away side
		{},
	}

	if table := Accumulate(games); len(table) != 0 {
		t.Fatalf("incomplete games must not produce lines: %v", table)
	}
}

func TestAccumulate_OrderIndependent(t *testing.T) {
	t.Parallel()

	games := []game.Game{
		completedGame("A", 21, "B", 14),
		completedGame("B", 7, "C", 7),
		completedGame("C", 35, "A", 0),
		completedGame("A", 14, "C", 13),
		completedGame("B", 20, "A", 19),
	}

	want := Rank(Accumulate(games))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 25; i++ {
		shuffled := append([]game.Game(nil), games...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := Rank(Accumulate(shuffled))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("ranking depends on input order:\nwant %+v\ngot  %+v", want, got)
		}
	}
}

func TestRank_WinsThenDiff(t *testing.T) {
	t.Parallel()

	games := []game.Game{
		completedGame("A", 20, "B", 0),  // A 1W +20
		completedGame("C", 10, "D", 3),  // C 1W +7
		completedGame("E", 3, "F", 10),  // F 1W +7
	}

	ranked := Rank(Accumulate(games))

	if ranked[0].TeamID != "A" {
		t.Fatalf("rank 1 = %+v, want A", ranked[0])
	}
	// C and F tie on wins and diff; the deterministic tie-break is team id.
	if ranked[1].TeamID != "C" || ranked[2].TeamID != "F" {
		t.Fatalf("ranks 2-3 = %+v, %+v", ranked[1], ranked[2])
	}
	// Winless teams trail.
	for _, line := range ranked[3:] {
		if line.Wins != 0 {
			t.Fatalf("unexpected winner at tail: %+v", line)
		}
	}
}

func TestPerspective(t *testing.T) {
	t.Parallel()

	g := completedGame("HOME", 21, "AWAY", 14)

	result, diff := Perspective(g, "HOME")
	if result != ResultWin || diff != 7 {
		t.Fatalf("home perspective = %v %d", result, diff)
	}

	result, diff = Perspective(g, "AWAY")
	if result != ResultLoss || diff != -7 {
		t.Fatalf("away perspective = %v %d", result, diff)
	}

	tie := completedGame("HOME", 10, "AWAY", 10)
	result, diff = Perspective(tie, "AWAY")
	if result != ResultTie || diff != 0 {
		t.Fatalf("tie perspective = %v %d", result, diff)
	}
}
