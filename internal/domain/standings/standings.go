package standings

import (
	"sort"

	"github.com/mittlag/flaggstats/internal/domain/game"
)

// Line is the cumulative record for one team over a set of completed games.
type Line struct {
	TeamID        string
	GamesPlayed   int
	Wins          int
	Losses        int
	Ties          int
	PointsFor     int
	PointsAgainst int
}

// Diff is the point differential.
func (l Line) Diff() int {
	return l.PointsFor - l.PointsAgainst
}

// Accumulate folds completed games into per-team lines. Incomplete games are
// skipped. The fold is commutative: any permutation of the input produces the
// same map.
func Accumulate(games []game.Game) map[string]*Line {
	table := make(map[string]*Line)

	ensure := func(teamID string) *Line {
		line, ok := table[teamID]
		if !ok {
			line = &Line{TeamID: teamID}
			table[teamID] = line
		}
		return line
	}

	for _, g := range games {
		if !g.Complete() {
			continue
		}

		home := ensure(*g.HomeTeamID)
		away := ensure(*g.AwayTeamID)
		hs := *g.HomeScore
		as := *g.AwayScore

		home.GamesPlayed++
		away.GamesPlayed++

		home.PointsFor += hs
		home.PointsAgainst += as
		away.PointsFor += as
		away.PointsAgainst += hs

		switch {
		case hs > as:
			home.Wins++
			away.Losses++
		case hs < as:
			away.Wins++
			home.Losses++
		default:
			home.Ties++
			away.Ties++
		}
	}

	return table
}

// Rank orders lines by wins desc, then point differential desc. The sort is
// stable so identical inputs always rank identically.
func Rank(table map[string]*Line) []Line {
	out := make([]Line, 0, len(table))
	for _, line := range table {
		out = append(out, *line)
	}

	// Pre-sort by team id so the stable tie-break is deterministic across
	// map iteration orders.
	sort.Slice(out, func(i, j int) bool {
		return out[i].TeamID < out[j].TeamID
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Diff() > out[j].Diff()
	})

	return out
}

// Result is a game outcome seen from one team's side.
type Result string

const (
	ResultWin  Result = "W"
	ResultLoss Result = "L"
	ResultTie  Result = "T"
)

// Perspective resolves the result and differential of a completed game from
// the given team's side, regardless of home or away.
func Perspective(g game.Game, teamID string) (Result, int) {
	hs := *g.HomeScore
	as := *g.AwayScore

	own, opp := hs, as
	if g.AwayTeamID != nil && *g.AwayTeamID == teamID && (g.HomeTeamID == nil || *g.HomeTeamID != teamID) {
		own, opp = as, hs
	}

	switch {
	case own > opp:
		return ResultWin, own - opp
	case own < opp:
		return ResultLoss, own - opp
	default:
		return ResultTie, 0
	}
}
