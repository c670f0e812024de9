package game

import "time"

// Game is one imported match row from flagg_games. Optional columns stay nil
// when the source file did not carry them; team ids are opaque strings so
// codes like "GGI" survive untouched.
type Game struct {
	ID          int64
	Year        *int
	Division    *string
	Class       *string
	GroupName   *string
	HomeTeamID  *string
	HomeScore   *int
	AwayTeamID  *string
	AwayScore   *int
	MatchType   *string
	MatchDate   *string
	Competition *string
	Typ         *string
	Location    *string
	City        *string
	CreateDate  time.Time
	UpdateDate  time.Time
}

// Complete reports whether the game counts toward standings: both teams and
// both scores are present.
func (g Game) Complete() bool {
	return g.HomeTeamID != nil && g.AwayTeamID != nil && g.HomeScore != nil && g.AwayScore != nil
}
