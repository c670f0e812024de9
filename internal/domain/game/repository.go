package game

import "context"

// Fields is the set of flagg_games columns an import may write. Timestamps
// are always set by the repository, never from the file.
type Fields struct {
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
}

// DateWindow bounds queries to an inclusive date range on the detected date
// column. Zero value means no filtering.
type DateWindow struct {
	Start string
	End   string
}

func (w DateWindow) Empty() bool {
	return w.Start == "" || w.End == ""
}

type Repository interface {
	// Insert appends one row; each import run appends, there is no upsert.
	Insert(ctx context.Context, fields Fields) (int64, error)
	// ListAll returns every row ordered by match_date asc, id asc.
	ListAll(ctx context.Context, window DateWindow) ([]Game, error)
	// ListCompleted returns rows where both teams and both scores are set.
	ListCompleted(ctx context.Context, window DateWindow) ([]Game, error)
	// ListCompletedByTeam returns completed rows where the team plays on
	// either side, chronologically when a date column exists.
	ListCompletedByTeam(ctx context.Context, teamID string, window DateWindow) ([]Game, error)
	// DetectDateColumn reports the first recognized date-bearing column on
	// the games table, or ok=false when none exists.
	DetectDateColumn(ctx context.Context) (string, bool, error)
}
