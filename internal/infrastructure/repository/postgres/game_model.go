package postgres

import (
	"database/sql"
	"time"

	"github.com/mittlag/flaggstats/internal/domain/game"
)

type gameTableModel struct {
	ID          int64          `db:"id"`
	Year        sql.NullInt64  `db:"year"`
	Division    sql.NullString `db:"division"`
	Class       sql.NullString `db:"class"`
	GroupName   sql.NullString `db:"group_name"`
	HomeTeamID  sql.NullString `db:"home_team_id"`
	HomeScore   sql.NullInt64  `db:"home_score"`
	AwayTeamID  sql.NullString `db:"away_team_id"`
	AwayScore   sql.NullInt64  `db:"away_score"`
	MatchType   sql.NullString `db:"match_type"`
	MatchDate   sql.NullString `db:"match_date"`
	Competition sql.NullString `db:"competition"`
	Typ         sql.NullString `db:"typ"`
	Location    sql.NullString `db:"location"`
	City        sql.NullString `db:"city"`
	CreateDate  time.Time      `db:"create_date"`
	UpdateDate  time.Time      `db:"update_date"`
}

func (m gameTableModel) toDomain() game.Game {
	return game.Game{
		ID:          m.ID,
		Year:        nullIntPtr(m.Year),
		Division:    nullStringPtr(m.Division),
		Class:       nullStringPtr(m.Class),
		GroupName:   nullStringPtr(m.GroupName),
		HomeTeamID:  nullStringPtr(m.HomeTeamID),
		HomeScore:   nullIntPtr(m.HomeScore),
		AwayTeamID:  nullStringPtr(m.AwayTeamID),
		AwayScore:   nullIntPtr(m.AwayScore),
		MatchType:   nullStringPtr(m.MatchType),
		MatchDate:   nullStringPtr(m.MatchDate),
		Competition: nullStringPtr(m.Competition),
		Typ:         nullStringPtr(m.Typ),
		Location:    nullStringPtr(m.Location),
		City:        nullStringPtr(m.City),
		CreateDate:  m.CreateDate,
		UpdateDate:  m.UpdateDate,
	}
}

// gameInsertModel relies on the driver turning nil pointers into SQL NULLs.
// create_date and update_date come from the table defaults.
type gameInsertModel struct {
	Year        *int    `db:"year"`
	Division    *string `db:"division"`
	Class       *string `db:"class"`
	GroupName   *string `db:"group_name"`
	HomeTeamID  *string `db:"home_team_id"`
	HomeScore   *int    `db:"home_score"`
	AwayTeamID  *string `db:"away_team_id"`
	AwayScore   *int    `db:"away_score"`
	MatchType   *string `db:"match_type"`
	MatchDate   *string `db:"match_date"`
	Competition *string `db:"competition"`
	Typ         *string `db:"typ"`
	Location    *string `db:"location"`
	City        *string `db:"city"`
}

func newGameInsertModel(f game.Fields) gameInsertModel {
	return gameInsertModel{
		Year:        f.Year,
		Division:    f.Division,
		Class:       f.Class,
		GroupName:   f.GroupName,
		HomeTeamID:  f.HomeTeamID,
		HomeScore:   f.HomeScore,
		AwayTeamID:  f.AwayTeamID,
		AwayScore:   f.AwayScore,
		MatchType:   f.MatchType,
		MatchDate:   f.MatchDate,
		Competition: f.Competition,
		Typ:         f.Typ,
		Location:    f.Location,
		City:        f.City,
	}
}
