package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "home_team_id", "home_score").
		From("flagg_games").
		Where(Eq("division", "east"), NotNull("home_score")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, home_team_id, home_score FROM flagg_games WHERE division = $1 AND home_score IS NOT NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "east" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderBetween(t *testing.T) {
	query, args, err := Select("id").
		From("flagg_games").
		Where(Between("match_date", "2023-01-01", "2023-12-31")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM flagg_games WHERE match_date BETWEEN $1 AND $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "2023-01-01" || args[1] != "2023-12-31" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderEmptyIn(t *testing.T) {
	query, args, err := Select("id", "name").
		From("flagg_teams").
		Where(In("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM flagg_teams WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("flagg_games").
		Columns("home_team_id", "away_team_id").
		Values("GGI", "NYJ").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO flagg_games (home_team_id, away_team_id) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "GGI" || args[1] != "NYJ" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		HomeTeamID string `db:"home_team_id"`
		HomeScore  int    `db:"home_score"`
		Skipped    string `db:"-"`
	}

	query, args, err := InsertModel("flagg_games", row{HomeTeamID: "GGI", HomeScore: 21, Skipped: "x"}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO flagg_games (home_team_id, home_score) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "GGI" || args[1] != 21 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
