package memory

import (
	"context"
	"testing"

	"github.com/mittlag/flaggstats/internal/domain/game"
)

func insertDated(t *testing.T, repo *GameRepository, date *string) int64 {
	t.Helper()

	home, away := "GGI", "SST"
	hs, as := 7, 0
	id, err := repo.Insert(context.Background(), game.Fields{
		HomeTeamID: &home,
		HomeScore:  &hs,
		AwayTeamID: &away,
		AwayScore:  &as,
		MatchDate:  date,
	})
	if err != nil {
		t.Fatalf("insert game: %v", err)
	}
	return id
}

func datePtr(s string) *string { return &s }

func TestGameRepository_ListAll_ChronologicalWithoutWindow(t *testing.T) {
	t.Parallel()

	repo := NewGameRepository()
	insertDated(t, repo, datePtr("2023-09-01"))
	insertDated(t, repo, datePtr("2023-01-01"))
	insertDated(t, repo, datePtr("2023-05-01"))

	games, err := repo.ListAll(context.Background(), game.DateWindow{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}

	want := []string{"2023-01-01", "2023-05-01", "2023-09-01"}
	if len(games) != len(want) {
		t.Fatalf("games = %d, want %d", len(games), len(want))
	}
	for i, date := range want {
		if games[i].MatchDate == nil || *games[i].MatchDate != date {
			t.Fatalf("games[%d].MatchDate = %v, want %s", i, games[i].MatchDate, date)
		}
	}
}

func TestGameRepository_ListAll_DatelessRowsSortLast(t *testing.T) {
	t.Parallel()

	repo := NewGameRepository()
	insertDated(t, repo, nil)
	insertDated(t, repo, datePtr("2023-05-01"))

	games, err := repo.ListAll(context.Background(), game.DateWindow{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}

	if len(games) != 2 {
		t.Fatalf("games = %d, want 2", len(games))
	}
	if games[0].MatchDate == nil || games[1].MatchDate != nil {
		t.Fatalf("dateless row should sort last, got [%v %v]", games[0].MatchDate, games[1].MatchDate)
	}
}

func TestGameRepository_ListAll_InsertionOrderWithoutDateColumn(t *testing.T) {
	t.Parallel()

	repo := NewGameRepository()
	repo.HasDateColumn = false
	first := insertDated(t, repo, datePtr("2023-09-01"))
	second := insertDated(t, repo, datePtr("2023-01-01"))

	games, err := repo.ListAll(context.Background(), game.DateWindow{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}

	if len(games) != 2 || games[0].ID != first || games[1].ID != second {
		t.Fatalf("expected insertion order, got %+v", games)
	}
}

func TestGameRepository_ListCompleted_WindowFilters(t *testing.T) {
	t.Parallel()

	repo := NewGameRepository()
	insertDated(t, repo, datePtr("2022-05-01"))
	kept := insertDated(t, repo, datePtr("2023-05-01"))

	games, err := repo.ListCompleted(context.Background(), game.DateWindow{Start: "2023-01-01", End: "2023-12-31"})
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}

	if len(games) != 1 || games[0].ID != kept {
		t.Fatalf("expected only the 2023 game, got %+v", games)
	}
}
