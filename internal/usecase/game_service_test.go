package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/mittlag/flaggstats/internal/domain/game"
	"github.com/mittlag/flaggstats/internal/domain/season"
	"github.com/mittlag/flaggstats/internal/domain/standings"
	"github.com/mittlag/flaggstats/internal/domain/team"
	"github.com/mittlag/flaggstats/internal/infrastructure/repository/memory"
)

func TestGameService_ListGames(t *testing.T) {
	t.Parallel()

	gameRepo := memory.NewGameRepository()
	seedGames(t, gameRepo, [][4]any{
		{"GGI", 21, "SST", 14},
		{"MAL", 10, "GGI", 10},
	})
	// An incomplete fixture row also shows up in the full listing.
	home := "UPP"
	if _, err := gameRepo.Insert(context.Background(), game.Fields{HomeTeamID: &home}); err != nil {
		t.Fatalf("seed game: %v", err)
	}

	svc := NewGameService(gameRepo, memory.NewTeamRepository(nil), nil)

	view, err := svc.ListGames(context.Background(), season.Query{})
	if err != nil {
		t.Fatalf("list games: %v", err)
	}

	if len(view.Games) != 3 {
		t.Fatalf("games = %d, want 3", len(view.Games))
	}
	if view.Season != "All seasons" || view.FilterApplied {
		t.Fatalf("view = %+v", view)
	}
}

func TestGameService_TeamGames_Perspective(t *testing.T) {
	t.Parallel()

	gameRepo := memory.NewGameRepository()
	seedGames(t, gameRepo, [][4]any{
		{"GGI", 21, "SST", 14}, // GGI home win
		{"MAL", 28, "GGI", 7},  // GGI away loss
		{"SST", 10, "GGI", 10}, // GGI away tie
		{"MAL", 3, "SST", 6},   // not a GGI game
	})
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "GGI", Name: "Gothenburg Giants"},
		{ID: "MAL", Name: "Malmo Hurricanes"},
	})

	svc := NewGameService(gameRepo, teamRepo, nil)

	view, err := svc.TeamGames(context.Background(), "GGI", season.Query{})
	if err != nil {
		t.Fatalf("team games: %v", err)
	}

	if view.TeamName != "Gothenburg Giants" {
		t.Fatalf("team name = %q", view.TeamName)
	}
	if len(view.Games) != 3 {
		t.Fatalf("games = %d, want 3", len(view.Games))
	}

	first := view.Games[0]
	if !first.Home || first.OpponentID != "SST" || first.Result != standings.ResultWin || first.Diff != 7 {
		t.Fatalf("first game = %+v", first)
	}

	second := view.Games[1]
	if second.Home || second.OpponentID != "MAL" || second.Result != standings.ResultLoss || second.Diff != -21 {
		t.Fatalf("second game = %+v", second)
	}
	if second.OpponentName != "Malmo Hurricanes" {
		t.Fatalf("second opponent name = %q", second.OpponentName)
	}

	third := view.Games[2]
	if third.Result != standings.ResultTie || third.Diff != 0 || third.PointsFor != 10 {
		t.Fatalf("third game = %+v", third)
	}

	sum := view.Summary
	if sum.GamesPlayed != 3 || sum.Wins != 1 || sum.Losses != 1 || sum.Ties != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.PointsFor != 38 || sum.PointsAgainst != 52 || sum.Diff != -14 {
		t.Fatalf("summary points = %+v", sum)
	}
}

func TestGameService_TeamGames_RequiresTeamID(t *testing.T) {
	t.Parallel()

	svc := NewGameService(memory.NewGameRepository(), memory.NewTeamRepository(nil), nil)

	_, err := svc.TeamGames(context.Background(), "   ", season.Query{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGameService_TeamGames_EmptyHistory(t *testing.T) {
	t.Parallel()

	svc := NewGameService(memory.NewGameRepository(), memory.NewTeamRepository(nil), nil)

	view, err := svc.TeamGames(context.Background(), "GGI", season.Query{})
	if err != nil {
		t.Fatalf("team games: %v", err)
	}
	if len(view.Games) != 0 || view.Summary.GamesPlayed != 0 {
		t.Fatalf("view = %+v, want empty history", view)
	}
}
