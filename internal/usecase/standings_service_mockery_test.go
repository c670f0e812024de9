package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/mittlag/flaggstats/internal/domain/game"
	"github.com/mittlag/flaggstats/internal/domain/season"
	gamemock "github.com/mittlag/flaggstats/internal/mocks/domain/game"
	teammock "github.com/mittlag/flaggstats/internal/mocks/domain/team"
)

func TestStandingsService_Standings_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	gameRepo := gamemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	homeID, awayID := "GGI", "SST"
	homeScore, awayScore := 21, 14
	games := []game.Game{
		{ID: 1, HomeTeamID: &homeID, HomeScore: &homeScore, AwayTeamID: &awayID, AwayScore: &awayScore},
	}

	gameRepo.
		On("ListCompleted", mock.Anything, game.DateWindow{}).
		Return(games, nil).
		Once()
	gameRepo.
		On("DetectDateColumn", mock.Anything).
		Return("match_date", true, nil).
		Once()
	teamRepo.
		On("NamesByID", mock.Anything, []string{"GGI", "SST"}).
		Return(map[string]string{"GGI": "Gothenburg Giants"}, nil).
		Once()

	service := NewStandingsService(gameRepo, teamRepo, nil)

	view, err := service.Standings(context.Background(), season.Query{})
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(view.Lines) != 2 {
		t.Fatalf("unexpected line count: got=%d want=2", len(view.Lines))
	}
	if view.Lines[0].TeamID != "GGI" || view.Lines[0].TeamName != "Gothenburg Giants" {
		t.Fatalf("unexpected first line: %+v", view.Lines[0])
	}
	if view.FilterApplied {
		t.Fatalf("expected no filter for empty query")
	}
}

func TestStandingsService_Standings_RepositoryFailureUsingMockery(t *testing.T) {
	t.Parallel()

	gameRepo := gamemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	repoErr := errors.New("connection refused")
	gameRepo.
		On("ListCompleted", mock.Anything, game.DateWindow{}).
		Return(nil, repoErr).
		Once()
	gameRepo.
		On("DetectDateColumn", mock.Anything).
		Return("", false, nil).
		Maybe()

	service := NewStandingsService(gameRepo, teamRepo, nil)

	_, err := service.Standings(context.Background(), season.Query{})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
