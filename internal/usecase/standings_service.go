package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/mittlag/flaggstats/internal/domain/game"
	"github.com/mittlag/flaggstats/internal/domain/season"
	"github.com/mittlag/flaggstats/internal/domain/standings"
	"github.com/mittlag/flaggstats/internal/domain/team"
	"github.com/mittlag/flaggstats/internal/platform/cache"
)

const noDateColumnNote = "season filtering not applied: no recognizable date column on flagg_games"
const noTeamNamesNote = "team names unavailable, showing raw ids"

// StandingLine is one ranked row of the standings table.
type StandingLine struct {
	Rank          int    `json:"rank"`
	TeamID        string `json:"teamId"`
	TeamName      string `json:"teamName,omitempty"`
	GamesPlayed   int    `json:"gamesPlayed"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Ties          int    `json:"ties"`
	PointsFor     int    `json:"pointsFor"`
	PointsAgainst int    `json:"pointsAgainst"`
	Diff          int    `json:"diff"`
}

// StandingsView is the full standings response for one season selection.
type StandingsView struct {
	Season        string         `json:"season"`
	FilterApplied bool           `json:"filterApplied"`
	Notes         []string       `json:"notes,omitempty"`
	Lines         []StandingLine `json:"lines"`
}

type StandingsService struct {
	gameRepo game.Repository
	resolver teamNameResolver
}

func NewStandingsService(gameRepo game.Repository, teamRepo team.Repository, store *cache.Store) *StandingsService {
	return &StandingsService{
		gameRepo: gameRepo,
		resolver: teamNameResolver{teamRepo: teamRepo, cache: store},
	}
}

// Standings folds every completed game in the season window into a ranked
// table. Team names degrade to raw ids when the teams table cannot serve.
func (s *StandingsService) Standings(ctx context.Context, q season.Query) (StandingsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Standings")
	defer span.End()

	window := season.Resolve(q)

	var (
		games      []game.Game
		hasDateCol bool
	)
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		games, err = s.gameRepo.ListCompleted(ctx, repoWindow(window))
		if err != nil {
			return fmt.Errorf("list completed games: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		_, ok, err := s.gameRepo.DetectDateColumn(ctx)
		if err != nil {
			return fmt.Errorf("detect date column: %w", err)
		}
		hasDateCol = ok
		return nil
	})
	if err := p.Wait(); err != nil {
		return StandingsView{}, err
	}

	view := StandingsView{
		Season:        window.Label,
		FilterApplied: window.Active() && hasDateCol,
	}
	if window.Active() && !hasDateCol {
		view.Notes = append(view.Notes, noDateColumnNote)
	}

	ranked := standings.Rank(standings.Accumulate(games))

	ids := make([]string, 0, len(ranked))
	for _, line := range ranked {
		ids = append(ids, line.TeamID)
	}
	names, ok := s.resolver.names(ctx, ids)
	if !ok {
		view.Notes = append(view.Notes, noTeamNamesNote)
	}

	view.Lines = make([]StandingLine, 0, len(ranked))
	for i, line := range ranked {
		view.Lines = append(view.Lines, StandingLine{
			Rank:          i + 1,
			TeamID:        line.TeamID,
			TeamName:      names[line.TeamID],
			GamesPlayed:   line.GamesPlayed,
			Wins:          line.Wins,
			Losses:        line.Losses,
			Ties:          line.Ties,
			PointsFor:     line.PointsFor,
			PointsAgainst: line.PointsAgainst,
			Diff:          line.Diff(),
		})
	}

	return view, nil
}

func repoWindow(w season.Window) game.DateWindow {
	if !w.Active() {
		return game.DateWindow{}
	}
	return game.DateWindow{Start: w.Start, End: w.End}
}
