package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/mittlag/flaggstats/internal/domain/game"
	"github.com/mittlag/flaggstats/internal/domain/season"
	"github.com/mittlag/flaggstats/internal/domain/standings"
	"github.com/mittlag/flaggstats/internal/domain/team"
	"github.com/mittlag/flaggstats/internal/platform/cache"
)

// GamesView is the full game listing for one season selection. The HTTP
// layer maps it onto its own DTO, so there is no wire format here.
type GamesView struct {
	Season        string
	FilterApplied bool
	Notes         []string
	Games         []game.Game
}

// TeamGameEntry is one completed game seen from the queried team's side.
type TeamGameEntry struct {
	GameID        int64            `json:"gameId"`
	Date          *string          `json:"date,omitempty"`
	Home          bool             `json:"home"`
	OpponentID    string           `json:"opponentId"`
	OpponentName  string           `json:"opponentName,omitempty"`
	PointsFor     int              `json:"pointsFor"`
	PointsAgainst int              `json:"pointsAgainst"`
	Result        standings.Result `json:"result"`
	Diff          int              `json:"diff"`
}

// TeamGamesSummary is the cumulative record over the listed games.
type TeamGamesSummary struct {
	GamesPlayed   int `json:"gamesPlayed"`
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	Ties          int `json:"ties"`
	PointsFor     int `json:"pointsFor"`
	PointsAgainst int `json:"pointsAgainst"`
	Diff          int `json:"diff"`
}

// TeamGamesView is the per-team game history response.
type TeamGamesView struct {
	TeamID        string           `json:"teamId"`
	TeamName      string           `json:"teamName,omitempty"`
	Season        string           `json:"season"`
	FilterApplied bool             `json:"filterApplied"`
	Notes         []string         `json:"notes,omitempty"`
	Games         []TeamGameEntry  `json:"games"`
	Summary       TeamGamesSummary `json:"summary"`
}

type GameService struct {
	gameRepo game.Repository
	resolver teamNameResolver
}

func NewGameService(gameRepo game.Repository, teamRepo team.Repository, store *cache.Store) *GameService {
	return &GameService{
		gameRepo: gameRepo,
		resolver: teamNameResolver{teamRepo: teamRepo, cache: store},
	}
}

// ListGames returns every stored row, completed or not, inside the season
// window.
func (s *GameService) ListGames(ctx context.Context, q season.Query) (GamesView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListGames")
	defer span.End()

	window := season.Resolve(q)

	_, hasDateCol, err := s.gameRepo.DetectDateColumn(ctx)
	if err != nil {
		return GamesView{}, fmt.Errorf("detect date column: %w", err)
	}

	games, err := s.gameRepo.ListAll(ctx, repoWindow(window))
	if err != nil {
		return GamesView{}, fmt.Errorf("list games: %w", err)
	}

	view := GamesView{
		Season:        window.Label,
		FilterApplied: window.Active() && hasDateCol,
		Games:         games,
	}
	if window.Active() && !hasDateCol {
		view.Notes = append(view.Notes, noDateColumnNote)
	}

	return view, nil
}

// TeamGames returns the completed games a team played on either side, each
// scored from that team's perspective.
func (s *GameService) TeamGames(ctx context.Context, teamID string, q season.Query) (TeamGamesView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.TeamGames")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return TeamGamesView{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	window := season.Resolve(q)

	_, hasDateCol, err := s.gameRepo.DetectDateColumn(ctx)
	if err != nil {
		return TeamGamesView{}, fmt.Errorf("detect date column: %w", err)
	}

	games, err := s.gameRepo.ListCompletedByTeam(ctx, teamID, repoWindow(window))
	if err != nil {
		return TeamGamesView{}, fmt.Errorf("list games by team: %w", err)
	}

	view := TeamGamesView{
		TeamID:        teamID,
		Season:        window.Label,
		FilterApplied: window.Active() && hasDateCol,
		Games:         make([]TeamGameEntry, 0, len(games)),
	}
	if window.Active() && !hasDateCol {
		view.Notes = append(view.Notes, noDateColumnNote)
	}

	opponents := make(map[string]struct{})
	for _, g := range games {
		result, diff := standings.Perspective(g, teamID)

		home := g.HomeTeamID != nil && *g.HomeTeamID == teamID
		opponentID := *g.HomeTeamID
		pointsFor, pointsAgainst := *g.AwayScore, *g.HomeScore
		if home {
			opponentID = *g.AwayTeamID
			pointsFor, pointsAgainst = *g.HomeScore, *g.AwayScore
		}
		opponents[opponentID] = struct{}{}

		view.Games = append(view.Games, TeamGameEntry{
			GameID:        g.ID,
			Date:          g.MatchDate,
			Home:          home,
			OpponentID:    opponentID,
			PointsFor:     pointsFor,
			PointsAgainst: pointsAgainst,
			Result:        result,
			Diff:          diff,
		})

		view.Summary.GamesPlayed++
		view.Summary.PointsFor += pointsFor
		view.Summary.PointsAgainst += pointsAgainst
		switch result {
		case standings.ResultWin:
			view.Summary.Wins++
		case standings.ResultLoss:
			view.Summary.Losses++
		case standings.ResultTie:
			view.Summary.Ties++
		}
	}
	view.Summary.Diff = view.Summary.PointsFor - view.Summary.PointsAgainst

	ids := make([]string, 0, len(opponents)+1)
	ids = append(ids, teamID)
	for id := range opponents {
		ids = append(ids, id)
	}
	names, ok := s.resolver.names(ctx, ids)
	if !ok {
		view.Notes = append(view.Notes, noTeamNamesNote)
	}
	view.TeamName = names[teamID]
	for i := range view.Games {
		view.Games[i].OpponentName = names[view.Games[i].OpponentID]
	}

	return view, nil
}
