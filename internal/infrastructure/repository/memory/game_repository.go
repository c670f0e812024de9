package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mittlag/flaggstats/internal/domain/game"
)

// GameRepository keeps game rows in process memory. It mirrors the database
// behavior closely enough for local runs and tests, including the match_date
// season window.
type GameRepository struct {
	mu     sync.RWMutex
	games  []game.Game
	nextID int64

	// HasDateColumn mimics a games table without any recognizable date
	// column when set to false.
	HasDateColumn bool
}

func NewGameRepository() *GameRepository {
	return &GameRepository{nextID: 1, HasDateColumn: true}
}

func (r *GameRepository) Insert(_ context.Context, fields game.Fields) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	r.games = append(r.games, game.Game{
		ID:          id,
		Year:        fields.Year,
		Division:    fields.Division,
		Class:       fields.Class,
		GroupName:   fields.GroupName,
		HomeTeamID:  fields.HomeTeamID,
		HomeScore:   fields.HomeScore,
		AwayTeamID:  fields.AwayTeamID,
		AwayScore:   fields.AwayScore,
		MatchType:   fields.MatchType,
		MatchDate:   fields.MatchDate,
		Competition: fields.Competition,
		Typ:         fields.Typ,
		Location:    fields.Location,
		City:        fields.City,
	})

	return id, nil
}

func (r *GameRepository) ListAll(_ context.Context, window game.DateWindow) ([]game.Game, error) {
	return r.filter(window, func(game.Game) bool { return true }), nil
}

func (r *GameRepository) ListCompleted(_ context.Context, window game.DateWindow) ([]game.Game, error) {
	return r.filter(window, game.Game.Complete), nil
}

func (r *GameRepository) ListCompletedByTeam(_ context.Context, teamID string, window game.DateWindow) ([]game.Game, error) {
	return r.filter(window, func(g game.Game) bool {
		if !g.Complete() {
			return false
		}
		return *g.HomeTeamID == teamID || *g.AwayTeamID == teamID
	}), nil
}

func (r *GameRepository) DetectDateColumn(_ context.Context) (string, bool, error) {
	if !r.HasDateColumn {
		return "", false, nil
	}
	return "match_date", true, nil
}

func (r *GameRepository) filter(window game.DateWindow, keep func(game.Game) bool) []game.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()

	applyWindow := !window.Empty() && r.HasDateColumn

	out := make([]game.Game, 0, len(r.games))
	for _, g := range r.games {
		if !keep(g) {
			continue
		}
		if applyWindow {
			if g.MatchDate == nil {
				continue
			}
			if *g.MatchDate < window.Start || *g.MatchDate > window.End {
				continue
			}
		}
		out = append(out, g)
	}

	// Chronological whenever the date column exists, dateless rows last,
	// matching the database's NULLS LAST ascending order.
	if r.HasDateColumn {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i], out[j]
			switch {
			case a.MatchDate == nil && b.MatchDate == nil:
				return a.ID < b.ID
			case a.MatchDate == nil:
				return false
			case b.MatchDate == nil:
				return true
			case *a.MatchDate != *b.MatchDate:
				return *a.MatchDate < *b.MatchDate
			}
			return a.ID < b.ID
		})
	}

	return out
}
