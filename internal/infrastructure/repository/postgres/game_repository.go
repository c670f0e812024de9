package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/mittlag/flaggstats/internal/domain/game"
	qb "github.com/mittlag/flaggstats/internal/platform/querybuilder"
)

const gamesTable = "flagg_games"

// dateColumnCandidates in preference order; the first one present on the
// games table carries the season filter.
var dateColumnCandidates = []string{"game_date", "date", "gamedate", "played_at", "played_on", "match_date"}

type GameRepository struct {
	db *sqlx.DB

	mu         sync.Mutex
	dateCol    string
	dateColSet bool
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) Insert(ctx context.Context, fields game.Fields) (int64, error) {
	query, args, err := qb.InsertModel(gamesTable, newGameInsertModel(fields), "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build insert game query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if detail := pqErrorDetail(err); detail != "" {
			return 0, fmt.Errorf("insert game (%s): %w", detail, err)
		}
		return 0, fmt.Errorf("insert game: %w", err)
	}

	return id, nil
}

func (r *GameRepository) ListAll(ctx context.Context, window game.DateWindow) ([]game.Game, error) {
	return r.list(ctx, window, nil)
}

func (r *GameRepository) ListCompleted(ctx context.Context, window game.DateWindow) ([]game.Game, error) {
	return r.list(ctx, window, completedConditions())
}

func (r *GameRepository) ListCompletedByTeam(ctx context.Context, teamID string, window game.DateWindow) ([]game.Game, error) {
	conditions := append(
		completedConditions(),
		qb.Expr("(home_team_id = ? OR away_team_id = ?)", teamID, teamID),
	)
	return r.list(ctx, window, conditions)
}

func (r *GameRepository) list(ctx context.Context, window game.DateWindow, conditions []qb.Condition) ([]game.Game, error) {
	col, ok, err := r.DetectDateColumn(ctx)
	if err != nil {
		return nil, err
	}

	// Chronological whenever a date column exists; insertion order only for
	// tables without one. A window without a date column cannot apply, and
	// callers learn that through DetectDateColumn themselves.
	order := []string{"id"}
	if ok {
		order = []string{col, "id"}
		if !window.Empty() {
			conditions = append(conditions, qb.Between(col, window.Start, window.End))
		}
	}

	builder := qb.Select("*").From(gamesTable).OrderBy(order...)
	if len(conditions) > 0 {
		builder = builder.Where(conditions...)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *GameRepository) DetectDateColumn(ctx context.Context) (string, bool, error) {
	r.mu.Lock()
	if r.dateColSet {
		col := r.dateCol
		r.mu.Unlock()
		return col, col != "", nil
	}
	r.mu.Unlock()

	query, args, err := qb.Select("column_name").
		From("information_schema.columns").
		Where(qb.Eq("table_name", gamesTable)).
		ToSQL()
	if err != nil {
		return "", false, fmt.Errorf("build select game columns query: %w", err)
	}

	var names []string
	if err := r.db.SelectContext(ctx, &names, query, args...); err != nil {
		return "", false, fmt.Errorf("select game columns: %w", err)
	}

	present := make(map[string]struct{}, len(names))
	for _, n := range names {
		present[n] = struct{}{}
	}

	col := ""
	for _, candidate := range dateColumnCandidates {
		if _, ok := present[candidate]; ok {
			col = candidate
			break
		}
	}

	r.mu.Lock()
	r.dateCol = col
	r.dateColSet = true
	r.mu.Unlock()

	return col, col != "", nil
}

func completedConditions() []qb.Condition {
	return []qb.Condition{
		qb.NotNull("home_team_id"),
		qb.NotNull("home_score"),
		qb.NotNull("away_team_id"),
		qb.NotNull("away_score"),
	}
}
