package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	qb "github.com/mittlag/flaggstats/internal/platform/querybuilder"
)

const teamsTable = "flagg_teams"

// idColumnCandidates in preference order; the first one present on the teams
// table joins against the game rows' team ids.
var idColumnCandidates = []string{"id", "team_id", "code", "slug"}

// TeamRepository resolves display names from an optional teams table. Every
// lookup degrades to an empty result instead of failing when the table or a
// usable id column is missing.
type TeamRepository struct {
	db *sqlx.DB

	mu       sync.Mutex
	idCol    string
	idColSet bool
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) NamesByID(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	idCol, ok, err := r.idColumn(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]string{}, nil
	}

	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	query, args, err := qb.Select(idCol+" AS id", "name").
		From(teamsTable).
		Where(qb.In(idCol, values)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team names query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team names: %w", err)
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Name
	}

	return out, nil
}

func (r *TeamRepository) idColumn(ctx context.Context) (string, bool, error) {
	r.mu.Lock()
	if r.idColSet {
		col := r.idCol
		r.mu.Unlock()
		return col, col != "", nil
	}
	r.mu.Unlock()

	query, args, err := qb.Select("column_name").
		From("information_schema.columns").
		Where(qb.Eq("table_name", teamsTable)).
		ToSQL()
	if err != nil {
		return "", false, fmt.Errorf("build select team columns query: %w", err)
	}

	var names []string
	if err := r.db.SelectContext(ctx, &names, query, args...); err != nil {
		return "", false, fmt.Errorf("select team columns: %w", err)
	}

	present := make(map[string]struct{}, len(names))
	hasName := false
	for _, n := range names {
		present[n] = struct{}{}
		if n == "name" {
			hasName = true
		}
	}

	col := ""
	if hasName {
		for _, candidate := range idColumnCandidates {
			if _, ok := present[candidate]; ok {
				col = candidate
				break
			}
		}
	}

	r.mu.Lock()
	r.idCol = col
	r.idColSet = true
	r.mu.Unlock()

	return col, col != "", nil
}

type teamTableModel struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}
