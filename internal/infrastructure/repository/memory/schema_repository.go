package memory

import (
	"context"

	"github.com/mittlag/flaggstats/internal/domain/schema"
)

// SchemaRepository reports the layout the migrations would create, so the
// diagnostics endpoint stays useful without a database.
type SchemaRepository struct{}

func NewSchemaRepository() *SchemaRepository {
	return &SchemaRepository{}
}

func (r *SchemaRepository) Tables(_ context.Context) ([]schema.Table, error) {
	return []schema.Table{
		{
			Name: "flagg_games",
			Columns: []schema.Column{
				{Name: "id", DataType: "bigint"},
				{Name: "year", DataType: "integer"},
				{Name: "division", DataType: "text"},
				{Name: "class", DataType: "text"},
				{Name: "group_name", DataType: "text"},
				{Name: "home_team_id", DataType: "text"},
				{Name: "home_score", DataType: "integer"},
				{Name: "away_team_id", DataType: "text"},
				{Name: "away_score", DataType: "integer"},
				{Name: "match_type", DataType: "text"},
				{Name: "match_date", DataType: "text"},
				{Name: "competition", DataType: "text"},
				{Name: "typ", DataType: "text"},
				{Name: "location", DataType: "text"},
				{Name: "city", DataType: "text"},
				{Name: "create_date", DataType: "timestamp with time zone"},
				{Name: "update_date", DataType: "timestamp with time zone"},
			},
		},
		{
			Name: "flagg_teams",
			Columns: []schema.Column{
				{Name: "id", DataType: "text"},
				{Name: "name", DataType: "text"},
			},
		},
	}, nil
}
