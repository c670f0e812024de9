package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mittlag/flaggstats/internal/domain/schema"
	qb "github.com/mittlag/flaggstats/internal/platform/querybuilder"
)

// SchemaRepository reads table layouts from information_schema for the
// database diagnostics endpoint.
type SchemaRepository struct {
	db *sqlx.DB
}

func NewSchemaRepository(db *sqlx.DB) *SchemaRepository {
	return &SchemaRepository{db: db}
}

func (r *SchemaRepository) Tables(ctx context.Context) ([]schema.Table, error) {
	query, args, err := qb.Select("table_name", "column_name", "data_type").
		From("information_schema.columns").
		Where(qb.Eq("table_schema", "public")).
		OrderBy("table_name", "ordinal_position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select schema columns query: %w", err)
	}

	var rows []schemaColumnModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select schema columns: %w", err)
	}

	var out []schema.Table
	for _, row := range rows {
		if len(out) == 0 || out[len(out)-1].Name != row.TableName {
			out = append(out, schema.Table{Name: row.TableName})
		}
		last := &out[len(out)-1]
		last.Columns = append(last.Columns, schema.Column{
			Name:     row.ColumnName,
			DataType: row.DataType,
		})
	}

	return out, nil
}

type schemaColumnModel struct {
	TableName  string `db:"table_name"`
	ColumnName string `db:"column_name"`
	DataType   string `db:"data_type"`
}
