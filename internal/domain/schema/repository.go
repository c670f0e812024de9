package schema

import "context"

// Column is one column of a user-visible table.
type Column struct {
	Name     string
	DataType string
}

// Table is a table with its columns in ordinal order.
type Table struct {
	Name    string
	Columns []Column
}

// Repository exposes a read-only view of the live database schema.
type Repository interface {
	Tables(ctx context.Context) ([]Table, error)
}
