package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// pqErrorDetail surfaces the driver-level cause (constraint name, code) so a
// skipped import row reads as more than "insert failed".
func pqErrorDetail(err error) string {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return ""
	}
	if pqErr.Constraint != "" {
		return pqErr.Code.Name() + " on " + pqErr.Constraint
	}
	return pqErr.Code.Name()
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
