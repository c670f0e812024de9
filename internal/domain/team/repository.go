package team

import "context"

// Repository resolves display names for opaque team ids. The backing table is
// optional: implementations degrade to an empty map when the table or its id
// column is missing, they never fail the caller for that.
type Repository interface {
	NamesByID(ctx context.Context, ids []string) (map[string]string, error)
}
