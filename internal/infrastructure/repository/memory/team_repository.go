package memory

import (
	"context"
	"sync"

	"github.com/mittlag/flaggstats/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	names map[string]string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	names := make(map[string]string, len(teams))
	for _, item := range teams {
		names[item.ID] = item.Name
	}

	return &TeamRepository{names: names}
}

func (r *TeamRepository) NamesByID(_ context.Context, ids []string) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(ids))
	for _, id := range ids {
		if name, ok := r.names[id]; ok {
			out[id] = name
		}
	}

	return out, nil
}
