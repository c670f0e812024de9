package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/mittlag/flaggstats/internal/domain/team"
	"github.com/mittlag/flaggstats/internal/platform/cache"
)

// teamNameResolver looks up display names best-effort. A failed or impossible
// lookup yields raw ids, never an error for the caller.
type teamNameResolver struct {
	teamRepo team.Repository
	cache    *cache.Store
}

func (r teamNameResolver) names(ctx context.Context, ids []string) (map[string]string, bool) {
	if r.teamRepo == nil || len(ids) == 0 {
		return map[string]string{}, true
	}

	if r.cache == nil {
		names, err := r.teamRepo.NamesByID(ctx, ids)
		if err != nil {
			return map[string]string{}, false
		}
		return names, true
	}

	load := func(ctx context.Context) (any, error) {
		return r.teamRepo.NamesByID(ctx, ids)
	}

	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	key := "team-names:" + strings.Join(sorted, ",")

	value, err := r.cache.GetOrLoad(ctx, key, load)
	if err != nil {
		return map[string]string{}, false
	}

	names, ok := value.(map[string]string)
	if !ok {
		return map[string]string{}, false
	}
	return names, true
}
