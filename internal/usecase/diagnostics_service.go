package usecase

import (
	"context"
	"fmt"

	"github.com/mittlag/flaggstats/internal/domain/schema"
)

type DiagnosticsService struct {
	schemaRepo schema.Repository
}

func NewDiagnosticsService(schemaRepo schema.Repository) *DiagnosticsService {
	return &DiagnosticsService{schemaRepo: schemaRepo}
}

// DatabaseInfo lists the tables and columns the service can see.
func (s *DiagnosticsService) DatabaseInfo(ctx context.Context) ([]schema.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DiagnosticsService.DatabaseInfo")
	defer span.End()

	tables, err := s.schemaRepo.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list tables: %v", ErrDependencyUnavailable, err)
	}

	return tables, nil
}
