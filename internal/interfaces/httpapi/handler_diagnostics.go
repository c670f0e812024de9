package httpapi

import (
	"net/http"

	"github.com/mittlag/flaggstats/internal/domain/schema"
)

type tableDTO struct {
	Name    string      `json:"name"`
	Columns []columnDTO `json:"columns"`
}

type columnDTO struct {
	Name     string `json:"name"`
	DataType string `json:"dataType"`
}

func (h *Handler) DatabaseInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DatabaseInfo")
	defer span.End()

	tables, err := h.diagnosticsService.DatabaseInfo(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "database diagnostics failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string][]tableDTO{"tables": tablesToDTO(tables)})
}

func tablesToDTO(tables []schema.Table) []tableDTO {
	out := make([]tableDTO, 0, len(tables))
	for _, t := range tables {
		dto := tableDTO{Name: t.Name, Columns: make([]columnDTO, 0, len(t.Columns))}
		for _, c := range t.Columns {
			dto.Columns = append(dto.Columns, columnDTO{Name: c.Name, DataType: c.DataType})
		}
		out = append(out, dto)
	}
	return out
}
