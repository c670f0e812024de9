package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mittlag/flaggstats/internal/usecase"
)

const uploadFieldName = "file"

func (h *Handler) ImportGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportGames")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, _, err := r.FormFile(uploadFieldName)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: multipart field %q is required", usecase.ErrInvalidInput, uploadFieldName))
		return
	}
	defer file.Close()

	opts, err := importOptionsFromForm(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.importService.ImportGames(ctx, file, opts)
	if err != nil {
		h.logger.WarnContext(ctx, "import rejected", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func importOptionsFromForm(r *http.Request) (usecase.ImportOptions, error) {
	opts := usecase.ImportOptions{
		Delimiter: usecase.DelimiterAuto,
		HasHeader: true,
	}

	if v := strings.TrimSpace(r.FormValue("delimiter")); v != "" {
		opts.Delimiter = v
	}
	if v := strings.TrimSpace(r.FormValue("has_header")); v != "" {
		hasHeader, err := strconv.ParseBool(v)
		if err != nil {
			return usecase.ImportOptions{}, fmt.Errorf("%w: has_header must be a boolean", usecase.ErrInvalidInput)
		}
		opts.HasHeader = hasHeader
	}

	return opts, nil
}
