package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/mittlag/flaggstats/internal/domain/season"
	"github.com/mittlag/flaggstats/internal/usecase"
)

type Handler struct {
	importService      *usecase.ImportService
	gameService        *usecase.GameService
	standingsService   *usecase.StandingsService
	diagnosticsService *usecase.DiagnosticsService
	logger             *slog.Logger
	validator          *validator.Validate
	maxUploadBytes     int64
}

func NewHandler(
	importService *usecase.ImportService,
	gameService *usecase.GameService,
	standingsService *usecase.StandingsService,
	diagnosticsService *usecase.DiagnosticsService,
	logger *slog.Logger,
	maxUploadBytes int64,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		importService:      importService,
		gameService:        gameService,
		standingsService:   standingsService,
		diagnosticsService: diagnosticsService,
		logger:             logger,
		validator:          validator.New(),
		maxUploadBytes:     maxUploadBytes,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

type seasonQueryRequest struct {
	Year int `validate:"omitempty,min=1,max=9999"`
	From int `validate:"omitempty,min=1,max=9999"`
	To   int `validate:"omitempty,min=1,max=9999"`
}

// parseSeasonQuery reads year/from/to query parameters. Absent values stay
// zero; non-numeric or out-of-range values reject the request.
func (h *Handler) parseSeasonQuery(ctx context.Context, values url.Values) (season.Query, error) {
	req := seasonQueryRequest{}

	var err error
	if req.Year, err = parseIntParam(values, "year"); err != nil {
		return season.Query{}, err
	}
	if req.From, err = parseIntParam(values, "from"); err != nil {
		return season.Query{}, err
	}
	if req.To, err = parseIntParam(values, "to"); err != nil {
		return season.Query{}, err
	}

	if err := h.validateRequest(ctx, req); err != nil {
		return season.Query{}, err
	}

	return season.Query{Year: req.Year, From: req.From, To: req.To}, nil
}

func parseIntParam(values url.Values, key string) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", usecase.ErrInvalidInput, key)
	}
	return n, nil
}
