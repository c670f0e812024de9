package httpapi

import (
	"net/http"
	"time"

	"github.com/mittlag/flaggstats/internal/domain/game"
)

type gameDTO struct {
	ID          int64   `json:"id"`
	Year        *int    `json:"year"`
	Division    *string `json:"division"`
	Class       *string `json:"class"`
	GroupName   *string `json:"groupName"`
	HomeTeamID  *string `json:"homeTeamId"`
	HomeScore   *int    `json:"homeScore"`
	AwayTeamID  *string `json:"awayTeamId"`
	AwayScore   *int    `json:"awayScore"`
	MatchType   *string `json:"matchType"`
	MatchDate   *string `json:"matchDate"`
	Competition *string `json:"competition"`
	Typ         *string `json:"typ"`
	Location    *string `json:"location"`
	City        *string `json:"city"`
	CreateDate  string  `json:"createDate,omitempty"`
	UpdateDate  string  `json:"updateDate,omitempty"`
}

type gamesResponseDTO struct {
	Season        string    `json:"season"`
	FilterApplied bool      `json:"filterApplied"`
	Notes         []string  `json:"notes,omitempty"`
	Games         []gameDTO `json:"games"`
}

func gameToDTO(g game.Game) gameDTO {
	dto := gameDTO{
		ID:          g.ID,
		Year:        g.Year,
		Division:    g.Division,
		Class:       g.Class,
		GroupName:   g.GroupName,
		HomeTeamID:  g.HomeTeamID,
		HomeScore:   g.HomeScore,
		AwayTeamID:  g.AwayTeamID,
		AwayScore:   g.AwayScore,
		MatchType:   g.MatchType,
		MatchDate:   g.MatchDate,
		Competition: g.Competition,
		Typ:         g.Typ,
		Location:    g.Location,
		City:        g.City,
	}
	if !g.CreateDate.IsZero() {
		dto.CreateDate = g.CreateDate.Format(time.RFC3339)
	}
	if !g.UpdateDate.IsZero() {
		dto.UpdateDate = g.UpdateDate.Format(time.RFC3339)
	}
	return dto
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	query, err := h.parseSeasonQuery(ctx, r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.gameService.ListGames(ctx, query)
	if err != nil {
		h.logger.ErrorContext(ctx, "list games failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	resp := gamesResponseDTO{
		Season:        view.Season,
		FilterApplied: view.FilterApplied,
		Notes:         view.Notes,
		Games:         make([]gameDTO, 0, len(view.Games)),
	}
	for _, g := range view.Games {
		resp.Games = append(resp.Games, gameToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, resp)
}

func (h *Handler) TeamGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamGames")
	defer span.End()

	query, err := h.parseSeasonQuery(ctx, r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	view, err := h.gameService.TeamGames(ctx, teamID, query)
	if err != nil {
		h.logger.WarnContext(ctx, "team games failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}
