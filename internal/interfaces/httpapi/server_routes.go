package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/imports/games", handler.ImportGames)
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("GET /v1/standings", handler.Standings)
	mux.HandleFunc("GET /v1/teams/{teamID}/games", handler.TeamGames)
	mux.HandleFunc("GET /v1/diagnostics/db", handler.DatabaseInfo)
}
