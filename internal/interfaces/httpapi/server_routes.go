package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/register", handler.Register)
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedCatalogRoutes(mux, handler, verifier)
	registerAuthorizedPredictionRoutes(mux, handler, verifier)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/score", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunScoreJob)))
	mux.Handle("POST /v1/internal/jobs/sync-favourites", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncFavouritesJob)))
}

func registerAuthorizedCatalogRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.ListLeagues)))
	mux.Handle("GET /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListTeams)))
	mux.Handle("POST /v1/teams/search", RequireAuth(verifier, http.HandlerFunc(handler.SearchOrAddTeam)))
	mux.Handle("GET /v1/teams/{teamID}/matches", RequireAuth(verifier, http.HandlerFunc(handler.ListTeamMatches)))
	mux.Handle("GET /v1/teams/{teamID}/stats", RequireAuth(verifier, http.HandlerFunc(handler.GetTeamStats)))
	mux.Handle("POST /v1/teams/{teamID}/favourite", RequireAuth(verifier, http.HandlerFunc(handler.AddFavourite)))
	mux.Handle("DELETE /v1/teams/{teamID}/favourite", RequireAuth(verifier, http.HandlerFunc(handler.RemoveFavourite)))
	mux.Handle("GET /v1/matches", RequireAuth(verifier, http.HandlerFunc(handler.ListMatches)))
	mux.Handle("GET /v1/matches/relevant", RequireAuth(verifier, http.HandlerFunc(handler.ListRelevantMatches)))
	mux.Handle("GET /v1/matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.GetMatch)))
	mux.Handle("POST /v1/matches/import", RequireAuth(verifier, http.HandlerFunc(handler.ImportMatches)))
}

func registerAuthorizedPredictionRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/predictions", RequireAuth(verifier, http.HandlerFunc(handler.ListPredictions)))
	mux.Handle("POST /v1/predictions", RequireAuth(verifier, http.HandlerFunc(handler.AddPrediction)))
	mux.Handle("GET /v1/leaderboard", RequireAuth(verifier, http.HandlerFunc(handler.Leaderboard)))
	mux.Handle("GET /v1/users/{userID}/stats", RequireAuth(verifier, http.HandlerFunc(handler.GetUserStats)))
}
