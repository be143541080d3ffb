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

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/faculties", handler.ListFaculties)
	mux.HandleFunc("GET /v1/sport-types", handler.ListSportTypes)
	mux.HandleFunc("POST /v1/sport-types", handler.CreateSportType)
	mux.HandleFunc("GET /v1/sport-types/{sportTypeID}/competitions", handler.ListCompetitions)
	mux.HandleFunc("GET /v1/sport-types/{sportTypeID}/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/competitions", handler.CreateCompetition)
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
}

func registerStandingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/sport-types/{sportTypeID}/results", handler.ListSportResults)
	mux.HandleFunc("GET /v1/sport-types/{sportTypeID}/standings", handler.GetSportStanding)
	mux.HandleFunc("GET /v1/standings/overall", handler.GetOverallStanding)
}

func registerPerformanceRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/performances", handler.CreatePerformance)
	mux.HandleFunc("GET /v1/performances/{performanceID}", handler.GetPerformance)
	mux.HandleFunc("PUT /v1/performances/{performanceID}", handler.UpdatePerformance)
	mux.HandleFunc("DELETE /v1/performances/{performanceID}", handler.DeletePerformance)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/recalculate", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecalculateAll)))
	mux.Handle("POST /v1/internal/recalculate/{sportTypeID}", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecalculateSport)))
	mux.Handle("POST /v1/internal/reset", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunResetAndSeed)))
}
