package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDatasetRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/base/{name}", handler.GetBaseTable)
	mux.HandleFunc("GET /v1/events", handler.ListEvents)
	mux.HandleFunc("GET /v1/events/{eventID}/partition", handler.GetEventPartition)
	mux.HandleFunc("GET /v1/events/{eventID}/player-stats/enriched", handler.GetEnrichedPlayerStats)
	mux.HandleFunc("GET /v1/events/{eventID}/{category}", handler.GetEventDetail)
}
