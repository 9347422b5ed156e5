package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/partition"
	"github.com/riskibarqy/espn-soccer-reader/internal/platform/id"
	"github.com/riskibarqy/espn-soccer-reader/internal/usecase"
)

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	league := strings.TrimSpace(r.URL.Query().Get("league"))
	season, err := parseSeason(r.URL.Query().Get("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, listEventsRequest{League: league, Season: season}); err != nil {
		writeError(ctx, w, err)
		return
	}

	ids, err := h.eventService.ListEvents(ctx, usecase.EventFilter{League: league, SeasonYear: season})
	if err != nil {
		h.logger.WarnContext(ctx, "list events failed", "league", league, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventListDTO{EventIDs: ids, Count: len(ids)})
}

func (h *Handler) GetEventPartition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEventPartition")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	if err := h.validateRequest(ctx, eventRequest{EventID: eventID}); err != nil {
		writeError(ctx, w, err)
		return
	}

	key, err := h.detailService.PartitionFor(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve event partition failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, partitionKeyToDTO(id.Canonical(eventID), key))
}

func (h *Handler) GetEventDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEventDetail")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	format := tableFormat(r)
	if err := h.validateRequest(ctx, eventRequest{EventID: eventID, Format: format}); err != nil {
		writeError(ctx, w, err)
		return
	}

	category, err := partition.ParseCategory(r.PathValue("category"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.detailService.ForCategory(ctx, category, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "load event detail failed", "event_id", eventID, "category", category, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeTable(ctx, w, format, table)
}

func (h *Handler) GetEnrichedPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEnrichedPlayerStats")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	format := tableFormat(r)
	if err := h.validateRequest(ctx, eventRequest{EventID: eventID, Format: format}); err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.detailService.PlayerStats(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "load player stats failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	enriched, err := h.enrichService.EnrichPlayerStats(ctx, stats)
	if err != nil {
		h.logger.WarnContext(ctx, "enrich player stats failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeTable(ctx, w, format, enriched)
}
