package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetBaseTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBaseTable")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	format := tableFormat(r)
	if err := h.validateRequest(ctx, tableFormatRequest{Format: format}); err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.baseTableService.Load(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "load base table failed", "table", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeTable(ctx, w, format, table)
}
