package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
	"github.com/riskibarqy/espn-soccer-reader/internal/platform/logging"
	"github.com/riskibarqy/espn-soccer-reader/internal/usecase"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

type Handler struct {
	baseTableService *usecase.BaseTableService
	detailService    *usecase.DetailService
	enrichService    *usecase.EnrichService
	eventService     *usecase.EventService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	baseTableService *usecase.BaseTableService,
	detailService *usecase.DetailService,
	enrichService *usecase.EnrichService,
	eventService *usecase.EventService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		baseTableService: baseTableService,
		detailService:    detailService,
		enrichService:    enrichService,
		eventService:     eventService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type tableFormatRequest struct {
	Format string `validate:"omitempty,oneof=json csv"`
}

type eventRequest struct {
	EventID string `validate:"required,max=64"`
	Format  string `validate:"omitempty,oneof=json csv"`
}

type listEventsRequest struct {
	League string `validate:"omitempty,max=64"`
	Season int    `validate:"omitempty,min=1800,max=9999"`
}

func tableFormat(r *http.Request) string {
	return strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
}

func parseSeason(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: season must be a year", usecase.ErrInvalidInput)
	}
	return value, nil
}

func writeTable(ctx context.Context, w http.ResponseWriter, format string, t *dataset.Table) {
	if format == formatCSV {
		writeCSV(ctx, w, t)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, tableToDTO(t))
}
