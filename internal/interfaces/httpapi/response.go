package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/basetable"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/partition"
	"github.com/riskibarqy/espn-soccer-reader/internal/infrastructure/csvfile"
	"github.com/riskibarqy/espn-soccer-reader/internal/platform/id"
	"github.com/riskibarqy/espn-soccer-reader/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "espn-soccer-reader"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

// writeCSV renders t fully before sending headers so an encoding failure can
// still be reported as a JSON error.
func writeCSV(ctx context.Context, w http.ResponseWriter, t *dataset.Table) {
	ctx, span := startSpan(ctx, "httpapi.writeCSV")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := csvfile.Encode(buf, t); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: err.Error(),
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: err.Error(),
				},
			},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	const msg = "internal server error"

	writeJSON(ctx, w, http.StatusInternalServerError, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    http.StatusInternalServerError,
			Message: msg,
			Status:  "INTERNAL",
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  "internalError",
					Message: msg,
				},
			},
		},
	})
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, basetable.ErrUnknownTableKind):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "unknownTableKind",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, partition.ErrUnknownCategory):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "unknownCategory",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, id.ErrNormalization):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidEventId",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrRecordNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "recordNotFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, basetable.ErrSourceFileMissing):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "sourceFileMissing",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, partition.ErrCategoryDirectoryMissing):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "categoryDirectoryMissing",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "notFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrSeasonUndetermined):
		return mappedError{
			HTTPStatus: http.StatusUnprocessableEntity,
			Reason:     "seasonUndetermined",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, partition.ErrPartitionFileCorrupt):
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "partitionFileCorrupt",
			Status:     "DATA_LOSS",
		}
	case errors.Is(err, context.DeadlineExceeded):
		return mappedError{
			HTTPStatus: http.StatusGatewayTimeout,
			Reason:     "deadlineExceeded",
			Status:     "DEADLINE_EXCEEDED",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}
