package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/basetable"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/partition"
	"github.com/riskibarqy/espn-soccer-reader/internal/platform/id"
	"github.com/riskibarqy/espn-soccer-reader/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError_DomainKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{name: "unknown table", err: fmt.Errorf("load: %w", basetable.ErrUnknownTableKind), status: http.StatusBadRequest, reason: "unknownTableKind"},
		{name: "unknown category", err: partition.ErrUnknownCategory, status: http.StatusBadRequest, reason: "unknownCategory"},
		{name: "bad id", err: fmt.Errorf("%w: %w", usecase.ErrInvalidInput, id.ErrNormalization), status: http.StatusBadRequest, reason: "invalidEventId"},
		{name: "record not found", err: fmt.Errorf("%w: event=1", usecase.ErrRecordNotFound), status: http.StatusNotFound, reason: "recordNotFound"},
		{name: "source file missing", err: basetable.ErrSourceFileMissing, status: http.StatusNotFound, reason: "sourceFileMissing"},
		{name: "category directory missing", err: partition.ErrCategoryDirectoryMissing, status: http.StatusNotFound, reason: "categoryDirectoryMissing"},
		{name: "season undetermined", err: usecase.ErrSeasonUndetermined, status: http.StatusUnprocessableEntity, reason: "seasonUndetermined"},
		{name: "corrupt partition", err: &partition.FileError{Path: "plays_data/x.csv", Err: errors.New("bad")}, status: http.StatusInternalServerError, reason: "partitionFileCorrupt"},
		{name: "deadline", err: fmt.Errorf("load: %w", context.DeadlineExceeded), status: http.StatusGatewayTimeout, reason: "deadlineExceeded"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, reason: "internalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(context.Background(), tt.err)
			if got.HTTPStatus != tt.status || got.Reason != tt.reason {
				t.Fatalf("mapError(%v)=%+v want status=%d reason=%s", tt.err, got, tt.status, tt.reason)
			}
		})
	}
}
