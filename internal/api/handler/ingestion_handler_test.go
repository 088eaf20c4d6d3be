package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/ingestion-platform/internal/core/domain"
)

type stubIngestionService struct {
	triggerFn func(ctx context.Context, source string) (*domain.IngestionJob, error)
	statusFn  func(ctx context.Context, id string) (*domain.IngestionJob, error)
}

func (s *stubIngestionService) Trigger(ctx context.Context, source string) (*domain.IngestionJob, error) {
	return s.triggerFn(ctx, source)
}

func (s *stubIngestionService) Status(ctx context.Context, id string) (*domain.IngestionJob, error) {
	return s.statusFn(ctx, id)
}

func (s *stubIngestionService) Fail(ctx context.Context, id string) (*domain.IngestionJob, error) {
	return nil, domain.ErrJobNotFound
}

func TestIngestionHandler_Trigger_Success(t *testing.T) {
	h := NewIngestionHandler(&stubIngestionService{
		triggerFn: func(ctx context.Context, source string) (*domain.IngestionJob, error) {
			if source != "feed-1" {
				t.Fatalf("unexpected source: %s", source)
			}
			return &domain.IngestionJob{ID: "job-1", Source: source, Status: domain.JobInProgress}, nil
		},
	})

	_, c, rec := newTestContext(t, http.MethodPost, "/v1/ingestion", `{"source":"feed-1"}`)

	if err := h.Trigger(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}

	var job map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &job); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if job["status"] != "in_progress" {
		t.Fatalf("caller must see in_progress, got %v", job["status"])
	}
}

func TestIngestionHandler_Trigger_EmptySource(t *testing.T) {
	h := NewIngestionHandler(&stubIngestionService{
		triggerFn: func(ctx context.Context, source string) (*domain.IngestionJob, error) {
			t.Fatalf("service should not be called on validation failure")
			return nil, nil
		},
	})

	e, c, rec := newTestContext(t, http.MethodPost, "/v1/ingestion", `{"source":""}`)

	if err := h.Trigger(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestIngestionHandler_Status_Success(t *testing.T) {
	h := NewIngestionHandler(&stubIngestionService{
		statusFn: func(ctx context.Context, id string) (*domain.IngestionJob, error) {
			if id != "job-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.IngestionJob{ID: id, Status: domain.JobCompleted}, nil
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/ingestion/status/:id")
	c.SetParamNames("id")
	c.SetParamValues("job-1")

	if err := h.Status(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestIngestionHandler_Status_NotFound(t *testing.T) {
	h := NewIngestionHandler(&stubIngestionService{
		statusFn: func(ctx context.Context, id string) (*domain.IngestionJob, error) {
			return nil, domain.ErrJobNotFound
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Status(c); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound to propagate, got %v", err)
	}
}
