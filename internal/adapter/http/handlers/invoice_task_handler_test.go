package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"invoicesync/internal/adapter/http/handlers/mocks"
	"invoicesync/internal/domain/entities"
	"invoicesync/internal/infrastructure/fhirstore"
	"invoicesync/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInvoiceTaskHandler_UpdateInvoiceTask(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpdateInvoiceTaskUseCase(ctrl)
		h := NewInvoiceTaskHandler(uc)

		r := gin.New()
		r.PATCH("/v1/invoice-tasks/:task_id", h.UpdateInvoiceTask)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoice-tasks/task-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("status only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpdateInvoiceTaskUseCase(ctrl)
		h := NewInvoiceTaskHandler(uc)

		r := gin.New()
		r.PATCH("/v1/invoice-tasks/:task_id", h.UpdateInvoiceTask)

		uc.EXPECT().Update(gomock.Any(), "task-1", usecase.UpdateInvoiceTaskCommand{Status: entities.TaskStatusSending}).Return(
			entities.InvoiceTask{ID: "task-1", Status: entities.TaskStatusSending}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoice-tasks/task-1", bytes.NewBufferString(`{"status":"sending"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "task-1" || body["status"] != "sending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("fields are forwarded to the command", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpdateInvoiceTaskUseCase(ctrl)
		h := NewInvoiceTaskHandler(uc)

		r := gin.New()
		r.PATCH("/v1/invoice-tasks/:task_id", h.UpdateInvoiceTask)

		uc.EXPECT().Update(gomock.Any(), "task-1", gomock.AssignableToTypeOf(usecase.UpdateInvoiceTaskCommand{})).DoAndReturn(
			func(_ context.Context, _ string, cmd usecase.UpdateInvoiceTaskCommand) (entities.InvoiceTask, error) {
				if cmd.Fields == nil || cmd.Fields.Memo != "edited" || cmd.Fields.AmountCents != 300 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.InvoiceTask{ID: "task-1", Status: entities.TaskStatusReady, Fields: *cmd.Fields}, nil
			},
		)

		payload := `{"fields":{"memo":"edited","amount_cents":300,"claim_id":"claim-1"}}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/invoice-tasks/task-1", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpdateInvoiceTaskUseCase(ctrl)
		h := NewInvoiceTaskHandler(uc)

		r := gin.New()
		r.PATCH("/v1/invoice-tasks/:task_id", h.UpdateInvoiceTask)

		uc.EXPECT().Update(gomock.Any(), "task-404", gomock.Any()).Return(entities.InvoiceTask{}, usecase.ErrInvoiceTaskNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoice-tasks/task-404", bytes.NewBufferString(`{"status":"sending"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceTaskHandler_GetInvoiceTask(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpdateInvoiceTaskUseCase(ctrl)
		h := NewInvoiceTaskHandler(uc)

		r := gin.New()
		r.GET("/v1/invoice-tasks/:task_id", h.GetInvoiceTask)

		uc.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.InvoiceTask{
			ID:     "task-1",
			Status: entities.TaskStatusReady,
			Fields: entities.InvoiceFields{AmountCents: 1250, ClaimID: "claim-1"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoice-tasks/task-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			ID     string `json:"id"`
			Fields struct {
				AmountCents int64 `json:"amount_cents"`
			} `json:"fields"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.ID != "task-1" || body.Fields.AmountCents != 1250 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpdateInvoiceTaskUseCase(ctrl)
		h := NewInvoiceTaskHandler(uc)

		r := gin.New()
		r.GET("/v1/invoice-tasks/:task_id", h.GetInvoiceTask)

		uc.EXPECT().GetByID(gomock.Any(), "task-404").Return(entities.InvoiceTask{}, usecase.ErrInvoiceTaskNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoice-tasks/task-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapInvoiceTaskError(t *testing.T) {
	if got := mapInvoiceTaskError(usecase.ErrInvalidTaskID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInvoiceTaskError(usecase.ErrEmptyUpdate); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInvoiceTaskError(entities.ErrUnknownTaskStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInvoiceTaskError(usecase.ErrInvoiceTaskNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInvoiceTaskError(usecase.ErrMissingClaimID); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapInvoiceTaskError(fhirstore.ErrVersionConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapInvoiceTaskError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
