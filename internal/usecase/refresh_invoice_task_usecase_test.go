package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"invoicesync/internal/domain/entities"
	"invoicesync/internal/infrastructure/billing"
	mock_interfaces "invoicesync/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRefreshInvoiceTaskUseCase_Refresh(t *testing.T) {
	stored := entities.InvoiceTask{
		ID:     "task-1",
		Status: entities.TaskStatusReady,
		Fields: entities.InvoiceFields{
			ClaimID:        "claim-1",
			AmountCents:    100,
			DueDate:        "2026-10-01",
			SMSTextMessage: "You have a new invoice of $1.00, due 2026-10-01.",
		},
	}
	refreshedFields := stored.Fields
	refreshedFields.AmountCents = 250
	refreshedFields.SMSTextMessage = "You have a new invoice of $2.50, due 2026-10-01."

	t.Run("invalid task id", func(t *testing.T) {
		uc := NewRefreshInvoiceTaskUseCase(nil, nil)
		_, err := uc.Refresh(context.Background(), "  ", entities.TaskStatusUpdating)
		if !errors.Is(err, ErrInvalidTaskID) {
			t.Fatalf("expected ErrInvalidTaskID, got %v", err)
		}
	})

	t.Run("unknown requested status", func(t *testing.T) {
		uc := NewRefreshInvoiceTaskUseCase(nil, nil)
		_, err := uc.Refresh(context.Background(), "task-1", entities.TaskStatus("bogus"))
		if !errors.Is(err, entities.ErrUnknownTaskStatus) {
			t.Fatalf("expected ErrUnknownTaskStatus, got %v", err)
		}
	})

	t.Run("task not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tasks := mock_interfaces.NewMockIInvoiceTaskRepository(ctrl)
		uc := NewRefreshInvoiceTaskUseCase(nil, tasks)

		tasks.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.InvoiceTask{}, nil)

		_, err := uc.Refresh(context.Background(), "task-1", entities.TaskStatusUpdating)
		if !errors.Is(err, ErrInvoiceTaskNotFound) {
			t.Fatalf("expected ErrInvoiceTaskNotFound, got %v", err)
		}
	})

	t.Run("task without claim id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tasks := mock_interfaces.NewMockIInvoiceTaskRepository(ctrl)
		uc := NewRefreshInvoiceTaskUseCase(nil, tasks)

		tasks.EXPECT().GetByID(gomock.Any(), "task-1").Return(entities.InvoiceTask{ID: "task-1"}, nil)

		_, err := uc.Refresh(context.Background(), "task-1", entities.TaskStatusUpdating)
		if !errors.Is(err, ErrMissingClaimID) {
			t.Fatalf("expected ErrMissingClaimID, got %v", err)
		}
	})

	t.Run("unavailable itemization moves the task to error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIBillingGateway(ctrl)
		tasks := mock_interfaces.NewMockIInvoiceTaskRepository(ctrl)
		uc := NewRefreshInvoiceTaskUseCase(gateway, tasks)

		tasks.EXPECT().GetByID(gomock.Any(), "task-1").Return(stored, nil)
		gateway.EXPECT().GetItemization(gomock.Any(), "claim-1").Return(entities.Itemization{}, fmt.Errorf("%w: status 404", billing.ErrBillingNotOK))
		errored := stored
		errored.Status = entities.TaskStatusError
		tasks.EXPECT().UpdateStatus(gomock.Any(), "task-1", entities.TaskStatusError).Return(errored, nil)

		res, err := uc.Refresh(context.Background(), "task-1", entities.TaskStatusUpdating)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.TaskStatusError {
			t.Fatalf("expected error status, got %s", res.Status)
		}
	})

	t.Run("transport failure propagates without touching the task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIBillingGateway(ctrl)
		tasks := mock_interfaces.NewMockIInvoiceTaskRepository(ctrl)
		uc := NewRefreshInvoiceTaskUseCase(gateway, tasks)

		transportErr := errors.New("dial tcp: connection refused")
		tasks.EXPECT().GetByID(gomock.Any(), "task-1").Return(stored, nil)
		gateway.EXPECT().GetItemization(gomock.Any(), "claim-1").Return(entities.Itemization{}, transportErr)

		_, err := uc.Refresh(context.Background(), "task-1", entities.TaskStatusUpdating)
		if !errors.Is(err, transportErr) {
			t.Fatalf("expected transport error, got %v", err)
		}
	})

	t.Run("refreshes amount and applies requested status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIBillingGateway(ctrl)
		tasks := mock_interfaces.NewMockIInvoiceTaskRepository(ctrl)
		uc := NewRefreshInvoiceTaskUseCase(gateway, tasks)

		tasks.EXPECT().GetByID(gomock.Any(), "task-1").Return(stored, nil)
		gateway.EXPECT().GetItemization(gomock.Any(), "claim-1").Return(entities.Itemization{ClaimID: "claim-1", PatientBalanceCents: 250}, nil)

		refreshed := stored
		refreshed.Fields = refreshedFields
		tasks.EXPECT().UpdateFields(gomock.Any(), "task-1", refreshed.Fields).Return(refreshed, nil)

		updated := refreshed
		updated.Status = entities.TaskStatusUpdating
		tasks.EXPECT().UpdateStatus(gomock.Any(), "task-1", entities.TaskStatusUpdating).Return(updated, nil)

		res, err := uc.Refresh(context.Background(), "task-1", entities.TaskStatusUpdating)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.TaskStatusUpdating || res.Fields.AmountCents != 250 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("sms text is recomposed from the refreshed balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIBillingGateway(ctrl)
		tasks := mock_interfaces.NewMockIInvoiceTaskRepository(ctrl)
		uc := NewRefreshInvoiceTaskUseCase(gateway, tasks)

		tasks.EXPECT().GetByID(gomock.Any(), "task-1").Return(stored, nil)
		gateway.EXPECT().GetItemization(gomock.Any(), "claim-1").Return(entities.Itemization{ClaimID: "claim-1", PatientBalanceCents: 250}, nil)

		var written entities.InvoiceFields
		tasks.EXPECT().UpdateFields(gomock.Any(), "task-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fields entities.InvoiceFields) (entities.InvoiceTask, error) {
				written = fields
				refreshed := stored
				refreshed.Fields = fields
				return refreshed, nil
			})

		_, err := uc.Refresh(context.Background(), "task-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if written.SMSTextMessage != "You have a new invoice of $2.50, due 2026-10-01." {
			t.Fatalf("sms still quotes the old amount: %q", written.SMSTextMessage)
		}
		if written.AmountCents != 250 {
			t.Fatalf("expected 250 cents, got %d", written.AmountCents)
		}
	})

	t.Run("empty requested status leaves status untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIBillingGateway(ctrl)
		tasks := mock_interfaces.NewMockIInvoiceTaskRepository(ctrl)
		uc := NewRefreshInvoiceTaskUseCase(gateway, tasks)

		tasks.EXPECT().GetByID(gomock.Any(), "task-1").Return(stored, nil)
		gateway.EXPECT().GetItemization(gomock.Any(), "claim-1").Return(entities.Itemization{ClaimID: "claim-1", PatientBalanceCents: 250}, nil)
		refreshed := stored
		refreshed.Fields = refreshedFields
		tasks.EXPECT().UpdateFields(gomock.Any(), "task-1", refreshed.Fields).Return(refreshed, nil)

		res, err := uc.Refresh(context.Background(), "task-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.TaskStatusReady {
			t.Fatalf("expected ready, got %s", res.Status)
		}
	})

	t.Run("updating over updating forces a ready write first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIBillingGateway(ctrl)
		tasks := mock_interfaces.NewMockIInvoiceTaskRepository(ctrl)
		uc := NewRefreshInvoiceTaskUseCase(gateway, tasks)

		alreadyUpdating := stored
		alreadyUpdating.Status = entities.TaskStatusUpdating

		tasks.EXPECT().GetByID(gomock.Any(), "task-1").Return(alreadyUpdating, nil)
		gateway.EXPECT().GetItemization(gomock.Any(), "claim-1").Return(entities.Itemization{ClaimID: "claim-1", PatientBalanceCents: 250}, nil)
		refreshed := alreadyUpdating
		refreshed.Fields = refreshedFields
		tasks.EXPECT().UpdateFields(gomock.Any(), "task-1", refreshed.Fields).Return(refreshed, nil)

		gomock.InOrder(
			tasks.EXPECT().UpdateStatus(gomock.Any(), "task-1", entities.TaskStatusReady).Return(entities.InvoiceTask{ID: "task-1", Status: entities.TaskStatusReady}, nil),
			tasks.EXPECT().UpdateStatus(gomock.Any(), "task-1", entities.TaskStatusUpdating).Return(entities.InvoiceTask{ID: "task-1", Status: entities.TaskStatusUpdating}, nil),
		)

		res, err := uc.Refresh(context.Background(), "task-1", entities.TaskStatusUpdating)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.TaskStatusUpdating {
			t.Fatalf("expected updating, got %s", res.Status)
		}
	})
}
