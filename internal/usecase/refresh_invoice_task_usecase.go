package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"invoicesync/internal/domain/entities"
	"invoicesync/internal/infrastructure/billing"
	"invoicesync/internal/usecase/interfaces"
)

var (
	ErrInvalidTaskID       = errors.New("invalid task id")
	ErrInvoiceTaskNotFound = errors.New("invoice task not found")
	ErrMissingClaimID      = errors.New("invoice task has no claim id")
)

// IRefreshInvoiceTaskUseCase reacts to task status-change events: it
// re-itemizes the claim, rewrites the stored field set, and applies the
// requested status through the flicker guard. When the billing system no
// longer knows the claim, the task is moved to error status so an operator
// sees it; that path is not a failure of the invocation.

type IRefreshInvoiceTaskUseCase interface {
	Refresh(ctx context.Context, taskID string, requestedStatus entities.TaskStatus) (entities.InvoiceTask, error)
}

type RefreshInvoiceTaskUseCase struct {
	billing interfaces.IBillingGateway
	tasks   interfaces.IInvoiceTaskRepository
}

var _ IRefreshInvoiceTaskUseCase = (*RefreshInvoiceTaskUseCase)(nil)

func NewRefreshInvoiceTaskUseCase(billing interfaces.IBillingGateway, tasks interfaces.IInvoiceTaskRepository) *RefreshInvoiceTaskUseCase {
	return &RefreshInvoiceTaskUseCase{billing: billing, tasks: tasks}
}

func (u *RefreshInvoiceTaskUseCase) Refresh(ctx context.Context, taskID string, requestedStatus entities.TaskStatus) (entities.InvoiceTask, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return entities.InvoiceTask{}, ErrInvalidTaskID
	}
	if requestedStatus != "" {
		if _, err := requestedStatus.FHIRStatus(); err != nil {
			return entities.InvoiceTask{}, err
		}
	}
	log.Printf("[invoicing][usecase] refresh start task_id=%s requested_status=%s", taskID, requestedStatus)

	task, err := u.tasks.GetByID(ctx, taskID)
	if err != nil {
		return entities.InvoiceTask{}, err
	}
	if task.ID == "" {
		return entities.InvoiceTask{}, ErrInvoiceTaskNotFound
	}
	if task.Fields.ClaimID == "" {
		return entities.InvoiceTask{}, ErrMissingClaimID
	}

	itemization, err := u.billing.GetItemization(ctx, task.Fields.ClaimID)
	if err != nil {
		if !errors.Is(err, billing.ErrBillingNotOK) {
			// Transport or context failure, not a billing answer. Leave the
			// task alone and let the caller retry.
			return entities.InvoiceTask{}, err
		}
		// No inventory record for this task: surface it to an operator via
		// error status rather than failing the invocation.
		log.Printf("[invoicing][usecase] itemization unavailable task_id=%s claim_id=%s err=%v", taskID, task.Fields.ClaimID, err)
		return u.tasks.UpdateStatus(ctx, taskID, entities.TaskStatusError)
	}

	fields := task.Fields
	fields.AmountCents = itemization.PatientBalanceCents
	if fields.DueDate != "" {
		// The message quotes the amount; rewrite it so the patient never
		// receives a stale figure.
		fields.SMSTextMessage = invoiceSMSText(fields.AmountCents, fields.DueDate)
	}
	task, err = u.tasks.UpdateFields(ctx, taskID, fields)
	if err != nil {
		return entities.InvoiceTask{}, err
	}
	log.Printf("[invoicing][usecase] fields refreshed task_id=%s amount_cents=%d", taskID, fields.AmountCents)

	return applyStatusTransition(ctx, u.tasks, task, requestedStatus)
}

// applyStatusTransition writes the requested status. The downstream
// notification mechanism only fires on status *changes*, so requesting
// "updating" while the persisted status is already "updating" would be
// invisible; in that one case the task is forced through "ready" first,
// producing two writes instead of one. Every other request is a single
// write.
func applyStatusTransition(ctx context.Context, tasks interfaces.IInvoiceTaskRepository, task entities.InvoiceTask, requested entities.TaskStatus) (entities.InvoiceTask, error) {
	if requested == "" {
		return task, nil
	}
	if requested == entities.TaskStatusUpdating && task.Status == entities.TaskStatusUpdating {
		log.Printf("[invoicing][usecase] status flicker guard task_id=%s", task.ID)
		if _, err := tasks.UpdateStatus(ctx, task.ID, entities.TaskStatusReady); err != nil {
			return entities.InvoiceTask{}, err
		}
		return tasks.UpdateStatus(ctx, task.ID, entities.TaskStatusUpdating)
	}
	return tasks.UpdateStatus(ctx, task.ID, requested)
}
