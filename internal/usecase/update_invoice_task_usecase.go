package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"invoicesync/internal/domain/entities"
	"invoicesync/internal/usecase/interfaces"
)

var (
	ErrInvalidAmountValue = errors.New("invalid amount_cents value")
	ErrEmptyUpdate        = errors.New("nothing to update")
)

// UpdateInvoiceTaskCommand carries the operator-facing mutation: either a
// status change, a field rewrite, or both. A zero-value command is invalid.
type UpdateInvoiceTaskCommand struct {
	Status entities.TaskStatus
	Fields *entities.InvoiceFields
}

type IUpdateInvoiceTaskUseCase interface {
	Update(ctx context.Context, taskID string, cmd UpdateInvoiceTaskCommand) (entities.InvoiceTask, error)
	GetByID(ctx context.Context, taskID string) (entities.InvoiceTask, error)
}

type UpdateInvoiceTaskUseCase struct {
	tasks interfaces.IInvoiceTaskRepository
}

var _ IUpdateInvoiceTaskUseCase = (*UpdateInvoiceTaskUseCase)(nil)

func NewUpdateInvoiceTaskUseCase(tasks interfaces.IInvoiceTaskRepository) *UpdateInvoiceTaskUseCase {
	return &UpdateInvoiceTaskUseCase{tasks: tasks}
}

func (u *UpdateInvoiceTaskUseCase) Update(ctx context.Context, taskID string, cmd UpdateInvoiceTaskCommand) (entities.InvoiceTask, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return entities.InvoiceTask{}, ErrInvalidTaskID
	}
	if cmd.Status == "" && cmd.Fields == nil {
		return entities.InvoiceTask{}, ErrEmptyUpdate
	}
	if cmd.Status != "" {
		if _, err := cmd.Status.FHIRStatus(); err != nil {
			return entities.InvoiceTask{}, err
		}
	}
	if cmd.Fields != nil && cmd.Fields.AmountCents < 0 {
		return entities.InvoiceTask{}, ErrInvalidAmountValue
	}
	log.Printf("[invoicing][usecase] update start task_id=%s status=%s fields=%t", taskID, cmd.Status, cmd.Fields != nil)

	task, err := u.tasks.GetByID(ctx, taskID)
	if err != nil {
		return entities.InvoiceTask{}, err
	}
	if task.ID == "" {
		return entities.InvoiceTask{}, ErrInvoiceTaskNotFound
	}

	if cmd.Fields != nil {
		task, err = u.tasks.UpdateFields(ctx, taskID, *cmd.Fields)
		if err != nil {
			return entities.InvoiceTask{}, err
		}
	}

	task, err = applyStatusTransition(ctx, u.tasks, task, cmd.Status)
	if err != nil {
		return entities.InvoiceTask{}, err
	}
	log.Printf("[invoicing][usecase] update success task_id=%s status=%s", task.ID, task.Status)
	return task, nil
}

func (u *UpdateInvoiceTaskUseCase) GetByID(ctx context.Context, taskID string) (entities.InvoiceTask, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return entities.InvoiceTask{}, ErrInvalidTaskID
	}

	task, err := u.tasks.GetByID(ctx, taskID)
	if err != nil {
		return entities.InvoiceTask{}, err
	}
	if task.ID == "" {
		return entities.InvoiceTask{}, ErrInvoiceTaskNotFound
	}
	return task, nil
}
