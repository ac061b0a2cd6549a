package interfaces

import (
	"context"

	"invoicesync/internal/domain/entities"
)

// IInvoiceTaskRepository abstracts invoice-task persistence on the clinical
// FHIR store. Get methods return a zero-value task (empty ID) when nothing
// matches; not-found is not an error at this layer.

type IInvoiceTaskRepository interface {
	Create(ctx context.Context, t entities.InvoiceTask) (entities.InvoiceTask, error)
	GetByID(ctx context.Context, id string) (entities.InvoiceTask, error)
	GetByEncounterID(ctx context.Context, encounterID string) (entities.InvoiceTask, error)
	UpdateStatus(ctx context.Context, id string, status entities.TaskStatus) (entities.InvoiceTask, error)
	UpdateFields(ctx context.Context, id string, fields entities.InvoiceFields) (entities.InvoiceTask, error)
}
