package entities

import (
	"errors"

	"invoicesync/internal/domain/fhir"
)

// TaskStatus is the display-level invoice task status exposed to operators
// and the front-end.
//
// Lifecycle: ready → updating → sending → sent, or error.
// Every display status maps 1:1 onto a FHIR Task.status code; the mapping
// must stay total and invertible because the refresh/subscription handlers
// round-trip through the clinical store.

type TaskStatus string

const (
	TaskStatusReady    TaskStatus = "ready"
	TaskStatusUpdating TaskStatus = "updating"
	TaskStatusSending  TaskStatus = "sending"
	TaskStatusSent     TaskStatus = "sent"
	TaskStatusError    TaskStatus = "error"
)

var ErrUnknownTaskStatus = errors.New("unknown invoice task status")

// Coding systems shared between the reconciliation pipeline, the refresh
// handler and the stored tasks.
const (
	// InvoiceTaskTypeSystem/InvoiceTaskTypeCode identify a Task as an
	// invoice task; the (encounter, task type) pair is unique.
	InvoiceTaskTypeSystem = "https://fhir.invoicesync.dev/CodeSystem/task-type"
	InvoiceTaskTypeCode   = "send-invoice"

	// BillingEncounterIdentifierSystem is the secondary identifier the
	// billing system stamps on clinical encounters.
	BillingEncounterIdentifierSystem = "https://fhir.invoicesync.dev/identifiers/billing-encounter"

	// UserTimezoneTagSystem carries the patient's timezone as a meta tag
	// so SMS send times can be localized downstream.
	UserTimezoneTagSystem = "https://fhir.invoicesync.dev/CodeSystem/user-timezone"
)

var displayToFHIRStatus = map[TaskStatus]string{
	TaskStatusReady:    fhir.TaskStatusReady,
	TaskStatusUpdating: fhir.TaskStatusInProgress,
	TaskStatusSending:  fhir.TaskStatusRequested,
	TaskStatusSent:     fhir.TaskStatusCompleted,
	TaskStatusError:    fhir.TaskStatusFailed,
}

var fhirToDisplayStatus = map[string]TaskStatus{
	fhir.TaskStatusReady:      TaskStatusReady,
	fhir.TaskStatusInProgress: TaskStatusUpdating,
	fhir.TaskStatusRequested:  TaskStatusSending,
	fhir.TaskStatusCompleted:  TaskStatusSent,
	fhir.TaskStatusFailed:     TaskStatusError,
}

func (s TaskStatus) FHIRStatus() (string, error) {
	code, ok := displayToFHIRStatus[s]
	if !ok {
		return "", ErrUnknownTaskStatus
	}
	return code, nil
}

func TaskStatusFromFHIR(code string) (TaskStatus, error) {
	s, ok := fhirToDisplayStatus[code]
	if !ok {
		return "", ErrUnknownTaskStatus
	}
	return s, nil
}

// InvoiceTask is the only entity whose lifecycle this service owns. It is
// persisted as a FHIR Task on the clinical store; the typed field set lives
// in Task.input (see InvoiceFields).
//
// Invariants:
//   - Fields.AmountCents is a non-negative integer; tasks with a zero or
//     negative computed balance are never created.
//   - At most one invoice task exists per (encounter, task type) pair,
//     enforced by a pre-creation existence check plus the creation ledger.

type InvoiceTask struct {
	ID           string
	Status       TaskStatus
	Fields       InvoiceFields
	EncounterID  string
	PatientID    string
	UserTimezone string

	// Version carries meta.versionId so updates can use optimistic
	// concurrency (If-Match) against the store.
	Version string
}
