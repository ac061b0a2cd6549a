package request

import (
	"errors"
	"strings"
	"time"

	"invoicesync/internal/domain/entities"
)

var ErrInvalidSince = errors.New("invalid since timestamp")

// InvoiceFieldsRequest mirrors the typed invoice field set. AmountCents is
// a pointer so "absent" and "zero" stay distinguishable at the API edge.
type InvoiceFieldsRequest struct {
	DueDate          string `json:"due_date"`
	Memo             string `json:"memo"`
	SMSTextMessage   string `json:"sms_text_message"`
	AmountCents      *int64 `json:"amount_cents"`
	ClaimID          string `json:"claim_id"`
	FinalizationDate string `json:"finalization_date"`
}

func (r InvoiceFieldsRequest) ToEntity() entities.InvoiceFields {
	f := entities.InvoiceFields{
		DueDate:          strings.TrimSpace(r.DueDate),
		Memo:             strings.TrimSpace(r.Memo),
		SMSTextMessage:   strings.TrimSpace(r.SMSTextMessage),
		ClaimID:          strings.TrimSpace(r.ClaimID),
		FinalizationDate: strings.TrimSpace(r.FinalizationDate),
	}
	if r.AmountCents != nil {
		f.AmountCents = *r.AmountCents
	}
	return f
}

// UpdateInvoiceTaskRequest is the operator-facing mutation payload: status
// change, field rewrite, or both.
type UpdateInvoiceTaskRequest struct {
	Status string                `json:"status"`
	Fields *InvoiceFieldsRequest `json:"fields"`
}

func (r UpdateInvoiceTaskRequest) ResolveStatus() entities.TaskStatus {
	return entities.TaskStatus(strings.TrimSpace(r.Status))
}

// SubscriptionEventRequest is the task status-change event delivered by the
// clinical store's subscription mechanism.
type SubscriptionEventRequest struct {
	TaskID string `json:"task_id" binding:"required"`
	Status string `json:"status"`
}

func (r SubscriptionEventRequest) ResolveStatus() entities.TaskStatus {
	return entities.TaskStatus(strings.TrimSpace(r.Status))
}

// ReconciliationRunRequest triggers one reconciliation pass. When
// EncounterIDs is set the run is scoped to those billing encounter ids
// and Since is ignored.
type ReconciliationRunRequest struct {
	Since        string   `json:"since"`
	PageLimit    int      `json:"page_limit"`
	EncounterIDs []string `json:"encounter_ids"`
}

const defaultRunPageLimit = 10

func (r ReconciliationRunRequest) ResolveSince() (time.Time, error) {
	raw := strings.TrimSpace(r.Since)
	if raw == "" {
		return time.Time{}, nil
	}
	since, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidSince
	}
	return since, nil
}

func (r ReconciliationRunRequest) ResolvePageLimit() int {
	if r.PageLimit <= 0 {
		return defaultRunPageLimit
	}
	return r.PageLimit
}
