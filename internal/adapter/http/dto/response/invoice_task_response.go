package response

import (
	"invoicesync/internal/domain/entities"
	"invoicesync/internal/usecase"
)

type InvoiceFieldsResponse struct {
	DueDate          string `json:"due_date,omitempty"`
	Memo             string `json:"memo,omitempty"`
	SMSTextMessage   string `json:"sms_text_message,omitempty"`
	AmountCents      int64  `json:"amount_cents"`
	ClaimID          string `json:"claim_id,omitempty"`
	FinalizationDate string `json:"finalization_date,omitempty"`
}

type InvoiceTaskResponse struct {
	ID           string                `json:"id"`
	Status       string                `json:"status"`
	EncounterID  string                `json:"encounter_id,omitempty"`
	PatientID    string                `json:"patient_id,omitempty"`
	UserTimezone string                `json:"user_timezone,omitempty"`
	Fields       InvoiceFieldsResponse `json:"fields"`
}

func FromInvoiceTask(t entities.InvoiceTask) InvoiceTaskResponse {
	return InvoiceTaskResponse{
		ID:           t.ID,
		Status:       string(t.Status),
		EncounterID:  t.EncounterID,
		PatientID:    t.PatientID,
		UserTimezone: t.UserTimezone,
		Fields: InvoiceFieldsResponse{
			DueDate:          t.Fields.DueDate,
			Memo:             t.Fields.Memo,
			SMSTextMessage:   t.Fields.SMSTextMessage,
			AmountCents:      t.Fields.AmountCents,
			ClaimID:          t.Fields.ClaimID,
			FinalizationDate: t.Fields.FinalizationDate,
		},
	}
}

type ReconciliationRunResponse struct {
	RunID              string `json:"run_id"`
	ClaimsSeen         int    `json:"claims_seen"`
	Matched            int    `json:"matched"`
	Created            int    `json:"created"`
	SkippedExisting    int    `json:"skipped_existing"`
	SkippedUnresolved  int    `json:"skipped_unresolved"`
	SkippedZeroBalance int    `json:"skipped_zero_balance"`
	SkippedLedger      int    `json:"skipped_ledger"`
	Failed             int    `json:"failed"`
}

func FromReconciliationSummary(s usecase.ReconciliationSummary) ReconciliationRunResponse {
	return ReconciliationRunResponse{
		RunID:              s.RunID,
		ClaimsSeen:         s.ClaimsSeen,
		Matched:            s.Matched,
		Created:            s.Created,
		SkippedExisting:    s.SkippedExisting,
		SkippedUnresolved:  s.SkippedUnresolved,
		SkippedZeroBalance: s.SkippedZeroBalance,
		SkippedLedger:      s.SkippedLedger,
		Failed:             s.Failed,
	}
}
