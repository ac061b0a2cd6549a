package entities

import (
	"errors"
	"strconv"

	"invoicesync/internal/domain/fhir"
)

// InvoiceTaskInputSystem is the private coding system under which invoice
// metadata is attached to the task as Task.input entries. The refresh and
// subscription handlers depend on exactly this vocabulary; do not rename
// codes without migrating stored tasks.
const InvoiceTaskInputSystem = "https://fhir.invoicesync.dev/CodeSystem/invoice-task-input"

const (
	InputCodeDueDate          = "dueDate"
	InputCodeMemo             = "memo"
	InputCodeSMSTextMessage   = "smsTextMessage"
	InputCodeAmountCents      = "amountCents"
	InputCodeClaimID          = "claimId"
	InputCodeFinalizationDate = "finalizationDate"
)

var ErrInvalidAmountCents = errors.New("invalid amountCents value")

// InvoiceFields is the typed field set carried by an invoice task.
//
// Encoding: each non-empty field becomes one {code, valueString} input
// under InvoiceTaskInputSystem; AmountCents is stringified and always
// emitted. Decoding tolerates a missing amountCents (defaults to 0) but
// rejects a non-integer stored value.

type InvoiceFields struct {
	DueDate          string
	Memo             string
	SMSTextMessage   string
	AmountCents      int64
	ClaimID          string
	FinalizationDate string
}

func (f InvoiceFields) ToTaskInputs() []fhir.TaskInput {
	inputs := make([]fhir.TaskInput, 0, 6)
	appendInput := func(code, value string) {
		if value == "" {
			return
		}
		inputs = append(inputs, fhir.TaskInput{
			Type: fhir.CodeableConcept{
				Coding: []fhir.Coding{{System: InvoiceTaskInputSystem, Code: code}},
			},
			ValueString: value,
		})
	}

	appendInput(InputCodeDueDate, f.DueDate)
	appendInput(InputCodeMemo, f.Memo)
	appendInput(InputCodeSMSTextMessage, f.SMSTextMessage)
	appendInput(InputCodeAmountCents, strconv.FormatInt(f.AmountCents, 10))
	appendInput(InputCodeClaimID, f.ClaimID)
	appendInput(InputCodeFinalizationDate, f.FinalizationDate)
	return inputs
}

func InvoiceFieldsFromTaskInputs(inputs []fhir.TaskInput) (InvoiceFields, error) {
	values := map[string]string{}
	for _, in := range inputs {
		for _, coding := range in.Type.Coding {
			if coding.System == InvoiceTaskInputSystem {
				values[coding.Code] = in.ValueString
				break
			}
		}
	}

	rawAmount, ok := values[InputCodeAmountCents]
	if !ok || rawAmount == "" {
		rawAmount = "0"
	}
	amount, err := strconv.ParseInt(rawAmount, 10, 64)
	if err != nil {
		return InvoiceFields{}, ErrInvalidAmountCents
	}

	return InvoiceFields{
		DueDate:          values[InputCodeDueDate],
		Memo:             values[InputCodeMemo],
		SMSTextMessage:   values[InputCodeSMSTextMessage],
		AmountCents:      amount,
		ClaimID:          values[InputCodeClaimID],
		FinalizationDate: values[InputCodeFinalizationDate],
	}, nil
}
