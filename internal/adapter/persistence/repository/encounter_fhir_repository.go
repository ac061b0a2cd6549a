package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"invoicesync/internal/domain/entities"
	"invoicesync/internal/domain/fhir"
	"invoicesync/internal/infrastructure/fhirstore"
	"invoicesync/internal/usecase/interfaces"
)

// EncounterFHIRRepository resolves clinical encounters by their billing
// correlation identifier. It never writes encounters.

type EncounterFHIRRepository struct {
	store *fhirstore.Client
}

var _ interfaces.IEncounterRepository = (*EncounterFHIRRepository)(nil)

func NewEncounterFHIRRepository(store *fhirstore.Client) *EncounterFHIRRepository {
	return &EncounterFHIRRepository{store: store}
}

// FindWithInvoiceTask issues one identifier+revinclude search per billing
// id (batched into a single store round trip) and returns the set of ids
// whose encounter already owns an invoice task. Batch responses preserve
// request order, so entry i answers billingIDs[i].
func (r *EncounterFHIRRepository) FindWithInvoiceTask(ctx context.Context, billingIDs []string) (map[string]bool, error) {
	if len(billingIDs) == 0 {
		return map[string]bool{}, nil
	}

	urls := make([]string, 0, len(billingIDs))
	for _, id := range billingIDs {
		q := url.Values{}
		q.Set("identifier", entities.BillingEncounterIdentifierSystem+"|"+id)
		q.Set("_revinclude", "Task:encounter")
		q.Set("_elements", "id,identifier")
		urls = append(urls, "Encounter?"+q.Encode())
	}

	out, err := r.store.Batch(ctx, fhir.NewBatchBundle(urls))
	if err != nil {
		return nil, err
	}
	if len(out.Entry) != len(billingIDs) {
		return nil, fmt.Errorf("batch returned %d entries for %d searches", len(out.Entry), len(billingIDs))
	}

	hasTask := make(map[string]bool, len(billingIDs))
	for i, entry := range out.Entry {
		if len(entry.Resource) == 0 {
			continue
		}
		var inner fhir.Bundle
		if err := json.Unmarshal(entry.Resource, &inner); err != nil {
			continue
		}
		for _, raw := range inner.EntriesOfType("Task") {
			var task fhir.Task
			if err := json.Unmarshal(raw, &task); err != nil {
				continue
			}
			if isInvoiceTask(task) {
				hasTask[billingIDs[i]] = true
				break
			}
		}
	}
	return hasTask, nil
}

// FindByBillingIDs resolves encounters directly by billing identifier.
// Unresolvable ids (deleted, never synced) are silently absent from the
// result; absence is common and non-fatal to the batch.
func (r *EncounterFHIRRepository) FindByBillingIDs(ctx context.Context, billingIDs []string) ([]entities.Encounter, error) {
	if len(billingIDs) == 0 {
		return nil, nil
	}

	urls := make([]string, 0, len(billingIDs))
	for _, id := range billingIDs {
		q := url.Values{}
		q.Set("identifier", entities.BillingEncounterIdentifierSystem+"|"+id)
		urls = append(urls, "Encounter?"+q.Encode())
	}

	out, err := r.store.Batch(ctx, fhir.NewBatchBundle(urls))
	if err != nil {
		return nil, err
	}

	encounters := make([]entities.Encounter, 0, len(billingIDs))
	for _, entry := range out.Entry {
		if len(entry.Resource) == 0 {
			continue
		}
		var inner fhir.Bundle
		if err := json.Unmarshal(entry.Resource, &inner); err != nil {
			continue
		}
		for _, raw := range inner.EntriesOfType("Encounter") {
			var enc fhir.Encounter
			if err := json.Unmarshal(raw, &enc); err != nil {
				continue
			}
			encounters = append(encounters, toEncounterEntity(enc))
		}
	}
	return encounters, nil
}

func toEncounterEntity(enc fhir.Encounter) entities.Encounter {
	e := entities.Encounter{
		ID:        enc.ID,
		BillingID: enc.IdentifierValue(entities.BillingEncounterIdentifierSystem),
	}
	if enc.Subject != nil {
		e.PatientID = trimReferencePrefix(enc.Subject.Reference, "Patient/")
	}
	return e
}

func isInvoiceTask(task fhir.Task) bool {
	if task.Code == nil {
		return false
	}
	for _, coding := range task.Code.Coding {
		if coding.System == entities.InvoiceTaskTypeSystem && coding.Code == entities.InvoiceTaskTypeCode {
			return true
		}
	}
	return false
}

func trimReferencePrefix(ref, prefix string) string {
	if len(ref) >= len(prefix) && ref[:len(prefix)] == prefix {
		return ref[len(prefix):]
	}
	return ref
}
