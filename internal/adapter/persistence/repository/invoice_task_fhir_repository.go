package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"invoicesync/internal/domain/entities"
	"invoicesync/internal/domain/fhir"
	"invoicesync/internal/infrastructure/fhirstore"
	"invoicesync/internal/usecase/interfaces"
)

// InvoiceTaskFHIRRepository persists InvoiceTask entities as FHIR Task
// resources on the clinical store.
//
// Storage model:
//   - Task.code: InvoiceTaskTypeSystem|send-invoice
//   - Task.input: the invoice field set (see entities.InvoiceFields)
//   - Task.encounter / Task.for: owning encounter and patient
//   - meta.tag under UserTimezoneTagSystem: user-timezone annotation

type InvoiceTaskFHIRRepository struct {
	store *fhirstore.Client
}

var _ interfaces.IInvoiceTaskRepository = (*InvoiceTaskFHIRRepository)(nil)

func NewInvoiceTaskFHIRRepository(store *fhirstore.Client) *InvoiceTaskFHIRRepository {
	return &InvoiceTaskFHIRRepository{store: store}
}

func (r *InvoiceTaskFHIRRepository) Create(ctx context.Context, t entities.InvoiceTask) (entities.InvoiceTask, error) {
	res, err := toInvoiceTaskResource(t)
	if err != nil {
		return entities.InvoiceTask{}, err
	}

	var created fhir.Task
	if err := r.store.Create(ctx, "Task", res, &created); err != nil {
		return entities.InvoiceTask{}, err
	}
	return fromInvoiceTaskResource(created)
}

func (r *InvoiceTaskFHIRRepository) GetByID(ctx context.Context, id string) (entities.InvoiceTask, error) {
	var res fhir.Task
	err := r.store.Read(ctx, "Task", id, &res)
	if errors.Is(err, fhirstore.ErrResourceNotFound) {
		return entities.InvoiceTask{}, nil
	}
	if err != nil {
		return entities.InvoiceTask{}, err
	}
	return fromInvoiceTaskResource(res)
}

func (r *InvoiceTaskFHIRRepository) GetByEncounterID(ctx context.Context, encounterID string) (entities.InvoiceTask, error) {
	q := url.Values{}
	q.Set("code", entities.InvoiceTaskTypeSystem+"|"+entities.InvoiceTaskTypeCode)
	q.Set("encounter", "Encounter/"+encounterID)

	bundle, err := r.store.Search(ctx, "Task", q)
	if err != nil {
		return entities.InvoiceTask{}, err
	}
	raws := bundle.EntriesOfType("Task")
	if len(raws) == 0 {
		return entities.InvoiceTask{}, nil
	}

	var res fhir.Task
	if err := json.Unmarshal(raws[0], &res); err != nil {
		return entities.InvoiceTask{}, err
	}
	return fromInvoiceTaskResource(res)
}

func (r *InvoiceTaskFHIRRepository) UpdateStatus(ctx context.Context, id string, status entities.TaskStatus) (entities.InvoiceTask, error) {
	code, err := status.FHIRStatus()
	if err != nil {
		return entities.InvoiceTask{}, err
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.InvoiceTask{}, err
	}
	if current.ID == "" {
		return entities.InvoiceTask{}, fhirstore.ErrResourceNotFound
	}

	ops := []fhirstore.PatchOp{
		{Op: "replace", Path: "/status", Value: code},
		{Op: "replace", Path: "/lastModified", Value: time.Now().UTC().Format(time.RFC3339)},
	}
	var updated fhir.Task
	if err := r.store.Patch(ctx, "Task", id, current.Version, ops, &updated); err != nil {
		return entities.InvoiceTask{}, err
	}
	return fromInvoiceTaskResource(updated)
}

func (r *InvoiceTaskFHIRRepository) UpdateFields(ctx context.Context, id string, fields entities.InvoiceFields) (entities.InvoiceTask, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.InvoiceTask{}, err
	}
	if current.ID == "" {
		return entities.InvoiceTask{}, fhirstore.ErrResourceNotFound
	}

	ops := []fhirstore.PatchOp{
		{Op: "replace", Path: "/input", Value: fields.ToTaskInputs()},
	}
	var updated fhir.Task
	if err := r.store.Patch(ctx, "Task", id, current.Version, ops, &updated); err != nil {
		return entities.InvoiceTask{}, err
	}
	return fromInvoiceTaskResource(updated)
}

func toInvoiceTaskResource(t entities.InvoiceTask) (fhir.Task, error) {
	code, err := t.Status.FHIRStatus()
	if err != nil {
		return fhir.Task{}, err
	}

	res := fhir.Task{
		ResourceType: "Task",
		ID:           t.ID,
		Status:       code,
		Intent:       "order",
		Code: &fhir.CodeableConcept{
			Coding: []fhir.Coding{{System: entities.InvoiceTaskTypeSystem, Code: entities.InvoiceTaskTypeCode}},
		},
		AuthoredOn: time.Now().UTC().Format(time.RFC3339),
		Input:      t.Fields.ToTaskInputs(),
	}
	if t.EncounterID != "" {
		res.Encounter = &fhir.Reference{Reference: "Encounter/" + t.EncounterID}
	}
	if t.PatientID != "" {
		res.For = &fhir.Reference{Reference: "Patient/" + t.PatientID}
	}
	if t.UserTimezone != "" {
		res.Meta = &fhir.Meta{Tag: []fhir.Coding{{System: entities.UserTimezoneTagSystem, Code: t.UserTimezone}}}
	}
	return res, nil
}

func fromInvoiceTaskResource(res fhir.Task) (entities.InvoiceTask, error) {
	status, err := entities.TaskStatusFromFHIR(res.Status)
	if err != nil {
		return entities.InvoiceTask{}, fmt.Errorf("task %s: %w", res.ID, err)
	}
	fields, err := entities.InvoiceFieldsFromTaskInputs(res.Input)
	if err != nil {
		return entities.InvoiceTask{}, fmt.Errorf("task %s: %w", res.ID, err)
	}

	t := entities.InvoiceTask{
		ID:     res.ID,
		Status: status,
		Fields: fields,
	}
	if res.Encounter != nil {
		t.EncounterID = strings.TrimPrefix(res.Encounter.Reference, "Encounter/")
	}
	if res.For != nil {
		t.PatientID = strings.TrimPrefix(res.For.Reference, "Patient/")
	}
	if res.Meta != nil {
		t.Version = res.Meta.VersionID
		for _, tag := range res.Meta.Tag {
			if tag.System == entities.UserTimezoneTagSystem {
				t.UserTimezone = tag.Code
			}
		}
	}
	return t, nil
}
