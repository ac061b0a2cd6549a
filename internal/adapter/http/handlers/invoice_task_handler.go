package handlers

import (
	"errors"
	"log"
	"net/http"

	request "invoicesync/internal/adapter/http/dto/request"
	response "invoicesync/internal/adapter/http/dto/response"
	"invoicesync/internal/domain/entities"
	"invoicesync/internal/infrastructure/fhirstore"
	"invoicesync/internal/usecase"
	"invoicesync/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoiceTaskPayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_TASK_INPUT", "Invalid invoice task payload", http.StatusBadRequest)

// InvoiceTaskHandler handles HTTP requests for invoice tasks.

type InvoiceTaskHandler struct {
	usecase usecase.IUpdateInvoiceTaskUseCase
}

func NewInvoiceTaskHandler(uc usecase.IUpdateInvoiceTaskUseCase) *InvoiceTaskHandler {
	return &InvoiceTaskHandler{usecase: uc}
}

// UpdateInvoiceTask applies a status and/or field mutation to one task.
func (h *InvoiceTaskHandler) UpdateInvoiceTask(c *gin.Context) {
	taskID := c.Param("task_id")
	log.Printf("[invoicing][handler] update start task_id=%s", taskID)

	var payload request.UpdateInvoiceTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[invoicing][handler] invalid payload task_id=%s err=%v", taskID, err)
		c.JSON(errInvalidInvoiceTaskPayload.HTTPStatus, errInvalidInvoiceTaskPayload.ToHTTPError())
		return
	}

	cmd := usecase.UpdateInvoiceTaskCommand{Status: payload.ResolveStatus()}
	if payload.Fields != nil {
		fields := payload.Fields.ToEntity()
		cmd.Fields = &fields
	}

	updated, err := h.usecase.Update(c.Request.Context(), taskID, cmd)
	if err != nil {
		log.Printf("[invoicing][handler] update failed task_id=%s err=%v", taskID, err)
		appErr := mapInvoiceTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoicing][handler] update success task_id=%s status=%s", updated.ID, updated.Status)

	c.JSON(http.StatusOK, response.FromInvoiceTask(updated))
}

// GetInvoiceTask returns one task by id.
func (h *InvoiceTaskHandler) GetInvoiceTask(c *gin.Context) {
	taskID := c.Param("task_id")

	task, err := h.usecase.GetByID(c.Request.Context(), taskID)
	if err != nil {
		log.Printf("[invoicing][handler] get failed task_id=%s err=%v", taskID, err)
		appErr := mapInvoiceTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceTask(task))
}

func mapInvoiceTaskError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTaskID),
		errors.Is(err, usecase.ErrEmptyUpdate),
		errors.Is(err, usecase.ErrInvalidAmountValue),
		errors.Is(err, entities.ErrUnknownTaskStatus),
		errors.Is(err, entities.ErrInvalidAmountCents):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceTaskNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_TASK_NOT_FOUND", "Invoice task not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingClaimID):
		return pkg.NewDomainErrorSimple("INVOICE_TASK_MISSING_CLAIM", "Invoice task has no claim id", http.StatusUnprocessableEntity)
	case errors.Is(err, fhirstore.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("INVOICE_TASK_CONFLICT", "Invoice task was modified concurrently", http.StatusConflict)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
	}
}
