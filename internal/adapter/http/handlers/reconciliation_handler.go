package handlers

import (
	"errors"
	"log"
	"net/http"

	request "invoicesync/internal/adapter/http/dto/request"
	response "invoicesync/internal/adapter/http/dto/response"
	"invoicesync/internal/usecase"
	"invoicesync/pkg"

	"github.com/gin-gonic/gin"
)

// ReconciliationHandler exposes the reconciliation pipeline: a manual run
// trigger and the subscription endpoint the clinical store notifies on
// task status changes.

type ReconciliationHandler struct {
	createUsecase  usecase.ICreateInvoiceTasksUseCase
	refreshUsecase usecase.IRefreshInvoiceTaskUseCase
}

func NewReconciliationHandler(createUC usecase.ICreateInvoiceTasksUseCase, refreshUC usecase.IRefreshInvoiceTaskUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{createUsecase: createUC, refreshUsecase: refreshUC}
}

// TriggerRun starts one reconciliation pass synchronously.
func (h *ReconciliationHandler) TriggerRun(c *gin.Context) {
	var payload request.ReconciliationRunRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var summary usecase.ReconciliationSummary
	var err error
	if len(payload.EncounterIDs) > 0 {
		log.Printf("[reconciliation][handler] targeted run start encounters=%d page_limit=%d", len(payload.EncounterIDs), payload.ResolvePageLimit())
		summary, err = h.createUsecase.RunForEncounters(c.Request.Context(), payload.EncounterIDs, payload.ResolvePageLimit())
	} else {
		since, sinceErr := payload.ResolveSince()
		if sinceErr != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_SINCE", "Invalid since timestamp", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[reconciliation][handler] run start since=%s page_limit=%d", payload.Since, payload.ResolvePageLimit())
		summary, err = h.createUsecase.Run(c.Request.Context(), since, payload.ResolvePageLimit())
	}
	if err != nil {
		log.Printf("[reconciliation][handler] run failed err=%v", err)
		appErr := mapReconciliationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[reconciliation][handler] run success run_id=%s created=%d", summary.RunID, summary.Created)

	c.JSON(http.StatusOK, response.FromReconciliationSummary(summary))
}

// HandleSubscriptionEvent refreshes one task after a status-change event.
func (h *ReconciliationHandler) HandleSubscriptionEvent(c *gin.Context) {
	var payload request.SubscriptionEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[reconciliation][handler] subscription event task_id=%s status=%s", payload.TaskID, payload.Status)

	task, err := h.refreshUsecase.Refresh(c.Request.Context(), payload.TaskID, payload.ResolveStatus())
	if err != nil {
		log.Printf("[reconciliation][handler] refresh failed task_id=%s err=%v", payload.TaskID, err)
		appErr := mapInvoiceTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[reconciliation][handler] refresh success task_id=%s status=%s", task.ID, task.Status)

	c.JSON(http.StatusOK, response.FromInvoiceTask(task))
}

func mapReconciliationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPageLimit):
		return pkg.NewDomainErrorSimple("INVALID_PAGE_LIMIT", "Invalid page limit", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoEncounterIDs):
		return pkg.NewDomainErrorSimple("NO_ENCOUNTER_IDS", "No encounter ids", http.StatusBadRequest)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
	}
}
