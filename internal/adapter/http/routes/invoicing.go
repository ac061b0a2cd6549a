package routes

import (
	"invoicesync/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoiceTasks   = "/invoice-tasks"
	PathReconciliation = "/reconciliation"
)

func addInvoicingRoutes(rg *gin.RouterGroup, taskHandler *handlers.InvoiceTaskHandler, reconciliationHandler *handlers.ReconciliationHandler) {
	tasks := rg.Group(PathInvoiceTasks)
	{
		tasks.GET("/:task_id", taskHandler.GetInvoiceTask)
		tasks.PATCH("/:task_id", taskHandler.UpdateInvoiceTask)

		// Endpoint the clinical store's subscription notifies on task
		// status changes.
		tasks.POST("/subscription", reconciliationHandler.HandleSubscriptionEvent)
	}

	reconciliation := rg.Group(PathReconciliation)
	{
		reconciliation.POST("/runs", reconciliationHandler.TriggerRun)
	}
}
