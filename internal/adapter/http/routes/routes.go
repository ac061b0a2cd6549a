package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "invoicesync/docs" // This will be auto-generated
	"invoicesync/internal/adapter/http/handlers"
	repository2 "invoicesync/internal/adapter/persistence/repository"
	"invoicesync/internal/infrastructure/billing"
	"invoicesync/internal/infrastructure/database"
	"invoicesync/internal/infrastructure/fhirstore"
	"invoicesync/internal/infrastructure/reporting"
	"invoicesync/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	fhirClient, err := fhirstore.NewClient(os.Getenv("FHIR_BASE_URL"), os.Getenv("FHIR_ACCESS_TOKEN"), nil)
	if err != nil {
		log.Fatalf("FHIR store client not configured: %v", err)
	}

	billingClient, err := billing.NewClient(os.Getenv("BILLING_BASE_URL"), os.Getenv("BILLING_API_KEY"), nil)
	if err != nil {
		log.Fatalf("Billing client not configured: %v", err)
	}

	taskRepo := repository2.NewInvoiceTaskFHIRRepository(fhirClient)
	encounterRepo := repository2.NewEncounterFHIRRepository(fhirClient)
	ledgerRepo := repository2.NewCreationLedgerDynamoRepository(ddb)
	reporter := reporting.NewLogReporter()

	createUseCase := usecase.NewCreateInvoiceTasksUseCase(billingClient, encounterRepo, taskRepo, ledgerRepo, reporter)
	refreshUseCase := usecase.NewRefreshInvoiceTaskUseCase(billingClient, taskRepo)
	updateUseCase := usecase.NewUpdateInvoiceTaskUseCase(taskRepo)

	invoiceTaskHandler := handlers.NewInvoiceTaskHandler(updateUseCase)
	reconciliationHandler := handlers.NewReconciliationHandler(createUseCase, refreshUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInvoicingRoutes(v1, invoiceTaskHandler, reconciliationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
