package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"invoicesync/internal/adapter/persistence/repository"
	"invoicesync/internal/infrastructure/billing"
	"invoicesync/internal/infrastructure/database"
	"invoicesync/internal/infrastructure/fhirstore"
	"invoicesync/internal/infrastructure/reporting"
	"invoicesync/internal/usecase"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	_ "github.com/joho/godotenv/autoload"
)

type config struct {
	lookback  time.Duration
	pageLimit int
}

type runResult struct {
	RunID   string `json:"run_id,omitempty"`
	Created int    `json:"created"`
	Failed  int    `json:"failed"`
	Error   string `json:"error,omitempty"`
}

func loadConfig() (config, error) {
	lookback := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("RECONCILE_LOOKBACK")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return config{}, fmt.Errorf("invalid RECONCILE_LOOKBACK: %w", err)
		}
		lookback = parsed
	}

	pageLimit := 10
	if raw := strings.TrimSpace(os.Getenv("RECONCILE_PAGE_LIMIT")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return config{}, fmt.Errorf("invalid RECONCILE_PAGE_LIMIT: %w", err)
		}
		pageLimit = parsed
	}

	return config{lookback: lookback, pageLimit: pageLimit}, nil
}

func buildUseCase() (usecase.ICreateInvoiceTasksUseCase, error) {
	fhirClient, err := fhirstore.NewClient(os.Getenv("FHIR_BASE_URL"), os.Getenv("FHIR_ACCESS_TOKEN"), nil)
	if err != nil {
		return nil, err
	}

	billingClient, err := billing.NewClient(os.Getenv("BILLING_BASE_URL"), os.Getenv("BILLING_API_KEY"), nil)
	if err != nil {
		return nil, err
	}

	ddb := database.ConnectDynamoDB()
	taskRepo := repository.NewInvoiceTaskFHIRRepository(fhirClient)
	encounterRepo := repository.NewEncounterFHIRRepository(fhirClient)
	ledgerRepo := repository.NewCreationLedgerDynamoRepository(ddb)
	reporter := reporting.NewLogReporter()

	return usecase.NewCreateInvoiceTasksUseCase(billingClient, encounterRepo, taskRepo, ledgerRepo, reporter), nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		panic(err)
	}

	uc, err := buildUseCase()
	if err != nil {
		panic(err)
	}

	lambda.Start(func(ctx context.Context, evt events.CloudWatchEvent) (runResult, error) {
		return handle(ctx, cfg, uc, evt)
	})
}

// handle runs one reconciliation pass per scheduled event. Failures are
// reported in the result body rather than returned, so the schedule does
// not retry a pass that already created tasks.
func handle(ctx context.Context, cfg config, uc usecase.ICreateInvoiceTasksUseCase, evt events.CloudWatchEvent) (runResult, error) {
	since := time.Now().UTC().Add(-cfg.lookback)
	if !evt.Time.IsZero() {
		since = evt.Time.UTC().Add(-cfg.lookback)
	}

	log.Printf("[reconciler][lambda] run start since=%s page_limit=%d", since.Format(time.RFC3339), cfg.pageLimit)

	summary, err := uc.Run(ctx, since, cfg.pageLimit)
	if err != nil {
		log.Printf("[reconciler][lambda] run failed err=%v", err)
		return runResult{Error: err.Error()}, nil
	}

	log.Printf("[reconciler][lambda] run success run_id=%s claims=%d created=%d failed=%d",
		summary.RunID, summary.ClaimsSeen, summary.Created, summary.Failed)

	return runResult{RunID: summary.RunID, Created: summary.Created, Failed: summary.Failed}, nil
}
