package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"invoicesync/internal/domain/entities"
	"invoicesync/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPageLimit = errors.New("invalid page limit")
	ErrNoEncounterIDs   = errors.New("no encounter ids")
)

const (
	defaultInvoiceDueDays      = 30
	defaultInvoiceUserTimezone = "UTC"
)

// ReconciliationSummary is the outcome of one pipeline run. Per-item
// failures are counted, reported to the error sink and excluded from the
// result set; they never abort the batch.
type ReconciliationSummary struct {
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

// ICreateInvoiceTasksUseCase runs the claim/encounter reconciliation
// pipeline: page-walk billing inventory, subtract encounters that already
// own an invoice task, resolve the rest, itemize concurrently, and create
// one ready task per positive-balance pair. RunForEncounters is the
// targeted variant, scoped to specific billing encounter ids.

type ICreateInvoiceTasksUseCase interface {
	Run(ctx context.Context, since time.Time, pageLimit int) (ReconciliationSummary, error)
	RunForEncounters(ctx context.Context, billingIDs []string, pageLimit int) (ReconciliationSummary, error)
}

type CreateInvoiceTasksUseCase struct {
	billing    interfaces.IBillingGateway
	encounters interfaces.IEncounterRepository
	tasks      interfaces.IInvoiceTaskRepository
	ledger     interfaces.ICreationLedger
	reporter   interfaces.IErrorReporter

	dueDays      int
	userTimezone string
}

var _ ICreateInvoiceTasksUseCase = (*CreateInvoiceTasksUseCase)(nil)

func NewCreateInvoiceTasksUseCase(
	billing interfaces.IBillingGateway,
	encounters interfaces.IEncounterRepository,
	tasks interfaces.IInvoiceTaskRepository,
	ledger interfaces.ICreationLedger,
	reporter interfaces.IErrorReporter,
) *CreateInvoiceTasksUseCase {
	return &CreateInvoiceTasksUseCase{
		billing:      billing,
		encounters:   encounters,
		tasks:        tasks,
		ledger:       ledger,
		reporter:     reporter,
		dueDays:      getenvInt("INVOICE_DUE_DAYS", defaultInvoiceDueDays),
		userTimezone: getenvDefault("INVOICE_USER_TIMEZONE", defaultInvoiceUserTimezone),
	}
}

type matchedClaim struct {
	claim     entities.Claim
	encounter entities.Encounter
	balance   int64
}

func (u *CreateInvoiceTasksUseCase) Run(ctx context.Context, since time.Time, pageLimit int) (ReconciliationSummary, error) {
	summary := ReconciliationSummary{RunID: uuid.NewString()}
	if pageLimit <= 0 {
		return summary, ErrInvalidPageLimit
	}
	log.Printf("[invoicing][usecase] reconciliation start run_id=%s since=%s page_limit=%d", summary.RunID, since.Format(time.RFC3339), pageLimit)

	claims, err := u.billing.ListClaims(ctx, since, pageLimit)
	if err != nil {
		return summary, err
	}
	return u.reconcile(ctx, claims, summary)
}

// RunForEncounters runs the same pipeline over the claims of specific
// billing encounter ids instead of a time window. Operators use it to
// re-reconcile a known set of encounters without a full inventory walk.
func (u *CreateInvoiceTasksUseCase) RunForEncounters(ctx context.Context, billingIDs []string, pageLimit int) (ReconciliationSummary, error) {
	summary := ReconciliationSummary{RunID: uuid.NewString()}
	if pageLimit <= 0 {
		return summary, ErrInvalidPageLimit
	}
	if len(billingIDs) == 0 {
		return summary, ErrNoEncounterIDs
	}
	log.Printf("[invoicing][usecase] targeted reconciliation start run_id=%s encounters=%d page_limit=%d", summary.RunID, len(billingIDs), pageLimit)

	claims, err := u.billing.FindClaimsByEncounterIDs(ctx, billingIDs, pageLimit)
	if err != nil {
		return summary, err
	}
	return u.reconcile(ctx, claims, summary)
}

func (u *CreateInvoiceTasksUseCase) reconcile(ctx context.Context, claims []entities.Claim, summary ReconciliationSummary) (ReconciliationSummary, error) {
	summary.ClaimsSeen = len(claims)
	if len(claims) == 0 {
		log.Printf("[invoicing][usecase] no claims in inventory run_id=%s", summary.RunID)
		return summary, nil
	}

	pairs, err := u.matchClaims(ctx, claims, &summary)
	if err != nil {
		return summary, err
	}
	summary.Matched = len(pairs)

	pairs = u.resolveBalances(ctx, pairs, &summary)
	u.createTasks(ctx, pairs, &summary)

	log.Printf("[invoicing][usecase] reconciliation done run_id=%s seen=%d matched=%d created=%d failed=%d",
		summary.RunID, summary.ClaimsSeen, summary.Matched, summary.Created, summary.Failed)
	return summary, nil
}

// matchClaims returns the claims whose encounter exists and has no invoice
// task yet, each joined to its resolved encounter. Claims whose encounter
// cannot be resolved are silently dropped; absence is common and non-fatal.
func (u *CreateInvoiceTasksUseCase) matchClaims(ctx context.Context, claims []entities.Claim, summary *ReconciliationSummary) ([]matchedClaim, error) {
	byBillingID := make(map[string]entities.Claim, len(claims))
	billingIDs := make([]string, 0, len(claims))
	for _, claim := range claims {
		id := strings.TrimSpace(claim.EncounterBillingID)
		if id == "" {
			summary.SkippedUnresolved++
			continue
		}
		if _, seen := byBillingID[id]; !seen {
			billingIDs = append(billingIDs, id)
		}
		byBillingID[id] = claim
	}

	hasTask, err := u.encounters.FindWithInvoiceTask(ctx, billingIDs)
	if err != nil {
		return nil, err
	}

	missing := make([]string, 0, len(billingIDs))
	for _, id := range billingIDs {
		if hasTask[id] {
			summary.SkippedExisting++
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return nil, nil
	}

	resolved, err := u.encounters.FindByBillingIDs(ctx, missing)
	if err != nil {
		return nil, err
	}

	resolvedByBillingID := make(map[string]entities.Encounter, len(resolved))
	for _, enc := range resolved {
		resolvedByBillingID[enc.BillingID] = enc
	}

	pairs := make([]matchedClaim, 0, len(missing))
	for _, id := range missing {
		enc, ok := resolvedByBillingID[id]
		if !ok {
			summary.SkippedUnresolved++
			continue
		}
		pairs = append(pairs, matchedClaim{claim: byBillingID[id], encounter: enc})
	}
	return pairs, nil
}

// resolveBalances fans out one itemization call per pair and keeps only
// pairs with a strictly positive patient balance. A failed itemization
// drops its pair; the batch continues with whatever succeeded.
func (u *CreateInvoiceTasksUseCase) resolveBalances(ctx context.Context, pairs []matchedClaim, summary *ReconciliationSummary) []matchedClaim {
	balances := make([]int64, len(pairs))
	failed := make([]bool, len(pairs))

	var wg sync.WaitGroup
	for i := range pairs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			itemization, err := u.billing.GetItemization(ctx, pairs[i].claim.ID)
			if err != nil {
				u.reporter.Report(ctx, "billing.itemization", fmt.Errorf("claim %s: %w", pairs[i].claim.ID, err))
				failed[i] = true
				return
			}
			balances[i] = itemization.PatientBalanceCents
		}(i)
	}
	wg.Wait()

	qualifying := make([]matchedClaim, 0, len(pairs))
	for i, pair := range pairs {
		if failed[i] {
			summary.Failed++
			continue
		}
		if balances[i] <= 0 {
			summary.SkippedZeroBalance++
			continue
		}
		pair.balance = balances[i]
		qualifying = append(qualifying, pair)
	}
	return qualifying
}

// createTasks fans out one creation per qualifying pair. Each creation
// first claims the ledger key; the loser of a racing claim skips silently.
// Individual failures are reported per item and never abort siblings.
func (u *CreateInvoiceTasksUseCase) createTasks(ctx context.Context, pairs []matchedClaim, summary *ReconciliationSummary) {
	const (
		outcomeCreated = iota
		outcomeSkippedLedger
		outcomeFailed
	)
	outcomes := make([]int, len(pairs))

	var wg sync.WaitGroup
	for i := range pairs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pair := pairs[i]

			claimed, err := u.ledger.ClaimCreation(ctx, pair.encounter.ID, entities.InvoiceTaskTypeCode)
			if err != nil {
				u.reporter.Report(ctx, "ledger.claim", fmt.Errorf("encounter %s: %w", pair.encounter.ID, err))
				outcomes[i] = outcomeFailed
				return
			}
			if !claimed {
				outcomes[i] = outcomeSkippedLedger
				return
			}

			task := u.buildInvoiceTask(pair)
			if _, err := u.tasks.Create(ctx, task); err != nil {
				u.reporter.Report(ctx, "task.create", fmt.Errorf("encounter %s: %w", pair.encounter.ID, err))
				outcomes[i] = outcomeFailed
				return
			}
			outcomes[i] = outcomeCreated
		}(i)
	}
	wg.Wait()

	for _, outcome := range outcomes {
		switch outcome {
		case outcomeCreated:
			summary.Created++
		case outcomeSkippedLedger:
			summary.SkippedLedger++
		case outcomeFailed:
			summary.Failed++
		}
	}
}

func (u *CreateInvoiceTasksUseCase) buildInvoiceTask(pair matchedClaim) entities.InvoiceTask {
	dueDate := time.Now().UTC().AddDate(0, 0, u.dueDays).Format("2006-01-02")

	fields := entities.InvoiceFields{
		DueDate:        dueDate,
		Memo:           "Patient balance for recent visit",
		SMSTextMessage: invoiceSMSText(pair.balance, dueDate),
		AmountCents:    pair.balance,
		ClaimID:        pair.claim.ID,
	}
	if !pair.claim.FinalizedAt.IsZero() {
		fields.Memo = fmt.Sprintf("Patient balance for visit finalized on %s", pair.claim.FinalizedAt.Format("2006-01-02"))
		fields.FinalizationDate = pair.claim.FinalizedAt.UTC().Format(time.RFC3339)
	}

	return entities.InvoiceTask{
		Status:       entities.TaskStatusReady,
		Fields:       fields,
		EncounterID:  pair.encounter.ID,
		PatientID:    pair.encounter.PatientID,
		UserTimezone: u.userTimezone,
	}
}

// invoiceSMSText composes the patient-facing message. It embeds the
// dollar amount, so anything that changes AmountCents must recompose it.
func invoiceSMSText(amountCents int64, dueDate string) string {
	return fmt.Sprintf("You have a new invoice of $%d.%02d, due %s.", amountCents/100, amountCents%100, dueDate)
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
