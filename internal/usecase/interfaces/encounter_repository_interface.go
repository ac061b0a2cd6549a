package interfaces

import (
	"context"

	"invoicesync/internal/domain/entities"
)

// IEncounterRepository resolves clinical encounters by their billing-system
// correlation identifier. Encounters are read-only to this service.
//
// FindWithInvoiceTask returns the subset of billingIDs whose encounter
// already owns an invoice task (one identifier+revinclude search per id,
// batched into a single store round trip).

type IEncounterRepository interface {
	FindWithInvoiceTask(ctx context.Context, billingIDs []string) (map[string]bool, error)
	FindByBillingIDs(ctx context.Context, billingIDs []string) ([]entities.Encounter, error)
}
