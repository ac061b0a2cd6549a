package interfaces

import (
	"context"
	"time"

	"invoicesync/internal/domain/entities"
)

// IBillingGateway abstracts the external revenue-cycle billing API.
//
// ListClaims walks inventory pages sequentially and is bounded by the
// caller-supplied pageLimit. GetItemization is never retried; callers
// treat a non-2xx billing answer as "no result" and propagate transport
// failures.
type IBillingGateway interface {
	ListClaims(ctx context.Context, since time.Time, pageLimit int) ([]entities.Claim, error)
	FindClaimsByEncounterIDs(ctx context.Context, encounterIDs []string, pageLimit int) ([]entities.Claim, error)
	GetItemization(ctx context.Context, claimID string) (entities.Itemization, error)
}
