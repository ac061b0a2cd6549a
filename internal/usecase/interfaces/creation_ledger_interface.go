package interfaces

import "context"

// ICreationLedger is the idempotency guard for invoice-task creation. Two
// pipeline runs racing on the same encounter both pass the FHIR existence
// check; only the one that wins the ledger claim proceeds to create.
//
// ClaimCreation returns false (and no error) when another writer already
// holds the (encounterID, taskType) key.

type ICreationLedger interface {
	ClaimCreation(ctx context.Context, encounterID, taskType string) (bool, error)
}
