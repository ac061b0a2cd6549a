package entities

import "time"

// Claim is a read-only record owned by the external billing system. The
// service only ever reads pages of them; EncounterBillingID is the
// correlation key back to the clinical encounter.

type Claim struct {
	ID                 string
	EncounterBillingID string
	FinalizedAt        time.Time
}

// Itemization is the billing system's authoritative computation of the
// patient-owed balance for one claim.
type Itemization struct {
	ClaimID             string
	PatientBalanceCents int64
}

// Encounter is the service's view of a clinical encounter: the internal
// store id plus the billing-system correlation identifier. The service
// reads encounters but never mutates them.
type Encounter struct {
	ID        string
	BillingID string
	PatientID string
}
