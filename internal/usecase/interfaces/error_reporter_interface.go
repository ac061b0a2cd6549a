package interfaces

import "context"

// IErrorReporter is the error-tracking sink for per-item pipeline failures.
// Reported errors are excluded from the batch result but never abort it.

type IErrorReporter interface {
	Report(ctx context.Context, op string, err error)
}
