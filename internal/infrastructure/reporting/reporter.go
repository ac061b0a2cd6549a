package reporting

import (
	"context"
	"log"

	"invoicesync/internal/usecase/interfaces"
)

// LogReporter is the default error-tracking sink: per-item pipeline
// failures are logged and counted, never rethrown. Swap in a hosted
// tracker by implementing interfaces.IErrorReporter.

type LogReporter struct{}

var _ interfaces.IErrorReporter = (*LogReporter)(nil)

func NewLogReporter() *LogReporter {
	return &LogReporter{}
}

func (r *LogReporter) Report(_ context.Context, op string, err error) {
	log.Printf("[reporting] op=%s err=%v", op, err)
}
