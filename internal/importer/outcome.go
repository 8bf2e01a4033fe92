package importer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

// MaxReportedErrors bounds the error list returned to the caller.
const MaxReportedErrors = 100

type OutcomeStatus string

const (
	OutcomeCreated OutcomeStatus = "created"
	OutcomeSkipped OutcomeStatus = "skipped"
	OutcomeFailed  OutcomeStatus = "failed"
)

// Outcome is the result of importing a single row.
type Outcome struct {
	Status  OutcomeStatus
	ID      uuid.UUID
	Message string
}

func Created(id uuid.UUID) Outcome {
	return Outcome{Status: OutcomeCreated, ID: id}
}

func Skipped(format string, args ...any) Outcome {
	return Outcome{Status: OutcomeSkipped, Message: fmt.Sprintf(format, args...)}
}

func Failed(format string, args ...any) Outcome {
	return Outcome{Status: OutcomeFailed, Message: fmt.Sprintf(format, args...)}
}

// Aggregator counts row outcomes. Skipped rows count as failed.
type Aggregator struct {
	imported  int
	failed    int
	errors    []string
	maxErrors int
}

func NewAggregator() *Aggregator {
	return &Aggregator{errors: make([]string, 0), maxErrors: MaxReportedErrors}
}

func (a *Aggregator) Record(line int, o Outcome) {
	if o.Status == OutcomeCreated {
		a.imported++
		return
	}
	a.failed++
	if len(a.errors) < a.maxErrors {
		msg := o.Message
		if line > 0 {
			msg = fmt.Sprintf("row %d: %s", line, msg)
		}
		a.errors = append(a.errors, msg)
	}
}

func (a *Aggregator) Result() domain.ImportResult {
	errs := make([]string, len(a.errors))
	copy(errs, a.errors)
	return domain.ImportResult{
		Success:  a.failed == 0,
		Imported: a.imported,
		Failed:   a.failed,
		Errors:   errs,
	}
}
