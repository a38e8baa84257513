package domain

import "time"

// RunOutcome classifies how an orchestrator invocation ended.
type RunOutcome string

const (
	RunCompleted RunOutcome = "completed"
	RunFailed    RunOutcome = "failed"
)

// CycleRecord captures one finished milestone cycle for the journal.
type CycleRecord struct {
	RecordID         string
	Number           int
	ReviewIterations int
	StartedAt        time.Time
	FinishedAt       time.Time
}

func (c CycleRecord) Duration() time.Duration {
	return c.FinishedAt.Sub(c.StartedAt)
}

// RunRecord captures one orchestrator invocation for the journal. Records are
// diagnostic only; the orchestrator never reads them back.
type RunRecord struct {
	ID         string
	Directory  string
	StartedAt  time.Time
	FinishedAt time.Time
	Outcome    RunOutcome
	Failure    string
	Cycles     []CycleRecord
}

func (r RunRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
