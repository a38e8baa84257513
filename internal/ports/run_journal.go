package ports

import (
	"context"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
)

// RunJournal persists run records for later inspection. Append-only; nothing
// in the orchestration loop reads the journal back.
type RunJournal interface {
	Append(ctx context.Context, record domain.RunRecord) error
	List(ctx context.Context) ([]domain.RunRecord, error)
}
