package ports

import (
	"context"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
)

// SessionProvider hands out provider-side instances. Each phase of a
// milestone cycle acquires its own instance, so disposing one phase's
// resources never touches sessions owned by another phase.
type SessionProvider interface {
	Acquire(ctx context.Context, directory string) (SessionInstance, error)
}

// SessionInstance is one provider-side server scoped to a working directory.
// Sessions created through an instance live and die with it.
type SessionInstance interface {
	CreateSession(ctx context.Context, title string) (string, error)
	Prompt(ctx context.Context, sessionID string, model domain.ModelSpec, agent, text string) error
	RunCommand(ctx context.Context, sessionID string, inv domain.CommandInvocation) (domain.CommandResult, error)
	Message(ctx context.Context, sessionID, messageID string) (domain.Message, error)
	SessionStates(ctx context.Context) (map[string]domain.SessionState, error)
	Dispose(ctx context.Context) error
}
