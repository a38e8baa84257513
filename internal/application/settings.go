package application

import (
	"time"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
)

// Settings carries the orchestration knobs, resolved once at startup.
type Settings struct {
	ReviewCommand       string
	ReviewCommandArgs   string
	ReviewTimeout       time.Duration
	SessionTimeout      time.Duration
	PollInterval        time.Duration
	MaxReviewIterations int

	// MaxCycles bounds how many milestone cycles a single run may execute.
	// Zero means run until the checklist is done.
	MaxCycles int

	Work   domain.AgentProfile
	Review domain.AgentProfile
	Commit domain.AgentProfile
}
