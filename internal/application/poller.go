package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
	"github.com/bnema/opencode-milestone-cli/internal/ports"
)

// Poller blocks until a session reports idle, re-checking at a fixed
// interval. Waiting for idle is the only completion signal the loop has;
// prompts and commands return before the agent finishes working.
type Poller struct {
	clock ports.Clock
	sleep func(context.Context, time.Duration) error
}

func NewPoller(clock ports.Clock) *Poller {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Poller{clock: clock, sleep: sleepContext}
}

// WaitUntilIdle polls the instance until sessionID reports idle. A session
// absent from the status report fails immediately rather than after the
// timeout: absence is a protocol violation, not a slow agent.
func (p *Poller) WaitUntilIdle(ctx context.Context, instance ports.SessionInstance, sessionID string, timeout, interval time.Duration) error {
	deadline := p.clock.Now().Add(timeout)

	for {
		states, err := instance.SessionStates(ctx)
		if err != nil {
			return fmt.Errorf("poll session states: %w", err)
		}

		state, ok := states[sessionID]
		if !ok {
			return fmt.Errorf("%w: %s (reported sessions: %s)", domain.ErrSessionMissing, sessionID, knownSessions(states))
		}

		if state.Idle() {
			return nil
		}

		if p.clock.Now().After(deadline) {
			return fmt.Errorf("%w: session %s still %q after %s", domain.ErrIdleTimeout, sessionID, state, timeout)
		}

		if err := p.sleep(ctx, interval); err != nil {
			return err
		}
	}
}

func knownSessions(states map[string]domain.SessionState) string {
	if len(states) == 0 {
		return "none"
	}

	ids := make([]string, 0, len(states))
	for id := range states {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return strings.Join(ids, ", ")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
