package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
	"github.com/bnema/opencode-milestone-cli/internal/ports"
)

const commitSessionTitle = "Commit"

// Orchestrator drives milestone cycles until the checklist has no unchecked
// tasks left. Each cycle implements one milestone, converges its review
// loop, marks the finished tasks, and commits in a separate cheap session.
// Any phase failure aborts the run; the checklist itself is the resumption
// mechanism, so a rerun picks up where the failed run stopped.
type Orchestrator struct {
	provider ports.SessionProvider
	poller   *Poller
	reviewer *Reviewer
	journal  ports.RunJournal
	clock    ports.Clock
	settings Settings
	logger   *slog.Logger
}

func NewOrchestrator(provider ports.SessionProvider, journal ports.RunJournal, clock ports.Clock, settings Settings, logger *slog.Logger) *Orchestrator {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	poller := NewPoller(clock)

	return &Orchestrator{
		provider: provider,
		poller:   poller,
		reviewer: NewReviewer(provider, poller, settings, logger),
		journal:  journal,
		clock:    clock,
		settings: settings,
		logger:   logger.With("component", "orchestrator"),
	}
}

// Run executes milestone cycles until the checklist is fully checked, a
// phase fails, or the optional cycle bound is reached. The returned record
// describes the run either way and is appended to the journal when one is
// configured.
func (o *Orchestrator) Run(ctx context.Context, docs DocumentSet, directory string) (domain.RunRecord, error) {
	record := domain.RunRecord{
		ID:        uuid.New().String(),
		Directory: directory,
		StartedAt: o.clock.Now(),
	}

	runErr := o.runCycles(ctx, docs, directory, &record)

	record.FinishedAt = o.clock.Now()
	record.Outcome = domain.RunCompleted
	if runErr != nil {
		record.Outcome = domain.RunFailed
		record.Failure = runErr.Error()
	}

	o.appendRecord(ctx, record)

	return record, runErr
}

func (o *Orchestrator) runCycles(ctx context.Context, docs DocumentSet, directory string, record *domain.RunRecord) error {
	for cycle := 1; ; cycle++ {
		unfinished, err := docs.UnfinishedTasks()
		if err != nil {
			return err
		}
		if !unfinished {
			o.logger.Info("checklist complete", "cycles", cycle-1)
			return nil
		}

		if o.settings.MaxCycles > 0 && cycle > o.settings.MaxCycles {
			o.logger.Info("cycle bound reached", "max_cycles", o.settings.MaxCycles)
			return nil
		}

		cycleRecord, err := o.runCycle(ctx, docs, directory, cycle)
		record.Cycles = append(record.Cycles, cycleRecord)
		if err != nil {
			return err
		}
	}
}

func (o *Orchestrator) runCycle(ctx context.Context, docs DocumentSet, directory string, number int) (domain.CycleRecord, error) {
	o.logger.Info("starting milestone cycle", "cycle", number)

	record := domain.CycleRecord{
		RecordID:  ulid.Make().String(),
		Number:    number,
		StartedAt: o.clock.Now(),
	}

	iterations, err := o.workPhase(ctx, docs, directory, number)
	record.ReviewIterations = iterations
	if err == nil {
		err = o.commitPhase(ctx, directory)
	}

	record.FinishedAt = o.clock.Now()
	if err != nil {
		return record, err
	}

	o.logger.Info("cycle complete", "cycle", number, "review_iterations", iterations, "duration", record.Duration())

	return record, nil
}

// workPhase runs the milestone prompt, converges the review loop against the
// same session, and finally asks the agent to check off what it finished.
// The work session persists across all review iterations of the cycle.
func (o *Orchestrator) workPhase(ctx context.Context, docs DocumentSet, directory string, cycle int) (int, error) {
	instance, err := o.provider.Acquire(ctx, directory)
	if err != nil {
		return 0, fmt.Errorf("acquire work instance: %w", err)
	}
	defer disposeQuietly(ctx, instance, o.logger, "work")

	sessionID, err := instance.CreateSession(ctx, fmt.Sprintf("Milestone %d", cycle))
	if err != nil {
		return 0, fmt.Errorf("create work session: %w", err)
	}

	o.logger.Info("work session created", "cycle", cycle, "session", sessionID)

	if err := o.promptAndWait(ctx, instance, sessionID, o.settings.Work, milestonePrompt(docs)); err != nil {
		return 0, err
	}

	iterations, err := o.reviewer.Converge(ctx, directory, instance, sessionID)
	if err != nil {
		return iterations, err
	}

	if err := o.promptAndWait(ctx, instance, sessionID, o.settings.Work, markTasksPrompt(docs)); err != nil {
		return iterations, err
	}

	return iterations, nil
}

// commitPhase commits and pushes in a fresh session under the cheaper commit
// profile. Commit traffic never touches the work session.
func (o *Orchestrator) commitPhase(ctx context.Context, directory string) error {
	instance, err := o.provider.Acquire(ctx, directory)
	if err != nil {
		return fmt.Errorf("acquire commit instance: %w", err)
	}
	defer disposeQuietly(ctx, instance, o.logger, "commit")

	sessionID, err := instance.CreateSession(ctx, commitSessionTitle)
	if err != nil {
		return fmt.Errorf("create commit session: %w", err)
	}

	return o.promptAndWait(ctx, instance, sessionID, o.settings.Commit, commitPrompt())
}

func (o *Orchestrator) promptAndWait(ctx context.Context, instance ports.SessionInstance, sessionID string, profile domain.AgentProfile, text string) error {
	if err := instance.Prompt(ctx, sessionID, profile.Model, profile.Agent, text); err != nil {
		return fmt.Errorf("send prompt: %w", err)
	}

	return o.poller.WaitUntilIdle(ctx, instance, sessionID, o.settings.SessionTimeout, o.settings.PollInterval)
}

// appendRecord is diagnostic bookkeeping. A journal failure must never turn
// a finished run into a failed one.
func (o *Orchestrator) appendRecord(ctx context.Context, record domain.RunRecord) {
	if o.journal == nil {
		return
	}

	if err := o.journal.Append(ctx, record); err != nil {
		o.logger.Warn("journal append failed", "error", err)
	}
}
