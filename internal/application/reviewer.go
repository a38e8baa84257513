package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
	"github.com/bnema/opencode-milestone-cli/internal/ports"
)

const reviewSessionTitle = "Review"

// Reviewer runs the review command and drives the review/fix loop for one
// milestone cycle. Every review runs in a fresh instance with no prior
// context; fix prompts go to the existing work session.
type Reviewer struct {
	provider ports.SessionProvider
	poller   *Poller
	settings Settings
	logger   *slog.Logger
}

func NewReviewer(provider ports.SessionProvider, poller *Poller, settings Settings, logger *slog.Logger) *Reviewer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Reviewer{
		provider: provider,
		poller:   poller,
		settings: settings,
		logger:   logger.With("component", "reviewer"),
	}
}

// Converge alternates review and fix until a review reports no findings.
// Each non-empty findings payload is serialized into a fix prompt for the
// work session, which must return to idle before the next review. Returns
// the number of review invocations performed.
func (r *Reviewer) Converge(ctx context.Context, directory string, work ports.SessionInstance, workSessionID string) (int, error) {
	for iteration := 1; iteration <= r.settings.MaxReviewIterations; iteration++ {
		r.logger.Info("running review", "iteration", iteration, "max", r.settings.MaxReviewIterations)

		result, err := r.Review(ctx, directory)
		if err != nil {
			return iteration, err
		}

		if result.Empty() {
			r.logger.Info("review converged", "iterations", iteration)
			return iteration, nil
		}

		r.logger.Info("review reported findings", "iteration", iteration, "findings", len(result.Findings))

		findings, err := result.Indent()
		if err != nil {
			return iteration, err
		}

		if err := work.Prompt(ctx, workSessionID, r.settings.Work.Model, r.settings.Work.Agent, fixPrompt(findings)); err != nil {
			return iteration, fmt.Errorf("send fix prompt: %w", err)
		}

		if err := r.poller.WaitUntilIdle(ctx, work, workSessionID, r.settings.SessionTimeout, r.settings.PollInterval); err != nil {
			return iteration, err
		}
	}

	return r.settings.MaxReviewIterations, fmt.Errorf("%w: %d iterations", domain.ErrReviewLoopLimit, r.settings.MaxReviewIterations)
}

// Review runs one review command in its own throwaway instance and parses
// the findings payload out of whatever the command printed.
func (r *Reviewer) Review(ctx context.Context, directory string) (domain.ReviewResult, error) {
	instance, err := r.provider.Acquire(ctx, directory)
	if err != nil {
		return domain.ReviewResult{}, fmt.Errorf("acquire review instance: %w", err)
	}
	defer disposeQuietly(ctx, instance, r.logger, "review")

	sessionID, err := instance.CreateSession(ctx, reviewSessionTitle)
	if err != nil {
		return domain.ReviewResult{}, fmt.Errorf("create review session: %w", err)
	}

	invocation := domain.CommandInvocation{
		Name:      r.settings.ReviewCommand,
		Arguments: r.settings.ReviewCommandArgs,
		Agent:     r.settings.Review.Agent,
		Model:     r.settings.Review.Model,
	}

	response, err := instance.RunCommand(ctx, sessionID, invocation)
	if err != nil {
		return domain.ReviewResult{}, fmt.Errorf("run review command: %w", err)
	}

	if err := r.poller.WaitUntilIdle(ctx, instance, sessionID, r.settings.ReviewTimeout, r.settings.PollInterval); err != nil {
		return domain.ReviewResult{}, err
	}

	parts := response.Parts
	if response.MessageID != "" {
		// The inline command response may predate the final token. Once the
		// session is idle the stored message is authoritative, so prefer it
		// whenever it has parts at all.
		message, err := instance.Message(ctx, sessionID, response.MessageID)
		if err != nil {
			return domain.ReviewResult{}, fmt.Errorf("fetch review message: %w", err)
		}
		if len(message.Parts) > 0 {
			parts = message.Parts
		}
	}

	text := domain.CollectText(parts)
	if strings.TrimSpace(text) == "" {
		return domain.ReviewResult{}, fmt.Errorf("%w: command %q printed nothing", domain.ErrEmptyReviewOutput, r.settings.ReviewCommand)
	}

	return domain.ExtractReviewResult(text)
}

// disposeQuietly releases an instance without letting cleanup failures mask
// the phase outcome. Dispose errors are logged and swallowed; they are the
// only errors in the loop treated that way.
func disposeQuietly(ctx context.Context, instance ports.SessionInstance, logger *slog.Logger, phase string) {
	if err := instance.Dispose(ctx); err != nil {
		logger.Warn("instance dispose failed", "phase", phase, "error", err)
	}
}
