package history

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
)

type RenderOptions struct {
	// Limit caps how many runs are shown, newest first. Zero shows all.
	Limit int
}

func renderView(records []domain.RunRecord, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Run History"),
		s.header.Render(fmt.Sprintf("runs: %d", len(records))),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No runs recorded yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range newestFirst(records, opts.Limit) {
		lines = append(lines, s.section.Render(renderRun(record, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// newestFirst reverses journal order, which appends chronologically.
func newestFirst(records []domain.RunRecord, limit int) []domain.RunRecord {
	reversed := make([]domain.RunRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		reversed = append(reversed, records[i])
	}

	if limit > 0 && len(reversed) > limit {
		reversed = reversed[:limit]
	}

	return reversed
}

func renderRun(record domain.RunRecord, s styles) string {
	parts := []string{
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.runID.Render(shortID(record.ID)),
			" ",
			outcomeLabel(record, s),
			" ",
			s.detail.Render(startedLabel(record.StartedAt)),
		),
		s.detail.Render("  directory: " + record.Directory),
	}

	for _, cycle := range record.Cycles {
		parts = append(parts, s.cycle.Render(fmt.Sprintf("  cycle %d: %s, %s",
			cycle.Number, reviewsLabel(cycle.ReviewIterations), durationLabel(cycle.Duration()))))
	}

	if record.Failure != "" {
		parts = append(parts, s.failure.Render("  failure: "+record.Failure))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func outcomeLabel(record domain.RunRecord, s styles) string {
	switch record.Outcome {
	case domain.RunCompleted:
		return s.completed.Render(fmt.Sprintf("completed in %s", durationLabel(record.Duration())))
	case domain.RunFailed:
		return s.failed.Render(fmt.Sprintf("failed after %s", durationLabel(record.Duration())))
	default:
		return s.detail.Render(string(record.Outcome))
	}
}

func startedLabel(startedAt time.Time) string {
	if startedAt.IsZero() {
		return ""
	}

	return "(" + startedAt.UTC().Format("2006-01-02 15:04 MST") + ")"
}

func durationLabel(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	return d.Round(time.Second).String()
}

func reviewsLabel(iterations int) string {
	if iterations == 1 {
		return "1 review"
	}

	return fmt.Sprintf("%d reviews", iterations)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
