package overview

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
)

// Overview is everything the status command gathered about a project:
// resolved documents, checklist progress, and the most recent journal entry.
type Overview struct {
	Directory string
	ServerURL string
	PRD       string
	Spec      string
	Checklist string
	Unchecked int
	Checked   int
	LastRun   *domain.RunRecord
}

func renderView(o Overview, s styles) string {
	lines := []string{
		s.title.Render("Milestone Loop"),
		row(s, "directory", o.Directory),
		row(s, "server", o.ServerURL),
		s.section.Render(renderDocuments(o, s)),
		s.section.Render(renderChecklist(o, s)),
		renderLastRun(o.LastRun, s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderDocuments(o Overview, s styles) string {
	parts := []string{
		s.label.Render("documents:"),
		docRow(s, "prd", o.Directory, o.PRD),
		docRow(s, "spec", o.Directory, o.Spec),
		docRow(s, "checklist", o.Directory, o.Checklist),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderChecklist(o Overview, s styles) string {
	total := o.Unchecked + o.Checked
	if total == 0 {
		return s.empty.Render("checklist: no tasks found")
	}

	if o.Unchecked == 0 {
		return s.done.Render(fmt.Sprintf("checklist: all %d tasks done", total))
	}

	return s.open.Render(fmt.Sprintf("checklist: %d open, %d done", o.Unchecked, o.Checked))
}

func renderLastRun(record *domain.RunRecord, s styles) string {
	if record == nil {
		return s.empty.Render("last run: none recorded")
	}

	outcome := s.done.Render("completed")
	if record.Outcome == domain.RunFailed {
		outcome = s.failed.Render("failed")
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render("last run: "),
		outcome,
		s.value.Render(fmt.Sprintf(" in %s (%s)", record.Duration().Round(time.Second), record.StartedAt.UTC().Format("2006-01-02 15:04 MST"))),
	)
}

func row(s styles, label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label+": "), s.value.Render(value))
}

func docRow(s styles, name, directory, path string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		"  ",
		s.docName.Render(fmt.Sprintf("%-9s", name)),
		" ",
		s.value.Render(displayPath(directory, path)),
	)
}

// displayPath shortens a resolved document path to be relative to the
// project directory when it cleanly is.
func displayPath(directory, path string) string {
	if directory == "" || path == "" {
		return path
	}

	rel, err := filepath.Rel(directory, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}

	return rel
}
