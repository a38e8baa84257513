// Package summary formats run and review results for terminal output. The
// pretty mode targets humans on a TTY; the plain mode stays stable for
// scripts and logs.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
)

type Renderer struct {
	pretty bool
}

func New(pretty bool) *Renderer {
	return &Renderer{pretty: pretty}
}

// Run formats the outcome of one orchestrated run.
func (r *Renderer) Run(record domain.RunRecord) string {
	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("Run Summary\n"))
		sb.WriteString(strings.Repeat("─", 40) + "\n")

		switch record.Outcome {
		case domain.RunCompleted:
			fmt.Fprintf(&sb, "%s completed in %s\n", color.GreenString("✓"), FormatDuration(record.Duration()))
		default:
			fmt.Fprintf(&sb, "%s failed after %s\n", color.RedString("✗"), FormatDuration(record.Duration()))
		}

		for _, cycle := range record.Cycles {
			fmt.Fprintf(&sb, "  cycle %d: %s, %s\n",
				cycle.Number, reviewsLabel(cycle.ReviewIterations), FormatDuration(cycle.Duration()))
		}

		if record.Failure != "" {
			fmt.Fprintf(&sb, "  %s\n", color.RedString(record.Failure))
		}

		return sb.String()
	}

	fmt.Fprintf(&sb, "outcome=%s cycles=%d duration=%s\n",
		record.Outcome, len(record.Cycles), FormatDuration(record.Duration()))
	for _, cycle := range record.Cycles {
		fmt.Fprintf(&sb, "cycle=%d reviews=%d duration=%s\n",
			cycle.Number, cycle.ReviewIterations, FormatDuration(cycle.Duration()))
	}
	if record.Failure != "" {
		fmt.Fprintf(&sb, "failure=%s\n", record.Failure)
	}

	return sb.String()
}

// Review formats a one-shot review verdict with its findings payload.
func (r *Renderer) Review(result domain.ReviewResult) (string, error) {
	if result.Empty() {
		if r.pretty {
			return color.GreenString("✓") + " no findings\n", nil
		}
		return "findings=0\n", nil
	}

	payload, err := result.Indent()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if r.pretty {
		fmt.Fprintf(&sb, "%s %s\n", color.RedString("✗"), findingsLabel(len(result.Findings)))
	} else {
		fmt.Fprintf(&sb, "findings=%d\n", len(result.Findings))
	}
	sb.WriteString(payload + "\n")

	return sb.String(), nil
}

func reviewsLabel(iterations int) string {
	if iterations == 1 {
		return "1 review"
	}

	return fmt.Sprintf("%d reviews", iterations)
}

func findingsLabel(count int) string {
	if count == 1 {
		return "1 finding"
	}

	return fmt.Sprintf("%d findings", count)
}

// FormatDuration renders durations at the precision humans care about.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	return d.Round(time.Second).String()
}
