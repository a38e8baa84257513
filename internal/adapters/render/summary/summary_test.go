package summary

import (
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
)

func TestRunSummaryPretty(t *testing.T) {
	color.NoColor = true
	started := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	output := New(true).Run(domain.RunRecord{
		ID:         "run-1",
		StartedAt:  started,
		FinishedAt: started.Add(42 * time.Minute),
		Outcome:    domain.RunCompleted,
		Cycles: []domain.CycleRecord{
			{Number: 1, ReviewIterations: 2, StartedAt: started, FinishedAt: started.Add(42 * time.Minute)},
		},
	})

	assert.Contains(t, output, "Run Summary")
	assert.Contains(t, output, "✓ completed in 42m0s")
	assert.Contains(t, output, "cycle 1: 2 reviews, 42m0s")
}

func TestRunSummaryPlainIsMachineReadable(t *testing.T) {
	started := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	output := New(false).Run(domain.RunRecord{
		StartedAt:  started,
		FinishedAt: started.Add(5 * time.Minute),
		Outcome:    domain.RunFailed,
		Failure:    "timed out waiting for idle session",
		Cycles: []domain.CycleRecord{
			{Number: 1, ReviewIterations: 20, StartedAt: started, FinishedAt: started.Add(5 * time.Minute)},
		},
	})

	assert.Contains(t, output, "outcome=failed cycles=1 duration=5m0s")
	assert.Contains(t, output, "cycle=1 reviews=20 duration=5m0s")
	assert.Contains(t, output, "failure=timed out waiting for idle session")
	assert.NotContains(t, output, "─")
}

func TestReviewVerdictNoFindings(t *testing.T) {
	color.NoColor = true

	result, err := domain.ExtractReviewResult(`{"findings": []}`)
	require.NoError(t, err)

	output, err := New(true).Review(result)
	require.NoError(t, err)
	assert.Equal(t, "✓ no findings\n", output)

	plain, err := New(false).Review(result)
	require.NoError(t, err)
	assert.Equal(t, "findings=0\n", plain)
}

func TestReviewVerdictListsFindings(t *testing.T) {
	color.NoColor = true

	result, err := domain.ExtractReviewResult(`{"findings": [{"title": "unchecked error"}]}`)
	require.NoError(t, err)

	output, err := New(true).Review(result)
	require.NoError(t, err)
	assert.Contains(t, output, "✗ 1 finding")
	assert.Contains(t, output, `"unchecked error"`)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0s", FormatDuration(0))
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "2.5s", FormatDuration(2500*time.Millisecond))
	assert.Equal(t, "1m30s", FormatDuration(90*time.Second))
	assert.Equal(t, "42m0s", FormatDuration(42*time.Minute))
}
