package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
)

const openChecklist = `# Implementation Plan

## Milestone 1: scaffolding

- [ ] create the module layout
- [x] pick the stack
`

const doneChecklist = `# Implementation Plan

## Milestone 1: scaffolding

- [x] create the module layout
- [x] pick the stack
`

const twoMilestoneChecklist = `# Implementation Plan

## Milestone 1: data model

- [ ] define the widget types

## Milestone 2: transport

- [ ] expose the http api
`

func TestVersionCommandPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestStatusShowsChecklistProgress(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeProjectFixture(root, openChecklist))

	stdout, _, err := executeCLI(t, "status", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Milestone Loop")
	assert.Contains(t, stdout, "IMPLEMENTATION_PLAN.md")
	assert.Contains(t, stdout, "checklist: 1 open, 1 done")
	assert.Contains(t, stdout, "last run: none recorded")
}

func TestStatusJSONOutput(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeProjectFixture(root, openChecklist))

	stdout, _, err := executeCLI(t, "status", "--dir", root, "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Unchecked\": 1")
	assert.Contains(t, stdout, "\"Checked\": 1")
}

func TestStatusFailsWhenDocumentsMissing(t *testing.T) {
	root := t.TempDir()

	_, _, err := executeCLI(t, "status", "--dir", root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentMissing)
	assert.Contains(t, err.Error(), "PRD.md")
	assert.Contains(t, err.Error(), filepath.Join(root, "docs"))
}

func TestHistoryWithoutRunsShowsPlaceholder(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := executeCLI(t, "history", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Run History")
	assert.Contains(t, stdout, "No runs recorded yet.")
}

func TestHistoryShowsRecordedRunsNewestFirst(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeJournalFixture(root))

	stdout, _, err := executeCLI(t, "history", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "runs: 2")
	assert.Contains(t, stdout, "completed in")
	assert.Contains(t, stdout, "failed after")
	assert.Contains(t, stdout, "cycle 1: 2 reviews")
	assert.Less(t, strings.Index(stdout, "failed after"), strings.Index(stdout, "completed in"))
}

func TestHistoryLimitKeepsNewestRun(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeJournalFixture(root))

	stdout, _, err := executeCLI(t, "history", "--dir", root, "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "failed after")
	assert.NotContains(t, stdout, "completed in")
}

func TestHistoryJSONOutput(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeJournalFixture(root))

	stdout, _, err := executeCLI(t, "history", "--dir", root, "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Outcome\": \"completed\"")
	assert.Contains(t, stdout, "\"Outcome\": \"failed\"")
}

func TestRunCompletesSingleMilestoneCycle(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeProjectFixture(root, openChecklist))

	fake := newFakeOpencode(t)
	t.Setenv("OCM_SERVER_URL", fake.server.URL)

	stdout, _, err := executeCLI(t, "run", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "outcome=completed cycles=1")
	assert.Contains(t, stdout, "cycle=1 reviews=1")

	plan, err := os.ReadFile(filepath.Join(root, "IMPLEMENTATION_PLAN.md"))
	require.NoError(t, err)
	assert.NotContains(t, string(plan), "[ ]")

	assert.Equal(t, []string{"Milestone 1", "Review", "Commit"}, fake.sessionTitles())
	assert.Equal(t, 3, fake.instanceCount())
	assert.Equal(t, 3, fake.disposedCount())

	commands := fake.commandsRun()
	require.Len(t, commands, 1)
	assert.Equal(t, "review-uncommited", commands[0].Command)
	assert.Equal(t, "plan", commands[0].Agent)
	assert.Equal(t, "anthropic", commands[0].Model.ProviderID)

	prompts := fake.promptTexts()
	require.Len(t, prompts, 3)
	assert.Contains(t, prompts[0], "exactly ONE milestone")
	assert.Contains(t, prompts[1], "check off every task")
	assert.Contains(t, prompts[2], "push")

	stdout, _, err = executeCLI(t, "history", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "runs: 1")
	assert.Contains(t, stdout, "completed in")
}

func TestRunSendsFixPromptsUntilReviewConverges(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeProjectFixture(root, openChecklist))

	fake := newFakeOpencode(t,
		`{"findings": [{"title": "unchecked error", "file": "widget.go"}]}`,
		`{"findings": []}`,
	)
	t.Setenv("OCM_SERVER_URL", fake.server.URL)

	stdout, _, err := executeCLI(t, "run", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "cycle=1 reviews=2")

	prompts := fake.promptTexts()
	require.Len(t, prompts, 4)
	assert.Contains(t, prompts[1], "Address every finding")
	assert.Contains(t, prompts[1], "unchecked error")
}

func TestRunAbortsWhenReviewNeverConverges(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeProjectFixture(root, openChecklist))

	fake := newFakeOpencode(t)
	fake.alwaysReview = `{"findings": [{"title": "always broken"}]}`
	t.Setenv("OCM_SERVER_URL", fake.server.URL)
	t.Setenv("OCM_MAX_REVIEW_ITERATIONS", "2")

	stdout, _, err := executeCLI(t, "run", "--dir", root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReviewLoopLimit)
	assert.Contains(t, stdout, "outcome=failed")

	plan, err := os.ReadFile(filepath.Join(root, "IMPLEMENTATION_PLAN.md"))
	require.NoError(t, err)
	assert.Contains(t, string(plan), "[ ]")

	assert.NotContains(t, fake.sessionTitles(), "Commit")
	assert.Equal(t, fake.instanceCount(), fake.disposedCount())

	stdout, _, err = executeCLI(t, "history", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "failed after")
	assert.Contains(t, stdout, "failure:")
}

func TestRunWithFinishedChecklistNeverTouchesProvider(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeProjectFixture(root, doneChecklist))

	fake := newFakeOpencode(t)
	t.Setenv("OCM_SERVER_URL", fake.server.URL)

	stdout, _, err := executeCLI(t, "run", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "outcome=completed cycles=0")
	assert.Equal(t, 0, fake.instanceCount())
}

func TestRunDrivesEachMilestoneInItsOwnCycle(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeProjectFixture(root, twoMilestoneChecklist))

	fake := newFakeOpencode(t)
	t.Setenv("OCM_SERVER_URL", fake.server.URL)

	stdout, _, err := executeCLI(t, "run", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "outcome=completed cycles=2")

	titles := fake.sessionTitles()
	assert.Contains(t, titles, "Milestone 1")
	assert.Contains(t, titles, "Milestone 2")
	assert.Equal(t, 6, fake.instanceCount())

	plan, err := os.ReadFile(filepath.Join(root, "IMPLEMENTATION_PLAN.md"))
	require.NoError(t, err)
	assert.NotContains(t, string(plan), "[ ]")
}

func TestRunHonorsMaxCyclesFlag(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeProjectFixture(root, twoMilestoneChecklist))

	fake := newFakeOpencode(t)
	t.Setenv("OCM_SERVER_URL", fake.server.URL)

	stdout, _, err := executeCLI(t, "run", "--dir", root, "--max-cycles", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "outcome=completed cycles=1")
	assert.NotContains(t, fake.sessionTitles(), "Milestone 2")

	plan, err := os.ReadFile(filepath.Join(root, "IMPLEMENTATION_PLAN.md"))
	require.NoError(t, err)
	assert.Contains(t, string(plan), "[ ]")
}

func TestReviewCommandReportsCleanVerdict(t *testing.T) {
	root := t.TempDir()

	fake := newFakeOpencode(t)
	t.Setenv("OCM_SERVER_URL", fake.server.URL)

	stdout, _, err := executeCLI(t, "review", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "findings=0")
	assert.Equal(t, []string{"Review"}, fake.sessionTitles())
	assert.Equal(t, 1, fake.disposedCount())
}

func TestReviewCommandPrintsFindingsJSON(t *testing.T) {
	root := t.TempDir()

	fake := newFakeOpencode(t,
		`{"findings": [{"title": "unchecked error", "file": "widget.go"}]}`,
	)
	t.Setenv("OCM_SERVER_URL", fake.server.URL)

	stdout, _, err := executeCLI(t, "review", "--dir", root, "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "unchecked error")
	assert.Contains(t, stdout, "\"findings\"")
}

func TestReviewCommandShowsSpinnerMessage(t *testing.T) {
	root := t.TempDir()

	fake := newFakeOpencode(t)
	fake.commandDelay = 200 * time.Millisecond
	t.Setenv("OCM_SERVER_URL", fake.server.URL)

	_, stderr, err := executeCLI(t, "review", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Running review...")
}

func TestReviewCommandUsesConfiguredCommand(t *testing.T) {
	root := t.TempDir()

	fake := newFakeOpencode(t)
	t.Setenv("OCM_SERVER_URL", fake.server.URL)
	t.Setenv("OCM_REVIEW_COMMAND", "security-review")
	t.Setenv("OCM_REVIEW_COMMAND_ARGS", "--staged")

	_, _, err := executeCLI(t, "review", "--dir", root)
	require.NoError(t, err)

	commands := fake.commandsRun()
	require.Len(t, commands, 1)
	assert.Equal(t, "security-review", commands[0].Command)
	assert.Equal(t, "--staged", commands[0].Arguments)
}

func executeCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// fakeOpencode implements the instance-scoped server routes the provider
// adapter calls. Every session reports idle immediately, review commands
// answer from a queued list of findings payloads, and a mark-tasks prompt
// checks off one task in the project checklist so run loops terminate.
type fakeOpencode struct {
	t      *testing.T
	server *httptest.Server

	alwaysReview string
	commandDelay time.Duration

	mu          sync.Mutex
	reviews     []string
	instanceSeq int
	sessionSeq  int
	directories map[string]string
	sessions    []string
	titles      []string
	prompts     []string
	commands    []fakeCommand
	disposed    []string
}

type fakeCommand struct {
	Command   string `json:"command"`
	Arguments string `json:"arguments"`
	Agent     string `json:"agent"`
	Model     struct {
		ProviderID string `json:"providerID"`
		ModelID    string `json:"modelID"`
	} `json:"model"`
}

func newFakeOpencode(t *testing.T, reviews ...string) *fakeOpencode {
	t.Helper()

	fake := &fakeOpencode{t: t, reviews: reviews, directories: map[string]string{}}

	fake.server = httptest.NewServer(http.HandlerFunc(fake.route))
	t.Cleanup(fake.server.Close)

	return fake
}

// route dispatches the instance-scoped endpoints by hand because the Go 1.21
// ServeMux has no method or wildcard patterns. Wildcard segments are stashed
// in the request context for pathValue.
func (f *fakeOpencode) route(w http.ResponseWriter, r *http.Request) {
	seg := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	var (
		method  string
		handler http.HandlerFunc
	)
	switch {
	case len(seg) == 1 && seg[0] == "instances":
		method, handler = http.MethodPost, f.createInstance
	case len(seg) == 2 && seg[0] == "instances":
		method, handler = http.MethodDelete, f.dispose
	case len(seg) == 3 && seg[0] == "instances" && seg[2] == "sessions":
		method, handler = http.MethodPost, f.createSession
	case len(seg) == 3 && seg[0] == "instances" && seg[2] == "status":
		method, handler = http.MethodGet, f.status
	case len(seg) == 5 && seg[0] == "instances" && seg[2] == "sessions" && seg[4] == "messages":
		method, handler = http.MethodPost, f.prompt
	case len(seg) == 5 && seg[0] == "instances" && seg[2] == "sessions" && seg[4] == "commands":
		method, handler = http.MethodPost, f.command
	default:
		http.NotFound(w, r)
		return
	}

	if r.Method != method {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	if len(seg) >= 2 {
		ctx = context.WithValue(ctx, pathKey("instance"), seg[1])
	}
	if len(seg) >= 4 {
		ctx = context.WithValue(ctx, pathKey("session"), seg[3])
	}
	handler(w, r.WithContext(ctx))
}

type pathKey string

// pathValue replaces (*http.Request).PathValue, which needs Go 1.22.
func pathValue(r *http.Request, name string) string {
	value, _ := r.Context().Value(pathKey(name)).(string)
	return value
}

func (f *fakeOpencode) createInstance(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Directory string `json:"directory"`
	}
	if !assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body)) {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.instanceSeq++
	id := fmt.Sprintf("inst-%d", f.instanceSeq)
	f.directories[id] = body.Directory
	f.mu.Unlock()

	fmt.Fprintf(w, `{"id":%q}`, id)
}

func (f *fakeOpencode) createSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title string `json:"title"`
	}
	if !assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body)) {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.sessionSeq++
	id := fmt.Sprintf("ses-%d", f.sessionSeq)
	f.sessions = append(f.sessions, id)
	f.titles = append(f.titles, body.Title)
	f.mu.Unlock()

	fmt.Fprintf(w, `{"id":%q}`, id)
}

func (f *fakeOpencode) prompt(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	}
	if !assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body)) {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	var text string
	if len(body.Parts) > 0 {
		text = body.Parts[0].Text
	}

	f.mu.Lock()
	f.prompts = append(f.prompts, text)
	directory := f.directories[pathValue(r, "instance")]
	f.mu.Unlock()

	if strings.Contains(text, "check off every task") {
		f.checkOffOneTask(directory)
	}

	fmt.Fprint(w, `{"id":"msg-prompt"}`)
}

func (f *fakeOpencode) command(w http.ResponseWriter, r *http.Request) {
	var body fakeCommand
	if !assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body)) {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if f.commandDelay > 0 {
		time.Sleep(f.commandDelay)
	}

	f.mu.Lock()
	f.commands = append(f.commands, body)
	payload := `{"findings": []}`
	if f.alwaysReview != "" {
		payload = f.alwaysReview
	} else if len(f.reviews) > 0 {
		payload = f.reviews[0]
		f.reviews = f.reviews[1:]
	}
	f.mu.Unlock()

	response := map[string]any{
		"parts": []map[string]any{
			{"type": "text", "text": "Review pass finished.\n\n" + payload},
		},
	}
	assert.NoError(f.t, json.NewEncoder(w).Encode(response))
}

func (f *fakeOpencode) status(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	sessions := make(map[string]string, len(f.sessions))
	for _, id := range f.sessions {
		sessions[id] = "idle"
	}
	f.mu.Unlock()

	assert.NoError(f.t, json.NewEncoder(w).Encode(map[string]any{"sessions": sessions}))
}

func (f *fakeOpencode) dispose(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.disposed = append(f.disposed, pathValue(r, "instance"))
	f.mu.Unlock()

	fmt.Fprint(w, `{}`)
}

// checkOffOneTask flips the first unchecked bullet, standing in for the agent
// marking the milestone it just implemented.
func (f *fakeOpencode) checkOffOneTask(directory string) {
	path := filepath.Join(directory, "IMPLEMENTATION_PLAN.md")

	data, err := os.ReadFile(path)
	if !assert.NoError(f.t, err) {
		return
	}

	updated := strings.Replace(string(data), "[ ]", "[x]", 1)
	assert.NoError(f.t, os.WriteFile(path, []byte(updated), 0o644))
}

func (f *fakeOpencode) sessionTitles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.titles...)
}

func (f *fakeOpencode) promptTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.prompts...)
}

func (f *fakeOpencode) commandsRun() []fakeCommand {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]fakeCommand(nil), f.commands...)
}

func (f *fakeOpencode) instanceCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.instanceSeq
}

func (f *fakeOpencode) disposedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.disposed)
}

func writeProjectFixture(root, checklist string) error {
	files := map[string]string{
		"PRD.md":                 "# Widget Service\n\nShip a widget catalog with an HTTP API.\n",
		"SPEC.md":                "# Design\n\nWidgets live in a store behind a REST surface.\n",
		"IMPLEMENTATION_PLAN.md": checklist,
	}

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
			return err
		}
	}

	return nil
}

func writeJournalFixture(root string) error {
	journalDir := filepath.Join(root, ".ocm")
	if err := os.MkdirAll(journalDir, 0o755); err != nil {
		return err
	}

	journal := `version = 1

[[runs]]
id = "0c6c6dd0-8d95-4d7a-8f3e-1f1e6f0a2b4c"
directory = "/tmp/widget"
started_at = "2026-08-24T10:00:00Z"
finished_at = "2026-08-24T10:12:00Z"
outcome = "completed"

[[runs.cycles]]
record_id = "01K36D8B8NHV5Y8YJ0RCVGJ9KD"
number = 1
review_iterations = 2
started_at = "2026-08-24T10:00:00Z"
finished_at = "2026-08-24T10:12:00Z"

[[runs]]
id = "3b241101-e2bb-4255-8caf-4136c566a962"
directory = "/tmp/widget"
started_at = "2026-08-24T11:00:00Z"
finished_at = "2026-08-24T11:01:00Z"
outcome = "failed"
failure = "review loop iteration limit reached: 20 iterations"
`

	return os.WriteFile(filepath.Join(journalDir, "journal.toml"), []byte(journal), 0o644)
}
