// Package toml persists run records in a single TOML journal file. Writes
// replace the file atomically so a crash mid-write never corrupts history.
package toml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
	"github.com/bnema/opencode-milestone-cli/internal/ports"
)

const tempFilePattern = ".journal-*.toml"

var (
	pathLocksMu sync.Mutex
	pathLocks   = map[string]*sync.RWMutex{}
)

// lockForPath returns a process-wide lock shared by every Journal bound to
// the same file.
func lockForPath(path string) *sync.RWMutex {
	pathLocksMu.Lock()
	defer pathLocksMu.Unlock()

	lock, ok := pathLocks[path]
	if !ok {
		lock = &sync.RWMutex{}
		pathLocks[path] = lock
	}

	return lock
}

// Journal is an append-only TOML-backed run journal. The orchestrator only
// ever appends; reads serve the history command.
type Journal struct {
	path string
	lock *sync.RWMutex
}

var _ ports.RunJournal = (*Journal)(nil)

func NewJournal(path string) (*Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is not configured")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve journal path: %w", err)
	}

	return &Journal{path: abs, lock: lockForPath(abs)}, nil
}

func (j *Journal) Append(ctx context.Context, record domain.RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	j.lock.Lock()
	defer j.lock.Unlock()

	schema, err := j.readSchema()
	if err != nil {
		return err
	}

	schema.Runs = append(schema.Runs, toSchema(record))

	return j.writeSchema(schema)
}

func (j *Journal) List(ctx context.Context) ([]domain.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	j.lock.RLock()
	defer j.lock.RUnlock()

	schema, err := j.readSchema()
	if err != nil {
		return nil, err
	}

	records := make([]domain.RunRecord, 0, len(schema.Runs))
	for _, run := range schema.Runs {
		record, err := fromSchema(run)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (j *Journal) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			schema := fileSchema{}
			schema.applyDefaults()
			return schema, nil
		}
		return fileSchema{}, fmt.Errorf("read journal file: %w", err)
	}

	var schema fileSchema
	if err := gotoml.Unmarshal(data, &schema); err != nil {
		return fileSchema{}, fmt.Errorf("parse journal file: %w", err)
	}

	schema.applyDefaults()
	if err := schema.validateVersion(); err != nil {
		return fileSchema{}, err
	}

	return schema, nil
}

func (j *Journal) writeSchema(schema fileSchema) error {
	dir := filepath.Dir(j.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}

	data, err := gotoml.Marshal(schema)
	if err != nil {
		return fmt.Errorf("encode journal file: %w", err)
	}

	temp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp journal file: %w", err)
	}

	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(temp.Name())
		}
	}()

	if err := temp.Chmod(0o600); err != nil {
		_ = temp.Close()
		return fmt.Errorf("chmod temp journal file: %w", err)
	}

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		return fmt.Errorf("write temp journal file: %w", err)
	}

	if err := temp.Close(); err != nil {
		return fmt.Errorf("close temp journal file: %w", err)
	}

	if err := os.Rename(temp.Name(), j.path); err != nil {
		return fmt.Errorf("replace journal file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(record domain.RunRecord) runSchema {
	run := runSchema{
		ID:         record.ID,
		Directory:  record.Directory,
		StartedAt:  formatTime(record.StartedAt),
		FinishedAt: formatTime(record.FinishedAt),
		Outcome:    string(record.Outcome),
		Failure:    record.Failure,
	}

	for _, cycle := range record.Cycles {
		run.Cycles = append(run.Cycles, cycleSchema{
			RecordID:         cycle.RecordID,
			Number:           cycle.Number,
			ReviewIterations: cycle.ReviewIterations,
			StartedAt:        formatTime(cycle.StartedAt),
			FinishedAt:       formatTime(cycle.FinishedAt),
		})
	}

	return run
}

func fromSchema(run runSchema) (domain.RunRecord, error) {
	startedAt, err := parseTime(run.StartedAt)
	if err != nil {
		return domain.RunRecord{}, fmt.Errorf("run %s: parse started_at: %w", run.ID, err)
	}
	finishedAt, err := parseTime(run.FinishedAt)
	if err != nil {
		return domain.RunRecord{}, fmt.Errorf("run %s: parse finished_at: %w", run.ID, err)
	}

	record := domain.RunRecord{
		ID:         run.ID,
		Directory:  run.Directory,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Outcome:    domain.RunOutcome(run.Outcome),
		Failure:    run.Failure,
	}

	for _, cycle := range run.Cycles {
		cycleStarted, err := parseTime(cycle.StartedAt)
		if err != nil {
			return domain.RunRecord{}, fmt.Errorf("cycle %s: parse started_at: %w", cycle.RecordID, err)
		}
		cycleFinished, err := parseTime(cycle.FinishedAt)
		if err != nil {
			return domain.RunRecord{}, fmt.Errorf("cycle %s: parse finished_at: %w", cycle.RecordID, err)
		}

		record.Cycles = append(record.Cycles, domain.CycleRecord{
			RecordID:         cycle.RecordID,
			Number:           cycle.Number,
			ReviewIterations: cycle.ReviewIterations,
			StartedAt:        cycleStarted,
			FinishedAt:       cycleFinished,
		})
	}

	return record, nil
}

func formatTime(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}

	return ts.UTC().Format(time.RFC3339)
}

func parseTime(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}

	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}

	return ts, nil
}
