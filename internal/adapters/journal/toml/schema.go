package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int         `toml:"version"`
	Runs    []runSchema `toml:"runs,omitempty"`
}

type runSchema struct {
	ID         string        `toml:"id"`
	Directory  string        `toml:"directory"`
	StartedAt  string        `toml:"started_at"`
	FinishedAt string        `toml:"finished_at"`
	Outcome    string        `toml:"outcome"`
	Failure    string        `toml:"failure,omitempty"`
	Cycles     []cycleSchema `toml:"cycles,omitempty"`
}

type cycleSchema struct {
	RecordID         string `toml:"record_id"`
	Number           int    `toml:"number"`
	ReviewIterations int    `toml:"review_iterations"`
	StartedAt        string `toml:"started_at"`
	FinishedAt       string `toml:"finished_at"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s *fileSchema) validateVersion() error {
	if s.Version != currentSchemaVersion {
		return fmt.Errorf("unsupported journal schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
