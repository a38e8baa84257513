package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/viper"
	"golang.org/x/term"

	tomljournal "github.com/bnema/opencode-milestone-cli/internal/adapters/journal/toml"
	historyadapter "github.com/bnema/opencode-milestone-cli/internal/adapters/render/history"
	overviewadapter "github.com/bnema/opencode-milestone-cli/internal/adapters/render/overview"
	"github.com/bnema/opencode-milestone-cli/internal/adapters/provider/opencode"
	"github.com/bnema/opencode-milestone-cli/internal/application"
	"github.com/bnema/opencode-milestone-cli/internal/config"
	"github.com/bnema/opencode-milestone-cli/internal/domain"
	"github.com/bnema/opencode-milestone-cli/internal/logging"
	"github.com/bnema/opencode-milestone-cli/internal/ports"
)

// app bundles the wiring every command shares. The constructor and renderer
// fields exist so tests can swap adapters without touching the commands.
type app struct {
	workingRoot string
	clock       ports.Clock

	newProvider func(serverURL string) ports.SessionProvider
	newJournal  func(path string) (ports.RunJournal, error)

	historyRenderer  func([]domain.RunRecord, historyadapter.RenderOptions) (string, error)
	overviewRenderer func(overviewadapter.Overview) (string, error)
}

func wireApp() (*app, error) {
	workingRoot, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	return &app{
		workingRoot: workingRoot,
		clock:       ports.SystemClock{},
		newProvider: func(serverURL string) ports.SessionProvider {
			return opencode.NewProvider(serverURL, nil)
		},
		newJournal: func(path string) (ports.RunJournal, error) {
			return tomljournal.NewJournal(path)
		},
		historyRenderer:  historyadapter.Render,
		overviewRenderer: overviewadapter.Render,
	}, nil
}

// project is the per-invocation wiring. Configuration loads only after flag
// parsing because --dir decides which project's .ocm directory applies.
type project struct {
	cfg      config.Config
	logger   *slog.Logger
	provider ports.SessionProvider
	journal  ports.RunJournal
}

func (a *app) projectFor(dir string, logWriter io.Writer) (*project, error) {
	root := a.workingRoot
	if dir != "" {
		root = dir
	}

	cfg, err := config.Load(viper.New(), root)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger := logging.New(logWriter, logging.Options{
		Level:  cfg.LogLevel,
		Format: logging.Format(cfg.LogFormat),
	})

	journal, err := a.newJournal(cfg.JournalPath)
	if err != nil {
		return nil, fmt.Errorf("wire run journal: %w", err)
	}

	return &project{
		cfg:      cfg,
		logger:   logger,
		provider: a.newProvider(cfg.ServerURL),
		journal:  journal,
	}, nil
}

func settingsFrom(cfg config.Config, maxCycles int) application.Settings {
	return application.Settings{
		ReviewCommand:       cfg.ReviewCommand,
		ReviewCommandArgs:   cfg.ReviewCommandArgs,
		ReviewTimeout:       cfg.ReviewTimeout,
		SessionTimeout:      cfg.SessionTimeout,
		PollInterval:        cfg.PollInterval,
		MaxReviewIterations: cfg.MaxReviewIterations,
		MaxCycles:           maxCycles,
		Work:                cfg.Profiles.Work,
		Review:              cfg.Profiles.Review,
		Commit:              cfg.Profiles.Commit,
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
