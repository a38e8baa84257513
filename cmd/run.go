package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/opencode-milestone-cli/internal/adapters/render/summary"
	"github.com/bnema/opencode-milestone-cli/internal/application"
)

func newRunCmd(app *app) *cobra.Command {
	var dir string
	var maxCycles int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive milestone cycles until the implementation plan is done",
		Long:  "run resolves the project documents, then repeats the implement/review/commit cycle against the opencode server until the implementation plan has no unchecked tasks left. Any failed phase aborts the run; rerunning resumes from the checklist.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, err := app.projectFor(dir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			docs, err := application.ResolveDocuments(project.cfg.WorkingRoot)
			if err != nil {
				return err
			}

			orchestrator := application.NewOrchestrator(
				project.provider,
				project.journal,
				app.clock,
				settingsFrom(project.cfg, maxCycles),
				project.logger,
			)

			record, runErr := orchestrator.Run(cmd.Context(), docs, project.cfg.WorkingRoot)

			renderer := summary.New(isTerminal(cmd.OutOrStdout()))
			if _, err := fmt.Fprint(cmd.OutOrStdout(), renderer.Run(record)); err != nil {
				return err
			}

			return runErr
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Project directory (defaults to the current directory)")
	cmd.Flags().IntVar(&maxCycles, "max-cycles", 0, "Stop after this many cycles even if tasks remain (0 keeps going)")

	return cmd
}
