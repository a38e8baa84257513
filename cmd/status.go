package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	overviewadapter "github.com/bnema/opencode-milestone-cli/internal/adapters/render/overview"
	"github.com/bnema/opencode-milestone-cli/internal/application"
	"github.com/bnema/opencode-milestone-cli/internal/domain"
)

func newStatusCmd(app *app) *cobra.Command {
	var dir string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show resolved documents, checklist progress and the last run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, err := app.projectFor(dir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			docs, err := application.ResolveDocuments(project.cfg.WorkingRoot)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(docs.Checklist)
			if err != nil {
				return fmt.Errorf("read checklist: %w", err)
			}
			unchecked, checked := domain.TaskCounts(string(data))

			records, err := project.journal.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("load run history: %w", err)
			}

			var lastRun *domain.RunRecord
			if len(records) > 0 {
				lastRun = &records[len(records)-1]
			}

			overview := overviewadapter.Overview{
				Directory: project.cfg.WorkingRoot,
				ServerURL: project.cfg.ServerURL,
				PRD:       docs.PRD,
				Spec:      docs.Spec,
				Checklist: docs.Checklist,
				Unchecked: unchecked,
				Checked:   checked,
				LastRun:   lastRun,
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(overview)
			}

			rendered, err := app.overviewRenderer(overview)
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Project directory (defaults to the current directory)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit machine readable JSON")

	return cmd
}
