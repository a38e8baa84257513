package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	historyadapter "github.com/bnema/opencode-milestone-cli/internal/adapters/render/history"
)

func newHistoryCmd(app *app) *cobra.Command {
	var dir string
	var asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, err := app.projectFor(dir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			records, err := project.journal.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("load run history: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}

			rendered, err := app.historyRenderer(records, historyadapter.RenderOptions{Limit: limit})
			if err != nil {
				return fmt.Errorf("render history: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Project directory (defaults to the current directory)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit machine readable JSON")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many runs (0 shows all)")

	return cmd
}
