package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/opencode-milestone-cli/internal/adapters/render/summary"
	"github.com/bnema/opencode-milestone-cli/internal/application"
	"github.com/bnema/opencode-milestone-cli/internal/domain"
)

func newReviewCmd(app *app) *cobra.Command {
	var dir string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Run a single review pass and print the findings",
		Long:  "review acquires a throwaway opencode instance, runs the configured review command against the project directory, and prints the findings payload. The project is left untouched.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, err := app.projectFor(dir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			reviewer := application.NewReviewer(
				project.provider,
				application.NewPoller(app.clock),
				settingsFrom(project.cfg, 0),
				project.logger,
			)

			var result domain.ReviewResult
			review := func(ctx context.Context) error {
				var reviewErr error
				result, reviewErr = reviewer.Review(ctx, project.cfg.WorkingRoot)
				return reviewErr
			}

			if err := runReviewSpinner(cmd.Context(), cmd.ErrOrStderr(), review); err != nil {
				return err
			}

			if asJSON {
				payload, err := result.Indent()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), payload)
				return err
			}

			verdict, err := summary.New(isTerminal(cmd.OutOrStdout())).Review(result)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), verdict)
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Project directory (defaults to the current directory)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw findings payload as JSON")

	return cmd
}
