package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ocm",
		Short:         "Milestone loop for opencode: implement, review, commit, repeat",
		Long:          "ocm drives an opencode agent through a project checklist one milestone at a time: it prompts the agent to implement the next milestone, loops code review until no findings remain, has the agent check off finished tasks, and commits each cycle in a separate cheap session.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newStatusCmd(app),
		newHistoryCmd(app),
		newReviewCmd(app),
	)

	return rootCmd
}
