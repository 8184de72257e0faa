package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/trackdown/internal/report"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog <release>",
	Short: "Show a release's changelog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		project, err := svc.Project()
		if err != nil {
			return err
		}
		release, err := project.ReleaseFor(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), report.Changelog(release, project))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(changelogCmd)
}
