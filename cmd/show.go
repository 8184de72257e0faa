package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/trackdown/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show <issue>",
	Short: "Show an issue's fields, description and changelog",
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
		issue, err := project.IssueFor(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), report.ShowIssue(issue, project, report.DefaultWidth))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
