package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/trackdown/internal/report"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize each release's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		project, err := svc.Project()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), report.Status(project))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
