package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/zjrosen/trackdown/internal/tracker/domain"
)

var (
	closeDisposition string
	closeComment     string
)

var closeCmd = &cobra.Command{
	Use:   "close <issue>",
	Short: "Close an issue with a disposition",
	Long: `Close an issue, recording why: fixed, wontfix or reorg. Closing is
allowed from any status; the issue does not have to be in progress.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		disp := domain.Disposition(closeDisposition)
		if err := svc.CloseIssue(args[0], disp, closeComment); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Closed %s (%s)\n", args[0], closeDisposition)
		return nil
	},
}

func init() {
	closeCmd.Flags().StringVar(&closeDisposition, "disposition", "fixed", "resolution: fixed, wontfix or reorg")
	closeCmd.Flags().StringVarP(&closeComment, "comment", "m", "", "changelog comment")
	rootCmd.AddCommand(closeCmd)
}
