package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment <issue> <text>",
	Short: "Add a comment to an issue's changelog",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		if err := svc.CommentOnIssue(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Commented on %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commentCmd)
}
