package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var assignComment string

var assignCmd = &cobra.Command{
	Use:   "assign <issue> <release>",
	Short: "Assign an issue to a release",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		if err := svc.AssignToRelease(args[0], args[1], assignComment); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s to release %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	assignCmd.Flags().StringVarP(&assignComment, "comment", "m", "", "changelog comment")
	rootCmd.AddCommand(assignCmd)
}
