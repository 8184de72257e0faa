package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unassignComment string

var unassignCmd = &cobra.Command{
	Use:   "unassign <issue>",
	Short: "Remove an issue from its release",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		if err := svc.Unassign(args[0], unassignComment); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Unassigned %s\n", args[0])
		return nil
	},
}

func init() {
	unassignCmd.Flags().StringVarP(&unassignComment, "comment", "m", "", "changelog comment")
	rootCmd.AddCommand(unassignCmd)
}
