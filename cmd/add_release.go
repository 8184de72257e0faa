package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addReleaseComment string

var addReleaseCmd = &cobra.Command{
	Use:   "add-release <name>",
	Short: "Add an unreleased release to the project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		if err := svc.AddRelease(args[0], addReleaseComment); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added release %s\n", args[0])
		return nil
	},
}

func init() {
	addReleaseCmd.Flags().StringVarP(&addReleaseComment, "comment", "m", "", "changelog comment")
	rootCmd.AddCommand(addReleaseCmd)
}
