package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var startComment string

var startCmd = &cobra.Command{
	Use:   "start <issue>",
	Short: "Start work on an issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		if err := svc.StartWork(args[0], startComment); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Started work on %s\n", args[0])
		return nil
	},
}

func init() {
	startCmd.Flags().StringVarP(&startComment, "comment", "m", "", "changelog comment")
	rootCmd.AddCommand(startCmd)
}
