package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stopComment string

var stopCmd = &cobra.Command{
	Use:   "stop <issue>",
	Short: "Pause work on an in-progress issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		if err := svc.StopWork(args[0], stopComment); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Paused work on %s\n", args[0])
		return nil
	},
}

func init() {
	stopCmd.Flags().StringVarP(&stopComment, "comment", "m", "", "changelog comment")
	rootCmd.AddCommand(stopCmd)
}
