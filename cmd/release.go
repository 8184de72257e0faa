package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var releaseComment string

var releaseCmd = &cobra.Command{
	Use:   "release <release>",
	Short: "Mark a release as released",
	Long: `Mark a release as released. The release must be unreleased and every
issue assigned to it must be closed; otherwise the first open issue is
reported and nothing changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		if err := svc.Release(args[0], releaseComment); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Released %s\n", args[0])
		return nil
	},
}

func init() {
	releaseCmd.Flags().StringVarP(&releaseComment, "comment", "m", "", "changelog comment")
	rootCmd.AddCommand(releaseCmd)
}
