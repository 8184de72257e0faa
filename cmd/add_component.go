package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addComponentCmd = &cobra.Command{
	Use:   "add-component <name>",
	Short: "Add a component to the project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		if err := svc.AddComponent(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added component %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addComponentCmd)
}
