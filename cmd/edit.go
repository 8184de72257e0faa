package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/zjrosen/trackdown/internal/tracker/domain"
)

var (
	editTitle    string
	editDesc     string
	editReporter string
	editComment  string
)

var editCmd = &cobra.Command{
	Use:   "edit <issue>",
	Short: "Edit an issue's title, description or reporter",
	Long: `Edit the user-editable fields of an issue. Only flags that are given
change anything; a single changelog entry names every field that
actually differed, and an edit that changes nothing logs nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	editCmd.Flags().StringVarP(&editDesc, "desc", "d", "", "new description")
	editCmd.Flags().StringVar(&editReporter, "reporter", "", "new reporter")
	editCmd.Flags().StringVarP(&editComment, "comment", "m", "", "changelog comment")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}

	// Unspecified flags keep the current values.
	project, err := svc.Project()
	if err != nil {
		return err
	}
	issue, err := project.IssueFor(args[0])
	if err != nil {
		return err
	}
	changes := domain.FieldChanges{
		Title:    issue.Title,
		Desc:     issue.Desc,
		Reporter: issue.Reporter,
	}
	if cmd.Flags().Changed("title") {
		changes.Title = editTitle
	}
	if cmd.Flags().Changed("desc") {
		changes.Desc = editDesc
	}
	if cmd.Flags().Changed("reporter") {
		changes.Reporter = editReporter
	}

	changed, err := svc.EditIssue(args[0], changes, editComment)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintf(cmd.OutOrStdout(), "Nothing changed on %s\n", args[0])
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Edited %s\n", args[0])
	return nil
}
