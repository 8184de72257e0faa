package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/trackdown/internal/tracker/application"
	domain "github.com/zjrosen/trackdown/internal/tracker/domain"
)

var (
	addTitle     string
	addDesc      string
	addType      string
	addComponent string
	addRelease   string
	addComment   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new issue",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "issue title (required)")
	addCmd.Flags().StringVarP(&addDesc, "desc", "d", "", "issue description; may reference other issues by name")
	addCmd.Flags().StringVar(&addType, "type", "bugfix", "issue type: bugfix or feature")
	addCmd.Flags().StringVarP(&addComponent, "component", "c", "", "component (default: the project's only component)")
	addCmd.Flags().StringVarP(&addRelease, "release", "r", "", "release to assign the issue to")
	addCmd.Flags().StringVarP(&addComment, "comment", "m", "", "changelog comment")
	_ = addCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	issueType := domain.IssueType(addType)
	if issueType != domain.TypeBugfix && issueType != domain.TypeFeature {
		return fmt.Errorf("unknown issue type %q (want bugfix or feature)", addType)
	}

	svc, err := openService()
	if err != nil {
		return err
	}
	name, err := svc.CreateIssue(application.NewIssue{
		Title:     addTitle,
		Desc:      addDesc,
		Type:      issueType,
		Component: addComponent,
		Release:   addRelease,
	}, addComment)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added issue %s\n", name)
	return nil
}
