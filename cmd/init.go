package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zjrosen/trackdown/internal/paths"
	"github.com/zjrosen/trackdown/internal/tracker/application"
	domain "github.com/zjrosen/trackdown/internal/tracker/domain"
	"github.com/zjrosen/trackdown/internal/tracker/infrastructure"
)

var initComponents []string

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Create a new project in the current directory",
	Long: `Create a .trackdown directory holding a new project. The project name
defaults to the name of the enclosing directory, and a component of the
same name is always created; issues can be tracked against further
components added with --component or later with add-component.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringArrayVar(&initComponents, "component", nil,
		"additional component to track issues under (repeatable)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	base := dirFlag
	if base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		base = cwd
	}

	name := filepath.Base(base)
	if len(args) == 1 {
		name = args[0]
	}

	project := &domain.Project{
		Name:       name,
		Version:    application.Version,
		Components: []*domain.Component{{Name: name}},
	}
	for _, extra := range initComponents {
		if extra == name {
			continue
		}
		project.Components = append(project.Components, &domain.Component{Name: extra})
	}
	if err := project.Validate(); err != nil {
		return err
	}

	store := infrastructure.NewYAMLStore(paths.ResolveTrackerDir(base))
	if err := store.Create(project); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created project %q in %s\n", name, store.Dir())
	return nil
}
