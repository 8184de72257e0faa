package cmd

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/zjrosen/trackdown/internal/log"
	"github.com/zjrosen/trackdown/internal/report"
)

var (
	todoAll   bool
	todoWatch bool
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "List open work, grouped by release",
	RunE:  runTodo,
}

func init() {
	todoCmd.Flags().BoolVarP(&todoAll, "all", "a", false, "include released releases and closed issues")
	todoCmd.Flags().BoolVarP(&todoWatch, "watch", "w", false, "re-render whenever the issue database changes")
	rootCmd.AddCommand(todoCmd)
}

func runTodo(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	render := func() error {
		project, err := svc.Project()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), report.Todo(project, todoAll, report.DefaultWidth))
		return nil
	}

	if err := render(); err != nil {
		return err
	}
	if !todoWatch {
		return nil
	}
	dir, err := trackerDir()
	if err != nil {
		return err
	}
	return watchAndRender(dir, render)
}

// watchAndRender blocks, re-rendering after every change to the tracker
// directory, until the watcher fails.
func watchAndRender(dir string, render func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	log.Info(log.CatWatch, "Watching for changes", "dir", dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug(log.CatWatch, "Change detected", "file", event.Name, "op", event.Op.String())
			if err := render(); err != nil {
				log.ErrorErr(log.CatWatch, "Failed to re-render", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
}
