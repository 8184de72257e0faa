// Package infrastructure persists the trackdown project graph as plain
// YAML files: a project file plus one file per issue, all inside the
// project's tracker directory. The format is line-oriented and stable so
// the directory merges cleanly under version control.
package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/trackdown/internal/log"
	"github.com/zjrosen/trackdown/internal/tracker/application"
	domain "github.com/zjrosen/trackdown/internal/tracker/domain"
)

const (
	// DirName is the tracker directory created at the project root.
	DirName = ".trackdown"

	projectFile = "project.yaml"
	issuePrefix = "issue-"
	issueSuffix = ".yaml"
)

// Compile-time check that YAMLStore implements the repository port.
var _ application.ProjectRepository = (*YAMLStore)(nil)

type cachedProject struct {
	project  *domain.Project
	loadedAt time.Time
}

// YAMLStore implements application.ProjectRepository over a directory of
// YAML files. Loads are served from an in-process cache until a file in
// the directory changes, which keeps watch-mode re-renders cheap.
type YAMLStore struct {
	dir   string
	cache *gocache.Cache
}

// NewYAMLStore creates a store rooted at the given tracker directory.
func NewYAMLStore(dir string) *YAMLStore {
	return &YAMLStore{
		dir:   dir,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Dir returns the tracker directory this store reads and writes.
func (s *YAMLStore) Dir() string {
	return s.dir
}

// Create initializes the tracker directory and persists the initial
// project. Fails if a project already exists there.
func (s *YAMLStore) Create(project *domain.Project) error {
	if _, err := os.Stat(filepath.Join(s.dir, projectFile)); err == nil {
		return fmt.Errorf("project already exists in %s", s.dir)
	}
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("creating tracker directory: %w", err)
	}
	return s.Save(project)
}

// Load materializes the project graph. Issues are ordered by creation time
// (ties broken by id) so display-name assignment is deterministic, and
// names are assigned before the project is returned.
func (s *YAMLStore) Load() (*domain.Project, error) {
	stamp, err := s.latestChange()
	if err != nil {
		return nil, err
	}
	if entry, ok := s.cache.Get(s.dir); ok {
		cached := entry.(cachedProject)
		if !stamp.After(cached.loadedAt) {
			log.Debug(log.CatStore, "Serving project from cache", "dir", s.dir)
			return cached.project, nil
		}
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, projectFile))
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	var pm projectModel
	if err := yaml.Unmarshal(raw, &pm); err != nil {
		return nil, fmt.Errorf("parsing project file: %w", err)
	}
	project := pm.toDomain()

	issueFiles, err := filepath.Glob(filepath.Join(s.dir, issuePrefix+"*"+issueSuffix))
	if err != nil {
		return nil, fmt.Errorf("listing issue files: %w", err)
	}
	for _, path := range issueFiles {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading issue file %s: %w", filepath.Base(path), err)
		}
		var im issueModel
		if err := yaml.Unmarshal(raw, &im); err != nil {
			return nil, fmt.Errorf("parsing issue file %s: %w", filepath.Base(path), err)
		}
		project.Issues = append(project.Issues, im.toDomain())
	}

	sort.SliceStable(project.Issues, func(a, b int) bool {
		ia, ib := project.Issues[a], project.Issues[b]
		if !ia.CreationTime.Equal(ib.CreationTime) {
			return ia.CreationTime.Before(ib.CreationTime)
		}
		return ia.ID < ib.ID
	})
	project.AssignIssueNames()

	s.cache.Set(s.dir, cachedProject{project: project, loadedAt: time.Now()}, gocache.DefaultExpiration)
	log.Debug(log.CatStore, "Loaded project", "dir", s.dir, "issues", len(project.Issues))
	return project, nil
}

// Save persists the project graph. It validates uniqueness invariants,
// renumbers display names, rewrites free-text cross-references to stable
// placeholders, then writes every file atomically (temp file + rename).
// Issue files whose issue no longer exists are removed.
func (s *YAMLStore) Save(project *domain.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	project.AssignIssueNames()
	for _, issue := range project.Issues {
		issue.BeforeSerialize(project)
	}

	data, err := yaml.Marshal(toProjectModel(project))
	if err != nil {
		return fmt.Errorf("encoding project: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(s.dir, projectFile), data); err != nil {
		return fmt.Errorf("writing project file: %w", err)
	}

	keep := make(map[string]bool, len(project.Issues))
	for _, issue := range project.Issues {
		data, err := yaml.Marshal(toIssueModel(issue))
		if err != nil {
			return fmt.Errorf("encoding issue %s: %w", issue.ID, err)
		}
		name := issuePrefix + issue.ID + issueSuffix
		if err := writeFileAtomic(filepath.Join(s.dir, name), data); err != nil {
			return fmt.Errorf("writing issue file %s: %w", name, err)
		}
		keep[name] = true
	}

	// Drop files for issues that no longer exist.
	stale, err := filepath.Glob(filepath.Join(s.dir, issuePrefix+"*"+issueSuffix))
	if err != nil {
		return fmt.Errorf("listing issue files: %w", err)
	}
	for _, path := range stale {
		if !keep[filepath.Base(path)] {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("removing stale issue file: %w", err)
			}
			log.Debug(log.CatStore, "Removed stale issue file", "file", filepath.Base(path))
		}
	}

	s.cache.Set(s.dir, cachedProject{project: project, loadedAt: time.Now()}, gocache.DefaultExpiration)
	log.Info(log.CatStore, "Saved project", "dir", s.dir, "issues", len(project.Issues))
	return nil
}

// latestChange returns the newest modification time among the store's
// files.
func (s *YAMLStore) latestChange() (time.Time, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return time.Time{}, fmt.Errorf("reading tracker directory: %w", err)
	}
	var latest time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), issueSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	return latest, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0640); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
