package application

import (
	"fmt"
	"time"

	domain "github.com/zjrosen/trackdown/internal/tracker/domain"
)

// Version is recorded on newly created projects.
const Version = "0.5"

// NewIssue carries the caller-supplied fields for issue creation. Component
// may be empty when the project has exactly one component; Release may be
// empty for an unassigned issue.
type NewIssue struct {
	Title     string
	Desc      string
	Type      domain.IssueType
	Component string
	Release   string
}

// Service exposes the user-level operations the CLI drives. Each mutating
// method loads the project, applies the operation, and saves the result;
// the actor recorded on changelog entries is the configured user identity.
type Service struct {
	repo  ProjectRepository
	user  domain.Config
	clock func() time.Time
}

// NewService creates a service around the given repository and user
// identity.
func NewService(repo ProjectRepository, user domain.Config) *Service {
	return &Service{repo: repo, user: user, clock: time.Now}
}

// Project loads the current project graph for read-only use (reports,
// lookups).
func (s *Service) Project() (*domain.Project, error) {
	return s.repo.Load()
}

// User returns the actor string recorded on logged changes.
func (s *Service) User() string {
	return s.user.User()
}

// mutate runs fn against a freshly loaded project and persists the result.
// fn errors abort before anything is written.
func (s *Service) mutate(fn func(*domain.Project) error) error {
	project, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}
	if err := fn(project); err != nil {
		return err
	}
	if err := s.repo.Save(project); err != nil {
		return fmt.Errorf("saving project: %w", err)
	}
	return nil
}

// CreateIssue builds a new issue from the caller-supplied fields, fills in
// the generated fields (creation time, reporter, id), appends it to the
// project and logs "created". It returns the assigned display name.
func (s *Service) CreateIssue(params NewIssue, comment string) (string, error) {
	var name string
	err := s.mutate(func(project *domain.Project) error {
		component := params.Component
		if component == "" {
			if len(project.Components) != 1 {
				return fmt.Errorf("project has %d components, one must be named", len(project.Components))
			}
			component = project.Components[0].Name
		} else if _, err := project.ComponentFor(component); err != nil {
			return err
		}
		if params.Release != "" {
			if _, err := project.ReleaseFor(params.Release); err != nil {
				return err
			}
		}

		now := s.clock()
		issue := &domain.Issue{
			Title:        params.Title,
			Desc:         params.Desc,
			Type:         params.Type,
			Component:    component,
			Release:      params.Release,
			Reporter:     s.user.User(),
			Status:       domain.StatusUnstarted,
			CreationTime: now,
			ID:           domain.MakeID(now, s.user.User(), params.Title, params.Desc),
		}
		issue.Log.Append(domain.LogEntry{
			Time:        now,
			Actor:       s.user.User(),
			Comment:     comment,
			Description: "created",
		})
		project.Issues = append(project.Issues, issue)
		project.AssignIssueNames()
		name = issue.Name
		return nil
	})
	return name, err
}

// AddComponent adds a component, rejecting duplicate names. The collision
// check runs before the project is touched, so a rejected add leaves the
// loaded graph unchanged.
func (s *Service) AddComponent(name string) error {
	return s.mutate(func(project *domain.Project) error {
		if _, err := project.ComponentFor(name); err == nil {
			return &domain.DuplicateNameError{Kind: "component", Name: name}
		}
		project.Components = append(project.Components, &domain.Component{Name: name})
		return nil
	})
}

// AddRelease adds an unreleased release and logs "created" on it,
// rejecting duplicate names. As with AddComponent, the collision check
// runs before anything is mutated.
func (s *Service) AddRelease(name, comment string) error {
	return s.mutate(func(project *domain.Project) error {
		if _, err := project.ReleaseFor(name); err == nil {
			return &domain.DuplicateNameError{Kind: "release", Name: name}
		}
		release := domain.NewRelease(name)
		release.Log.Append(domain.LogEntry{
			Time:        s.clock(),
			Actor:       s.user.User(),
			Comment:     comment,
			Description: "created",
		})
		project.Releases = append(project.Releases, release)
		return nil
	})
}

// StartWork moves the named issue into in_progress.
func (s *Service) StartWork(issueName, comment string) error {
	return s.withIssue(issueName, func(issue *domain.Issue) error {
		return issue.StartWork(s.user.User(), comment)
	})
}

// StopWork pauses work on the named issue.
func (s *Service) StopWork(issueName, comment string) error {
	return s.withIssue(issueName, func(issue *domain.Issue) error {
		return issue.StopWork(s.user.User(), comment)
	})
}

// CloseIssue closes the named issue with the given disposition.
func (s *Service) CloseIssue(issueName string, disp domain.Disposition, comment string) error {
	return s.withIssue(issueName, func(issue *domain.Issue) error {
		return issue.Close(disp, s.user.User(), comment)
	})
}

// EditIssue applies field edits to the named issue. Reports whether
// anything actually changed.
func (s *Service) EditIssue(issueName string, changes domain.FieldChanges, comment string) (bool, error) {
	var changed bool
	err := s.withIssue(issueName, func(issue *domain.Issue) error {
		changed = issue.Change(changes, s.user.User(), comment)
		return nil
	})
	return changed, err
}

// CommentOnIssue appends a "commented" entry to the issue's changelog.
func (s *Service) CommentOnIssue(issueName, comment string) error {
	return s.withIssue(issueName, func(issue *domain.Issue) error {
		issue.Log.Append(domain.LogEntry{
			Time:        s.clock(),
			Actor:       s.user.User(),
			Comment:     comment,
			Description: "commented",
		})
		return nil
	})
}

// AssignToRelease assigns the named issue to the named release.
func (s *Service) AssignToRelease(issueName, releaseName, comment string) error {
	return s.mutate(func(project *domain.Project) error {
		issue, err := project.IssueFor(issueName)
		if err != nil {
			return err
		}
		release, err := project.ReleaseFor(releaseName)
		if err != nil {
			return err
		}
		issue.AssignToRelease(release, s.user.User(), comment)
		return nil
	})
}

// Unassign removes the named issue from its release.
func (s *Service) Unassign(issueName, comment string) error {
	return s.withIssue(issueName, func(issue *domain.Issue) error {
		return issue.Unassign(s.user.User(), comment)
	})
}

// Release marks the named release as released, provided all of its issues
// are closed.
func (s *Service) Release(releaseName, comment string) error {
	return s.mutate(func(project *domain.Project) error {
		release, err := project.ReleaseFor(releaseName)
		if err != nil {
			return err
		}
		return release.Release(project, s.user.User(), comment)
	})
}

// Validate checks the project's uniqueness invariants without mutating
// anything.
func (s *Service) Validate() error {
	project, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}
	return project.Validate()
}

func (s *Service) withIssue(issueName string, fn func(*domain.Issue) error) error {
	return s.mutate(func(project *domain.Project) error {
		issue, err := project.IssueFor(issueName)
		if err != nil {
			return err
		}
		return fn(issue)
	})
}
