package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/zjrosen/trackdown/internal/tracker/domain"
)

// memoryRepository keeps the project graph in memory, honoring the
// repository contract of renumbering display names on load.
type memoryRepository struct {
	project *domain.Project
	saves   int
}

func (r *memoryRepository) Load() (*domain.Project, error) {
	r.project.AssignIssueNames()
	return r.project, nil
}

func (r *memoryRepository) Save(project *domain.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	r.project = project
	r.saves++
	return nil
}

func newTestService() (*Service, *memoryRepository) {
	repo := &memoryRepository{
		project: &domain.Project{
			Name:       "demo",
			Version:    Version,
			Components: []*domain.Component{{Name: "demo"}},
			Releases:   []*domain.Release{domain.NewRelease("1.0")},
		},
	}
	user := domain.Config{Name: "Alice", Email: "alice@example.com"}
	svc := NewService(repo, user)
	svc.clock = func() time.Time {
		return time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	}
	return svc, repo
}

func TestService_CreateIssue(t *testing.T) {
	svc, repo := newTestService()

	name, err := svc.CreateIssue(NewIssue{
		Title: "crash on start",
		Desc:  "boom",
		Type:  domain.TypeBugfix,
	}, "found it this morning")
	require.NoError(t, err)
	assert.Equal(t, "demo-1", name)
	assert.Equal(t, 1, repo.saves)

	issue, err := repo.project.IssueFor("demo-1")
	require.NoError(t, err)
	assert.Equal(t, "demo", issue.Component, "defaults to the sole component")
	assert.Equal(t, "Alice <alice@example.com>", issue.Reporter)
	assert.Equal(t, domain.StatusUnstarted, issue.Status)
	assert.NotEmpty(t, issue.ID)
	require.Equal(t, 1, issue.Log.Len())
	entry := issue.Log.Entries()[0]
	assert.Equal(t, "created", entry.Description)
	assert.Equal(t, "found it this morning", entry.Comment)
}

func TestService_CreateIssue_UnknownComponent(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.CreateIssue(NewIssue{Title: "x", Component: "nope"}, "")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 0, repo.saves)
}

func TestService_CreateIssue_AmbiguousComponent(t *testing.T) {
	svc, repo := newTestService()
	repo.project.Components = append(repo.project.Components, &domain.Component{Name: "ui"})

	_, err := svc.CreateIssue(NewIssue{Title: "x"}, "")
	require.Error(t, err)
	assert.Equal(t, 0, repo.saves)
}

func TestService_CreateIssue_UnknownRelease(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateIssue(NewIssue{Title: "x", Release: "9.9"}, "")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestService_AddComponent(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.AddComponent("ui"))
	require.Len(t, repo.project.Components, 2)

	err := svc.AddComponent("ui")
	var dup *domain.DuplicateNameError
	require.ErrorAs(t, err, &dup)
}

func TestService_AddRelease(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.AddRelease("2.0", "planning ahead"))
	rel, err := repo.project.ReleaseFor("2.0")
	require.NoError(t, err)
	assert.True(t, rel.Unreleased())
	require.Equal(t, 1, rel.Log.Len())
	assert.Equal(t, "created", rel.Log.Entries()[0].Description)

	err = svc.AddRelease("2.0", "")
	var dup *domain.DuplicateNameError
	require.ErrorAs(t, err, &dup)
}

// A rejected add must leave the loaded graph untouched: the repository
// hands out the same project instance on every load, so appending before
// the collision check would poison every later operation.
func TestService_RejectedAddLeavesProjectUsable(t *testing.T) {
	svc, repo := newTestService()
	name, err := svc.CreateIssue(NewIssue{Title: "survivor"}, "")
	require.NoError(t, err)

	var dup *domain.DuplicateNameError
	err = svc.AddComponent("demo")
	require.ErrorAs(t, err, &dup)
	require.Len(t, repo.project.Components, 1)

	err = svc.AddRelease("1.0", "")
	require.ErrorAs(t, err, &dup)
	require.Len(t, repo.project.Releases, 1)

	require.NoError(t, svc.StartWork(name, ""))
	require.NoError(t, svc.Validate())
}

func TestService_WorkCycle(t *testing.T) {
	svc, repo := newTestService()
	name, err := svc.CreateIssue(NewIssue{Title: "cycle"}, "")
	require.NoError(t, err)

	require.NoError(t, svc.StartWork(name, ""))
	issue, err := repo.project.IssueFor(name)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, issue.Status)

	require.NoError(t, svc.StopWork(name, "lunch"))
	assert.Equal(t, domain.StatusPaused, issue.Status)

	require.NoError(t, svc.CloseIssue(name, domain.DispositionFixed, "done"))
	assert.Equal(t, domain.StatusClosed, issue.Status)
	assert.Equal(t, domain.DispositionFixed, issue.Disposition)
}

func TestService_StopWork_NotInProgress(t *testing.T) {
	svc, _ := newTestService()
	name, err := svc.CreateIssue(NewIssue{Title: "idle"}, "")
	require.NoError(t, err)

	err = svc.StopWork(name, "")
	var notInProgress *domain.NotInProgressError
	require.ErrorAs(t, err, &notInProgress)
}

func TestService_EditIssue(t *testing.T) {
	svc, repo := newTestService()
	name, err := svc.CreateIssue(NewIssue{Title: "old", Desc: "d"}, "")
	require.NoError(t, err)
	savesBefore := repo.saves

	changed, err := svc.EditIssue(name, domain.FieldChanges{
		Title:    "new",
		Desc:     "d",
		Reporter: "Alice <alice@example.com>",
	}, "")
	require.NoError(t, err)
	assert.True(t, changed)
	issue, err := repo.project.IssueFor(name)
	require.NoError(t, err)
	assert.Equal(t, "new", issue.Title)
	assert.Equal(t, savesBefore+1, repo.saves)
}

func TestService_CommentOnIssue(t *testing.T) {
	svc, repo := newTestService()
	name, err := svc.CreateIssue(NewIssue{Title: "talkative"}, "")
	require.NoError(t, err)

	require.NoError(t, svc.CommentOnIssue(name, "me too"))
	issue, err := repo.project.IssueFor(name)
	require.NoError(t, err)
	entries := issue.Log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "commented", entries[1].Description)
	assert.Equal(t, "me too", entries[1].Comment)
}

func TestService_ReleaseFlow(t *testing.T) {
	svc, repo := newTestService()
	name, err := svc.CreateIssue(NewIssue{Title: "ship me"}, "")
	require.NoError(t, err)

	require.NoError(t, svc.AssignToRelease(name, "1.0", ""))
	issue, err := repo.project.IssueFor(name)
	require.NoError(t, err)
	assert.Equal(t, "1.0", issue.Release)

	// Open issue blocks the release.
	err = svc.Release("1.0", "")
	var open *domain.OpenIssueError
	require.ErrorAs(t, err, &open)
	assert.Equal(t, name, open.Issue)

	require.NoError(t, svc.CloseIssue(name, domain.DispositionFixed, ""))
	require.NoError(t, svc.Release("1.0", "ship it"))

	rel, err := repo.project.ReleaseFor("1.0")
	require.NoError(t, err)
	assert.True(t, rel.Released())

	err = svc.Release("1.0", "")
	var already *domain.AlreadyReleasedError
	require.ErrorAs(t, err, &already)
}

func TestService_Unassign(t *testing.T) {
	svc, repo := newTestService()
	name, err := svc.CreateIssue(NewIssue{Title: "wanderer", Release: "1.0"}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Unassign(name, ""))
	issue, err := repo.project.IssueFor(name)
	require.NoError(t, err)
	assert.Equal(t, "", issue.Release)

	err = svc.Unassign(name, "")
	var notAssigned *domain.NotAssignedError
	require.ErrorAs(t, err, &notAssigned)
}

func TestService_Validate(t *testing.T) {
	svc, repo := newTestService()
	require.NoError(t, svc.Validate())

	repo.project.Releases = append(repo.project.Releases, domain.NewRelease("1.0"))
	var dup *domain.DuplicateNameError
	require.ErrorAs(t, svc.Validate(), &dup)
}
