package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/zjrosen/trackdown/internal/tracker/domain"
)

func reportProject(t *testing.T) *domain.Project {
	t.Helper()
	project := &domain.Project{
		Name:       "widget",
		Version:    "0.5",
		Components: []*domain.Component{{Name: "widget"}},
		Releases:   []*domain.Release{domain.NewRelease("1.0")},
	}
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	add := func(title, release string, status domain.Status) *domain.Issue {
		issue := &domain.Issue{
			Title:        title,
			Desc:         "about " + title,
			Type:         domain.TypeBugfix,
			Component:    "widget",
			Release:      release,
			Reporter:     "Alice <alice@example.com>",
			Status:       status,
			CreationTime: base.Add(time.Duration(len(project.Issues)) * time.Hour),
		}
		issue.ID = domain.MakeID(issue.CreationTime, issue.Reporter, title, issue.Desc)
		if status == domain.StatusClosed {
			issue.Disposition = domain.DispositionFixed
		}
		project.Issues = append(project.Issues, issue)
		return issue
	}
	add("crash on start", "1.0", domain.StatusInProgress)
	add("slow render", "1.0", domain.StatusClosed)
	add("backlog item", "", domain.StatusUnstarted)
	project.AssignIssueNames()
	return project
}

func TestTodo(t *testing.T) {
	project := reportProject(t)

	out := Todo(project, false, DefaultWidth)

	assert.Contains(t, out, "Version 1.0")
	assert.Contains(t, out, "crash on start")
	assert.Contains(t, out, "slow render")
	assert.Contains(t, out, "Unassigned")
	assert.Contains(t, out, "backlog item")

	// Active work sorts before closed work within the release section.
	crash := strings.Index(out, "crash on start")
	slow := strings.Index(out, "slow render")
	assert.Less(t, crash, slow)
}

func TestTodo_ReleasedHiddenUnlessAll(t *testing.T) {
	project := reportProject(t)
	for _, issue := range project.Issues {
		if issue.Release != "" && issue.Open() {
			require.NoError(t, issue.Close(domain.DispositionFixed, "a", ""))
		}
	}
	rel := project.Releases[0]
	require.NoError(t, rel.Release(project, "a", ""))

	assert.NotContains(t, Todo(project, false, DefaultWidth), "Version 1.0")
	out := Todo(project, true, DefaultWidth)
	assert.Contains(t, out, "Version 1.0")
	assert.Contains(t, out, "released")
}

func TestTodo_TruncatesLongTitles(t *testing.T) {
	project := reportProject(t)
	project.Issues[0].Title = strings.Repeat("long ", 40)

	out := Todo(project, false, 40)
	for line := range strings.Lines(out) {
		assert.LessOrEqual(t, len([]rune(strings.TrimRight(line, "\n"))), 42)
	}
}

func TestStatus(t *testing.T) {
	project := reportProject(t)

	out := Status(project)

	assert.Contains(t, out, "1.0:")
	assert.Contains(t, out, "unassigned:")
	assert.Contains(t, out, "1/ 2 bugfixes")
}

func TestChangelog(t *testing.T) {
	project := reportProject(t)
	rel := project.Releases[0]
	rel.Log.Append(domain.LogEntry{
		Time:        time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Actor:       "Alice <alice@example.com>",
		Comment:     "kick off",
		Description: "created",
	})

	out := Changelog(rel, project)

	assert.Contains(t, out, "Version 1.0")
	assert.Contains(t, out, "created")
	assert.Contains(t, out, "kick off")
	assert.Contains(t, out, "slow render")
	assert.Contains(t, out, "[fixed]")
	assert.NotContains(t, out, "crash on start", "open issues do not appear in the changelog")
}

func TestShowIssue(t *testing.T) {
	project := reportProject(t)
	issue := project.Issues[0]
	require.NoError(t, issue.StopWork("Alice <alice@example.com>", "pausing for review"))

	out := ShowIssue(issue, project, DefaultWidth)

	assert.Contains(t, out, issue.Name+": crash on start")
	assert.Contains(t, out, "bugfix")
	assert.Contains(t, out, "paused")
	assert.Contains(t, out, "widget")
	assert.Contains(t, out, issue.ID)
	assert.Contains(t, out, "about crash on start")
	assert.Contains(t, out, "changed status from in_progress to paused")
	assert.Contains(t, out, "pausing for review")
}

func TestShowIssue_InterpolatesReferences(t *testing.T) {
	project := reportProject(t)
	target := project.Issues[1]
	issue := project.Issues[0]
	issue.Desc = "duplicate of {issue " + target.ID + "} and {issue 0000}"

	out := ShowIssue(issue, project, DefaultWidth)

	assert.Contains(t, out, "duplicate of "+target.Name)
	assert.Contains(t, out, "[unknown issue]")
}
