package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedIssue(name, release string) *Issue {
	issue := newTestIssue(name)
	issue.Name = name
	issue.Release = release
	issue.Status = StatusClosed
	issue.Disposition = DispositionFixed
	return issue
}

func openIssue(name, release string) *Issue {
	issue := newTestIssue(name)
	issue.Name = name
	issue.Release = release
	return issue
}

func TestRelease_Predicates(t *testing.T) {
	rel := NewRelease("1.0")
	assert.True(t, rel.Unreleased())
	assert.False(t, rel.Released())
	assert.Nil(t, rel.ReleaseTime)
}

func TestRelease_IssuesFrom(t *testing.T) {
	rel := NewRelease("1.0")
	project := &Project{
		Releases: []*Release{rel},
		Issues: []*Issue{
			openIssue("core-1", "1.0"),
			openIssue("core-2", ""),
			openIssue("core-3", "1.0"),
		},
	}

	issues := rel.IssuesFrom(project)
	require.Len(t, issues, 2)
	assert.Equal(t, "core-1", issues[0].Name)
	assert.Equal(t, "core-3", issues[1].Name)
}

func TestRelease_Release(t *testing.T) {
	at := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	freezeClock(t, at)

	rel := NewRelease("1.0")
	project := &Project{
		Releases: []*Release{rel},
		Issues:   []*Issue{closedIssue("core-1", "1.0")},
	}

	err := rel.Release(project, "Alice <a@example.com>", "ship it")
	require.NoError(t, err)

	assert.Equal(t, ReleaseReleased, rel.Status)
	require.NotNil(t, rel.ReleaseTime)
	assert.Equal(t, at, *rel.ReleaseTime)
	require.Equal(t, 1, rel.Log.Len())
	entry := rel.Log.Entries()[0]
	assert.Equal(t, "released", entry.Description)
	assert.Equal(t, "Alice <a@example.com>", entry.Actor)
	assert.Equal(t, "ship it", entry.Comment)
}

func TestRelease_Release_OpenIssue(t *testing.T) {
	rel := NewRelease("1.0")
	project := &Project{
		Releases: []*Release{rel},
		Issues: []*Issue{
			closedIssue("core-1", "1.0"),
			openIssue("core-2", "1.0"),
			openIssue("core-3", "1.0"),
		},
	}

	err := rel.Release(project, "a", "")
	var open *OpenIssueError
	require.ErrorAs(t, err, &open)
	assert.Equal(t, "1.0", open.Release)
	assert.Equal(t, "core-2", open.Issue, "names the first open issue in iteration order")

	// Failed release leaves the release untouched.
	assert.Equal(t, ReleaseUnreleased, rel.Status)
	assert.Nil(t, rel.ReleaseTime)
	assert.Equal(t, 0, rel.Log.Len())
}

func TestRelease_Release_AlreadyReleased(t *testing.T) {
	rel := NewRelease("1.0")
	project := &Project{Releases: []*Release{rel}}
	require.NoError(t, rel.Release(project, "a", ""))

	err := rel.Release(project, "a", "")
	var already *AlreadyReleasedError
	require.ErrorAs(t, err, &already)
	assert.Equal(t, "1.0", already.Release)
	assert.Equal(t, 1, rel.Log.Len(), "failed release must not log")
}

// Released() agrees with ReleaseTime presence before and after every
// operation.
func TestRelease_TimeInvariant(t *testing.T) {
	rel := NewRelease("1.0")
	project := &Project{
		Releases: []*Release{rel},
		Issues:   []*Issue{openIssue("core-1", "1.0")},
	}
	check := func() {
		t.Helper()
		assert.Equal(t, rel.Released(), rel.ReleaseTime != nil)
	}

	check()
	require.Error(t, rel.Release(project, "a", "")) // open issue
	check()
	require.NoError(t, project.Issues[0].Close(DispositionFixed, "a", ""))
	require.NoError(t, rel.Release(project, "a", ""))
	check()
	require.Error(t, rel.Release(project, "a", "")) // already released
	check()
}
