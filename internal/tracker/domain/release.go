package domain

import "time"

// ReleaseStatus represents the release lifecycle state.
type ReleaseStatus string

const (
	ReleaseUnreleased ReleaseStatus = "unreleased"
	ReleaseReleased   ReleaseStatus = "released"
)

// Release is a named milestone that issues can be assigned to. A release
// moves from unreleased to released exactly once; there is no reverse
// transition. ReleaseTime is non-nil iff Status is released.
type Release struct {
	Name        string
	Status      ReleaseStatus
	ReleaseTime *time.Time
	Log         ChangeLog
}

// NewRelease returns an unreleased release with the given name.
func NewRelease(name string) *Release {
	return &Release{Name: name, Status: ReleaseUnreleased}
}

// Released reports whether the release has been released.
func (r *Release) Released() bool { return r.Status == ReleaseReleased }

// Unreleased reports whether the release is still unreleased.
func (r *Release) Unreleased() bool { return !r.Released() }

// IssuesFrom returns the project's issues assigned to this release.
func (r *Release) IssuesFrom(project *Project) []*Issue {
	var out []*Issue
	for _, i := range project.Issues {
		if i.Release == r.Name {
			out = append(out, i)
		}
	}
	return out
}

// Release marks the release as released. It fails with
// AlreadyReleasedError if already released, and with OpenIssueError (naming
// the first open issue in iteration order) if any issue assigned to it is
// still open. On success it stamps ReleaseTime and logs "released". The
// assigned issues themselves are not touched.
func (r *Release) Release(project *Project, actor, comment string) error {
	if r.Released() {
		return &AlreadyReleasedError{Release: r.Name}
	}
	for _, i := range r.IssuesFrom(project) {
		if i.Open() {
			return &OpenIssueError{Release: r.Name, Issue: i.Name}
		}
	}
	now := timeNow()
	r.ReleaseTime = &now
	r.Status = ReleaseReleased
	r.Log.log("released", actor, comment)
	return nil
}
