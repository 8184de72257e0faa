package domain

import "fmt"

// AlreadyReleasedError indicates an attempt to release a release that has
// already been released.
type AlreadyReleasedError struct {
	Release string
}

// Error implements the error interface.
func (e *AlreadyReleasedError) Error() string {
	return fmt.Sprintf("release %q already released", e.Release)
}

// OpenIssueError indicates that a release cannot be released because at
// least one issue assigned to it is still open. Issue names the first
// offending issue in iteration order.
type OpenIssueError struct {
	Release string
	Issue   string
}

// Error implements the error interface.
func (e *OpenIssueError) Error() string {
	return fmt.Sprintf("open issue %s must be reassigned before releasing %q", e.Issue, e.Release)
}

// UnknownStatusError indicates a status transition to a value outside the
// recognized status set.
type UnknownStatusError struct {
	Status Status
}

// Error implements the error interface.
func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown status %q", string(e.Status))
}

// AlreadySetError indicates a status transition to the issue's current
// status.
type AlreadySetError struct {
	Status Status
}

// Error implements the error interface.
func (e *AlreadySetError) Error() string {
	return fmt.Sprintf("already marked as %s", string(e.Status))
}

// NotInProgressError indicates a stop-work request on an issue that is not
// currently in progress.
type NotInProgressError struct {
	Status Status
}

// Error implements the error interface.
func (e *NotInProgressError) Error() string {
	return fmt.Sprintf("work is not in progress (status is %s)", string(e.Status))
}

// UnknownDispositionError indicates a close request with a disposition
// outside the recognized disposition set.
type UnknownDispositionError struct {
	Disposition Disposition
}

// Error implements the error interface.
func (e *UnknownDispositionError) Error() string {
	return fmt.Sprintf("unknown disposition %q", string(e.Disposition))
}

// NotAssignedError indicates an unassign request on an issue that is not
// assigned to any release.
type NotAssignedError struct {
	Issue string
}

// Error implements the error interface.
func (e *NotAssignedError) Error() string {
	return fmt.Sprintf("issue %s is not assigned to a release", e.Issue)
}

// DuplicateNameError indicates that two components or two releases within
// the same project share a name. Kind is "component" or "release".
type DuplicateNameError struct {
	Kind string
	Name string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("more than one %s named %q", e.Kind, e.Name)
}

// NotFoundError indicates a by-name lookup on the project that matched
// nothing. Kind is "issue", "component" or "release".
type NotFoundError struct {
	Kind string
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("project has no %s with name %q", e.Kind, e.Name)
}
