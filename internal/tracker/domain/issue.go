package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the issue lifecycle state.
type Status string

const (
	StatusUnstarted  Status = "unstarted"
	StatusInProgress Status = "in_progress"
	StatusPaused     Status = "paused"
	StatusClosed     Status = "closed"
)

// Disposition is the resolution reason recorded when an issue is closed.
// It is empty exactly as long as the issue is open.
type Disposition string

const (
	DispositionNone    Disposition = ""
	DispositionFixed   Disposition = "fixed"
	DispositionWontfix Disposition = "wontfix"
	DispositionReorg   Disposition = "reorg"
)

// IssueType categorizes the nature of work.
type IssueType string

const (
	TypeBugfix  IssueType = "bugfix"
	TypeFeature IssueType = "feature"
)

// statusRank orders issues for display: active work first, closed last.
var statusRank = map[Status]int{
	StatusInProgress: 0,
	StatusPaused:     1,
	StatusUnstarted:  2,
	StatusClosed:     3,
}

// statusWidget is the single-character glyph shown next to an issue.
var statusWidget = map[Status]string{
	StatusUnstarted:  "_",
	StatusInProgress: ">",
	StatusPaused:     "=",
	StatusClosed:     "x",
}

var statusStrings = map[Status]string{
	StatusInProgress: "in progress",
}

var dispositionStrings = map[Disposition]string{
	DispositionWontfix: "won't fix",
	DispositionReorg:   "reorganized",
}

// Issue is a unit of tracked work with a lifecycle status, an optional
// disposition, and a free-text description that may cross-reference other
// issues.
//
// ID is assigned once at creation and never changes. Name is a derived
// display label; only the owning Project writes it, via AssignIssueNames.
type Issue struct {
	Title        string
	Desc         string
	Type         IssueType
	Component    string
	Release      string // empty means unassigned
	Reporter     string
	Status       Status
	Disposition  Disposition
	CreationTime time.Time
	References   []string
	ID           string
	Name         string
	Log          ChangeLog
}

// MakeID produces the issue's permanent opaque identifier: a SHA-1 digest
// over the current time, a random value, and the issue's creation-time
// fields, rendered as lowercase hex. Called exactly once, at creation.
func MakeID(creationTime time.Time, reporter, title, desc string) string {
	material := strings.Join([]string{
		timeNow().String(),
		uuid.NewString(),
		creationTime.String(),
		reporter,
		title,
		desc,
	}, "\n")
	sum := sha1.Sum([]byte(material))
	return hex.EncodeToString(sum[:])
}

// Closed reports whether the issue has been closed.
func (i *Issue) Closed() bool { return i.Status == StatusClosed }

// Open reports whether the issue is still open (not closed).
func (i *Issue) Open() bool { return !i.Closed() }

// InProgress reports whether work on the issue is in progress.
func (i *Issue) InProgress() bool { return i.Status == StatusInProgress }

// Bug reports whether the issue is a bugfix.
func (i *Issue) Bug() bool { return i.Type == TypeBugfix }

// Feature reports whether the issue is a feature.
func (i *Issue) Feature() bool { return i.Type == TypeFeature }

// SortKey returns the default ordering key: status rank first (active work
// before closed), creation time as the tie breaker.
func (i *Issue) SortKey() (int, time.Time) {
	return statusRank[i.Status], i.CreationTime
}

// StatusWidget returns the single-character glyph for the issue's status.
func (i *Issue) StatusWidget() string {
	return statusWidget[i.Status]
}

// StatusString returns the human-readable status label.
func (i *Issue) StatusString() string {
	if s, ok := statusStrings[i.Status]; ok {
		return s
	}
	return string(i.Status)
}

// DispositionString returns the human-readable disposition label.
func (i *Issue) DispositionString() string {
	if s, ok := dispositionStrings[i.Disposition]; ok {
		return s
	}
	return string(i.Disposition)
}

// StartWork moves the issue into in_progress.
func (i *Issue) StartWork(actor, comment string) error {
	return i.changeStatus(StatusInProgress, actor, comment)
}

// StopWork pauses an in-progress issue. Fails with NotInProgressError if
// work is not currently in progress.
func (i *Issue) StopWork(actor, comment string) error {
	if i.Status != StatusInProgress {
		return &NotInProgressError{Status: i.Status}
	}
	return i.changeStatus(StatusPaused, actor, comment)
}

// ChangeStatus moves the issue to a different non-closed status, logging
// the transition. It is the sole mutator of Status outside Close.
func (i *Issue) ChangeStatus(to Status, actor, comment string) error {
	return i.changeStatus(to, actor, comment)
}

func (i *Issue) changeStatus(to Status, actor, comment string) error {
	if _, ok := statusRank[to]; !ok {
		return &UnknownStatusError{Status: to}
	}
	if i.Status == to {
		return &AlreadySetError{Status: to}
	}
	i.Log.log("changed status from "+string(i.Status)+" to "+string(to), actor, comment)
	i.Status = to
	return nil
}

// Close closes the issue with the given disposition. Closing is permitted
// from any status; only the disposition is validated.
func (i *Issue) Close(disp Disposition, actor, comment string) error {
	switch disp {
	case DispositionFixed, DispositionWontfix, DispositionReorg:
	default:
		return &UnknownDispositionError{Disposition: disp}
	}
	i.Log.log("closed issue with disposition "+string(disp), actor, comment)
	i.Status = StatusClosed
	i.Disposition = disp
	return nil
}

// FieldChanges carries candidate values for the user-editable issue fields.
type FieldChanges struct {
	Title    string
	Desc     string
	Reporter string
}

// Change applies any differing fields from changes and logs a single entry
// naming everything that changed. Reports whether anything changed; when
// nothing differs, no log entry is written.
func (i *Issue) Change(changes FieldChanges, actor, comment string) bool {
	var what []string
	if i.Title != changes.Title {
		what = append(what, "changed title")
		i.Title = changes.Title
	}
	if i.Desc != changes.Desc {
		what = append(what, "changed description")
		i.Desc = changes.Desc
	}
	if i.Reporter != changes.Reporter {
		what = append(what, "changed reporter")
		i.Reporter = changes.Reporter
	}
	if len(what) == 0 {
		return false
	}
	i.Log.log(strings.Join(what, ", "), actor, comment)
	return true
}

// AssignToRelease assigns the issue to a release. The assignment is logged
// and applied unconditionally, even when the issue is already assigned to
// that release.
func (i *Issue) AssignToRelease(release *Release, actor, comment string) {
	from := i.Release
	if from == "" {
		from = "unassigned"
	}
	i.Log.log("assigned to release "+release.Name+" from "+from, actor, comment)
	i.Release = release.Name
}

// Unassign removes the issue from its release. Fails with NotAssignedError
// if the issue is not assigned to one.
func (i *Issue) Unassign(actor, comment string) error {
	if i.Release == "" {
		return &NotAssignedError{Issue: i.Name}
	}
	i.Log.log("unassigned from release "+i.Release, actor, comment)
	i.Release = ""
	return nil
}

var placeholderPattern = regexp.MustCompile(`\{issue \w+\}`)

// BeforeSerialize rewrites every whole-word occurrence of another issue's
// display name inside Desc into a "{issue <id>}" placeholder. Stored
// cross-references are thereby keyed by immutable id and survive display
// name renumbering. The persistence layer calls this immediately before
// writing.
func (i *Issue) BeforeSerialize(project *Project) {
	desc := i.Desc
	for _, other := range project.Issues {
		if other.Name == "" {
			continue
		}
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(other.Name) + `\b`)
		desc = pattern.ReplaceAllString(desc, "{issue "+other.ID+"}")
	}
	i.Desc = desc
}

// InterpolatedDesc renders Desc for display, replacing each "{issue <id>}"
// placeholder with the resolving issue's current display name, or with the
// renderer's output when one is supplied. Placeholders that resolve against
// none of the given issues render as "[unknown issue]".
func (i *Issue) InterpolatedDesc(issues []*Issue, renderer func(*Issue) string) string {
	desc := i.Desc
	for _, other := range issues {
		replacement := other.Name
		if renderer != nil {
			replacement = renderer(other)
		}
		desc = strings.ReplaceAll(desc, "{issue "+other.ID+"}", replacement)
	}
	return placeholderPattern.ReplaceAllString(desc, "[unknown issue]")
}
