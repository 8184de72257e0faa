// Package report renders project state for the terminal: the todo list,
// per-release status summaries, changelogs and single-issue views.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	domain "github.com/zjrosen/trackdown/internal/tracker/domain"
)

// DefaultWidth is used when the caller has no terminal width to offer.
const DefaultWidth = 80

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)

	statusStyles = map[domain.Status]lipgloss.Style{
		domain.StatusUnstarted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#BBBBBB")),
		domain.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("#54A0FF")),
		domain.StatusPaused:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A623")),
		domain.StatusClosed:     lipgloss.NewStyle().Foreground(lipgloss.Color("#73F59F")),
	}
)

func widget(issue *domain.Issue) string {
	return statusStyles[issue.Status].Render(issue.StatusWidget())
}

// Todo renders the work queue: one section per unreleased release plus the
// unassigned backlog. With all set, released releases are included too.
// Closed issues only appear under releases, never in the backlog.
func Todo(project *domain.Project, all bool, width int) string {
	var b strings.Builder

	for _, release := range project.Releases {
		if release.Released() && !all {
			continue
		}
		label := "unreleased"
		if release.Released() {
			label = "released " + release.ReleaseTime.Format("2006-01-02")
		}
		fmt.Fprintf(&b, "%s\n", headerStyle.Render("Version "+release.Name)+dimStyle.Render(" ("+label+")"))
		writeIssueLines(&b, project.IssuesForRelease(release), width)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s\n", headerStyle.Render("Unassigned")+dimStyle.Render(" (no release)"))
	var backlog []*domain.Issue
	for _, issue := range project.UnassignedIssues() {
		if issue.Open() || all {
			backlog = append(backlog, issue)
		}
	}
	writeIssueLines(&b, backlog, width)

	return b.String()
}

func writeIssueLines(b *strings.Builder, issues []*domain.Issue, width int) {
	if len(issues) == 0 {
		b.WriteString(dimStyle.Render("  (none)") + "\n")
		return
	}
	issues = append([]*domain.Issue(nil), issues...)
	domain.SortIssues(issues)

	nameWidth := 0
	for _, issue := range issues {
		if w := runewidth.StringWidth(issue.Name); w > nameWidth {
			nameWidth = w
		}
	}
	widths := columnWidths([]Column{
		{Width: 1},
		{Width: nameWidth},
		{MinWidth: 10},
	}, width-2)

	for _, issue := range issues {
		fmt.Fprintf(b, "  %s %s %s\n",
			widget(issue),
			fit(issue.Name+":", widths[1]+1),
			fit(issue.Title, widths[2]))
	}
}

// Status renders a one-line summary per release: a glyph bar of its
// issues plus closed/total counts split by bugfixes and features.
func Status(project *domain.Project) string {
	var b strings.Builder
	sections := make([]struct {
		name   string
		issues []*domain.Issue
	}, 0, len(project.Releases)+1)

	for _, release := range project.Releases {
		sections = append(sections, struct {
			name   string
			issues []*domain.Issue
		}{release.Name, project.IssuesForRelease(release)})
	}
	sections = append(sections, struct {
		name   string
		issues []*domain.Issue
	}{"unassigned", project.UnassignedIssues()})

	nameWidth := 0
	for _, s := range sections {
		if w := runewidth.StringWidth(s.name); w > nameWidth {
			nameWidth = w
		}
	}

	for _, s := range sections {
		bugs, features, closed := 0, 0, 0
		var bar strings.Builder
		issues := append([]*domain.Issue(nil), s.issues...)
		domain.SortIssues(issues)
		for _, issue := range issues {
			if issue.Bug() {
				bugs++
			}
			if issue.Feature() {
				features++
			}
			if issue.Closed() {
				closed++
			}
			bar.WriteString(widget(issue))
		}
		fmt.Fprintf(&b, "%s %2d/%2d bugfixes, %d features  %s\n",
			fit(s.name+":", nameWidth+1), closed, len(issues), features, bar.String())
	}
	return b.String()
}

// Changelog renders a release's audit trail followed by a line per closed
// issue assigned to it, with each issue's disposition.
func Changelog(release *domain.Release, project *domain.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headerStyle.Render("Version "+release.Name))
	for _, entry := range release.Log.Entries() {
		writeLogEntry(&b, entry)
	}
	for _, issue := range project.IssuesForRelease(release) {
		if !issue.Closed() {
			continue
		}
		fmt.Fprintf(&b, "  %s %s: %s [%s]\n",
			widget(issue), issue.Name, issue.Title, issue.DispositionString())
	}
	return b.String()
}

// ShowIssue renders a full single-issue view: fields, the interpolated
// description wrapped to the given width, and the changelog.
func ShowIssue(issue *domain.Issue, project *domain.Project, width int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", headerStyle.Render(issue.Name+": "+issue.Title))
	writeField(&b, "Type", string(issue.Type))
	status := issue.StatusString()
	if issue.Closed() {
		status += ": " + issue.DispositionString()
	}
	writeField(&b, "Status", widget(issue)+" "+status)
	writeField(&b, "Component", issue.Component)
	release := issue.Release
	if release == "" {
		release = "unassigned"
	}
	writeField(&b, "Release", release)
	writeField(&b, "Reporter", issue.Reporter)
	writeField(&b, "Created", issue.CreationTime.Format("2006-01-02 15:04"))
	writeField(&b, "Identifier", issue.ID)

	desc := issue.InterpolatedDesc(project.Issues, nil)
	if strings.TrimSpace(desc) != "" {
		b.WriteString("\n")
		b.WriteString(wordwrap.String(desc, width))
		b.WriteString("\n")
	}

	if issue.Log.Len() > 0 {
		b.WriteString("\n" + headerStyle.Render("Event log") + "\n")
		for _, entry := range issue.Log.Entries() {
			writeLogEntry(&b, entry)
		}
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", dimStyle.Render(fit(label+":", 12)), value)
}

func writeLogEntry(b *strings.Builder, entry domain.LogEntry) {
	fmt.Fprintf(b, "  %s  %s: %s\n",
		dimStyle.Render(entry.Time.Format("2006-01-02 15:04")),
		entry.Actor, entry.Description)
	if entry.Comment != "" {
		fmt.Fprintf(b, "      %s\n", dimStyle.Render("> "+entry.Comment))
	}
}
