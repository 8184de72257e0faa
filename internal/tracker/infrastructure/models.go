package infrastructure

import (
	"time"

	domain "github.com/zjrosen/trackdown/internal/tracker/domain"
)

// Persistence models mirror the domain types with yaml tags. Display names
// are deliberately absent: they are derived state, recomputed on every
// load.

type projectModel struct {
	Name       string           `yaml:"name"`
	Version    string           `yaml:"version"`
	Components []componentModel `yaml:"components"`
	Releases   []releaseModel   `yaml:"releases"`
}

type componentModel struct {
	Name string `yaml:"name"`
}

type releaseModel struct {
	Name        string          `yaml:"name"`
	Status      string          `yaml:"status"`
	ReleaseTime *time.Time      `yaml:"release_time,omitempty"`
	Log         []logEntryModel `yaml:"log,omitempty"`
}

type issueModel struct {
	ID           string          `yaml:"id"`
	Title        string          `yaml:"title"`
	Desc         string          `yaml:"desc"`
	Type         string          `yaml:"type"`
	Component    string          `yaml:"component"`
	Release      string          `yaml:"release,omitempty"`
	Reporter     string          `yaml:"reporter"`
	Status       string          `yaml:"status"`
	Disposition  string          `yaml:"disposition,omitempty"`
	CreationTime time.Time       `yaml:"creation_time"`
	References   []string        `yaml:"references,omitempty"`
	Log          []logEntryModel `yaml:"log,omitempty"`
}

type logEntryModel struct {
	Time        time.Time `yaml:"time"`
	Actor       string    `yaml:"actor"`
	Comment     string    `yaml:"comment,omitempty"`
	Description string    `yaml:"description"`
}

func toProjectModel(p *domain.Project) projectModel {
	model := projectModel{
		Name:       p.Name,
		Version:    p.Version,
		Components: make([]componentModel, 0, len(p.Components)),
		Releases:   make([]releaseModel, 0, len(p.Releases)),
	}
	for _, c := range p.Components {
		model.Components = append(model.Components, componentModel{Name: c.Name})
	}
	for _, r := range p.Releases {
		model.Releases = append(model.Releases, releaseModel{
			Name:        r.Name,
			Status:      string(r.Status),
			ReleaseTime: r.ReleaseTime,
			Log:         toLogModels(r.Log.Entries()),
		})
	}
	return model
}

func (m projectModel) toDomain() *domain.Project {
	project := &domain.Project{
		Name:    m.Name,
		Version: m.Version,
	}
	for _, c := range m.Components {
		project.Components = append(project.Components, &domain.Component{Name: c.Name})
	}
	for _, r := range m.Releases {
		release := &domain.Release{
			Name:        r.Name,
			Status:      domain.ReleaseStatus(r.Status),
			ReleaseTime: r.ReleaseTime,
		}
		appendLogEntries(&release.Log, r.Log)
		project.Releases = append(project.Releases, release)
	}
	return project
}

func toIssueModel(i *domain.Issue) issueModel {
	return issueModel{
		ID:           i.ID,
		Title:        i.Title,
		Desc:         i.Desc,
		Type:         string(i.Type),
		Component:    i.Component,
		Release:      i.Release,
		Reporter:     i.Reporter,
		Status:       string(i.Status),
		Disposition:  string(i.Disposition),
		CreationTime: i.CreationTime,
		References:   i.References,
		Log:          toLogModels(i.Log.Entries()),
	}
}

func (m issueModel) toDomain() *domain.Issue {
	issue := &domain.Issue{
		ID:           m.ID,
		Title:        m.Title,
		Desc:         m.Desc,
		Type:         domain.IssueType(m.Type),
		Component:    m.Component,
		Release:      m.Release,
		Reporter:     m.Reporter,
		Status:       domain.Status(m.Status),
		Disposition:  domain.Disposition(m.Disposition),
		CreationTime: m.CreationTime,
		References:   m.References,
	}
	appendLogEntries(&issue.Log, m.Log)
	return issue
}

func toLogModels(entries []domain.LogEntry) []logEntryModel {
	out := make([]logEntryModel, 0, len(entries))
	for _, e := range entries {
		out = append(out, logEntryModel(e))
	}
	return out
}

func appendLogEntries(log *domain.ChangeLog, models []logEntryModel) {
	for _, m := range models {
		log.Append(domain.LogEntry(m))
	}
}
