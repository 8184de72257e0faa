package domain

import (
	"sort"
	"strconv"
)

// Project is the aggregate root: it owns all components, releases and
// issues, enforces name uniqueness, and assigns issue display names.
type Project struct {
	Name       string
	Version    string
	Issues     []*Issue
	Components []*Component
	Releases   []*Release
}

// IssueFor looks up an issue by display name.
func (p *Project) IssueFor(name string) (*Issue, error) {
	for _, i := range p.Issues {
		if i.Name == name {
			return i, nil
		}
	}
	return nil, &NotFoundError{Kind: "issue", Name: name}
}

// ComponentFor looks up a component by name.
func (p *Project) ComponentFor(name string) (*Component, error) {
	for _, c := range p.Components {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, &NotFoundError{Kind: "component", Name: name}
}

// ReleaseFor looks up a release by name.
func (p *Project) ReleaseFor(name string) (*Release, error) {
	for _, r := range p.Releases {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, &NotFoundError{Kind: "release", Name: name}
}

// IssuesForRelease returns the issues assigned to the given release.
func (p *Project) IssuesForRelease(release *Release) []*Issue {
	var out []*Issue
	for _, i := range p.Issues {
		if i.Release == release.Name {
			out = append(out, i)
		}
	}
	return out
}

// IssuesForComponent returns the issues belonging to the given component.
func (p *Project) IssuesForComponent(component *Component) []*Issue {
	var out []*Issue
	for _, i := range p.Issues {
		if i.Component == component.Name {
			out = append(out, i)
		}
	}
	return out
}

// UnassignedIssues returns the issues not assigned to any release.
func (p *Project) UnassignedIssues() []*Issue {
	var out []*Issue
	for _, i := range p.Issues {
		if i.Release == "" {
			out = append(out, i)
		}
	}
	return out
}

// AssignIssueNames renumbers every issue's display name as
// "<component-prefix>-<N>", with a per-component counter that follows the
// stored issue order. The operation is deterministic: unchanged inputs
// reproduce identical names on every call.
func (p *Project) AssignIssueNames() {
	prefixes := make(map[string]string, len(p.Components))
	counters := make(map[string]int, len(p.Components))
	for _, c := range p.Components {
		prefixes[c.Name] = c.NamePrefix()
		counters[c.Name] = 0
	}
	for _, i := range p.Issues {
		counters[i.Component]++
		i.Name = prefixes[i.Component] + "-" + strconv.Itoa(counters[i.Component])
	}
}

// Validate checks the project's uniqueness invariants, failing with a
// DuplicateNameError for the first duplicate component name found, then
// for the first duplicate release name. Callers run it before trusting
// uniqueness, e.g. before persisting or assigning names.
func (p *Project) Validate() error {
	seen := make(map[string]bool, len(p.Components))
	for _, c := range p.Components {
		if seen[c.Name] {
			return &DuplicateNameError{Kind: "component", Name: c.Name}
		}
		seen[c.Name] = true
	}
	seen = make(map[string]bool, len(p.Releases))
	for _, r := range p.Releases {
		if seen[r.Name] {
			return &DuplicateNameError{Kind: "release", Name: r.Name}
		}
		seen[r.Name] = true
	}
	return nil
}

// SortIssues stable-sorts issues into the default display order: active
// work first, closed last, ties broken by creation time.
func SortIssues(issues []*Issue) {
	sort.SliceStable(issues, func(a, b int) bool {
		ra, ta := issues[a].SortKey()
		rb, tb := issues[b].SortKey()
		if ra != rb {
			return ra < rb
		}
		return ta.Before(tb)
	})
}
