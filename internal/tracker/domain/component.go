package domain

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Component is a named subdivision of a project's issue set.
type Component struct {
	Name string
}

// NamePrefix derives the issue-name prefix for this component: every run of
// whitespace in the name collapses to a single hyphen and the result is
// lowercased.
func (c *Component) NamePrefix() string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(c.Name, "-"))
}
