package application

import domain "github.com/zjrosen/trackdown/internal/tracker/domain"

// ProjectReader materializes the project graph (components, releases,
// issues, changelogs) from durable storage, with issue display names
// assigned.
type ProjectReader interface {
	Load() (*domain.Project, error)
}

// ProjectWriter persists the project graph, rewriting free-text
// cross-references to stable placeholders immediately before writing.
type ProjectWriter interface {
	Save(*domain.Project) error
}

// ProjectRepository combines load and save. This is the full interface
// implemented by the YAML store.
type ProjectRepository interface {
	ProjectReader
	ProjectWriter
}
