// Package application implements the application layer for the trackdown
// issue tracker.
//
// This package bridges the domain layer to its collaborators:
//   - Defines port interfaces for project persistence
//   - Offers a Service facade with one method per user-level operation
//
// # Architecture
//
// The application layer depends on:
//   - Domain layer (internal/tracker/domain): pure model types and logic
//   - Nothing else; storage and CLI concerns stay behind the ports
//
// Every mutating Service method is a full load-mutate-save round trip
// against the ProjectRepository. The repository is responsible for
// renumbering display names on load and rewriting cross-references to
// stable placeholders before writing, so the service always works with a
// display-ready project graph.
package application
