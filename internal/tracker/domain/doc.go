// Package domain implements the domain layer for the trackdown issue tracker.
//
// This package follows Domain-Driven Design (DDD) principles:
//   - Contains only pure Go code (no file I/O, no terminal concerns)
//   - Defines entity types (Project, Component, Release, Issue, Config) and
//     value objects (Status, Disposition, IssueType)
//   - Implements the issue and release lifecycle state machines
//   - Has no knowledge of infrastructure concerns (YAML layout, CLI dispatch)
//
// # Core Types
//
// Project is the aggregate root. It owns the ordered collections of issues,
// components and releases, enforces name uniqueness, and is the only writer
// of an issue's derived display name (via AssignIssueNames).
//
// Issue carries two identifiers with very different contracts: ID is an
// opaque digest assigned once at creation and never recomputed, while Name
// is a human-friendly label ("component-N") that is renumbered on every
// load. Free-text cross-references between issues survive renumbering by
// being rewritten to "{issue <id>}" placeholders before persistence.
//
// Release and Issue both own an append-only ChangeLog; every state-changing
// operation appends an actor-attributed entry.
//
// # Errors
//
// Violated preconditions surface as typed errors (AlreadyReleasedError,
// OpenIssueError, AlreadySetError, ...). Checks always run before any
// mutation, so a failed operation leaves its entity untouched.
package domain
