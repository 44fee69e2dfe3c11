// Package model defines the core data structures used throughout datecheck.
//
// This package contains the following main types:
//   - YearMonth: A calendar month without day precision
//   - Annotation: An "as of <Month> <Year>" occurrence and the line it ends on
//   - Collection: Annotations grouped by document path, iterated in path order
//   - Triage: The state of a single run, from discovered files to stale dates
//
// Multiple packages (extract, staleness, pipeline, report) share these types,
// so they live here to keep the dependency graph acyclic.
package model
