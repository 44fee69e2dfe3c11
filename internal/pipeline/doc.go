// Package pipeline runs a datecheck triage as a sequence of steps.
//
// A run discovers documents, extracts their annotations and filters out the
// fresh ones. Each stage is a Step that receives the shared model.Triage and
// fills in its part of it. Steps run one after another on a single goroutine
// and the first failure ends the run, so a report is never built from
// partial input.
package pipeline
