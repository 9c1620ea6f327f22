// Package orchestrator wires the catalog → engine → output pipeline, providing
// dependency injection friendly helpers for consumers that prefer a single
// entry point.
package orchestrator
