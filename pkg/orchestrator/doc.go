// Package orchestrator wires the compile → decorate → theme → render pipeline
// behind a single entry point with dependency injection friendly options.
package orchestrator
