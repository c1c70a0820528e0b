// Package diag defines the diagnostic model shared by all compilation phases.
//
// Diagnostic is the central record: a Severity, a stable Code, a message and
// a primary source.Span, plus optional notes. Producers emit through a
// Reporter so that storage and formatting stay decoupled; BagReporter
// aggregates into a bounded Bag, which the driver drains and renders.
//
// The package performs no IO and no formatting. The type context consumes it
// only through Reporter (to record findings) and Bag.HasErrors (to answer
// "did anything go wrong so far").
package diag
