// Package orchestration coordinates lesson execution. Lessons run in
// parallel goroutines, each writing to a private buffer so their output
// never interleaves; buffered outputs are replayed in catalog order once
// all runs finish. Progress updates flow over a channel to a
// ProgressReporter so the package stays free of UI concerns.
package orchestration
