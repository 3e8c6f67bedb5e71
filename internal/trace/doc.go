// Package trace records analysis phases as nested spans so slow or stuck
// runs can be diagnosed.
//
// # Usage
//
//	vhdlsema analyze --trace=- --trace-level=detail rtl/*.vhd
//
// # Tracers
//
//   - Nop: no-op tracer used when tracing is disabled
//   - StreamTracer: writes each event immediately (file or stderr)
//   - RingTracer: keeps the last N events for crash dumps
//   - MultiTracer: fans out to several tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only crash dumps
//   - LevelPhase: driver and per-file pass boundaries
//   - LevelDetail: design units
//   - LevelDebug: everything including single declarations
//
// # Scopes
//
//   - ScopeDriver: one CLI run
//   - ScopePass: parse or analyze of one file
//   - ScopeUnit: one design unit
//   - ScopeNode: one declaration
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopePass, "parse")
//	defer span.End("")
//
// Spans started from the returned ctx are children of span. Code that keeps
// its own parent id (the analyzer walks units without threading ctx) calls
// Begin with trace.ParentID(ctx) instead.
package trace
