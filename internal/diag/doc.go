// Package diag defines the diagnostic model shared by the lexer, parser and
// semantic analyzer.
//
// # Purpose
//
//   - Provide deterministic data structures that capture user-facing findings
//     (duplicate design units, duplicate declarations, mismatched closing
//     names, syntax errors).
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// Package diag does not perform any formatting or IO. Rendering lives in
// internal/diagfmt, orchestration in internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text using pretty identifier names.
//   - Primary span – source.Span of the offending construct. source.FileSpan
//     marks diagnostics whose construct carries no position.
//   - Notes – secondary context, e.g. where a previous design unit was declared.
//
// Internal-consistency failures of the analyzer are not diagnostics; they
// abort the run instead.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter. ReportError / ReportWarning return a
// ReportBuilder that collects notes before Emit. BagReporter stores the result
// in a Bag, which preserves report order. DedupReporter filters repeats from
// parser recovery.
package diag
