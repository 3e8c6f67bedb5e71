package diag

// Severity orders diagnostics; anything at SevError or above fails the file.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityLabels = [...]string{
	SevInfo:    "info",
	SevWarning: "warning",
	SevError:   "error",
}

// Label is the lower-case name used by golden files and the pretty printer.
// Out-of-range values clamp to "error".
func (s Severity) Label() string {
	if int(s) >= len(severityLabels) {
		return severityLabels[SevError]
	}
	return severityLabels[s]
}

// String is the upper-case name of the classic "file:line:col: ERROR:" form.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
