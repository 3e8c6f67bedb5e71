package driver

import (
	"encoding/json"
	"fmt"

	"vhdlsema/internal/diag"
	"vhdlsema/internal/observ"
	"vhdlsema/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// TimingDiagnostic packs a timer report into an informational diagnostic
// whose single note carries the JSON payload.
func TimingDiagnostic(report observ.Report) diag.Diagnostic {
	payload := timingPayload{Kind: "pipeline", TotalMS: report.TotalMS, Phases: report.Phases}
	d := diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.ObsTimings,
		Message:  fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return d
	}
	d.Notes = []diag.Note{{Span: source.Span{}, Msg: string(data)}}
	return d
}
