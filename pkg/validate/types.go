/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"fmt"
	"time"

	"github.com/wmgeolab/gbvalidate/pkg/header"
)

// Kind is the document kind stamped into result headers.
const Kind = "ValidationResult"

// Severity classifies a single finding.
type Severity string

const (
	// SeverityInfo marks a confirmation that a check passed.
	SeverityInfo Severity = "INFO"

	// SeverityWarn marks a recoverable defect that does not block publication.
	SeverityWarn Severity = "WARN"

	// SeverityCritical marks a defect that fails the submission.
	SeverityCritical Severity = "CRITICAL"
)

// ParseSeverity converts a string to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case string(SeverityInfo):
		return SeverityInfo, nil
	case string(SeverityWarn):
		return SeverityWarn, nil
	case string(SeverityCritical):
		return SeverityCritical, nil
	default:
		return "", fmt.Errorf("unknown severity: %s", s)
	}
}

// Check identifies which check produced a finding.
type Check string

const (
	CheckNameColumn   Check = "name-column"
	CheckISOColumn    Check = "iso-column"
	CheckGeometry     Check = "geometry"
	CheckProjection   Check = "projection"
	CheckMetadata     Check = "metadata"
	CheckLicenseImage Check = "license-image"
)

// Finding is one severity-tagged validation result. Findings are append-only
// and ordered by emission time.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Check    Check    `json:"check,omitempty" yaml:"check,omitempty"`
	Message  string   `json:"message" yaml:"message"`
}

// Summary holds aggregate counts and the derived outcome for one run.
type Summary struct {
	Info     int           `json:"info" yaml:"info"`
	Warn     int           `json:"warn" yaml:"warn"`
	Critical int           `json:"critical" yaml:"critical"`
	Total    int           `json:"total" yaml:"total"`
	Passed   bool          `json:"passed" yaml:"passed"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Result is the terminal output of one orchestration run.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	Submission string    `json:"submission,omitempty" yaml:"submission,omitempty"`
	Findings   []Finding `json:"findings" yaml:"findings"`
	Summary    Summary   `json:"summary" yaml:"summary"`
}

// NewResult creates an empty Result with an initialized finding slice.
func NewResult() *Result {
	return &Result{
		Findings: []Finding{},
	}
}

// reporter accumulates findings for one run. It is local to a single
// orchestration, so concurrent runs never share state.
type reporter struct {
	findings []Finding
}

func (r *reporter) emit(sev Severity, check Check, format string, args ...any) {
	r.findings = append(r.findings, Finding{
		Severity: sev,
		Check:    check,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *reporter) info(check Check, format string, args ...any) {
	r.emit(SeverityInfo, check, format, args...)
}

func (r *reporter) warn(check Check, format string, args ...any) {
	r.emit(SeverityWarn, check, format, args...)
}

func (r *reporter) critical(check Check, format string, args ...any) {
	r.emit(SeverityCritical, check, format, args...)
}

// summarize derives the Summary from the accumulated findings. Passed is
// true iff no CRITICAL finding was emitted.
func (r *reporter) summarize(duration time.Duration) Summary {
	s := Summary{
		Total:    len(r.findings),
		Duration: duration,
	}
	for _, f := range r.findings {
		switch f.Severity {
		case SeverityInfo:
			s.Info++
		case SeverityWarn:
			s.Warn++
		case SeverityCritical:
			s.Critical++
		}
	}
	s.Passed = s.Critical == 0
	return s
}
