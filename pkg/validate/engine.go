/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/wmgeolab/gbvalidate/pkg/feature"
	"github.com/wmgeolab/gbvalidate/pkg/vocab"
)

// Input carries one loaded submission into the engine. All fields are
// produced by the loader collaborators; the engine never touches the
// filesystem or network.
type Input struct {
	// Collection is the loaded feature collection with its CRS label.
	Collection *feature.Collection

	// Metadata is the raw meta.txt content.
	Metadata string

	// Archive is true when the submission arrived as an archive bundle.
	Archive bool

	// ArchiveEntries lists the entry names inside the archive. Only
	// meaningful when Archive is true.
	ArchiveEntries []string

	// Submission is a caller-supplied label (typically the input path)
	// echoed into the Result.
	Submission string
}

// Engine runs the full battery of submission checks. An Engine holds no
// per-run state, so one instance may be shared, and independent engines
// may validate different submissions concurrently; the only shared
// resource is the read-only vocabulary provider.
type Engine struct {
	vocab       *vocab.Provider
	nameColumns []string
	isoColumns  []string
	now         func() time.Time
}

// Option is a functional option for configuring Engine instances.
type Option func(*Engine)

// WithNow overrides the clock used by the year validation rule.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithNameColumns overrides the candidate column names for boundary names.
func WithNameColumns(columns []string) Option {
	return func(e *Engine) {
		e.nameColumns = columns
	}
}

// WithISOColumns overrides the candidate column names for ISO codes.
func WithISOColumns(columns []string) Option {
	return func(e *Engine) {
		e.isoColumns = columns
	}
}

// New creates an Engine bound to the given reference vocabularies.
func New(v *vocab.Provider, opts ...Option) *Engine {
	e := &Engine{
		vocab:       v,
		nameColumns: DefaultNameColumns,
		isoColumns:  DefaultISOColumns,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// runState tracks the orchestration lifecycle of a single run.
type runState int

const (
	stateNotRun runState = iota
	stateRunning
	stateCompleted
)

func (s runState) String() string {
	switch s {
	case stateRunning:
		return "running"
	case stateCompleted:
		return "completed"
	default:
		return "not-run"
	}
}

// run is the per-invocation state of one orchestration: the lifecycle
// marker and the finding accumulator. Nothing here outlives Run, which is
// what makes repeated runs over the same input reproducible.
type run struct {
	state runState
	reporter
}

// columnSpec describes one semantic column detection: which check it
// reports under, the message labels, and the candidate names.
type columnSpec struct {
	check      Check
	label      string // "Column for <label> detected"
	plural     string // "No column for boundary <plural> found."
	noun       string // "No <noun> values were found, ..."
	candidates []string
}

// Run executes every check in sequence and always reaches completion: no
// check's failure aborts a later check, and data defects surface as
// findings rather than errors. The returned error is reserved for caller
// contract violations (nil input, missing vocabulary).
//
// Run is a pure function of its input: running it twice over the same
// immutable input yields an identical finding sequence.
func (e *Engine) Run(in *Input) (*Result, error) {
	if e.vocab == nil {
		return nil, fmt.Errorf("engine has no reference vocabulary provider")
	}
	if in == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}
	if in.Collection == nil {
		return nil, fmt.Errorf("input has no feature collection")
	}

	start := time.Now()
	rn := &run{state: stateNotRun}

	rn.state = stateRunning
	e.checkColumn(rn, columnSpec{
		check:      CheckNameColumn,
		label:      "name",
		plural:     "Names",
		noun:       "name",
		candidates: e.nameColumns,
	}, in.Collection)
	e.checkColumn(rn, columnSpec{
		check:      CheckISOColumn,
		label:      "ISO",
		plural:     "ISOs",
		noun:       "ISOs",
		candidates: e.isoColumns,
	}, in.Collection)
	checkGeometry(&rn.reporter, in.Collection)
	checkProjection(&rn.reporter, in.Collection.CRS)
	e.checkMetadata(&rn.reporter, in.Metadata)
	if in.Archive {
		checkLicenseImage(&rn.reporter, in.ArchiveEntries)
	}
	rn.state = stateCompleted

	result := NewResult()
	result.Header.Set(Kind)
	result.Submission = in.Submission
	result.Findings = rn.findings
	result.Summary = rn.summarize(time.Since(start))

	observeRun(result)
	slog.Debug("validation completed",
		"submission", in.Submission,
		"state", rn.state,
		"info", result.Summary.Info,
		"warn", result.Summary.Warn,
		"critical", result.Summary.Critical,
		"passed", result.Summary.Passed,
		"duration", result.Summary.Duration)

	return result, nil
}

// CheckLicenseImage runs the license-image presence check alone. Invoking
// it for a non-archive submission misuses the API and fails hard with
// ErrNotArchive rather than silently passing.
func (e *Engine) CheckLicenseImage(in *Input) ([]Finding, error) {
	if in == nil || !in.Archive {
		return nil, ErrNotArchive
	}
	r := &reporter{}
	checkLicenseImage(r, in.ArchiveEntries)
	return r.findings, nil
}

// checkColumn detects a semantic column and, on a unique match, samples
// the first feature's value and counts non-empty coverage. Detection
// failure is advisory and never fails the submission.
func (e *Engine) checkColumn(rn *run, spec columnSpec, coll *feature.Collection) {
	match := DetectColumn(spec.candidates, coll.Columns())
	switch match.Kind {
	case MatchNone:
		rn.warn(spec.check, "No column for boundary %s found.", spec.plural)
	case MatchAmbiguous:
		rn.warn(spec.check, "Multiple candidate columns for boundary %s found: %v", spec.plural, match.Matched)
	case MatchUnique:
		rn.info(spec.check, "Column for %s detected: %s", spec.label, match.Name)
		sampleColumn(&rn.reporter, spec, match.Name, coll)
	}
}

// sampleColumn reports value coverage for a detected column. Sampling
// trouble degrades to a WARN finding instead of propagating.
func sampleColumn(r *reporter, spec columnSpec, column string, coll *feature.Collection) {
	example, ok := firstValue(coll, column)
	if !ok {
		r.warn(spec.check, "No %s values were found, even though a column was present.", spec.noun)
		return
	}

	count := 0
	for _, f := range coll.Features {
		if v, present := f.Attributes[column]; present && v != nil && fmt.Sprint(v) != "" {
			count++
		}
	}

	r.info(spec.check, "%s: %d | Example: %v", spec.plural, count, example)
}

// firstValue samples the first feature's value for a column. The second
// return is false when the collection is empty or the first feature has
// no usable value there.
func firstValue(coll *feature.Collection, column string) (any, bool) {
	if len(coll.Features) == 0 {
		return nil, false
	}
	v, ok := coll.Features[0].Attributes[column]
	if !ok || v == nil || fmt.Sprint(v) == "" {
		return nil, false
	}
	return v, true
}

// checkMetadata parses the raw metadata text and applies every field rule
// to every line. Malformed lines are reported and replaced with the
// readError sentinel; parsing never raises.
func (e *Engine) checkMetadata(r *reporter, raw string) {
	r.info(CheckMetadata, "Beginning meta.txt validity checks.")
	now := e.now()
	for _, line := range ParseMetadata(raw) {
		if line.Malformed {
			r.warn(CheckMetadata,
				"At least one line of meta.txt failed to be read correctly: %s", line.Raw)
		}
		checkFields(r, e.vocab, line, now)
	}
}
