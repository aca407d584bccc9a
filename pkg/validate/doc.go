/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

// Package validate implements the submission quality checks for
// administrative-boundary datasets.
//
// # Overview
//
// The engine answers one question: is this submission fit to publish? It
// runs a fixed battery of independent checks over an already-loaded
// feature collection and metadata text, and accumulates severity-tagged
// findings (INFO, WARN, CRITICAL). A submission passes when the run emits
// zero CRITICAL findings; WARN and INFO never affect the outcome.
//
// # Checks
//
// In orchestration order:
//   - name-column / iso-column: detect the semantic attribute columns and
//     report value coverage
//   - geometry: per-feature earth-extent and topological validity, with a
//     single zero-distance buffer repair attempt
//   - projection: the declared CRS must be EPSG:4326
//   - metadata: fault-tolerant key/value parse of meta.txt plus one
//     validation rule per recognized field
//   - license-image: archive submissions must carry a .png or .jpg
//
// # Error Handling
//
// Data defects are findings, never errors: a run always completes and
// always returns the full finding sequence. Errors are reserved for
// caller contract violations, such as a nil input or invoking the
// license-image check on a non-archive submission.
//
// # Usage
//
//	engine := validate.New(vocabProvider)
//	result, err := engine.Run(&validate.Input{
//	    Collection: coll,
//	    Metadata:   metaText,
//	    Archive:    true,
//	    ArchiveEntries: entries,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary.Passed)
package validate
