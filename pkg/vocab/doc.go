/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

// Package vocab provides the reference vocabularies the validation engine
// checks metadata values against.
//
// # Overview
//
// Two closed vocabularies are carried: ISO-3166-1 alpha-3 country codes and
// canonical license names. Both are loaded once at process start from the
// geoBoundaryBot reference tables and are immutable afterwards, so a single
// Provider is safe for concurrent reads by any number of engine runs.
//
// # Usage
//
// Production callers fetch the published tables:
//
//	p, err := vocab.Fetch(ctx, http.DefaultClient, vocab.DefaultSources())
//
// Tests construct a Provider from fixed slices:
//
//	p := vocab.New([]string{"USA", "FRA"}, []string{"CC BY 4.0"})
//
// # Matching Semantics
//
// ISO lookups are exact (codes are published upper-case). License lookups
// are case-insensitive on trimmed values, matching how submitters actually
// type license names.
package vocab
