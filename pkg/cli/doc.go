// Copyright (c) 2025, William & Mary geoLab.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the command-line interface for the gbvalidate tool.
//
// # Overview
//
// The gbvalidate CLI runs the geoBoundaries submission quality checks
// against one or more submitted datasets and reports severity-tagged
// findings. It is designed for dataset curators and for CI pipelines
// gating submissions before publication.
//
// # Commands
//
// check - Validate one or more submissions:
//
//	gbvalidate check submission.zip
//	gbvalidate check boundaries.geojson --meta meta.txt
//	gbvalidate check a.zip b.zip c.zip --concurrency 4 --format table
//	gbvalidate check submission.zip --fail-on-error  # CI gating
//
// Each submission is a zip bundle (geometry file, meta.txt, license image)
// or a bare GeoJSON file with an optional metadata file. Submissions are
// validated independently, in parallel up to --concurrency, each by its
// own engine instance.
//
// vocab - Inspect the reference vocabularies:
//
//	gbvalidate vocab
//	gbvalidate vocab --format json --output vocab.json
//
// Fetches the ISO-3 country code and license name tables the checks
// validate against and prints them.
//
// # Global Flags
//
//	--debug       Enable debug logging
//	--log-json    Output logs in JSON format
//	--help, -h    Show command help
//	--version, -v Show version information
//
// # Output Formats
//
// YAML (default), JSON, or a flattened FIELD/VALUE table for terminals,
// selected with --format and written to --output (default: stdout).
//
// # Configuration
//
// The --config flag points at an optional YAML file overriding candidate
// column names and vocabulary source URLs:
//
//	nameColumns: [Name, shapeName]
//	isoColumns: [ISO, shapeISO]
//	sources:
//	  countriesUrl: https://example.org/iso.csv
//	  licensesUrl: https://example.org/licenses.csv
//
// # Exit Codes
//
//	0  Success
//	1  General error, or failed validation with --fail-on-error
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/loader - submission opening and archive extraction
//   - pkg/vocab - reference vocabulary fetching
//   - pkg/validate - the check engine
//   - pkg/serializer - output formatting
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/wmgeolab/gbvalidate/pkg/cli.version=1.0.0'"
package cli
