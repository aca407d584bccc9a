/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

// Package loader opens submissions for validation: a bare GeoJSON file
// with an optional metadata file, or a zip bundle containing both. It owns
// all filesystem work so the validation engine never has to.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/wmgeolab/gbvalidate/pkg/feature"
)

// Submission is one opened submission, ready to hand to the engine.
// Archive submissions hold extracted files in a temporary directory until
// Close is called.
type Submission struct {
	// Path is the input path the submission was opened from.
	Path string

	// Collection is the loaded feature collection.
	Collection *feature.Collection

	// Metadata is the raw metadata text, empty when no metadata file was
	// found or supplied.
	Metadata string

	// Archive is true when the input was a zip bundle.
	Archive bool

	// Entries lists the archive entry names. Nil for bare inputs.
	Entries []string

	tempDir string
}

// Option is a functional option for configuring Open.
type Option func(*options)

type options struct {
	metadataPath string
}

// WithMetadataPath supplies the metadata file for a bare geometry input.
// Ignored for archives, which carry their own metadata entry.
func WithMetadataPath(path string) Option {
	return func(o *options) {
		o.metadataPath = path
	}
}

// Open loads a submission from path. Supported inputs are ".geojson" and
// ".zip"; anything else, shapefiles included, is rejected with an error at
// this boundary rather than producing findings.
func Open(path string, opts ...Option) (*Submission, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return openArchive(path)
	case ".geojson":
		return openBare(path, o.metadataPath)
	case ".shp":
		return nil, fmt.Errorf("shapefile input is not supported: %s (submit GeoJSON, bare or zipped)", path)
	default:
		return nil, fmt.Errorf("unsupported input %s: expected a .geojson file or a .zip containing one", path)
	}
}

// Close removes any temporary extraction directory. Safe to call for bare
// submissions and safe to call twice.
func (s *Submission) Close() error {
	if s.tempDir == "" {
		return nil
	}
	dir := s.tempDir
	s.tempDir = ""
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing extraction directory %s: %w", dir, err)
	}
	return nil
}

func openBare(path, metadataPath string) (*Submission, error) {
	coll, err := readCollection(path)
	if err != nil {
		return nil, err
	}

	sub := &Submission{
		Path:       path,
		Collection: coll,
	}

	if metadataPath != "" {
		meta, err := readMetadata(metadataPath)
		if err != nil {
			return nil, err
		}
		sub.Metadata = meta
	}

	return sub, nil
}

func readCollection(path string) (*feature.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening geometry file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	coll, err := feature.ReadGeoJSON(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return coll, nil
}

// readMetadata reads a metadata text file, tolerating a UTF-8 or UTF-16
// byte order mark left behind by Windows editors.
func readMetadata(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening metadata file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return "", fmt.Errorf("reading metadata file %s: %w", path, err)
	}
	return string(data), nil
}
