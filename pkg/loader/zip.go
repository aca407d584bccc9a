/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package loader

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// openArchive extracts a zip bundle into a temporary directory, locates
// the geometry and metadata files, and records the entry names for the
// license-image check. The caller must Close the submission to release
// the extraction directory.
func openArchive(path string) (*Submission, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	defer zr.Close() //nolint:errcheck

	tempDir, err := os.MkdirTemp("", "gbvalidate-*")
	if err != nil {
		return nil, fmt.Errorf("creating extraction directory: %w", err)
	}

	sub := &Submission{
		Path:    path,
		Archive: true,
		tempDir: tempDir,
	}

	for _, entry := range zr.File {
		sub.Entries = append(sub.Entries, entry.Name)
		if err := extractEntry(entry, tempDir); err != nil {
			sub.Close() //nolint:errcheck
			return nil, err
		}
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	geomPath, ok := findEntry(sub.Entries, tempDir, func(name string) bool {
		return strings.Contains(filepath.Base(name), stem) &&
			strings.HasSuffix(strings.ToLower(name), ".geojson")
	})
	if !ok {
		sub.Close() //nolint:errcheck
		if _, shp := findEntry(sub.Entries, tempDir, func(name string) bool {
			return strings.HasSuffix(strings.ToLower(name), ".shp")
		}); shp {
			return nil, fmt.Errorf("archive %s carries a shapefile, which is not supported: submit GeoJSON", path)
		}
		return nil, fmt.Errorf("no geometry file matching %q with a .geojson extension found in archive %s", stem, path)
	}

	coll, err := readCollection(geomPath)
	if err != nil {
		sub.Close() //nolint:errcheck
		return nil, err
	}
	sub.Collection = coll

	metaPath, ok := findEntry(sub.Entries, tempDir, func(name string) bool {
		return strings.HasSuffix(strings.ToLower(name), ".txt")
	})
	if ok {
		meta, err := readMetadata(metaPath)
		if err != nil {
			sub.Close() //nolint:errcheck
			return nil, err
		}
		sub.Metadata = meta
	} else {
		slog.Warn("archive has no metadata text file", "archive", path)
	}

	return sub, nil
}

// findEntry returns the extracted path of the first entry matching the
// predicate, in archive order.
func findEntry(entries []string, tempDir string, match func(string) bool) (string, bool) {
	for _, name := range entries {
		if match(name) {
			return filepath.Join(tempDir, filepath.FromSlash(name)), true
		}
	}
	return "", false
}

// extractEntry writes one archive entry under dir, refusing paths that
// would escape it.
func extractEntry(entry *zip.File, dir string) error {
	dest := filepath.Join(dir, filepath.FromSlash(entry.Name))
	if !strings.HasPrefix(dest, filepath.Clean(dir)+string(os.PathSeparator)) {
		return fmt.Errorf("archive entry %q escapes the extraction directory", entry.Name)
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", entry.Name, err)
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("opening archive entry %s: %w", entry.Name, err)
	}
	defer src.Close() //nolint:errcheck

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	defer out.Close() //nolint:errcheck

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("extracting %s: %w", entry.Name, err)
	}
	return nil
}
