/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package loader

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"shapeName": "Alpha", "shapeISO": "USA"},
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}
    }
  ]
}`

const testMeta = "Year: 2020\nISO: USA\n"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func writeArchive(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestOpen_BareGeoJSON(t *testing.T) {
	dir := t.TempDir()
	geomPath := filepath.Join(dir, "USA_ADM1.geojson")
	writeFile(t, geomPath, testGeoJSON)

	sub, err := Open(geomPath)
	require.NoError(t, err)
	defer sub.Close() //nolint:errcheck

	assert.Equal(t, geomPath, sub.Path)
	assert.False(t, sub.Archive)
	assert.Nil(t, sub.Entries)
	assert.Empty(t, sub.Metadata)
	require.NotNil(t, sub.Collection)
	assert.Len(t, sub.Collection.Features, 1)
}

func TestOpen_BareWithMetadata(t *testing.T) {
	dir := t.TempDir()
	geomPath := filepath.Join(dir, "USA_ADM1.geojson")
	metaPath := filepath.Join(dir, "meta.txt")
	writeFile(t, geomPath, testGeoJSON)
	writeFile(t, metaPath, testMeta)

	sub, err := Open(geomPath, WithMetadataPath(metaPath))
	require.NoError(t, err)
	defer sub.Close() //nolint:errcheck

	assert.Equal(t, testMeta, sub.Metadata)
}

func TestOpen_Archive(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "USA_ADM1.zip")
	writeArchive(t, zipPath, map[string]string{
		"USA_ADM1.geojson": testGeoJSON,
		"meta.txt":         testMeta,
		"license.png":      "not really a png",
	})

	sub, err := Open(zipPath)
	require.NoError(t, err)

	assert.True(t, sub.Archive)
	assert.ElementsMatch(t, []string{"USA_ADM1.geojson", "meta.txt", "license.png"}, sub.Entries)
	assert.Equal(t, testMeta, sub.Metadata)
	require.NotNil(t, sub.Collection)
	assert.Len(t, sub.Collection.Features, 1)

	require.NotEmpty(t, sub.tempDir)
	tempDir := sub.tempDir
	require.NoError(t, sub.Close())
	_, statErr := os.Stat(tempDir)
	assert.True(t, os.IsNotExist(statErr))

	// Close is idempotent.
	require.NoError(t, sub.Close())
}

// Windows editors leave a BOM on meta.txt; it must not leak into the
// first metadata key.
func TestOpen_MetadataBOMStripped(t *testing.T) {
	dir := t.TempDir()
	geomPath := filepath.Join(dir, "USA_ADM1.geojson")
	metaPath := filepath.Join(dir, "meta.txt")
	writeFile(t, geomPath, testGeoJSON)
	writeFile(t, metaPath, "\xef\xbb\xbf"+testMeta)

	sub, err := Open(geomPath, WithMetadataPath(metaPath))
	require.NoError(t, err)
	defer sub.Close() //nolint:errcheck

	assert.Equal(t, testMeta, sub.Metadata)
}

func TestOpen_ArchiveWithoutMetadata(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "USA_ADM1.zip")
	writeArchive(t, zipPath, map[string]string{
		"USA_ADM1.geojson": testGeoJSON,
	})

	sub, err := Open(zipPath)
	require.NoError(t, err)
	defer sub.Close() //nolint:errcheck

	assert.Empty(t, sub.Metadata)
}

func TestOpen_ArchiveGeometryMustMatchStem(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "USA_ADM1.zip")
	writeArchive(t, zipPath, map[string]string{
		"other.geojson": testGeoJSON,
	})

	_, err := Open(zipPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no geometry file")
}

func TestOpen_ArchiveWithShapefile(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "USA_ADM1.zip")
	writeArchive(t, zipPath, map[string]string{
		"USA_ADM1.shp": "stub",
		"USA_ADM1.dbf": "stub",
	})

	_, err := Open(zipPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shapefile")
}

func TestOpen_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "USA_ADM1.gpkg")
	writeFile(t, path, "stub")

	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input")
}

func TestOpen_ShapefileRejected(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "USA_ADM1.shp"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shapefile")
}

func TestOpen_ZipSlipEntryRejected(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "USA_ADM1.zip")
	writeArchive(t, zipPath, map[string]string{
		"../escape.txt": "stub",
	})

	_, err := Open(zipPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes")
}
