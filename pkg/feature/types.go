/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

// Package feature holds the in-memory model of a loaded boundary dataset:
// an ordered sequence of features plus the CRS identifier the file declared.
// Instances are built once by a loader and treated as immutable by the
// validation engine.
package feature

import "github.com/twpayne/go-geos"

// Feature is one geometric record: a polygon or multipolygon with its
// attribute mapping. Owned exclusively by its Collection.
type Feature struct {
	// Attributes maps column name to value. Insertion order is irrelevant.
	Attributes map[string]any

	// Geometry is the feature geometry in planar coordinates.
	Geometry *geos.Geom
}

// Collection is an ordered sequence of features plus a CRS identifier.
// Features are not required to share one attribute schema; column
// detection works on the union of names.
type Collection struct {
	Features []Feature

	// CRS is the coordinate reference system label the file declared,
	// e.g. "EPSG:4326".
	CRS string
}

// Columns returns the union of attribute names across all features.
func (c *Collection) Columns() map[string]struct{} {
	cols := make(map[string]struct{})
	for _, f := range c.Features {
		for name := range f.Attributes {
			cols[name] = struct{}{}
		}
	}
	return cols
}
