/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"github.com/twpayne/go-geos"

	"github.com/wmgeolab/gbvalidate/pkg/feature"
)

const (
	// extentTolerance is the slack, in decimal degrees, allowed past the
	// nominal earth extent before a bounding box is rejected.
	extentTolerance = 1e-5

	// bufferQuadSegments is the GEOS default segment count for buffers.
	bufferQuadSegments = 8
)

// repairBuffer rebuilds a geometry with a zero-distance buffer, the one
// repair attempted before an invalid geometry is given up on. A variable
// so tests can pin the rebuild outcome.
var repairBuffer = func(g *geos.Geom) *geos.Geom {
	return g.Buffer(0, bufferQuadSegments)
}

// checkGeometry validates every feature in collection order. No feature is
// skipped on error: a fault evaluating one geometry is isolated to that
// feature and must not abort the rest of the battery.
func checkGeometry(r *reporter, coll *feature.Collection) {
	for i := range coll.Features {
		checkFeatureGeometry(r, i, &coll.Features[i])
	}
}

// checkFeatureGeometry runs the extent and topological validity checks for
// one feature, attempting a single zero-distance buffer repair when the
// geometry is invalid.
func checkFeatureGeometry(r *reporter, index int, f *feature.Feature) {
	// GEOS reports internal faults by panicking; recover so one broken
	// geometry cannot take the remaining features down with it.
	defer func() {
		if p := recover(); p != nil {
			r.critical(CheckGeometry,
				"ERROR: The geometry of feature %d could not be evaluated: %v", index, p)
		}
	}()

	g := f.Geometry
	bounds := g.Bounds()

	withinEarth := bounds.MinX >= -180-extentTolerance &&
		bounds.MaxX <= 180+extentTolerance &&
		bounds.MinY >= -90-extentTolerance &&
		bounds.MaxY <= 90+extentTolerance
	if !withinEarth {
		r.critical(CheckGeometry,
			"ERROR: This geometry seems to extend past the boundaries of the earth: %s",
			g.IsValidReason())
	}

	if !g.IsValid() {
		reason := g.IsValidReason()
		r.warn(CheckGeometry,
			"Something is wrong with this geometry, but we might be able to fix it with a buffer: %s",
			reason)
		if repairBuffer(g).IsValid() {
			r.warn(CheckGeometry, "A geometry error was corrected with a zero-distance buffer.")
		} else {
			r.critical(CheckGeometry,
				"ERROR: Something is wrong with this geometry, and we can't fix it: %s",
				reason)
		}
	}
}
