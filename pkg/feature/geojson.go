/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package feature

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/twpayne/go-geos"
)

// DefaultCRS is assumed when a GeoJSON document carries no crs member,
// per RFC 7946.
const DefaultCRS = "EPSG:4326"

type rawCollection struct {
	Type string `json:"type"`
	CRS  *struct {
		Properties struct {
			Name string `json:"name"`
		} `json:"properties"`
	} `json:"crs"`
	Features []rawFeature `json:"features"`
}

type rawFeature struct {
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

// ReadGeoJSON parses a GeoJSON FeatureCollection into a Collection.
// Geometries are parsed with GEOS; the legacy crs member, when present,
// is carried through verbatim for the projection check to judge.
func ReadGeoJSON(r io.Reader) (*Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading geometry file: %w", err)
	}

	var raw rawCollection
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing GeoJSON: %w", err)
	}
	if raw.Type != "FeatureCollection" {
		return nil, fmt.Errorf("expected a GeoJSON FeatureCollection, got type %q", raw.Type)
	}

	// One GEOS context per load: contexts are not safe for concurrent
	// use, and one collection is always loaded by one goroutine.
	geosCtx := geos.NewContext()

	coll := &Collection{
		Features: make([]Feature, 0, len(raw.Features)),
		CRS:      DefaultCRS,
	}
	if raw.CRS != nil && raw.CRS.Properties.Name != "" {
		coll.CRS = raw.CRS.Properties.Name
	}

	for i, rf := range raw.Features {
		if len(rf.Geometry) == 0 || string(rf.Geometry) == "null" {
			return nil, fmt.Errorf("feature %d has no geometry", i)
		}
		geom, err := geosCtx.NewGeomFromGeoJSON(string(rf.Geometry))
		if err != nil {
			return nil, fmt.Errorf("parsing geometry of feature %d: %w", i, err)
		}
		attrs := rf.Properties
		if attrs == nil {
			attrs = map[string]any{}
		}
		coll.Features = append(coll.Features, Feature{
			Attributes: attrs,
			Geometry:   geom,
		})
	}

	return coll, nil
}
