/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package validate

import "sort"

// MatchKind is the outcome class of a column detection.
type MatchKind string

const (
	// MatchUnique means exactly one candidate column is present.
	MatchUnique MatchKind = "unique"

	// MatchNone means no candidate column is present.
	MatchNone MatchKind = "none"

	// MatchAmbiguous means two or more candidate columns are present.
	MatchAmbiguous MatchKind = "ambiguous"
)

// ColumnMatch is the typed result of detecting a semantic column. The engine
// never silently picks one of several matches: exactly one of the three
// kinds is produced and ambiguity is reported to the caller.
type ColumnMatch struct {
	Kind MatchKind

	// Name is the detected column, set only for MatchUnique.
	Name string

	// Matched lists all matching columns in sorted order, set for
	// MatchAmbiguous.
	Matched []string
}

// DetectColumn intersects the candidate names for a semantic field with the
// columns available in a collection. The available set may be heterogeneous
// across features; detection works on the union of attribute names.
func DetectColumn(candidates []string, available map[string]struct{}) ColumnMatch {
	var matched []string
	for _, c := range candidates {
		if _, ok := available[c]; ok {
			matched = append(matched, c)
		}
	}
	sort.Strings(matched)

	switch len(matched) {
	case 0:
		return ColumnMatch{Kind: MatchNone}
	case 1:
		return ColumnMatch{Kind: MatchUnique, Name: matched[0]}
	default:
		return ColumnMatch{Kind: MatchAmbiguous, Matched: matched}
	}
}

// Default candidate column names, carried over from the geoBoundaries
// submission conventions. MAX_* variants come from zonal statistics exports.
var (
	DefaultNameColumns = []string{
		"Name", "name", "NAME", "shapeName", "shapename", "SHAPENAME", "MAX_Name",
	}

	DefaultISOColumns = []string{
		"ISO", "ISO_code", "ISO_Code", "iso", "shapeISO", "shapeiso", "shape_iso", "MAX_ISO_Co",
	}
)
