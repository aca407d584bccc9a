/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/wmgeolab/gbvalidate/pkg/vocab"
)

// dateLayout is the day-month-year layout used in "X to Y" year ranges.
const dateLayout = "02-01-2006"

// licenseShorthand maps shorthand license names that arrive via mass
// imports (e.g. HDX) to the canonical long form before vocabulary lookup.
var licenseShorthand = map[string]string{
	"Creative Commons Attribution for Intergovernmental Organisations": "Creative Commons Attribution 3.0 Intergovernmental Organisations (CC BY 3.0 IGO)",
}

var boundaryTypes = []string{"ADM0", "ADM1", "ADM2", "ADM3", "ADM4", "ADM5"}

var releaseTypes = []string{
	"geoboundaries", "gbauthoritative", "gbhumanitarian", "gbopen", "un_salb", "un_ocha",
}

// checkFields runs every field rule against one parsed line. The rules are
// independent predicates, not a dispatch table: more than one rule may fire
// for the same line, and each rule carries its own key exclusions.
func checkFields(r *reporter, v *vocab.Provider, line Line, now time.Time) {
	key := strings.ToLower(line.Key)
	val := line.Value

	checkYearField(r, key, val, now)
	checkBoundaryTypeField(r, key, val)
	checkISOField(r, v, key, val)
	checkCanonicalField(r, key, val)
	checkSourceField(r, key, val)
	checkReleaseTypeField(r, key, val)
	checkLicenseField(r, v, key, val)
	checkLicenseNotesField(r, key, val)
	checkLicenseSourceField(r, key, val)
	checkSourceLinkField(r, key, val)
	checkOtherNotesField(r, key, val)
}

func checkYearField(r *reporter, key, val string, now time.Time) {
	if !strings.Contains(key, "year") {
		return
	}

	// pre 4.0 exporters appended a ".0" numeric artifact
	val = strings.TrimSuffix(val, ".0")

	if strings.Contains(val, " to ") {
		parts := strings.SplitN(val, " to ", 2)
		_, err1 := time.Parse(dateLayout, parts[0])
		_, err2 := time.Parse(dateLayout, parts[1])
		if err1 != nil || err2 != nil {
			r.critical(CheckMetadata,
				"The year provided in the metadata %s was invalid. This is what I know: expected a day-month-year range.", val)
			return
		}
		r.info(CheckMetadata, "Valid date range %s detected.", val)
		return
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		r.critical(CheckMetadata,
			"The year provided in the metadata %s was invalid. This is what I know: %v", val, err)
		return
	}
	year := int(f)
	if year > 1950 && year <= now.Year() {
		r.info(CheckMetadata, "Valid year %d detected.", year)
	} else {
		r.critical(CheckMetadata,
			"The year in the meta.txt file is invalid (expected value is between 1950 and present): %d", year)
	}
}

func checkBoundaryTypeField(r *reporter, key, val string) {
	if !strings.Contains(key, "boundary type") || strings.Contains(key, "name") {
		return
	}

	normalized := strings.ReplaceAll(strings.ToUpper(val), " ", "")
	for _, t := range boundaryTypes {
		if normalized == t {
			r.info(CheckMetadata, "Valid Boundary Type detected: %s.", val)
			return
		}
	}
	r.critical(CheckMetadata, "The boundary type in the meta.txt file is invalid: %s", val)
}

func checkISOField(r *reporter, v *vocab.Provider, key, val string) {
	if !strings.Contains(key, "iso") {
		return
	}

	switch {
	case len(val) != 3:
		r.critical(CheckMetadata,
			"ISO is invalid - we expect a 3-character ISO code following ISO-3166-1 (Alpha 3).")
	case !v.HasISO(val):
		r.critical(CheckMetadata,
			"ISO is not on our list of valid ISO-3 codes. See https://github.com/wmgeolab/geoBoundaryBot/blob/main/dta/iso_3166_1_alpha_3.csv for all valid codes this script checks against.")
	default:
		r.info(CheckMetadata, "Valid ISO detected: %s", val)
	}
}

func checkCanonicalField(r *reporter, key, val string) {
	if !strings.Contains(key, "canonical") {
		return
	}

	if isBlank(val) {
		r.warn(CheckMetadata, "No canonical name detected.")
		return
	}
	if !isPlaceholder(val) {
		r.info(CheckMetadata, "Canonical name detected: %s", val)
	}
}

func checkSourceField(r *reporter, key, val string) {
	if !strings.Contains(key, "source") ||
		strings.Contains(key, "license") ||
		strings.Contains(key, "data") {
		return
	}

	// Optional field: nothing is emitted when it is empty.
	if !isBlank(val) && !isPlaceholder(val) {
		r.info(CheckMetadata, "Source detected: %s", val)
	}
}

func checkReleaseTypeField(r *reporter, key, val string) {
	if !strings.Contains(key, "release type") {
		return
	}

	lowered := strings.ToLower(val)
	for _, t := range releaseTypes {
		if lowered == t {
			r.info(CheckMetadata, "Valid Release Type detected: %s", val)
			return
		}
	}
	msg := "Invalid release type detected: " + val
	if hint, ok := nearest(lowered, releaseTypes); ok {
		msg += " Did you mean " + strconv.Quote(hint) + "?"
	}
	r.critical(CheckMetadata, "%s", msg)
}

func checkLicenseField(r *reporter, v *vocab.Provider, key, val string) {
	if key != "license" {
		return
	}

	if long, ok := licenseShorthand[val]; ok {
		val = long
	}
	if v.HasLicense(val) {
		r.info(CheckMetadata, "Valid license type detected: %s", val)
		return
	}
	msg := "Invalid license detected: " + val
	if hint, ok := nearest(strings.ToLower(strings.TrimSpace(val)), v.Licenses()); ok {
		msg += " Did you mean " + strconv.Quote(hint) + "?"
	}
	r.critical(CheckMetadata, "%s", msg)
}

func checkLicenseNotesField(r *reporter, key, val string) {
	if !strings.Contains(key, "license notes") {
		return
	}

	if isBlank(val) {
		r.info(CheckMetadata, "No license notes detected.")
		return
	}
	if !isPlaceholder(val) {
		r.info(CheckMetadata, "License notes detected: %s", val)
	}
}

func checkLicenseSourceField(r *reporter, key, val string) {
	if !strings.Contains(key, "license source") {
		return
	}

	if isBlank(val) || isPlaceholder(val) {
		r.critical(CheckMetadata, "No license source detected.")
		return
	}
	r.info(CheckMetadata, "License source detected: %s", val)
}

func checkSourceLinkField(r *reporter, key, val string) {
	if !strings.Contains(key, "link to source data") {
		return
	}

	if isBlank(val) || isPlaceholder(val) {
		r.critical(CheckMetadata, "ERROR: No link to source data found.")
		return
	}
	r.info(CheckMetadata, "Data Source Found: %s", val)
}

func checkOtherNotesField(r *reporter, key, val string) {
	if !strings.Contains(key, "other notes") {
		return
	}

	if isBlank(val) {
		r.warn(CheckMetadata, "No other notes detected. This field is optional.")
		return
	}
	if !isPlaceholder(val) {
		r.info(CheckMetadata, "Other notes detected: %s", val)
	}
}

// isBlank reports whether a value is empty once all spaces are removed.
func isBlank(val string) bool {
	return len(strings.ReplaceAll(val, " ", "")) == 0
}

// isPlaceholder reports whether a value is one of the no-data markers
// tabular exports leave behind.
func isPlaceholder(val string) bool {
	switch strings.ToLower(val) {
	case "na", "nan", "null":
		return true
	}
	return false
}

// maxSuggestionDistance bounds how far a nearest-match hint may be from
// the submitted value before it stops being helpful.
const maxSuggestionDistance = 3

// nearest returns the vocabulary entry closest to val by edit distance,
// when one is close enough to be a plausible typo.
func nearest(val string, options []string) (string, bool) {
	best, bestDist := "", maxSuggestionDistance+1
	for _, opt := range options {
		if d := levenshtein.ComputeDistance(val, opt); d < bestDist {
			best, bestDist = opt, d
		}
	}
	return best, bestDist <= maxSuggestionDistance
}
