/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package validate

import "strings"

// RequiredCRS is the only coordinate reference system accepted for
// submissions.
const RequiredCRS = "EPSG:4326"

// checkProjection compares the declared CRS against RequiredCRS. The match
// is a case-insensitive exact comparison: no reprojection, no fuzzy
// matching.
func checkProjection(r *reporter, crs string) {
	if strings.EqualFold(crs, RequiredCRS) {
		r.info(CheckProjection, "Projection confirmed as %s", crs)
		return
	}
	r.critical(CheckProjection,
		"The projection must be EPSG 4326. The file proposed has a projection of: %s", crs)
}
