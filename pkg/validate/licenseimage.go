/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"errors"
	"strings"
)

// ErrNotArchive is returned when the license-image check is invoked for a
// submission that is not an archive. That is a caller contract violation,
// not a data defect, so it surfaces as a hard error instead of a finding.
var ErrNotArchive = errors.New("license-image check requires an archive submission")

// licenseImageExtensions are the accepted license image file extensions,
// compared case-insensitively.
var licenseImageExtensions = []string{".png", ".jpg"}

// checkLicenseImage scans archive entry names for a license image.
func checkLicenseImage(r *reporter, entries []string) {
	for _, ext := range licenseImageExtensions {
		for _, name := range entries {
			if strings.HasSuffix(strings.ToLower(name), ext) {
				r.info(CheckLicenseImage, "License image found with extension %s.", ext)
				return
			}
		}
	}
	r.warn(CheckLicenseImage, "No license image found. Checked for license.png and license.jpg.")
}
