package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/wmgeolab/gbvalidate/pkg/vocab"
)

var testNow = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func testVocab() *vocab.Provider {
	return vocab.New(
		[]string{"USA", "FRA", "BEN"},
		[]string{
			"CC BY 4.0",
			"Open Data Commons Open Database License (ODbL)",
			"Creative Commons Attribution 3.0 Intergovernmental Organisations (CC BY 3.0 IGO)",
		},
	)
}

// runFields applies every field rule to one metadata line and returns the
// emitted findings.
func runFields(t *testing.T, key, value string) []Finding {
	t.Helper()
	r := &reporter{}
	checkFields(r, testVocab(), Line{Key: key, Value: value}, testNow)
	return r.findings
}

func requireOne(t *testing.T, findings []Finding, sev Severity, contains string) {
	t.Helper()
	if len(findings) != 1 {
		t.Fatalf("len(findings) = %d, want 1: %+v", len(findings), findings)
	}
	if findings[0].Severity != sev {
		t.Errorf("Severity = %s, want %s (%s)", findings[0].Severity, sev, findings[0].Message)
	}
	if !strings.Contains(findings[0].Message, contains) {
		t.Errorf("Message = %q, want substring %q", findings[0].Message, contains)
	}
}

func TestYearField(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		severity Severity
		contains string
	}{
		{"valid year", "2020", SeverityInfo, "Valid year 2020"},
		{"legacy float artifact", "2020.0", SeverityInfo, "Valid year 2020"},
		{"too old", "1800", SeverityCritical, "between 1950 and present"},
		{"1950 is excluded", "1950", SeverityCritical, "between 1950 and present"},
		{"future year", "2030", SeverityCritical, "between 1950 and present"},
		{"valid date range", "01-01-2015 to 31-12-2016", SeverityInfo, "Valid date range"},
		{"broken date range", "01-01-2015 to yesterday", SeverityCritical, "was invalid"},
		{"not a number", "twenty-twenty", SeverityCritical, "was invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireOne(t, runFields(t, "Boundary representative of year", tt.value), tt.severity, tt.contains)
		})
	}
}

func TestBoundaryTypeField(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		severity Severity
		contains string
	}{
		{"valid", "Boundary type", "ADM1", SeverityInfo, "Valid Boundary Type"},
		{"normalized", "Boundary type", " adm 2 ", SeverityInfo, "Valid Boundary Type"},
		{"invalid", "Boundary type", "ADM9", SeverityCritical, "boundary type in the meta.txt file is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireOne(t, runFields(t, tt.key, tt.value), tt.severity, tt.contains)
		})
	}
}

// "Boundary type name" must not trigger the boundary-type rule.
func TestBoundaryTypeField_NameExclusion(t *testing.T) {
	findings := runFields(t, "Boundary type name", "District")
	for _, f := range findings {
		if strings.Contains(f.Message, "Boundary Type") {
			t.Errorf("boundary-type rule fired for excluded key: %+v", f)
		}
	}
}

func TestISOField(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		severity Severity
		contains string
	}{
		{"valid", "USA", SeverityInfo, "Valid ISO detected: USA"},
		{"wrong length", "US", SeverityCritical, "3-character ISO code"},
		{"not on list", "ZZZ", SeverityCritical, "not on our list of valid ISO-3 codes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireOne(t, runFields(t, "ISO", tt.value), tt.severity, tt.contains)
		})
	}
}

func TestCanonicalField(t *testing.T) {
	requireOne(t, runFields(t, "Canonical Name", "Benin"), SeverityInfo, "Canonical name detected: Benin")
	requireOne(t, runFields(t, "Canonical Name", "   "), SeverityWarn, "No canonical name detected")

	// A placeholder value is neither confirmed nor warned about.
	if findings := runFields(t, "Canonical Name", "NaN"); len(findings) != 0 {
		t.Errorf("placeholder canonical name emitted findings: %+v", findings)
	}
}

func TestSourceField(t *testing.T) {
	requireOne(t, runFields(t, "Source 1", "National Statistics Office"), SeverityInfo, "Source detected")

	// Optional field: empty emits nothing.
	if findings := runFields(t, "Source 1", ""); len(findings) != 0 {
		t.Errorf("empty source emitted findings: %+v", findings)
	}
	// The license source and data link rules carry their own keys.
	if findings := runFields(t, "License source", "somewhere"); containsMessage(findings, "Source detected") {
		t.Errorf("generic source rule fired for license source: %+v", findings)
	}
	if findings := runFields(t, "Link to source data", "somewhere"); containsMessage(findings, "Source detected") {
		t.Errorf("generic source rule fired for data link: %+v", findings)
	}
}

func TestReleaseTypeField(t *testing.T) {
	requireOne(t, runFields(t, "Release type", "gbOpen"), SeverityInfo, "Valid Release Type")
	requireOne(t, runFields(t, "Release type", "proprietary"), SeverityCritical, "Invalid release type")
}

func TestReleaseTypeField_Suggestion(t *testing.T) {
	findings := runFields(t, "Release type", "gbOpne")
	requireOne(t, findings, SeverityCritical, "Invalid release type")
	if !strings.Contains(findings[0].Message, `Did you mean "gbopen"?`) {
		t.Errorf("Message = %q, want a gbopen suggestion", findings[0].Message)
	}
}

func TestLicenseField(t *testing.T) {
	requireOne(t, runFields(t, "License", "CC BY 4.0"), SeverityInfo, "Valid license type")
	requireOne(t, runFields(t, "License", "cc by 4.0"), SeverityInfo, "Valid license type")
	requireOne(t, runFields(t, "License", "All rights reserved"), SeverityCritical, "Invalid license")
}

func TestLicenseField_ShorthandRemap(t *testing.T) {
	findings := runFields(t, "License", "Creative Commons Attribution for Intergovernmental Organisations")
	requireOne(t, findings, SeverityInfo, "Valid license type")
	if !strings.Contains(findings[0].Message, "CC BY 3.0 IGO") {
		t.Errorf("Message = %q, want the remapped long form", findings[0].Message)
	}
}

// Only the exact key "license" triggers the license rule; "license notes"
// and "license source" have their own rules.
func TestLicenseField_ExactKeyOnly(t *testing.T) {
	if findings := runFields(t, "License notes", "not a real license"); containsMessage(findings, "Invalid license detected") {
		t.Errorf("license rule fired for license notes: %+v", findings)
	}
}

func TestLicenseNotesField(t *testing.T) {
	requireOne(t, runFields(t, "License notes", "applies to 2020 release"), SeverityInfo, "License notes detected")
	requireOne(t, runFields(t, "License notes", ""), SeverityInfo, "No license notes detected")
}

func TestLicenseSourceField(t *testing.T) {
	requireOne(t, runFields(t, "License source", "https://data.gov/license"), SeverityInfo, "License source detected")
	requireOne(t, runFields(t, "License source", ""), SeverityCritical, "No license source detected")
	requireOne(t, runFields(t, "License source", "null"), SeverityCritical, "No license source detected")
}

func TestSourceLinkField(t *testing.T) {
	requireOne(t, runFields(t, "Link to source data", "https://data.gov/adm1"), SeverityInfo, "Data Source Found")
	requireOne(t, runFields(t, "Link to source data", "na"), SeverityCritical, "No link to source data")
	requireOne(t, runFields(t, "Link to source data", ""), SeverityCritical, "No link to source data")
}

func TestOtherNotesField(t *testing.T) {
	requireOne(t, runFields(t, "Other notes", "digitized from paper maps"), SeverityInfo, "Other notes detected")
	requireOne(t, runFields(t, "Other notes", ""), SeverityWarn, "This field is optional")

	if findings := runFields(t, "Other notes", "NA"); len(findings) != 0 {
		t.Errorf("placeholder other notes emitted findings: %+v", findings)
	}
}

func containsMessage(findings []Finding, substring string) bool {
	for _, f := range findings {
		if strings.Contains(f.Message, substring) {
			return true
		}
	}
	return false
}
