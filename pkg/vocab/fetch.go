/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package vocab

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Sources names the two reference tables a Provider is fetched from.
type Sources struct {
	// CountriesURL is a CSV with an "Alpha-3code" column.
	CountriesURL string `json:"countriesUrl" yaml:"countriesUrl"`

	// LicensesURL is a CSV with a "license_name" column.
	LicensesURL string `json:"licensesUrl" yaml:"licensesUrl"`
}

// DefaultSources returns the published geoBoundaryBot reference tables.
func DefaultSources() Sources {
	return Sources{
		CountriesURL: "https://github.com/wmgeolab/geoBoundaryBot/raw/main/dta/iso_3166_1_alpha_3.csv",
		LicensesURL:  "https://github.com/wmgeolab/geoBoundaryBot/raw/main/dta/gbLicenses.csv",
	}
}

// Fetch downloads both reference tables and builds a Provider. It is meant
// to run once at process start; the engine itself never performs network
// I/O.
func Fetch(ctx context.Context, client *http.Client, src Sources) (*Provider, error) {
	if client == nil {
		client = http.DefaultClient
	}

	isoCodes, err := fetchColumn(ctx, client, src.CountriesURL, "Alpha-3code")
	if err != nil {
		return nil, fmt.Errorf("fetching ISO-3 codes: %w", err)
	}

	licenseNames, err := fetchColumn(ctx, client, src.LicensesURL, "license_name")
	if err != nil {
		return nil, fmt.Errorf("fetching license names: %w", err)
	}

	slog.Debug("reference vocabularies loaded",
		"isoCodes", len(isoCodes),
		"licenses", len(licenseNames))

	return New(isoCodes, licenseNames), nil
}

// fetchColumn retrieves a CSV document and extracts one named column.
func fetchColumn(ctx context.Context, client *http.Client, url, column string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	return readColumn(resp.Body, column)
}

// readColumn parses CSV data and returns the values of the named column.
func readColumn(r io.Reader, column string) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	idx := -1
	for i, name := range head {
		if name == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found in CSV header %v", column, head)
	}

	var values []string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV record: %w", err)
		}
		if idx < len(record) {
			values = append(values, record[idx])
		}
	}
	return values, nil
}
