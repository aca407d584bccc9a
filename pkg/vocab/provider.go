/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package vocab

import (
	"sort"
	"strings"
)

// Provider holds the two reference vocabularies as immutable sets. It is
// never mutated after construction and is safe for concurrent reads.
type Provider struct {
	iso      map[string]struct{}
	licenses map[string]struct{}
}

// New creates a Provider from explicit code and license name lists.
// License names are stored lower-cased and trimmed so lookups are
// case-insensitive.
func New(isoCodes, licenseNames []string) *Provider {
	p := &Provider{
		iso:      make(map[string]struct{}, len(isoCodes)),
		licenses: make(map[string]struct{}, len(licenseNames)),
	}
	for _, c := range isoCodes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		p.iso[c] = struct{}{}
	}
	for _, l := range licenseNames {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == "" {
			continue
		}
		p.licenses[l] = struct{}{}
	}
	return p
}

// HasISO reports whether code is a known ISO-3 code. The lookup is exact:
// published codes are upper-case and submissions are expected to match.
func (p *Provider) HasISO(code string) bool {
	_, ok := p.iso[code]
	return ok
}

// HasLicense reports whether name is a known license, comparing trimmed
// and lower-cased.
func (p *Provider) HasLicense(name string) bool {
	_, ok := p.licenses[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// ISOCodes returns the known ISO-3 codes in sorted order.
func (p *Provider) ISOCodes() []string {
	return sortedKeys(p.iso)
}

// Licenses returns the known license names (lower-cased) in sorted order.
func (p *Provider) Licenses() []string {
	return sortedKeys(p.licenses)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
