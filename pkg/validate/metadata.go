/*
Copyright © 2025 William & Mary geoLab
SPDX-License-Identifier: Apache-2.0
*/

package validate

import "strings"

// ReadErrorSentinel is the key and value substituted for a metadata line
// that could not be split into a key/value pair. Downstream consumers key
// off this literal, so it is part of the format.
const ReadErrorSentinel = "readError"

// Line is one parsed metadata line. Parsing is total: a line that cannot
// be split produces a Line with Malformed set and the sentinel key/value
// rather than an error, since later lines must still be checked.
type Line struct {
	Key   string
	Value string

	// Malformed marks a line that had no key/value separator.
	Malformed bool

	// Raw is the original line text, kept for reporting.
	Raw string
}

// ParseMetadata splits raw metadata text into ordered key/value lines.
// Empty lines are skipped. Keys and values are trimmed of surrounding
// whitespace.
//
// Lines with more than one colon get the legacy treatment older meta.txt
// files depend on: the first value-side colon is kept and every later one
// is dropped, so "Source: http://example.com:8080/data" yields the value
// "http://example.com8080/data". Deliberately not fixed; see DESIGN.md.
func ParseMetadata(raw string) []Line {
	var lines []Line
	for _, text := range strings.Split(raw, "\n") {
		text = strings.TrimRight(text, "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, parseLine(text))
	}
	return lines
}

func parseLine(text string) Line {
	parts := strings.Split(text, ":")
	if len(parts) < 2 {
		return Line{
			Key:       ReadErrorSentinel,
			Value:     ReadErrorSentinel,
			Malformed: true,
			Raw:       text,
		}
	}

	value := parts[1]
	if len(parts) > 2 {
		value += ":" + strings.Join(parts[2:], "")
	}

	return Line{
		Key:   strings.TrimSpace(parts[0]),
		Value: strings.TrimSpace(value),
		Raw:   text,
	}
}
