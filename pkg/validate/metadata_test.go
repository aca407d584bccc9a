package validate

import "testing"

func TestParseMetadata_SimpleLines(t *testing.T) {
	lines := ParseMetadata("ISO: USA\nBoundary type: ADM1\n")

	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0].Key != "ISO" || lines[0].Value != "USA" {
		t.Errorf("lines[0] = %q:%q, want ISO:USA", lines[0].Key, lines[0].Value)
	}
	if lines[1].Key != "Boundary type" || lines[1].Value != "ADM1" {
		t.Errorf("lines[1] = %q:%q, want Boundary type:ADM1", lines[1].Key, lines[1].Value)
	}
}

func TestParseMetadata_SkipsEmptyLines(t *testing.T) {
	lines := ParseMetadata("\nISO: USA\n\n   \nYear: 2020\n")

	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
}

func TestParseMetadata_TrimsWhitespace(t *testing.T) {
	lines := ParseMetadata("  Canonical Name  :   Republique du Benin  ")

	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if lines[0].Key != "Canonical Name" {
		t.Errorf("Key = %q, want %q", lines[0].Key, "Canonical Name")
	}
	if lines[0].Value != "Republique du Benin" {
		t.Errorf("Value = %q, want %q", lines[0].Value, "Republique du Benin")
	}
}

func TestParseMetadata_CarriageReturns(t *testing.T) {
	lines := ParseMetadata("ISO: USA\r\nYear: 2020\r\n")

	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[1].Value != "2020" {
		t.Errorf("Value = %q, want %q", lines[1].Value, "2020")
	}
}

func TestParseMetadata_NoColonProducesSentinel(t *testing.T) {
	lines := ParseMetadata("this line has no separator")

	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	l := lines[0]
	if !l.Malformed {
		t.Error("Malformed = false, want true")
	}
	if l.Key != ReadErrorSentinel || l.Value != ReadErrorSentinel {
		t.Errorf("sentinel pair = %q:%q, want %q:%q", l.Key, l.Value, ReadErrorSentinel, ReadErrorSentinel)
	}
	if l.Raw != "this line has no separator" {
		t.Errorf("Raw = %q", l.Raw)
	}
}

// The multi-colon merge is legacy behavior downstream consumers depend on:
// the first value-side colon survives, later ones are dropped.
func TestParseMetadata_LegacyColonMerge(t *testing.T) {
	tests := []struct {
		name string
		line string
		key  string
		val  string
	}{
		{
			name: "url with port",
			line: "Source: http://example.com:8080/data",
			key:  "Source",
			val:  "http://example.com8080/data",
		},
		{
			name: "two colons",
			line: "Other notes: updated: 2021",
			key:  "Other notes",
			val:  "updated: 2021",
		},
		{
			name: "single colon untouched",
			line: "License: CC BY 4.0",
			key:  "License",
			val:  "CC BY 4.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := ParseMetadata(tt.line)
			if len(lines) != 1 {
				t.Fatalf("len(lines) = %d, want 1", len(lines))
			}
			if lines[0].Key != tt.key {
				t.Errorf("Key = %q, want %q", lines[0].Key, tt.key)
			}
			if lines[0].Value != tt.val {
				t.Errorf("Value = %q, want %q", lines[0].Value, tt.val)
			}
		})
	}
}
