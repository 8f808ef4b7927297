package mapping

import "testing"

func TestNormalizePhone_ExplicitCountryCode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"already E.164", "+14155552671", "+14155552671"},
		{"US with punctuation", "+1 (415) 555-2671", "+14155552671"},
		{"UK with spaces", "+44 20 7946 0958", "+442079460958"},
		{"dots as separators", "+1.415.555.2671", "+14155552671"},
		{"too few digits", "+123", ""},
		{"invalid country code", "+999 1234567", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.raw); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone_Placeholders(t *testing.T) {
	for _, raw := range []string{"", "-", "null", "NULL", "undefined", "Undefined", "   "} {
		if got := NormalizePhone(raw); got != "" {
			t.Errorf("NormalizePhone(%q) = %q, want empty", raw, got)
		}
	}
}

func TestNormalizePhone_NoCountryCode(t *testing.T) {
	// Without an explicit country code the parser has nothing to infer a
	// region from, and the normalizer refuses to guess one.
	tests := []string{
		"4155552671",
		"415-555-2671",
		"(415) 555 2671",
	}

	for _, raw := range tests {
		if got := NormalizePhone(raw); got != "" {
			t.Errorf("NormalizePhone(%q) = %q, want empty (no country to infer)", raw, got)
		}
	}
}

func TestNormalizePhone_Garbage(t *testing.T) {
	for _, raw := range []string{"n/a", "call me", "123 Main Street", "0000000"} {
		if got := NormalizePhone(raw); got != "" {
			t.Errorf("NormalizePhone(%q) = %q, want empty", raw, got)
		}
	}
}

func TestDetectPhone(t *testing.T) {
	det, ok := Default.DetectPhone("+1 415-555-2671")
	if !ok {
		t.Fatal("DetectPhone returned no match for a valid US number")
	}
	if det.Country != "US" {
		t.Errorf("Country = %q, want %q", det.Country, "US")
	}
	if det.NationalNumber != 4155552671 {
		t.Errorf("NationalNumber = %d, want %d", det.NationalNumber, 4155552671)
	}
	if det.E164 != "+14155552671" {
		t.Errorf("E164 = %q, want %q", det.E164, "+14155552671")
	}

	if _, ok := Default.DetectPhone("not a number"); ok {
		t.Error("DetectPhone matched garbage input")
	}
}
