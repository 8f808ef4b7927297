package mapping

import "testing"

func TestLooksLikeEmail(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"a@b.com", true},
		{"first.last+tag@sub.domain.org", true},
		{"  padded@example.com  ", true},
		{"UPPER@EXAMPLE.COM", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"user@.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := LooksLikeEmail(tt.value); got != tt.want {
			t.Errorf("LooksLikeEmail(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestLooksLikeWebsite(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"example.com", true},
		{"www.example.com", true},
		{"https://example.com", true},
		{"http://www.example.co.uk/path?q=1", true},
		{"sub.domain.io", true},
		{"not a website", false},
		{"example", false},
		{"http://", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := LooksLikeWebsite(tt.value); got != tt.want {
			t.Errorf("LooksLikeWebsite(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestLooksLikePhone(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"+1 (415) 555-2671", true},
		{"415-555-2671", true},
		{"4155552671", true},
		{"+44 20 7946 0958", true},
		{"555-CALL-NOW", false}, // alphabetic characters
		{"123 Main St", false},
		{"12345", false}, // too short for the coarse pattern
		{"", false},
	}

	for _, tt := range tests {
		if got := LooksLikePhone(tt.value); got != tt.want {
			t.Errorf("LooksLikePhone(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestLooksLikeZip(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"94107", true},
		{"94107-1234", true},
		{"SW1A 1AA", true}, // UK
		{"K1A 0B1", true},  // Canada
		{"123", true},
		{"12", false},
		{"12345678901", false},
		{"94107!", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := LooksLikeZip(tt.value); got != tt.want {
			t.Errorf("LooksLikeZip(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestLooksLikeState(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"CA", true},
		{"ca", true},
		{"California", true},
		{"New York", true},
		{"X", false},
		{"94107", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := LooksLikeState(tt.value); got != tt.want {
			t.Errorf("LooksLikeState(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestLooksLikeBusinessName(t *testing.T) {
	if !LooksLikeBusinessName("Acme Corp") {
		t.Error("expected 'Acme Corp' to be accepted")
	}
	if LooksLikeBusinessName(" a ") {
		t.Error("expected single character to be rejected")
	}
	if LooksLikeBusinessName("") {
		t.Error("expected empty string to be rejected")
	}
}
