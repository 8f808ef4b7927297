package core

import (
	"testing"

	"github.com/BytesPlatform/contact-ingest/internal/mapping"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Info@Acme.COM", "info@acme.com"},
		{`"quoted@example.com"`, "quoted@example.com"},
		{"<bracketed@example.com>", "bracketed@example.com"},
		{"  padded@example.com  ", "padded@example.com"},
		{"not an email", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeWebsite(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"acme.com", "https://acme.com"},
		{"www.acme.com", "https://www.acme.com"},
		{"http://acme.com", "http://acme.com"},
		{"https://acme.com/about", "https://acme.com/about"},
		{"not a website", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeWebsite(tt.in); got != tt.want {
			t.Errorf("NormalizeWebsite(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeZip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"94107", "94107"},
		{"38824.0", "38824"}, // float-parsed by a spreadsheet
		{"94107-1234", "94107-1234"},
		{"SW1A 1AA", "SW1A 1AA"},
		{"xx", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeZip(tt.in); got != tt.want {
			t.Errorf("NormalizeZip(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildContact(t *testing.T) {
	colMap := map[mapping.Field]int{
		mapping.FieldBusinessName: 0,
		mapping.FieldEmail:        1,
		mapping.FieldPhone:        2,
		mapping.FieldWebsite:      3,
		mapping.FieldZip:          4,
		mapping.FieldState:        5,
	}
	row := []string{"Acme Corp", "Info@Acme.com", "+1 415 555 2671", "acme.com", "94107.0", "California"}

	contact, ok := BuildContact(row, colMap, mapping.Default)
	if !ok {
		t.Fatal("expected contact to be kept")
	}

	want := Contact{
		BusinessName: "Acme Corp",
		Email:        "info@acme.com",
		Phone:        "+14155552671",
		Website:      "https://acme.com",
		Zip:          "94107",
		State:        "CA",
	}
	if contact != want {
		t.Errorf("BuildContact = %+v, want %+v", contact, want)
	}
}

func TestBuildContact_SkipsUnreachable(t *testing.T) {
	colMap := map[mapping.Field]int{
		mapping.FieldBusinessName: 0,
		mapping.FieldEmail:        1,
		mapping.FieldPhone:        2,
	}

	// Bad email, unresolvable phone: nothing to reach this contact by.
	row := []string{"Acme Corp", "not-an-email", "call the office"}
	if _, ok := BuildContact(row, colMap, mapping.Default); ok {
		t.Error("expected contact with no usable email or phone to be skipped")
	}

	// One usable channel is enough.
	row = []string{"Acme Corp", "info@acme.com", "call the office"}
	contact, ok := BuildContact(row, colMap, mapping.Default)
	if !ok {
		t.Fatal("expected contact with a valid email to be kept")
	}
	if contact.Phone != "" {
		t.Errorf("Phone = %q, want empty", contact.Phone)
	}
}

func TestBuildContact_ShortRow(t *testing.T) {
	// Mapping points past the row's end (ragged CSV): treated as empty.
	colMap := map[mapping.Field]int{
		mapping.FieldEmail: 0,
		mapping.FieldZip:   5,
	}
	contact, ok := BuildContact([]string{"a@b.com"}, colMap, mapping.Default)
	if !ok {
		t.Fatal("expected contact to be kept")
	}
	if contact.Zip != "" {
		t.Errorf("Zip = %q, want empty", contact.Zip)
	}
}
