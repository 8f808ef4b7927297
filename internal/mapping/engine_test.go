package mapping

import (
	"reflect"
	"testing"
)

func sampleRows() []map[string]string {
	return []map[string]string{
		{"Company": "Acme Corp", "Email Address": "info@acme.com", "Phone": "+1 415 555 2671", "Site": "acme.com", "Zip": "94107", "ST": "CA"},
		{"Company": "Globex", "Email Address": "hello@globex.io", "Phone": "+1 212 555 0188", "Site": "globex.io", "Zip": "10001", "ST": "NY"},
		{"Company": "Initech", "Email Address": "ops@initech.net", "Phone": "+1 512 555 0133", "Site": "www.initech.net", "Zip": "73301", "ST": "TX"},
	}
}

func TestMapColumns_CleanUpload(t *testing.T) {
	headers := []string{"Company", "Email Address", "Phone", "Site", "Zip", "ST"}

	res := MapColumns(headers, sampleRows())

	want := map[Field]int{
		FieldBusinessName: 0,
		FieldEmail:        1,
		FieldPhone:        2,
		FieldWebsite:      3,
		FieldZip:          4,
		FieldState:        5,
	}
	if !reflect.DeepEqual(res.Mapping, want) {
		t.Errorf("Mapping = %v, want %v", res.Mapping, want)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", res.Warnings)
	}
	if got := res.Samples[FieldEmail]; len(got) != 3 || got[0] != "info@acme.com" {
		t.Errorf("Samples[email] = %v", got)
	}
}

func TestMapColumns_DemotesFailedValidation(t *testing.T) {
	// The "Phone" column actually holds street addresses: keyword matching
	// proposes it, sample validation must demote it with a warning.
	headers := []string{"Company", "Email", "Phone"}
	rows := []map[string]string{
		{"Company": "Acme Corp", "Email": "info@acme.com", "Phone": "123 Main St"},
		{"Company": "Globex", "Email": "hello@globex.io", "Phone": "44 Elm Ave"},
		{"Company": "Initech", "Email": "ops@initech.net", "Phone": "9 Oak Blvd"},
	}

	res := MapColumns(headers, rows)

	if _, mapped := res.Mapping[FieldPhone]; mapped {
		t.Error("phone_number should have been demoted, not mapped")
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %+v", res.Warnings)
	}
	w := res.Warnings[0]
	if w.Field != FieldPhone || w.Column != 2 || w.Header != "Phone" {
		t.Errorf("warning = %+v", w)
	}
	if w.Reason == "" {
		t.Error("warning reason is empty")
	}

	// The clean columns are unaffected.
	if res.Mapping[FieldBusinessName] != 0 || res.Mapping[FieldEmail] != 1 {
		t.Errorf("Mapping = %v", res.Mapping)
	}
}

func TestMapColumns_NoRows(t *testing.T) {
	// Header-only uploads still map; with no samples there is nothing to
	// contradict a proposal.
	headers := []string{"Company", "Email"}

	res := MapColumns(headers, nil)

	if res.Mapping[FieldBusinessName] != 0 || res.Mapping[FieldEmail] != 1 {
		t.Errorf("Mapping = %v", res.Mapping)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", res.Warnings)
	}
}

func TestMapColumns_SparseColumns(t *testing.T) {
	// Sampling scans up to SampleRows rows and keeps the first MaxSamples
	// non-empty values, so a mostly-empty column is still validated on the
	// values it does have.
	headers := []string{"Email"}
	rows := []map[string]string{
		{"Email": ""},
		{"Email": "  "},
		{"Email": "a@b.com"},
		{"Email": ""},
		{"Email": "c@d.org"},
	}

	res := MapColumns(headers, rows)

	if res.Mapping[FieldEmail] != 0 {
		t.Errorf("Mapping = %v", res.Mapping)
	}
	if got := res.Samples[FieldEmail]; !reflect.DeepEqual(got, []string{"a@b.com", "c@d.org"}) {
		t.Errorf("Samples[email] = %v", got)
	}
}

func TestCollectSamples_Limits(t *testing.T) {
	headers := []string{"Email"}
	var rows []map[string]string
	for i := 0; i < 20; i++ {
		rows = append(rows, map[string]string{"Email": "x@y.com"})
	}

	samples := Default.CollectSamples(headers, rows)
	if got := len(samples[0]); got != DefaultOptions().MaxSamples {
		t.Errorf("collected %d samples, want %d", got, DefaultOptions().MaxSamples)
	}
}

func TestCollectSamples_RowWindow(t *testing.T) {
	// Values past SampleRows are never seen, even if fewer than MaxSamples
	// were collected.
	headers := []string{"Email"}
	rows := make([]map[string]string, 15)
	for i := range rows {
		rows[i] = map[string]string{"Email": ""}
	}
	rows[12] = map[string]string{"Email": "late@example.com"}

	samples := Default.CollectSamples(headers, rows)
	if len(samples[0]) != 0 {
		t.Errorf("collected %v from beyond the row window", samples[0])
	}
}
