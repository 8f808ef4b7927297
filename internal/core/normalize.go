package core

// normalize.go turns confirmed CSV rows into Contact records.
//
// These functions handle the messy reality of user-exported contact data:
// quoted emails, float-parsed zip codes ("38824.0"), full state names, bare
// domains without a scheme, and phone numbers in every punctuation style.
// Each normalizer resolves bad input to an empty string rather than an
// error; a contact with some empty fields is still worth keeping as long as
// it has an email or a phone.

import (
	"strings"

	"github.com/BytesPlatform/contact-ingest/internal/mapping"
)

// BuildContact assembles a Contact from one CSV row using a confirmed
// field -> column index mapping. Columns the mapping doesn't cover are
// ignored. Returns the contact and whether it is worth storing.
func BuildContact(row []string, colMap map[mapping.Field]int, eng *mapping.Engine) (Contact, bool) {
	cell := func(field mapping.Field) string {
		idx, ok := colMap[field]
		if !ok || idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	c := Contact{
		BusinessName: cell(mapping.FieldBusinessName),
		Email:        NormalizeEmail(cell(mapping.FieldEmail)),
		Phone:        eng.NormalizePhone(cell(mapping.FieldPhone)),
		Website:      NormalizeWebsite(cell(mapping.FieldWebsite)),
		Zip:          NormalizeZip(cell(mapping.FieldZip)),
		State:        NormalizeState(cell(mapping.FieldState)),
	}

	return c, !c.Empty()
}

// NormalizeEmail lowercases and strips the quote/bracket wrapping that mail
// clients and spreadsheet exports add around addresses. Values that don't
// look like an email after cleanup are dropped.
func NormalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	email = strings.Trim(email, "\"'<>")
	if !mapping.LooksLikeEmail(email) {
		return ""
	}
	return email
}

// NormalizeWebsite lowercases the host portion and prefixes https:// when no
// scheme is present. Values without a website shape are dropped.
func NormalizeWebsite(raw string) string {
	site := strings.TrimSpace(raw)
	if !mapping.LooksLikeWebsite(site) {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(site), "http://") && !strings.HasPrefix(strings.ToLower(site), "https://") {
		site = "https://" + site
	}
	return site
}

// NormalizeZip strips the ".0" suffix that spreadsheet tools append when a
// zip column gets parsed as a float, then checks the postal code shape.
func NormalizeZip(raw string) string {
	z := strings.TrimSpace(raw)
	if idx := strings.Index(z, "."); idx > 0 {
		z = z[:idx]
	}
	if !mapping.LooksLikeZip(z) {
		return ""
	}
	return z
}
