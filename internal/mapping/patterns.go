package mapping

// patterns.go centralizes the shape rules for each canonical field so that
// column validation and mapping stay consistent. All checks are pure
// predicates over a single trimmed string.

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// emailPattern matches the standard local@domain.tld shape.
	emailPattern = regexp.MustCompile(`(?i)^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

	// websitePattern matches an optional scheme and www prefix, dot-separated
	// labels ending in a 2+ letter TLD, and an optional path.
	websitePattern = regexp.MustCompile(`(?i)^(https?://)?(www\.)?[a-z0-9\-]+(\.[a-z0-9\-]+)*\.[a-z]{2,}(/\S*)?$`)

	// phonePattern is a coarse pre-filter for phone shapes: optional leading +,
	// then at least 7 digit/punctuation characters. Not authoritative on its
	// own; real phone checks also require the absence of alphabetic characters.
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-().]{7,}$`)

	// zipPattern covers US 5-digit zips and most international postal codes.
	zipPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 \-]{2,9}$`)

	// statePattern matches a 2-letter code or a 2-30 character name.
	statePattern = regexp.MustCompile(`^[A-Za-z]{2}$|^[A-Za-z][A-Za-z ]{0,28}[A-Za-z]$`)
)

// phoneSeparators are the punctuation characters stripped before checking a
// phone value for alphabetic noise.
const phoneSeparators = " -().+"

// LooksLikeEmail reports whether v has an email address shape.
func LooksLikeEmail(v string) bool {
	return emailPattern.MatchString(strings.TrimSpace(v))
}

// LooksLikeWebsite reports whether v has a website/domain shape.
func LooksLikeWebsite(v string) bool {
	return websitePattern.MatchString(strings.TrimSpace(v))
}

// LooksLikePhone reports whether v has a phone number shape: the permissive
// punctuation pattern combined with no alphabetic characters. This is a shape
// check only; whether the number can actually be resolved to a country is the
// normalizer's concern.
func LooksLikePhone(v string) bool {
	v = strings.TrimSpace(v)
	stripped := v
	for _, sep := range phoneSeparators {
		stripped = strings.ReplaceAll(stripped, string(sep), "")
	}
	for _, r := range stripped {
		if unicode.IsLetter(r) {
			return false
		}
	}
	return phonePattern.MatchString(v)
}

// LooksLikeZip reports whether v has a postal code shape (3-10 alphanumeric,
// space, or hyphen characters).
func LooksLikeZip(v string) bool {
	return zipPattern.MatchString(strings.TrimSpace(v))
}

// LooksLikeState reports whether v is a 2-letter state code or a full state
// name.
func LooksLikeState(v string) bool {
	return statePattern.MatchString(strings.TrimSpace(v))
}

// LooksLikeBusinessName reports whether v is a plausible business name. There
// is no format to enforce beyond non-triviality.
func LooksLikeBusinessName(v string) bool {
	return len(strings.TrimSpace(v)) >= 2
}

// fieldCheck is the predicate plus the error message used when a sample fails.
type fieldCheck struct {
	match func(string) bool
	msg   string
}

// fieldChecks binds each canonical field to its shape rule.
var fieldChecks = map[Field]fieldCheck{
	FieldBusinessName: {LooksLikeBusinessName, "is too short to be a business name"},
	FieldEmail:        {LooksLikeEmail, "is not a valid email address"},
	FieldPhone:        {LooksLikePhone, "does not look like a phone number"},
	FieldWebsite:      {LooksLikeWebsite, "is not a valid website address"},
	FieldZip:          {LooksLikeZip, "is not a valid zip or postal code"},
	FieldState:        {LooksLikeState, "is not a valid state"},
}
