package mapping

// phone.go converts free-form phone strings to E.164.
//
// The approach is precision over recall: a number is only accepted when the
// parser can confirm it is valid for a determinable country. A wrong country
// guess would silently corrupt a contact record, while an unnormalized value
// just gets left for manual correction in the UI.

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// minPhoneDigits is the minimum digit count before a parse is even attempted.
const minPhoneDigits = 7

// phonePlaceholders are inputs that mean "no value" rather than a bad number.
// Compared case-insensitively after trimming.
var phonePlaceholders = map[string]bool{
	"":          true,
	"-":         true,
	"null":      true,
	"undefined": true,
}

// PhoneDetection describes a successfully parsed phone number.
type PhoneDetection struct {
	Country        string // ISO 3166-1 alpha-2 region, e.g. "US"
	NationalNumber uint64
	E164           string
}

// NormalizePhone converts a raw phone string to E.164, or returns "" when the
// input is empty, malformed, or the country cannot be confidently determined.
// It never guesses a country to force validity.
func (e *Engine) NormalizePhone(raw string) string {
	det, ok := e.DetectPhone(raw)
	if !ok {
		return ""
	}
	return det.E164
}

// DetectPhone parses a raw phone string and reports whether it resolved to a
// valid number. The boolean makes the fallible parse explicit: a false result
// means "no match", never an error to handle or a panic.
func (e *Engine) DetectPhone(raw string) (PhoneDetection, bool) {
	trimmed := strings.TrimSpace(raw)
	if phonePlaceholders[strings.ToLower(trimmed)] {
		return PhoneDetection{}, false
	}

	digits := digitsOnly(trimmed)
	if len(digits) < minPhoneDigits {
		return PhoneDetection{}, false
	}

	// With an explicit country code the number is self-describing. Without
	// one, parse with no default region; libphonenumber only succeeds when it
	// can infer the country from the digits themselves.
	input := digits
	if strings.HasPrefix(trimmed, "+") {
		input = "+" + digits
	}

	return parsePhone(input)
}

// parsePhone wraps the third-party parser as a match/no-match operation.
func parsePhone(input string) (PhoneDetection, bool) {
	num, err := phonenumbers.Parse(input, "ZZ")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return PhoneDetection{}, false
	}
	return PhoneDetection{
		Country:        phonenumbers.GetRegionCodeForNumber(num),
		NationalNumber: num.GetNationalNumber(),
		E164:           phonenumbers.Format(num, phonenumbers.E164),
	}, true
}

// digitsOnly strips every non-digit character from s.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone converts a raw phone string to E.164 using the default
// engine. See [Engine.NormalizePhone].
func NormalizePhone(raw string) string {
	return Default.NormalizePhone(raw)
}
