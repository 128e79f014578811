package extract

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// ErrPhoneTooShort is returned by FormatPhone when the candidate has fewer
// than 7 digits. It is the only failure the extractors report; callers
// decide whether to keep the raw string.
var ErrPhoneTooShort = eris.New("phone: fewer than 7 digits")

// Phones extracts phone numbers from text, formats each, and de-duplicates
// by normalized digit string, keeping the first occurrence. Normalized
// strings shorter than 7 digits are discarded.
func Phones(text string) []string {
	if text == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)

	for _, pattern := range phonePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			formatted, err := FormatPhone(match)
			if err != nil {
				continue
			}
			normalized := NormalizeDigits(formatted)
			if len(normalized) < 7 || seen[normalized] {
				continue
			}
			seen[normalized] = true
			out = append(out, formatted)
		}
	}
	return out
}

// NormalizeDigits strips every non-digit character.
func NormalizeDigits(phone string) string {
	return nonDigitPattern.ReplaceAllString(phone, "")
}

// FormatPhone formats a phone number consistently: 10 digits become
// "(AAA) BBB-CCCC", 11 digits with a leading 1 become "+1 (BBB) CCC-DDDD".
// Other lengths of 7 or more digits are returned unchanged as a best effort;
// fewer than 7 digits fails with ErrPhoneTooShort.
func FormatPhone(phone string) (string, error) {
	digits := NormalizeDigits(phone)

	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10]), nil
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:11]), nil
	case len(digits) >= 7:
		return phone, nil
	default:
		return "", ErrPhoneTooShort
	}
}
