// Package stringutil provides small string validation and formatting
// helpers: format predicates (email, numbers, IBAN, UUID), strict boolean
// parsing, and human readable byte sizes.
package stringutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsEmail reports whether the string looks like an email address. The
// check is a pragmatic local@domain.tld shape test, not a full RFC 5322
// parse.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsInt reports whether the string represents a base-10 integer.
func IsInt(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// IsFloat reports whether the string represents a floating point number.
func IsFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsUUID reports whether the string is a canonically formatted UUID
// (8-4-4-4-12 hex digits).
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// ibanLengths maps country codes to the total IBAN length they define.
// Covers the SEPA area plus a few common others.
var ibanLengths = map[string]int{
	"AT": 20, "BE": 16, "BG": 22, "CH": 21, "CY": 28, "CZ": 24,
	"DE": 22, "DK": 18, "EE": 20, "ES": 24, "FI": 18, "FR": 27,
	"GB": 22, "GR": 27, "HR": 21, "HU": 28, "IE": 22, "IS": 26,
	"IT": 27, "LI": 21, "LT": 20, "LU": 20, "LV": 21, "MC": 27,
	"MT": 31, "NL": 18, "NO": 15, "PL": 28, "PT": 25, "RO": 24,
	"SE": 24, "SI": 19, "SK": 24, "SM": 27,
}

// IsIBAN reports whether the string is a valid IBAN: known country code,
// the length that country defines, and a correct mod-97 checksum
// (ISO 13616). Spaces are ignored.
func IsIBAN(s string) bool {
	iban := strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	if len(iban) < 4 {
		return false
	}
	want, known := ibanLengths[iban[:2]]
	if !known || len(iban) != want {
		return false
	}

	// Move the country code and check digits to the end, then interpret
	// letters as numbers (A=10 .. Z=35) and check mod 97 == 1.
	rearranged := iban[4:] + iban[:4]
	remainder := 0
	for _, r := range rearranged {
		var part int
		switch {
		case r >= '0' && r <= '9':
			part = int(r - '0')
		case r >= 'A' && r <= 'Z':
			part = int(r-'A') + 10
		default:
			return false
		}
		if part < 10 {
			remainder = (remainder*10 + part) % 97
		} else {
			remainder = (remainder*100 + part) % 97
		}
	}
	return remainder == 1
}

var (
	trueWords  = map[string]struct{}{"true": {}, "t": {}, "1": {}, "yes": {}, "y": {}}
	falseWords = map[string]struct{}{"false": {}, "f": {}, "0": {}, "no": {}, "n": {}}
)

// Str2Bool parses a human-written boolean. It accepts true/t/1/yes/y and
// false/f/0/no/n, case-insensitively, and fails for anything else.
func Str2Bool(s string) (bool, error) {
	word := strings.ToLower(strings.TrimSpace(s))
	if _, ok := trueWords[word]; ok {
		return true, nil
	}
	if _, ok := falseWords[word]; ok {
		return false, nil
	}
	return false, fmt.Errorf("%q is not a recognized boolean", s)
}

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// HumanReadableBytes formats a byte count using binary (IEC) units, e.g.
// 1536 -> "1.5 KiB".
func HumanReadableBytes(n int64) string {
	size := float64(n)
	for _, unit := range byteUnits {
		if size < 1024 || unit == byteUnits[len(byteUnits)-1] {
			if unit == "B" {
				return fmt.Sprintf("%d %s", n, unit)
			}
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	// Unreachable: the loop always returns on the last unit.
	return fmt.Sprintf("%d B", n)
}
