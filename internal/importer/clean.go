package importer

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Sentinel tokens the portal uses for "no information". Compared after
// trimming and lower-casing. "sem informaç" shows up when the export
// truncates the cedilla-bearing word.
var absentTokens = map[string]struct{}{
	"":              {},
	"-1":            {},
	"sem informação": {},
	"sem informaç":  {},
}

// CleanText trims surrounding whitespace.
func CleanText(s string) string {
	return strings.TrimSpace(s)
}

// CleanUpper trims and upper-cases categorical fields so grouping keys
// compare reliably.
func CleanUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// CleanCategory maps sentinel tokens to absent, otherwise returns the
// trimmed value.
func CleanCategory(s string) *string {
	v := strings.TrimSpace(s)
	if _, absent := absentTokens[strings.ToLower(v)]; absent {
		return nil
	}
	return &v
}

// ParseRoleNumber coerces the portal's numeric role fields (reference,
// standard, level, function level). Parse failures, the sentinels -1 and 0,
// and values outside int64 range are all absent.
func ParseRoleNumber(s string) *int64 {
	v := strings.TrimSpace(s)
	if _, absent := absentTokens[strings.ToLower(v)]; absent {
		return nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	if f == -1 || f == 0 {
		return nil
	}
	// math.MaxInt64 rounds up to 2^63 as a float64, so an inclusive upper
	// comparison would admit out-of-range values and make int64(f) overflow.
	if f < math.MinInt64 || f >= 1<<63 {
		return nil
	}

	n := int64(f)
	return &n
}

// SanitizeNumber drops residual values outside int64 range. Defensive pass
// over already-normalized catalog records before persistence.
func SanitizeNumber(n *int64) *int64 {
	if n == nil {
		return nil
	}
	f := float64(*n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < math.MinInt64 || f > math.MaxInt64 {
		return nil
	}
	return n
}

// ParseMoney parses the localized decimal format where "." separates
// thousands and "," separates the fraction ("1.234,56" -> 1234.56).
// Unparsable or missing values default to 0.
func ParseMoney(s string) float64 {
	v := strings.TrimSpace(s)
	v = strings.ReplaceAll(v, ".", "")
	v = strings.ReplaceAll(v, ",", ".")

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseDate parses DD/MM/YYYY; anything else is absent, not an error.
func ParseDate(s string) *time.Time {
	t, err := time.Parse("02/01/2006", strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &t
}

// IsDigits reports whether s is a non-empty run of decimal digits. Person
// ids failing this gate are dropped rows, never errors.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
