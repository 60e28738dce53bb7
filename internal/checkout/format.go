package checkout

import "strings"

// Input-time cosmetic transforms. These run on every keystroke in the
// affected field and are independent of step gating; they never reject input.

// FormatCardNumber regroups the digits into space-separated blocks of four.
func FormatCardNumber(raw string) string {
	value := strings.ReplaceAll(raw, " ", "")
	if value == "" {
		return ""
	}
	var blocks []string
	for len(value) > 4 {
		blocks = append(blocks, value[:4])
		value = value[4:]
	}
	blocks = append(blocks, value)
	return strings.Join(blocks, " ")
}

// FormatExpiry strips non-digits and inserts the slash after the month.
func FormatExpiry(raw string) string {
	value := keepDigits(raw)
	if len(value) > 4 {
		value = value[:4]
	}
	if len(value) >= 2 {
		return value[:2] + "/" + value[2:]
	}
	return value
}

// FormatCVV strips everything but digits.
func FormatCVV(raw string) string {
	return keepDigits(raw)
}

// FormatPhone strips non-digits and inserts a dash after the fourth digit.
func FormatPhone(raw string) string {
	value := keepDigits(raw)
	if len(value) > 8 {
		value = value[:8]
	}
	if len(value) >= 4 {
		return value[:4] + "-" + value[4:]
	}
	return value
}

func keepDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
