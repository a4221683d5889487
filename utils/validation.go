// utils/validation.go
package utils

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is the country customers are assumed to be in when they give
// a local-format number.
const DefaultRegion = "IN"

// NormalizePhone canonicalizes a raw phone number to E.164. It accepts local
// ("9876543210"), zero-prefixed ("09876543210"), country-code-prefixed
// ("919876543210") and already-canonical ("+919876543210") forms, and returns
// ok=false when the number is not a plausible mobile number for the region.
// Normalizing an already-canonical value returns it unchanged.
func NormalizePhone(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	for _, r := range []string{" ", "-", "(", ")"} {
		cleaned = strings.ReplaceAll(cleaned, r, "")
	}
	if cleaned == "" {
		return "", false
	}

	if !strings.HasPrefix(cleaned, "+") {
		switch {
		case strings.HasPrefix(cleaned, "91") && len(cleaned) == 12:
			cleaned = "+" + cleaned
		case strings.HasPrefix(cleaned, "0"):
			cleaned = "+91" + strings.TrimLeft(cleaned, "0")
		default:
			cleaned = "+91" + cleaned
		}
	}

	parsed, err := phonenumbers.Parse(cleaned, DefaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return "", false
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), true
}

// ValidateAmount rejects negative monetary values before they reach the registry.
func ValidateAmount(amount float64) bool {
	return amount >= 0
}
