package checkout

import (
	"regexp"
	"strings"

	pkgerrors "github.com/cafeoro/storefront/pkg/errors"
)

const (
	cardNumberMinDigits = 13
	cardNumberMaxDigits = 19
)

var (
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	digitsOnly    = regexp.MustCompile(`^\d+$`)
)

// validateCard checks the credit-card fields collected on the payment step.
// Each failure carries its own message so the shopper knows what to fix.
func validateCard(card CardDetails) *pkgerrors.Error {
	number := strings.ReplaceAll(card.Number, " ", "")
	if !digitsOnly.MatchString(number) || len(number) < cardNumberMinDigits || len(number) > cardNumberMaxDigits {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid card number")
	}
	if strings.TrimSpace(card.Holder) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "enter the name on the card")
	}
	if !expiryPattern.MatchString(card.Expiry) {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid expiry date (MM/YY)")
	}
	if !cvvPattern.MatchString(card.CVV) {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid CVV")
	}
	return nil
}

// CardLastFour returns the final four digits of the card number for the
// confirmation display.
func CardLastFour(number string) string {
	digits := strings.ReplaceAll(number, " ", "")
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
