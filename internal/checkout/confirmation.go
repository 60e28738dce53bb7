package checkout

import (
	"fmt"

	"github.com/cafeoro/storefront/internal/cart"
	"github.com/cafeoro/storefront/pkg/enums"
)

// ConfirmationView is everything the review step renders: the validated form
// values plus a snapshot of the cart and its totals.
type ConfirmationView struct {
	Customer     ContactInfo
	Address      AddressInfo
	PaymentLabel string
	Items        []cart.Line
	Summary      cart.Summary
}

func buildConfirmation(form *Form, items []cart.Line, summary cart.Summary) ConfirmationView {
	return ConfirmationView{
		Customer:     form.Contact,
		Address:      form.Address,
		PaymentLabel: paymentLabel(form.Payment),
		Items:        items,
		Summary:      summary,
	}
}

func paymentLabel(payment PaymentInfo) string {
	if payment.Method == enums.PaymentMethodCredit {
		return fmt.Sprintf("%s (card ending ****%s)", payment.Method, CardLastFour(payment.Card.Number))
	}
	return payment.Method.String()
}
