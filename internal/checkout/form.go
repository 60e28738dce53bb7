package checkout

import (
	"strings"

	"github.com/cafeoro/storefront/pkg/enums"
)

// ContactInfo holds the step-one fields.
type ContactInfo struct {
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// AddressInfo holds the step-two fields. Reference is the only optional one.
type AddressInfo struct {
	Department string `json:"department" validate:"required"`
	City       string `json:"city" validate:"required"`
	Street     string `json:"street" validate:"required"`
	Reference  string `json:"reference"`
}

// CardDetails holds the conditional credit-card fields of step three.
type CardDetails struct {
	Number string `json:"card_number"`
	Holder string `json:"card_holder"`
	Expiry string `json:"card_expiry"`
	CVV    string `json:"card_cvv"`
}

// PaymentInfo holds the step-three fields.
type PaymentInfo struct {
	Method enums.PaymentMethod `json:"payment_method" validate:"required"`
	Card   CardDetails         `json:"card"`
}

// Form is the transient checkout state. It exists only while the checkout
// flow is open and is never persisted.
type Form struct {
	Contact     ContactInfo
	Address     AddressInfo
	Payment     PaymentInfo
	AcceptTerms bool
}

func (c *ContactInfo) normalize() {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
}

func (a *AddressInfo) normalize() {
	a.Department = strings.TrimSpace(a.Department)
	a.City = strings.TrimSpace(a.City)
	a.Street = strings.TrimSpace(a.Street)
	a.Reference = strings.TrimSpace(a.Reference)
}

func (p *PaymentInfo) normalize() {
	p.Card.Holder = strings.TrimSpace(p.Card.Holder)
	p.Card.Expiry = strings.TrimSpace(p.Card.Expiry)
	p.Card.CVV = strings.TrimSpace(p.Card.CVV)
}
