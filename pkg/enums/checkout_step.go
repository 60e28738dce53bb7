package enums

import "fmt"

// CheckoutStep identifies one panel of the linear checkout flow.
type CheckoutStep int

const (
	StepContact CheckoutStep = iota + 1
	StepAddress
	StepPayment
	StepConfirmation
)

var checkoutStepNames = map[CheckoutStep]string{
	StepContact:      "contact",
	StepAddress:      "address",
	StepPayment:      "payment",
	StepConfirmation: "confirmation",
}

// String implements fmt.Stringer.
func (s CheckoutStep) String() string {
	if name, ok := checkoutStepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// IsValid reports whether the value is a known CheckoutStep.
func (s CheckoutStep) IsValid() bool {
	_, ok := checkoutStepNames[s]
	return ok
}

// First reports whether the step is the start of the flow.
func (s CheckoutStep) First() bool {
	return s == StepContact
}

// Last reports whether the step is the confirmation review.
func (s CheckoutStep) Last() bool {
	return s == StepConfirmation
}

// Next returns the following step, clamped at confirmation.
func (s CheckoutStep) Next() CheckoutStep {
	if s.Last() || !s.IsValid() {
		return StepConfirmation
	}
	return s + 1
}

// Prev returns the preceding step, clamped at contact.
func (s CheckoutStep) Prev() CheckoutStep {
	if s.First() || !s.IsValid() {
		return StepContact
	}
	return s - 1
}
