package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethod(t *testing.T) {
	t.Parallel()

	for _, method := range validPaymentMethods {
		assert.True(t, method.IsValid(), method.String())
	}
	assert.False(t, PaymentMethod("check").IsValid())
	assert.False(t, PaymentMethod("").IsValid())

	assert.True(t, PaymentMethodCredit.RequiresCard())
	assert.False(t, PaymentMethodCash.RequiresCard())
	assert.False(t, PaymentMethodTransfer.RequiresCard())
}

func TestParsePaymentMethod(t *testing.T) {
	t.Parallel()

	method, err := ParsePaymentMethod("cash")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodCash, method)

	_, err = ParsePaymentMethod("bitcoin")
	require.Error(t, err)
}

func TestCheckoutStepOrdering(t *testing.T) {
	t.Parallel()

	assert.True(t, StepContact.First())
	assert.True(t, StepConfirmation.Last())

	assert.Equal(t, StepAddress, StepContact.Next())
	assert.Equal(t, StepPayment, StepAddress.Next())
	assert.Equal(t, StepConfirmation, StepPayment.Next())
	assert.Equal(t, StepConfirmation, StepConfirmation.Next())

	assert.Equal(t, StepContact, StepContact.Prev())
	assert.Equal(t, StepPayment, StepConfirmation.Prev())
}

func TestCheckoutStepString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "contact", StepContact.String())
	assert.Equal(t, "payment", StepPayment.String())
	assert.Equal(t, "step(9)", CheckoutStep(9).String())
	assert.False(t, CheckoutStep(0).IsValid())
}
