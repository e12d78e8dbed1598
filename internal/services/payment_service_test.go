// internal/services/payment_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshop/storefront-backend/internal/models"
)

func TestResolvePaymentMethod(t *testing.T) {
	m, err := ResolvePaymentMethod("stripe")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodStripe, m)

	m, err = ResolvePaymentMethod("PayPal")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodPaypal, m)

	_, err = ResolvePaymentMethod("bitcoin")
	assert.ErrorIs(t, err, ErrUnsupportedPaymentMethod)

	_, err = ResolvePaymentMethod("")
	assert.ErrorIs(t, err, ErrUnsupportedPaymentMethod)
}

func TestSettleCardProvidersSucceedImmediately(t *testing.T) {
	stripe := PaymentMethodStripe.Settle()
	assert.Equal(t, models.SettlementStatusSuccess, stripe.Status)
	assert.Equal(t, "stripe", stripe.Provider)
	assert.True(t, strings.HasPrefix(stripe.ID, "stripe_tx_"))

	paypal := PaymentMethodPaypal.Settle()
	assert.Equal(t, models.SettlementStatusSuccess, paypal.Status)
	assert.Equal(t, "paypal", paypal.Provider)
	assert.True(t, strings.HasPrefix(paypal.ID, "paypal_tx_"))
}

func TestSettleCashStaysPending(t *testing.T) {
	result := PaymentMethodCash.Settle()
	assert.Equal(t, models.SettlementStatusPending, result.Status)
	assert.Equal(t, "cash-on-delivery", result.Provider)
	assert.NotEmpty(t, result.ID)
}

func TestSettleGeneratesUniqueTransactionIDs(t *testing.T) {
	a := PaymentMethodStripe.Settle()
	b := PaymentMethodStripe.Settle()
	assert.NotEqual(t, a.ID, b.ID)
}
