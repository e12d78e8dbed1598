// internal/services/payment_service.go
package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/openshop/storefront-backend/internal/models"
)

// PaymentMethod is a closed set of settlement strategies. Unknown names are
// rejected at resolution; there is no dynamic fallback.
type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodPaypal PaymentMethod = "paypal"
	PaymentMethodCash   PaymentMethod = "cash"
)

func ResolvePaymentMethod(name string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(name)); m {
	case PaymentMethodStripe, PaymentMethodPaypal, PaymentMethodCash:
		return m, nil
	}
	return "", ErrUnsupportedPaymentMethod
}

// Settle simulates the external payment gateway for the method. It runs
// synchronously in-process; no network call occurs. Card providers settle
// immediately, cash on delivery stays pending until handover.
func (m PaymentMethod) Settle() models.PaymentResult {
	switch m {
	case PaymentMethodStripe:
		return models.PaymentResult{
			ID:       "stripe_tx_" + uuid.NewString(),
			Status:   models.SettlementStatusSuccess,
			Provider: "stripe",
		}
	case PaymentMethodPaypal:
		return models.PaymentResult{
			ID:       "paypal_tx_" + uuid.NewString(),
			Status:   models.SettlementStatusSuccess,
			Provider: "paypal",
		}
	default:
		return models.PaymentResult{
			ID:       "cash_tx_" + uuid.NewString(),
			Status:   models.SettlementStatusPending,
			Provider: "cash-on-delivery",
		}
	}
}
