package payment

import (
	"fmt"

	"inkpress/internal/shared/constants"
)

// Provider identifies an external payment gateway. The gateway response body
// is stored verbatim on the subscription row, so the only provider-specific
// knowledge needed here is which document key carries the transaction id.
type Provider string

const (
	ProviderXendit   Provider = constants.PaymentProviderXendit
	ProviderMidtrans Provider = constants.PaymentProviderMidtrans
)

var supportedProviders = map[Provider]bool{
	ProviderXendit:   true,
	ProviderMidtrans: true,
}

// ParseProvider validates a provider name from a confirmation request.
func ParseProvider(name string) (Provider, error) {
	p := Provider(name)
	if !supportedProviders[p] {
		return "", fmt.Errorf("unsupported payment provider: %s", name)
	}
	return p, nil
}

// idKeys lists where each gateway puts the transaction reference in its
// response document.
var idKeys = map[Provider][]string{
	ProviderXendit:   {"id", "external_id"},
	ProviderMidtrans: {"transaction_id", "order_id"},
}

// ExtractPaymentID pulls the transaction reference out of a raw gateway
// response. Returns empty string when the document carries none; the blob is
// stored either way.
func ExtractPaymentID(provider Provider, paymentData map[string]interface{}) string {
	if paymentData == nil {
		return ""
	}

	for _, key := range idKeys[provider] {
		if value, ok := paymentData[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
