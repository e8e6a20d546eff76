package checkoutstripe

import (
	"github.com/stripe/stripe-go/v76"

	"github.com/MarcGrol/fairywrenstore/services/checkoutapi"
)

// PaymentEvent is the part of a verified webhook event we act upon.
type PaymentEvent struct {
	Type            stripe.EventType
	SessionID       string
	CustomerEmail   string
	ProductType     checkoutapi.ProductType
	ShippingDetails *stripe.ShippingDetails
}

type paymentIntentRequest struct {
	// Amount in minor units; fractions are rounded.
	Amount   float64 `json:"amount" validate:"gt=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
}

type clientSecretResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type webhookResponse struct {
	Received bool `json:"received"`
}
