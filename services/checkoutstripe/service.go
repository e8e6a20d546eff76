package checkoutstripe

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v76"

	"github.com/MarcGrol/fairywrenstore/lib/myerrors"
	"github.com/MarcGrol/fairywrenstore/lib/mylog"
	"github.com/MarcGrol/fairywrenstore/services/checkoutapi"
	"github.com/MarcGrol/fairywrenstore/services/shipping"
)

const defaultPaymentIntentCurrency = "aud"

type service struct {
	logger  mylog.Logger
	payer   checkoutapi.Payer
	siteURL string
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(logger mylog.Logger, payer checkoutapi.Payer, siteURL string) *service {
	return &service{
		logger:  logger,
		payer:   payer,
		siteURL: strings.TrimSuffix(siteURL, "/"),
	}
}

// startCheckout creates a checkout session for a single copy of the product
func (s *service) startCheckout(c context.Context, product checkoutapi.Product, checkout checkoutapi.Checkout) (stripe.CheckoutSession, error) {
	params := s.checkoutParams(product, checkout)

	session, err := s.payer.CreateCheckoutSession(c, params)
	if err != nil {
		return stripe.CheckoutSession{}, err
	}

	s.logger.Log(c, session.ID, mylog.SeverityInfo, "Started %s checkout %s for %s", session.UIMode, session.ID, product.Type)

	if product.UIMode == stripe.CheckoutSessionUIModeEmbedded && session.ClientSecret == "" {
		return stripe.CheckoutSession{}, myerrors.NewInternalErrorf("session %s has no client secret", session.ID)
	}
	if product.UIMode != stripe.CheckoutSessionUIModeEmbedded && session.URL == "" {
		return stripe.CheckoutSession{}, myerrors.NewInternalErrorf("session %s has no url", session.ID)
	}

	return session, nil
}

func (s *service) checkoutParams(product checkoutapi.Product, checkout checkoutapi.Checkout) *stripe.CheckoutSessionParams {
	metadata := map[string]string{
		checkoutapi.MetadataKeyProductType: string(product.Type),
	}
	returnURL := fmt.Sprintf("%s%s?session_id={CHECKOUT_SESSION_ID}", s.siteURL, product.SuccessPath)

	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(product.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:     stripe.String(string(stripe.CheckoutSessionModePayment)),
		UIMode:   stripe.String(string(product.UIMode)),
		Metadata: metadata,
	}
	if checkout.Email != "" {
		params.CustomerEmail = stripe.String(checkout.Email)
	}
	if checkout.Locale != "" {
		params.Locale = stripe.String(checkout.Locale)
	}

	if product.UIMode == stripe.CheckoutSessionUIModeEmbedded {
		// Shipping is priced once the buyer has entered an address. Only
		// this backend may change it afterwards.
		params.ReturnURL = stripe.String(returnURL)
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(shipping.AllowedCountries()),
		}
		params.ShippingOptions = shipping.ToStripe([]shipping.ShippingOption{shipping.PlaceholderOption()})
		params.AddExtra("permissions[update_shipping_details]", "server_only")
		return params
	}

	params.SuccessURL = stripe.String(returnURL)
	params.CancelURL = stripe.String(s.siteURL)
	params.AllowPromotionCodes = stripe.Bool(true)
	params.PaymentIntentData = &stripe.CheckoutSessionPaymentIntentDataParams{
		Metadata: metadata,
	}

	return params
}

// createPaymentIntent backs the custom paperback payment form
func (s *service) createPaymentIntent(c context.Context, req paymentIntentRequest) (stripe.PaymentIntent, error) {
	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = defaultPaymentIntentCurrency
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount))),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata(checkoutapi.MetadataKeyProductType, string(checkoutapi.ProductTypePaperback))

	intent, err := s.payer.CreatePaymentIntent(c, params)
	if err != nil {
		return stripe.PaymentIntent{}, err
	}

	s.logger.Log(c, intent.ID, mylog.SeverityInfo, "Created payment intent %s for %d %s", intent.ID, *params.Amount, currency)

	return intent, nil
}
