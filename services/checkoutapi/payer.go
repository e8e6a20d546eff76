package checkoutapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/MarcGrol/fairywrenstore/lib/myerrors"
	"github.com/MarcGrol/fairywrenstore/lib/myhttpclient"
	"github.com/MarcGrol/fairywrenstore/lib/mylog"
)

//go:generate mockgen -source=payer.go -package checkoutapi -destination payer_mock.go Payer
type Payer interface {
	CreateCheckoutSession(c context.Context, params *stripe.CheckoutSessionParams) (stripe.CheckoutSession, error)
	GetCheckoutSession(c context.Context, sessionID string) (stripe.CheckoutSession, error)
	UpdateCheckoutSession(c context.Context, sessionID string, params *stripe.CheckoutSessionParams) (stripe.CheckoutSession, error)
	CreatePaymentIntent(c context.Context, params *stripe.PaymentIntentParams) (stripe.PaymentIntent, error)
}

type stripePayer struct {
	api *client.API
}

// NewPayer creates a Stripe client that never retries on its own: creating
// or updating a session twice has visible side effects.
func NewPayer(secretKey string, apiURL string) Payer {
	config := &stripe.BackendConfig{
		HTTPClient:        myhttpclient.New("stripe"),
		LeveledLogger:     mylog.NewLeveled("stripe"),
		MaxNetworkRetries: stripe.Int64(0),
	}
	if apiURL != "" {
		config.URL = stripe.String(apiURL)
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, config)

	return &stripePayer{
		api: client.New(secretKey, &stripe.Backends{
			API:     backend,
			Connect: backend,
			Uploads: backend,
		}),
	}
}

func (p *stripePayer) CreateCheckoutSession(c context.Context, params *stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
	params.Context = c
	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return stripe.CheckoutSession{}, myerrors.NewInternalError(fmt.Errorf("error creating stripe session: %s", errorMessage(err)))
	}

	return *session, nil
}

func (p *stripePayer) GetCheckoutSession(c context.Context, sessionID string) (stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = c
	session, err := p.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return stripe.CheckoutSession{}, myerrors.NewInternalError(fmt.Errorf("error retrieving stripe session %s: %s", sessionID, errorMessage(err)))
	}

	return *session, nil
}

// UpdateCheckoutSession posts to the session directly: the typed session
// client of this stripe-go version cannot update a session.
func (p *stripePayer) UpdateCheckoutSession(c context.Context, sessionID string, params *stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
	params.Context = c
	session := &stripe.CheckoutSession{}
	err := p.api.CheckoutSessions.B.Call(
		http.MethodPost,
		stripe.FormatURLPath("/v1/checkout/sessions/%s", sessionID),
		p.api.CheckoutSessions.Key,
		params,
		session,
	)
	if err != nil {
		return stripe.CheckoutSession{}, myerrors.NewInternalError(fmt.Errorf("error updating stripe session %s: %s", sessionID, errorMessage(err)))
	}

	return *session, nil
}

func (p *stripePayer) CreatePaymentIntent(c context.Context, params *stripe.PaymentIntentParams) (stripe.PaymentIntent, error) {
	params.Context = c
	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return stripe.PaymentIntent{}, myerrors.NewInternalError(fmt.Errorf("error creating stripe payment intent: %s", errorMessage(err)))
	}

	return *intent, nil
}

func errorMessage(err error) string {
	stripeErr, ok := err.(*stripe.Error)
	if ok && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return err.Error()
}
