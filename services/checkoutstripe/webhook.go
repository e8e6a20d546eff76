package checkoutstripe

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/MarcGrol/fairywrenstore/lib/myerrors"
	"github.com/MarcGrol/fairywrenstore/lib/mylog"
	"github.com/MarcGrol/fairywrenstore/services/checkoutapi"
	"github.com/MarcGrol/fairywrenstore/services/downloads"
	"github.com/MarcGrol/fairywrenstore/services/notification"
)

type eventHandler struct {
	logger        mylog.Logger
	webhookSecret string
	issuer        *downloads.Issuer
	notifier      notification.Notifier
	linkExpiry    time.Duration
}

func newEventHandler(logger mylog.Logger, webhookSecret string, issuer *downloads.Issuer, notifier notification.Notifier, linkExpiry time.Duration) *eventHandler {
	return &eventHandler{
		logger:        logger,
		webhookSecret: webhookSecret,
		issuer:        issuer,
		notifier:      notifier,
		linkExpiry:    linkExpiry,
	}
}

// verify checks the signature over the exact payload bytes. Nothing may
// happen with an event that fails here.
func (h *eventHandler) verify(payload []byte, signature string) (stripe.Event, error) {
	if h.webhookSecret == "" {
		return stripe.Event{}, myerrors.NewInvalidInputErrorf("Webhook Error: no webhook secret configured")
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, h.webhookSecret, webhook.ConstructEventOptions{
		Tolerance:                webhook.DefaultTolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return stripe.Event{}, myerrors.NewInvalidInputErrorf("Webhook Error: %s", err)
	}

	return event, nil
}

// toPaymentEvent extracts what we need from a verified event. Only
// completed checkout sessions carry a session.
func toPaymentEvent(event stripe.Event) (PaymentEvent, error) {
	paymentEvent := PaymentEvent{
		Type: event.Type,
	}
	if event.Type != stripe.EventTypeCheckoutSessionCompleted || event.Data == nil {
		return paymentEvent, nil
	}

	session := stripe.CheckoutSession{}
	err := json.Unmarshal(event.Data.Raw, &session)
	if err != nil {
		return paymentEvent, fmt.Errorf("error parsing session of event %s: %s", event.ID, err)
	}

	paymentEvent.SessionID = session.ID
	paymentEvent.ProductType = checkoutapi.ProductTypeOf(session.Metadata)
	paymentEvent.ShippingDetails = session.ShippingDetails
	paymentEvent.CustomerEmail = session.CustomerEmail
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		paymentEvent.CustomerEmail = session.CustomerDetails.Email
	}

	return paymentEvent, nil
}

// dispatch acts on a verified event. Failures are logged only: the event
// is acknowledged regardless so it is not redelivered forever.
func (h *eventHandler) dispatch(c context.Context, event PaymentEvent) {
	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		h.logger.Log(c, "", mylog.SeverityDebug, "Ignoring event of type %s", event.Type)
		return
	}

	h.logger.Log(c, event.SessionID, mylog.SeverityInfo, "Payment completed for session %s (product:%s)", event.SessionID, event.ProductType)

	product, found := checkoutapi.GetProduct(event.ProductType)
	switch {
	case !found:
		h.logger.Log(c, event.SessionID, mylog.SeverityWarn, "Session %s has unknown product type '%s'", event.SessionID, event.ProductType)
	case product.Digital:
		h.deliverDigital(c, event)
	default:
		h.logger.Log(c, event.SessionID, mylog.SeverityInfo, "%s order %s ships to %s", product.Type, event.SessionID, describeShipping(event.ShippingDetails))
	}
}

func (h *eventHandler) deliverDigital(c context.Context, event PaymentEvent) {
	if event.CustomerEmail == "" {
		h.logger.Log(c, event.SessionID, mylog.SeverityWarn, "Session %s has no customer email", event.SessionID)
	}

	links, err := h.issuer.IssueLinks(c, event.ProductType, h.linkExpiry)
	if err != nil {
		h.logger.Log(c, event.SessionID, mylog.SeverityError, "Error issuing %s links for session %s: %s", event.ProductType, event.SessionID, err)
		return
	}

	err = h.notifier.SendDownloadLinks(c, event.CustomerEmail, string(event.ProductType), links)
	if err != nil {
		h.logger.Log(c, event.SessionID, mylog.SeverityError, "Error sending %s links for session %s: %s", event.ProductType, event.SessionID, err)
		return
	}

	h.logger.Log(c, event.SessionID, mylog.SeverityInfo, "Delivered %s links for session %s", event.ProductType, event.SessionID)
}

func describeShipping(details *stripe.ShippingDetails) string {
	if details == nil || details.Address == nil {
		return "an unknown address"
	}
	a := details.Address
	return fmt.Sprintf("%s, %s %s, %s %s %s", details.Name, a.Line1, a.Line2, a.City, a.PostalCode, a.Country)
}
