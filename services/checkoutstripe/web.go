package checkoutstripe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v76"

	"github.com/MarcGrol/fairywrenstore/lib/mycontext"
	"github.com/MarcGrol/fairywrenstore/lib/myerrors"
	"github.com/MarcGrol/fairywrenstore/lib/myhttp"
	"github.com/MarcGrol/fairywrenstore/lib/mylog"
	"github.com/MarcGrol/fairywrenstore/services/checkoutapi"
	"github.com/MarcGrol/fairywrenstore/services/downloads"
	"github.com/MarcGrol/fairywrenstore/services/notification"
)

const (
	CheckoutPathPrefix = "/.netlify/functions/create-checkout-"
	PaymentIntentPath  = "/.netlify/functions/create-payment-intent"
	WebhookPath        = "/.netlify/functions/stripe-webhook"

	maxWebhookSize = 1 << 20
)

type webService struct {
	logger       mylog.Logger
	siteURL      string
	service      *service
	eventHandler *eventHandler
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(siteURL string, webhookSecret string, payer checkoutapi.Payer, issuer *downloads.Issuer, notifier notification.Notifier, emailLinkExpiry time.Duration) *webService {
	logger := mylog.New("checkoutstripe")
	return &webService{
		logger:       logger,
		siteURL:      siteURL,
		service:      newService(logger, payer, siteURL),
		eventHandler: newEventHandler(logger, webhookSecret, issuer, notifier, emailLinkExpiry),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	for _, productType := range []checkoutapi.ProductType{
		checkoutapi.ProductTypeEbook,
		checkoutapi.ProductTypeAudiobook,
		checkoutapi.ProductTypePaperback,
	} {
		product, found := checkoutapi.GetProduct(productType)
		if !found {
			return fmt.Errorf("product %s is not in the catalog", productType)
		}
		router.HandleFunc(CheckoutPathPrefix+string(productType), s.startCheckoutPage(product)).Methods(http.MethodPost)
	}

	router.HandleFunc(PaymentIntentPath,
		myhttp.WithCORS(s.siteURL, []string{http.MethodPost}, s.createPaymentIntent())).Methods(http.MethodPost, http.MethodOptions)

	router.HandleFunc(WebhookPath, s.webhookNotification()).Methods(http.MethodPost)

	return nil
}

// startCheckoutPage starts a checkout session on the Stripe platform. Hosted
// sessions redirect the buyer, embedded ones return the client secret.
func (s *webService) startCheckoutPage(product checkoutapi.Product) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		checkout, err := checkoutapi.NewFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		session, err := s.service.startCheckout(c, product, checkout)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		if product.UIMode == stripe.CheckoutSessionUIModeEmbedded {
			errorWriter.Write(c, w, http.StatusOK, clientSecretResponse{
				ClientSecret: session.ClientSecret,
			})
			return
		}

		http.Redirect(w, r, session.URL, http.StatusSeeOther)
	}
}

func (s *webService) createPaymentIntent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := paymentIntentRequest{}
		err := myhttp.DecodeJSON(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		intent, err := s.service.createPaymentIntent(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, clientSecretResponse{
			ClientSecret: intent.ClientSecret,
		})
	}
}

// webhookNotification receives the asynchronous payment events. Once an
// event is verified it is always acknowledged.
func (s *webService) webhookNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookSize))
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputErrorf("Webhook Error: %s", err))
			return
		}

		event, err := s.eventHandler.verify(payload, r.Header.Get("Stripe-Signature"))
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		paymentEvent, err := toPaymentEvent(event)
		if err != nil {
			s.logger.Log(c, event.ID, mylog.SeverityError, "Error interpreting event %s: %s", event.ID, err)
		} else {
			s.eventHandler.dispatch(c, paymentEvent)
		}

		errorWriter.Write(c, w, http.StatusOK, webhookResponse{
			Received: true,
		})
	}
}
