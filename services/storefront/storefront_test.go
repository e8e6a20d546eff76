package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/fairywrenstore/lib/myconfig"
)

func TestNewRouter(t *testing.T) {
	// setup
	stripeCalls := 0
	fakeStripe := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stripeCalls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_1","object":"checkout.session","payment_status":"unpaid"}`))
	}))
	defer fakeStripe.Close()

	router, err := NewRouter(context.TODO(), myconfig.Config{
		SiteURL: "https://asuperbfairywren.com",
		Stripe: myconfig.StripeConfig{
			SecretKey:     "sk_test_123",
			WebhookSecret: "whsec_123",
			APIURL:        fakeStripe.URL,
		},
		Downloads: myconfig.DownloadConfig{
			DirectLinkExpiry: 24 * time.Hour,
			EmailLinkExpiry:  48 * time.Hour,
		},
	})
	assert.NoError(t, err)

	testCases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{name: "checkout wrong method", method: http.MethodGet, path: "/.netlify/functions/create-checkout-ebook", status: http.StatusMethodNotAllowed},
		{name: "payment intent preflight", method: http.MethodOptions, path: "/.netlify/functions/create-payment-intent", status: http.StatusOK},
		{name: "shipping without parameters", method: http.MethodPost, path: "/.netlify/functions/calculate-shipping-options", body: `{}`, status: http.StatusBadRequest},
		{name: "download links without parameters", method: http.MethodGet, path: "/.netlify/functions/get-download-links", status: http.StatusBadRequest},
		{name: "download links for unpaid session", method: http.MethodGet, path: "/.netlify/functions/get-download-links?session_id=cs_1&type=ebook", status: http.StatusBadRequest},
		{name: "unsigned webhook", method: http.MethodPost, path: "/.netlify/functions/stripe-webhook", body: `{}`, status: http.StatusBadRequest},
		{name: "health without object store", method: http.MethodGet, path: "/.netlify/functions/health", status: http.StatusServiceUnavailable},
		{name: "unknown function", method: http.MethodGet, path: "/.netlify/functions/unknown", status: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			request, _ := http.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			response := httptest.NewRecorder()
			router.ServeHTTP(response, request)

			// then
			assert.Equal(t, tc.status, response.Code)
		})
	}

	assert.Equal(t, 1, stripeCalls)
}
