package downloads

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/fairywrenstore/lib/myhttp"
	"github.com/MarcGrol/fairywrenstore/lib/myobjectstore"
	"github.com/MarcGrol/fairywrenstore/services/checkoutapi"
)

const directExpiry = 24 * time.Hour

var paidEbookSession = stripe.CheckoutSession{
	ID:            "cs_paid",
	PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
	Metadata:      map[string]string{"product_type": "ebook"},
}

func TestDownloadLinks(t *testing.T) {

	t.Run("Paid ebook session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, payer, presigner := setup(t, ctrl)

		// given
		payer.EXPECT().GetCheckoutSession(gomock.Any(), "cs_paid").Return(paidEbookSession, nil)
		presigner.EXPECT().PresignGet(gomock.Any(), "A Superb Fairywren.pdf", directExpiry).Return("https://r2/pdf?sig", nil)
		presigner.EXPECT().PresignGet(gomock.Any(), "A Superb Fairywren.epub", directExpiry).Return("https://r2/epub?sig", nil)

		// when
		response := get(router, LinksPath+"?session_id=cs_paid&type=ebook")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"pdf":"https://r2/pdf?sig","epub":"https://r2/epub?sig"}`, response.Body.String())
	})

	t.Run("Requested type differs from purchase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, payer, presigner := setup(t, ctrl)

		// given
		payer.EXPECT().GetCheckoutSession(gomock.Any(), "cs_paid").Return(paidEbookSession, nil)
		presigner.EXPECT().PresignGet(gomock.Any(), gomock.Any(), directExpiry).Return("https://r2/x?sig", nil).Times(2)

		// when
		response := get(router, LinksPath+"?session_id=cs_paid&type=audiobook")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"m4b":"https://r2/x?sig","mp3zip":"https://r2/x?sig"}`, response.Body.String())
	})

	t.Run("Unpaid session gets no links", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, payer, _ := setup(t, ctrl)

		// given
		payer.EXPECT().GetCheckoutSession(gomock.Any(), "cs_open").Return(stripe.CheckoutSession{
			ID:            "cs_open",
			PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
		}, nil)

		// when
		response := get(router, LinksPath+"?session_id=cs_open&type=ebook")

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.JSONEq(t, `{"errorCode":2,"error":"Payment not completed"}`, response.Body.String())
	})

	t.Run("Payment is checked before product type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, payer, _ := setup(t, ctrl)

		// given
		payer.EXPECT().GetCheckoutSession(gomock.Any(), "cs_open").Return(stripe.CheckoutSession{
			ID:            "cs_open",
			PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
		}, nil)

		// when
		response := get(router, LinksPath+"?session_id=cs_open&type=poster")

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "Payment not completed")
	})

	t.Run("Unknown product type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, payer, _ := setup(t, ctrl)

		// given
		payer.EXPECT().GetCheckoutSession(gomock.Any(), "cs_paid").Return(paidEbookSession, nil)

		// when
		response := get(router, LinksPath+"?session_id=cs_paid&type=paperback")

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.JSONEq(t, `{"errorCode":2,"error":"Invalid product type"}`, response.Body.String())
	})

	t.Run("Missing parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, _, _ := setup(t, ctrl)

		for _, query := range []string{"?session_id=cs_paid", "?type=ebook", ""} {
			// when
			response := get(router, LinksPath+query)

			// then
			assert.Equal(t, http.StatusBadRequest, response.Code)
			assert.JSONEq(t, `{"errorCode":1,"error":"Missing session_id or type parameter"}`, response.Body.String())
		}
	})

	t.Run("Session lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, payer, _ := setup(t, ctrl)

		// given
		payer.EXPECT().GetCheckoutSession(gomock.Any(), "cs_gone").Return(stripe.CheckoutSession{}, fmt.Errorf("No such checkout.session"))

		// when
		response := get(router, LinksPath+"?session_id=cs_gone&type=ebook")

		// then
		assert.Equal(t, http.StatusInternalServerError, response.Code)
		assert.JSONEq(t, `{"errorCode":2,"error":"Error generating download links"}`, response.Body.String())
	})

	t.Run("Signing failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, payer, presigner := setup(t, ctrl)

		// given
		payer.EXPECT().GetCheckoutSession(gomock.Any(), "cs_paid").Return(paidEbookSession, nil)
		presigner.EXPECT().PresignGet(gomock.Any(), "A Superb Fairywren.pdf", directExpiry).Return("", fmt.Errorf("bad key"))

		// when
		response := get(router, LinksPath+"?session_id=cs_paid&type=ebook")

		// then
		assert.Equal(t, http.StatusInternalServerError, response.Code)
		assert.Contains(t, response.Body.String(), "Error generating download links")
	})
}

func get(router *mux.Router, url string) *httptest.ResponseRecorder {
	request, _ := http.NewRequest(http.MethodGet, url, nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func setup(t *testing.T, ctrl *gomock.Controller) (*mux.Router, *checkoutapi.MockPayer, *myobjectstore.MockPresigner) {
	payer := checkoutapi.NewMockPayer(ctrl)
	presigner := myobjectstore.NewMockPresigner(ctrl)

	sut := NewWebService(payer, NewIssuer(presigner), directExpiry)
	router := myhttp.NewRouter()
	err := sut.RegisterEndpoints(context.TODO(), router)
	assert.NoError(t, err)

	return router, payer, presigner
}
