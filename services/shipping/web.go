package shipping

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/fairywrenstore/lib/mycontext"
	"github.com/MarcGrol/fairywrenstore/lib/myhttp"
	"github.com/MarcGrol/fairywrenstore/lib/mylog"
	"github.com/MarcGrol/fairywrenstore/services/checkoutapi"
)

const CalculatePath = "/.netlify/functions/calculate-shipping-options"

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(payer checkoutapi.Payer) *webService {
	logger := mylog.New("shipping")
	return &webService{
		logger:  logger,
		service: newService(logger, payer),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc(CalculatePath, s.calculateShippingOptions()).Methods(http.MethodPost)

	return nil
}

// calculateShippingOptions is called by the embedded checkout whenever the
// buyer changes the shipping address. Every answer, including failures,
// uses the {type, message|value} shape the checkout expects.
func (s *webService) calculateShippingOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		req := CalculateRequest{}
		err := myhttp.DecodeJSON(r, &req)
		if err != nil {
			s.logger.Log(c, "", mylog.SeverityWarn, "Invalid shipping request: %s", err)
			writer.Write(c, w, http.StatusBadRequest, errorResponse(msgMissingParameters))
			return
		}

		resp, err := s.service.calculate(c, req)
		if err != nil {
			s.logger.Log(c, req.CheckoutSessionID, mylog.SeverityError, "Error calculating shipping: %s", err)
			writer.Write(c, w, http.StatusInternalServerError, errorResponse(msgCalculationFailed))
			return
		}

		writer.Write(c, w, http.StatusOK, resp)
	}
}
