package downloads

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/fairywrenstore/lib/mycontext"
	"github.com/MarcGrol/fairywrenstore/lib/myerrors"
	"github.com/MarcGrol/fairywrenstore/lib/myhttp"
	"github.com/MarcGrol/fairywrenstore/lib/mylog"
	"github.com/MarcGrol/fairywrenstore/services/checkoutapi"
)

const LinksPath = "/.netlify/functions/get-download-links"

type linksRequest struct {
	SessionID string `form:"session_id" validate:"required"`
	Type      string `form:"type" validate:"required"`
}

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(payer checkoutapi.Payer, issuer *Issuer, expiry time.Duration) *webService {
	logger := mylog.New("downloads")
	return &webService{
		logger:  logger,
		service: newService(logger, payer, issuer, expiry),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc(LinksPath, s.downloadLinks()).Methods(http.MethodGet)

	return nil
}

// downloadLinks is called from the success page right after payment
func (s *webService) downloadLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := linksRequest{}
		err := myhttp.DecodeQuery(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputErrorf(msgMissingParameters))
			return
		}

		links, err := s.service.getLinks(c, req.SessionID, req.Type)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, links)
	}
}
