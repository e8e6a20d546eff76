package warmup

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/fairywrenstore/lib/myconfig"
	"github.com/MarcGrol/fairywrenstore/lib/mycontext"
	"github.com/MarcGrol/fairywrenstore/lib/myerrors"
	"github.com/MarcGrol/fairywrenstore/lib/myhttp"
	"github.com/MarcGrol/fairywrenstore/lib/mylog"
)

const HealthPath = "/.netlify/functions/health"

type webService struct {
	logger mylog.Logger
	config myconfig.Config
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(config myconfig.Config) *webService {
	logger := mylog.New("health")
	return &webService{
		logger: logger,
		config: config,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc(HealthPath, s.healthPage()).Methods(http.MethodGet)

	return nil
}

// healthPage reports unavailable as long as a collaborator lacks its settings.
// Secrets are never echoed, only the names of what is missing.
func (s webService) healthPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := s.config.Validate()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewUnavailableError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Stripe and object store are configured",
		})
	}
}
