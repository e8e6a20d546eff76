package storefront

import (
	"context"
	"fmt"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/fairywrenstore/lib/myconfig"
	"github.com/MarcGrol/fairywrenstore/lib/myhttp"
	"github.com/MarcGrol/fairywrenstore/lib/mylog"
	"github.com/MarcGrol/fairywrenstore/lib/myobjectstore"
	"github.com/MarcGrol/fairywrenstore/services/checkoutapi"
	"github.com/MarcGrol/fairywrenstore/services/checkoutstripe"
	"github.com/MarcGrol/fairywrenstore/services/downloads"
	"github.com/MarcGrol/fairywrenstore/services/notification"
	"github.com/MarcGrol/fairywrenstore/services/shipping"
	"github.com/MarcGrol/fairywrenstore/services/warmup"
)

type endpointRegistrar interface {
	RegisterEndpoints(c context.Context, router *mux.Router) error
}

// FromEnvironment loads the configuration, sets up logging and returns a
// router with every storefront endpoint.
func FromEnvironment(c context.Context) (*mux.Router, myconfig.Config, error) {
	config, err := myconfig.Load()
	if err != nil {
		return nil, config, fmt.Errorf("error loading configuration: %s", err)
	}
	mylog.Configure(config.LogFormat, config.LogLevel)

	router, err := NewRouter(c, config)
	if err != nil {
		return nil, config, err
	}

	return router, config, nil
}

// NewRouter wires all services to the collaborators described by config.
// Missing settings are logged. The health endpoint reports them too.
func NewRouter(c context.Context, config myconfig.Config) (*mux.Router, error) {
	logger := mylog.New("storefront")

	err := config.Validate()
	if err != nil {
		logger.Log(c, "", mylog.SeverityWarn, "Incomplete configuration: %s", err)
	}

	payer := checkoutapi.NewPayer(config.Stripe.SecretKey, config.Stripe.APIURL)

	presigner, err := myobjectstore.NewPresigner(config.ObjectStore)
	if err != nil {
		logger.Log(c, "", mylog.SeverityError, "Download links disabled: %s", err)
		presigner = myobjectstore.NewUnavailable(err)
	}
	issuer := downloads.NewIssuer(presigner)

	router := myhttp.NewRouter()
	for _, s := range []endpointRegistrar{
		checkoutstripe.NewWebService(config.SiteURL, config.Stripe.WebhookSecret, payer, issuer, notification.NewLogNotifier(), config.Downloads.EmailLinkExpiry),
		shipping.NewWebService(payer),
		downloads.NewWebService(payer, issuer, config.Downloads.DirectLinkExpiry),
		warmup.NewService(config),
	} {
		err = s.RegisterEndpoints(c, router)
		if err != nil {
			return nil, fmt.Errorf("error registering endpoints: %s", err)
		}
	}

	return router, nil
}
