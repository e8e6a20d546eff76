package downloads

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v76"

	"github.com/MarcGrol/fairywrenstore/lib/myerrors"
	"github.com/MarcGrol/fairywrenstore/lib/mylog"
	"github.com/MarcGrol/fairywrenstore/services/checkoutapi"
)

const (
	msgMissingParameters = "Missing session_id or type parameter"
	msgPaymentIncomplete = "Payment not completed"
	msgGenerationFailed  = "Error generating download links"
)

type service struct {
	logger mylog.Logger
	payer  checkoutapi.Payer
	issuer *Issuer
	expiry time.Duration
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(logger mylog.Logger, payer checkoutapi.Payer, issuer *Issuer, expiry time.Duration) *service {
	return &service{
		logger: logger,
		payer:  payer,
		issuer: issuer,
		expiry: expiry,
	}
}

// getLinks hands out download links for a paid session. Payment is checked
// before the requested product type.
func (s *service) getLinks(c context.Context, sessionID string, requestedType string) (map[string]string, error) {
	session, err := s.payer.GetCheckoutSession(c, sessionID)
	if err != nil {
		s.logger.Log(c, sessionID, mylog.SeverityError, "Error retrieving session %s: %s", sessionID, err)
		return nil, myerrors.NewInternalErrorf(msgGenerationFailed)
	}

	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		s.logger.Log(c, sessionID, mylog.SeverityWarn, "Session %s has payment status '%s'", sessionID, session.PaymentStatus)
		return nil, myerrors.NewInvalidInputErrorf(msgPaymentIncomplete)
	}

	productType := checkoutapi.ProductType(requestedType)
	if _, found := FilesFor(productType); !found {
		return nil, myerrors.NewInvalidInputErrorf(msgInvalidProductType)
	}

	// The session is not required to match the requested product. Mismatches
	// are only reported.
	purchased := checkoutapi.ProductTypeOf(session.Metadata)
	if purchased != "" && purchased != productType {
		s.logger.Log(c, sessionID, mylog.SeverityWarn, "Session %s bought %s but requests %s links", sessionID, purchased, productType)
	}

	links, err := s.issuer.IssueLinks(c, productType, s.expiry)
	if err != nil {
		s.logger.Log(c, sessionID, mylog.SeverityError, "Error issuing %s links for session %s: %s", productType, sessionID, err)
		return nil, myerrors.NewInternalErrorf(msgGenerationFailed)
	}

	s.logger.Log(c, sessionID, mylog.SeverityInfo, "Issued %d %s links for session %s", len(links), productType, sessionID)

	return links, nil
}
