package shipping

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"

	"github.com/MarcGrol/fairywrenstore/lib/mylog"
	"github.com/MarcGrol/fairywrenstore/services/checkoutapi"
)

const (
	msgMissingParameters = "Missing required parameters"
	msgUnserviceable     = "We can't ship to your address. Please choose a different address."
	msgCalculationFailed = "Error calculating shipping options. Please try again."
)

type service struct {
	logger mylog.Logger
	payer  checkoutapi.Payer
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(logger mylog.Logger, payer checkoutapi.Payer) *service {
	return &service{
		logger: logger,
		payer:  payer,
	}
}

// calculate prices shipping for the entered address and stores it on the
// session. An unserviceable address is a normal outcome, not an error, and
// leaves the session untouched.
func (s *service) calculate(c context.Context, req CalculateRequest) (calculateResponse, error) {
	sessionID := req.CheckoutSessionID

	session, err := s.payer.GetCheckoutSession(c, sessionID)
	if err != nil {
		return calculateResponse{}, err
	}
	s.logger.Log(c, sessionID, mylog.SeverityInfo, "Calculate shipping for session %s (status:%s)", session.ID, session.Status)

	address := req.ShippingDetails.Address
	if !IsServiceable(address) {
		s.logger.Log(c, sessionID, mylog.SeverityWarn, "Cannot ship session %s to country '%s'", sessionID, countryOf(address))
		return errorResponse(msgUnserviceable), nil
	}

	options := BuildOptions(address)

	params := &stripe.CheckoutSessionParams{
		ShippingOptions: ToStripe(options),
	}
	addShippingDetails(params, req.ShippingDetails)

	_, err = s.payer.UpdateCheckoutSession(c, sessionID, params)
	if err != nil {
		return calculateResponse{}, err
	}

	s.logger.Log(c, sessionID, mylog.SeverityInfo, "Shipping to %s set to %d %s", address.Country, options[0].FeeMinorUnits, options[0].Currency)

	return successResponse(), nil
}

// addShippingDetails copies the collected address onto the session update.
// These fields have no typed parameter in stripe-go.
func addShippingDetails(params *stripe.CheckoutSessionParams, details *ShippingDetails) {
	const prefix = "collected_information[shipping_details]"

	add := func(key string, value string) {
		if value != "" {
			params.AddExtra(fmt.Sprintf("%s%s", prefix, key), value)
		}
	}

	add("[name]", details.Name)
	if details.Address != nil {
		add("[address][line1]", details.Address.Line1)
		add("[address][line2]", details.Address.Line2)
		add("[address][city]", details.Address.City)
		add("[address][state]", details.Address.State)
		add("[address][postal_code]", details.Address.PostalCode)
		add("[address][country]", details.Address.Country)
	}
}

func countryOf(address *Address) string {
	if address == nil {
		return ""
	}
	return address.Country
}
