package shipping

// Address is the destination the buyer entered in the embedded checkout.
// Country is an ISO 3166-1 alpha-2 code.
type Address struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country"`
}

type ShippingDetails struct {
	Name    string   `json:"name,omitempty"`
	Address *Address `json:"address,omitempty"`
}

type CalculateRequest struct {
	CheckoutSessionID string           `json:"checkout_session_id" validate:"required"`
	ShippingDetails   *ShippingDetails `json:"shipping_details" validate:"required"`
}

// calculateResponse follows the shape the embedded checkout expects from
// its shipping-details callback.
type calculateResponse struct {
	Type    string         `json:"type"`
	Message string         `json:"message,omitempty"`
	Value   *updateOutcome `json:"value,omitempty"`
}

type updateOutcome struct {
	Succeeded bool `json:"succeeded"`
}

func errorResponse(message string) calculateResponse {
	return calculateResponse{
		Type:    "error",
		Message: message,
	}
}

func successResponse() calculateResponse {
	return calculateResponse{
		Type:  "object",
		Value: &updateOutcome{Succeeded: true},
	}
}
