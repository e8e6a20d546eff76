package shipping

import (
	"fmt"

	"github.com/stripe/stripe-go/v76"
)

type DeliveryEstimate struct {
	MinDays int64
	MaxDays int64
}

type ShippingOption struct {
	FeeMinorUnits    int64
	Currency         string
	DisplayName      string
	DeliveryEstimate DeliveryEstimate
}

var (
	homeEstimate          = DeliveryEstimate{MinDays: 5, MaxDays: 10}
	internationalEstimate = DeliveryEstimate{MinDays: 10, MaxDays: 21}
)

// BuildOptions returns the single standard shipping option for the address.
// The address is expected to be serviceable.
func BuildOptions(address *Address) []ShippingOption {
	country := ""
	if address != nil {
		country = address.Country
	}

	estimate := internationalEstimate
	if country == HomeCountry {
		estimate = homeEstimate
	}

	return []ShippingOption{
		{
			FeeMinorUnits:    PriceFor(country),
			Currency:         Currency,
			DisplayName:      fmt.Sprintf("Standard Shipping to %s", DisplayNameFor(country)),
			DeliveryEstimate: estimate,
		},
	}
}

// PlaceholderOption is shown on a fresh paperback session until the buyer
// has entered an address and the real option replaces it.
func PlaceholderOption() ShippingOption {
	return ShippingOption{
		FeeMinorUnits:    PriceFor(HomeCountry),
		Currency:         Currency,
		DisplayName:      "Standard Shipping",
		DeliveryEstimate: DeliveryEstimate{MinDays: 5, MaxDays: 14},
	}
}

func ToStripe(options []ShippingOption) []*stripe.CheckoutSessionShippingOptionParams {
	result := make([]*stripe.CheckoutSessionShippingOptionParams, 0, len(options))
	for _, o := range options {
		result = append(result, &stripe.CheckoutSessionShippingOptionParams{
			ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
				Type:        stripe.String(string(stripe.ShippingRateTypeFixedAmount)),
				DisplayName: stripe.String(o.DisplayName),
				FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
					Amount:   stripe.Int64(o.FeeMinorUnits),
					Currency: stripe.String(o.Currency),
				},
				DeliveryEstimate: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateParams{
					Minimum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMinimumParams{
						Unit:  stripe.String(string(stripe.ShippingRateDeliveryEstimateMinimumUnitBusinessDay)),
						Value: stripe.Int64(o.DeliveryEstimate.MinDays),
					},
					Maximum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMaximumParams{
						Unit:  stripe.String(string(stripe.ShippingRateDeliveryEstimateMaximumUnitBusinessDay)),
						Value: stripe.Int64(o.DeliveryEstimate.MaxDays),
					},
				},
			},
		})
	}
	return result
}
