package checkoutapi

import (
	"github.com/stripe/stripe-go/v76"
)

// MetadataKeyProductType tags sessions and payment intents with what was bought.
const MetadataKeyProductType = "product_type"

type ProductType string

const (
	ProductTypeEbook     ProductType = "ebook"
	ProductTypeAudiobook ProductType = "audiobook"
	ProductTypePaperback ProductType = "paperback"
)

type Product struct {
	Type    ProductType
	PriceID string
	UIMode  stripe.CheckoutSessionUIMode
	// SuccessPath is the storefront page the buyer lands on after paying.
	SuccessPath string
	// Digital products are delivered as download links.
	Digital bool
}

var products = map[ProductType]Product{
	ProductTypeEbook: {
		Type:        ProductTypeEbook,
		PriceID:     "price_1StRhNK70oIXhMLJ2taLbk9S",
		UIMode:      stripe.CheckoutSessionUIModeHosted,
		SuccessPath: "/success-ebook",
		Digital:     true,
	},
	ProductTypeAudiobook: {
		Type:        ProductTypeAudiobook,
		PriceID:     "price_1StRj1K70oIXhMLJwv6ASWol",
		UIMode:      stripe.CheckoutSessionUIModeHosted,
		SuccessPath: "/success-audiobook",
		Digital:     true,
	},
	ProductTypePaperback: {
		Type:    ProductTypePaperback,
		PriceID: "price_1StRfgK70oIXhMLJlpi6Qxot",
		// Embedded so shipping can be priced server side before the buyer pays.
		UIMode:      stripe.CheckoutSessionUIModeEmbedded,
		SuccessPath: "/success-paperback",
		Digital:     false,
	},
}

func GetProduct(productType ProductType) (Product, bool) {
	p, found := products[productType]
	return p, found
}

// ProductTypeOf reads the product type tag from stripe metadata.
func ProductTypeOf(metadata map[string]string) ProductType {
	return ProductType(metadata[MetadataKeyProductType])
}
