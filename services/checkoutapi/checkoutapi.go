package checkoutapi

import (
	"fmt"
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"

	"github.com/MarcGrol/fairywrenstore/lib/myerrors"
	"github.com/MarcGrol/fairywrenstore/lib/myhttp"
)

// Checkout holds the optional fields a storefront "buy" form may post
// when starting a checkout.
type Checkout struct {
	Email  string `form:"email" validate:"omitempty,email"`
	Locale string `form:"locale" validate:"omitempty,max=10"`
}

func NewFromRequest(r *http.Request) (Checkout, error) {
	err := r.ParseForm()
	if err != nil {
		return Checkout{}, myerrors.NewInvalidInputError(err)
	}
	return NewFromValues(r.PostForm)
}

func NewFromValues(values url.Values) (Checkout, error) {
	checkout := Checkout{}
	err := formcodec.NewDecoder().Decode(&checkout, values)
	if err != nil {
		return checkout, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	err = myhttp.Validate(checkout)
	if err != nil {
		return checkout, err
	}

	return checkout, nil
}
