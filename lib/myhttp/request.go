package myhttp

import (
	"encoding/json"
	"fmt"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"

	"github.com/MarcGrol/fairywrenstore/lib/myerrors"
)

const maxBodySize = 64 * 1024

var (
	validate     = validator.New(validator.WithRequiredStructEnabled())
	queryDecoder = formcodec.NewDecoder()
)

// DecodeJSON reads the json body of r into v and validates it using the
// `validate` struct tags.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return myerrors.NewInvalidInputErrorf("missing request body")
	}
	err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodySize)).Decode(v)
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("error parsing request body: %s", err))
	}

	return Validate(v)
}

// DecodeQuery decodes the query string of r into v using `form` tags.
func DecodeQuery(r *http.Request, v interface{}) error {
	err := queryDecoder.Decode(v, r.URL.Query())
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("error decoding query: %s", err))
	}

	return Validate(v)
}

func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}
	return nil
}
