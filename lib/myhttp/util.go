package myhttp

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/fairywrenstore/lib/mycontext"
	"github.com/MarcGrol/fairywrenstore/lib/myerrors"
	"github.com/MarcGrol/fairywrenstore/lib/mylog"
)

// NewRouter returns a router that answers unknown paths and wrong methods
// with the same json error shape as the handlers.
func NewRouter() *mux.Router {
	logger := mylog.New("router")
	writer := NewWriter(logger)

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer.WriteError(c, w, 0, myerrors.NewNotFoundError(errors.New("Not found")))
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer.WriteError(c, w, 0, myerrors.NewMethodNotAllowedError(errors.New("Method not allowed")))
	})

	return router
}
