package myhttpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient(t *testing.T) {
	t.Run("passes the response through", func(t *testing.T) {
		// setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/checkout/sessions/cs_1", r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}))
		defer server.Close()
		sut := New("test")

		// when
		resp, err := sut.Get(server.URL + "/v1/checkout/sessions/cs_1")

		// then
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	})

	t.Run("returns transport errors", func(t *testing.T) {
		// setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()
		sut := New("test")

		// when
		_, err := sut.Get(url)

		// then
		assert.Error(t, err)
	})

	t.Run("has a timeout", func(t *testing.T) {
		assert.Equal(t, timeout, New("test").Timeout)
	})
}
