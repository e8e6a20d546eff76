package mylambda

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

// Start serves handler as a lambda function behind an API gateway (as used by Netlify functions).
func Start(handler http.Handler) {
	awslambda.Start(NewHandler(handler))
}

// NewHandler converts gateway proxy events into http requests for handler.
func NewHandler(handler http.Handler) func(c context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(c context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		request, err := toHTTPRequest(c, event)
		if err != nil {
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusBadRequest,
				Headers:    map[string]string{"Content-Type": "application/json"},
				Body:       `{"error":"Invalid request"}`,
			}, nil
		}

		w := newResponseWriter()
		handler.ServeHTTP(w, request)

		return w.toProxyResponse(), nil
	}
}

func toHTTPRequest(c context.Context, event events.APIGatewayProxyRequest) (*http.Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("error decoding body: %s", err)
		}
		body = decoded
	}

	query := url.Values{}
	for k, vs := range event.MultiValueQueryStringParameters {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	for k, v := range event.QueryStringParameters {
		if _, found := query[k]; !found {
			query.Set(k, v)
		}
	}

	u := url.URL{Path: event.Path, RawQuery: query.Encode()}
	request, err := http.NewRequestWithContext(c, event.HTTPMethod, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %s", err)
	}

	for k, vs := range event.MultiValueHeaders {
		for _, v := range vs {
			request.Header.Add(k, v)
		}
	}
	for k, v := range event.Headers {
		if request.Header.Get(k) == "" {
			request.Header.Set(k, v)
		}
	}
	request.Host = request.Header.Get("Host")
	request.RemoteAddr = event.RequestContext.Identity.SourceIP

	return request, nil
}

type responseWriter struct {
	header     http.Header
	body       bytes.Buffer
	statusCode int
}

func newResponseWriter() *responseWriter {
	return &responseWriter{header: http.Header{}}
}

func (w *responseWriter) Header() http.Header {
	return w.header
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.statusCode == 0 {
		w.WriteHeader(http.StatusOK)
	}
	return w.body.Write(b)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.statusCode == 0 {
		w.statusCode = statusCode
	}
}

func (w *responseWriter) toProxyResponse() events.APIGatewayProxyResponse {
	statusCode := w.statusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	headers := map[string]string{}
	for k, vs := range w.header {
		headers[k] = strings.Join(vs, ", ")
	}

	return events.APIGatewayProxyResponse{
		StatusCode:        statusCode,
		Headers:           headers,
		MultiValueHeaders: w.header,
		Body:              w.body.String(),
	}
}
