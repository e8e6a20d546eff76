package myhttpclient

import (
	"net/http"
	"time"

	"github.com/MarcGrol/fairywrenstore/lib/mylog"
)

// Netlify stops a synchronous function after 10 seconds.
const timeout = 8 * time.Second

type loggingTransport struct {
	logger mylog.Logger
	next   http.RoundTripper
}

// New returns a client for calls to remote APIs that logs every exchange
// under the trace of the request context.
func New(componentName string) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &loggingTransport{
			logger: mylog.New(componentName),
			next:   http.DefaultTransport,
		},
	}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c := req.Context()
	started := time.Now()

	t.logger.Log(c, "", mylog.SeverityDebug, "HTTP request: %s %s%s", req.Method, req.URL.Host, req.URL.Path)

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.logger.Log(c, "", mylog.SeverityWarn, "HTTP error: %s %s%s: %s", req.Method, req.URL.Host, req.URL.Path, err)
		return nil, err
	}

	t.logger.Log(c, "", mylog.SeverityInfo, "HTTP resp: %s %s%s -> %d (%s)", req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(started).Round(time.Millisecond))

	return resp, nil
}
