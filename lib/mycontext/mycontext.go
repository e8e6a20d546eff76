package mycontext

import (
	"context"
	"net/http"
	"strings"

	"github.com/MarcGrol/fairywrenstore/lib/myuuid"
)

// CtxTraceContext is a context key for the trace context this (used by mylog)
type CtxTraceContext struct{}

// ContextFromHTTPRequest derives the request context and tags it with a trace id:
// the Netlify request id, the trace part of a Cloud trace header, or a fresh uuid.
func ContextFromHTTPRequest(r *http.Request) context.Context {
	trace := r.Header.Get("X-Nf-Request-Id")
	if trace == "" {
		traceParts := strings.Split(r.Header.Get("X-Cloud-Trace-Context"), "/")
		if len(traceParts) > 0 && len(traceParts[0]) > 0 {
			trace = traceParts[0]
		}
	}
	if trace == "" {
		trace = myuuid.New()
	}

	return context.WithValue(r.Context(), CtxTraceContext{}, trace)
}

func TraceFromContext(c context.Context) string {
	if c == nil {
		return ""
	}
	trace, ok := c.Value(CtxTraceContext{}).(string)
	if !ok {
		return ""
	}
	return trace
}
