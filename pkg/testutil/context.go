package testutil

import (
	"net/http"
	"time"

	"contactregistry/pkg/requestcontext"
)

// WithActor stamps an acting username onto the request context, simulating
// what the auth middleware does for authenticated requests.
func WithActor(req *http.Request, username string) *http.Request {
	ctx := requestcontext.WithUsername(req.Context(), username)
	return req.WithContext(ctx)
}

// WithRequestTime pins the request-scoped clock so audit timestamps are
// deterministic.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	ctx := requestcontext.WithTime(req.Context(), t)
	return req.WithContext(ctx)
}
