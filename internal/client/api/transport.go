package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// authTransport decorates every outgoing request with the bearer token and
// the replay-mitigation headers. It is the request-side half of the gateway
// policy; the response side lives in checkResponse.
type authTransport struct {
	base  http.RoundTripper
	token func() string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	if tok := t.token(); tok != "" {
		clone.Header.Set("Authorization", "Bearer "+tok)
	}
	clone.Header.Set("X-Timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))
	clone.Header.Set("X-Request-ID", uuid.NewString())

	return t.base.RoundTrip(clone)
}
