package forecast

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/sigaloid/forecast-go/pkg/observe"
)

// HTTPClient is the transport collaborator. *http.Client satisfies it; tests
// substitute fakes.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIClient issues finalized requests through an externally-owned transport.
// It holds no state across calls, so a single client may be shared across
// goroutines as long as the transport allows it.
//
// The client never inspects status codes or bodies and never retries: the
// transport's response and error are handed back exactly as received.
type APIClient struct {
	httpClient HTTPClient
	l          *observe.Logger
}

// NewAPIClient constructs a client around the given transport.
func NewAPIClient(httpClient HTTPClient) *APIClient {
	return &APIClient{httpClient: httpClient}
}

// NewAPIClientWithLogger constructs a client that logs each outgoing request.
func NewAPIClientWithLogger(httpClient HTTPClient, l *observe.Logger) *APIClient {
	return &APIClient{httpClient: httpClient, l: l}
}

// GetForecast performs a GET of the request's precomputed URL and returns the
// transport's result unmodified.
func (c *APIClient) GetForecast(ctx context.Context, request *ForecastRequest) (*http.Response, error) {
	return c.get(ctx, request.URL())
}

// GetTimeMachine performs a GET of the request's precomputed URL and returns
// the transport's result unmodified.
func (c *APIClient) GetTimeMachine(ctx context.Context, request *TimeMachineRequest) (*http.Response, error) {
	return c.get(ctx, request.URL())
}

func (c *APIClient) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	if c.l != nil {
		c.l.Debug("sending API request", map[string]any{"url": url})
	}

	// Transport errors propagate verbatim.
	return c.httpClient.Do(req)
}
