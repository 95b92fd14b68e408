package matrix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"travel-matrix-service/internal/platform/obs"
	"travel-matrix-service/internal/ports"
)

const matrixEndpoint = "/maps/api/distancematrix/json"

// GoogleMatrixClient implements the MatrixClient port against the Google
// Distance Matrix API.
//
// It owns:
//   - Request authentication (key, client, channel)
//   - External API calls with retry/backoff
//   - Response decoding into the shared grid schema
//
// The client is safe for concurrent use.
type GoogleMatrixClient struct {
	session  *http.Client
	apiKey   string
	clientID string
	channel  string
	baseURL  string
}

func NewGoogleMatrixClient(apiKey, clientID, channel string) (*GoogleMatrixClient, error) {
	if apiKey == "" {
		return nil, errors.New("maps api key is empty")
	}

	client := &GoogleMatrixClient{
		session:  &http.Client{Timeout: 10 * time.Second},
		apiKey:   apiKey,
		clientID: clientID,
		channel:  channel,
		baseURL:  "https://maps.googleapis.com",
	}

	return client, nil
}

// FetchMatrix performs one distance-matrix lookup and returns the parsed
// grid. A non-OK top-level response status (denied key, malformed request)
// is an error; per-pair cell statuses are passed through untouched for the
// caller to reconcile.
func (g *GoogleMatrixClient) FetchMatrix(
	ctx context.Context,
	req ports.MatrixRequest,
) (_ *ports.MatrixResponse, err error) {
	defer obs.Time(ctx, "maps.FetchMatrix")(&err)

	endpoint := g.baseURL + matrixEndpoint

	q := url.Values{}
	q.Set("key", g.apiKey)
	q.Set("client", g.clientID)
	q.Set("channel", g.channel)
	q.Set("origins", req.Origins)
	q.Set("destinations", req.Destinations)
	if req.Mode != "" {
		q.Set("mode", req.Mode)
	}
	if req.DepartureTime != nil {
		q.Set("departure_time", strconv.FormatInt(*req.DepartureTime, 10))
	}

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, endpoint+"?"+q.Encode())
	})
	if err != nil {
		return nil, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr ports.MatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, fmt.Errorf("decode matrix response: %w", err)
	}

	if mr.Status != ports.StatusOK {
		return nil, fmt.Errorf("matrix response status %q", mr.Status)
	}

	return &mr, nil
}
