package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"moving-estimate-api/internal/models"
	"moving-estimate-api/internal/obs"
)

// Router computes driving distances with the OpenRouteService directions API.
type Router struct {
	client    *http.Client
	apiKey    string
	baseURL   string
	profile   string
	userAgent string
}

// NewRouter creates a directions client. A nil client means http.DefaultClient.
func NewRouter(baseURL, profile, apiKey, userAgent string, client *http.Client) (*Router, error) {
	if apiKey == "" {
		return nil, errors.New("geo: router api key is empty")
	}
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("geo: router base url is empty")
	}
	if profile == "" {
		profile = "driving-car"
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Router{
		client:    client,
		apiKey:    apiKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		profile:   profile,
		userAgent: userAgent,
	}, nil
}

type directionsResponse struct {
	Features []*struct {
		Properties *struct {
			Summary *struct {
				Distance *float64 `json:"distance"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// Distance returns the driving distance in meters between from and to.
// Every failure, including a response without routes, is reported as models.ErrRouting.
func (r *Router) Distance(ctx context.Context, from, to models.Coordinate) (_ float64, err error) {
	defer obs.Time(ctx, "geo.Distance")(&err)

	endpoint := fmt.Sprintf("%s/v2/directions/%s", r.baseURL, r.profile)

	ctx, span := startSpan(ctx, "directions", endpoint)
	defer func() { endSpan(span, err) }()

	req, err := newRequest(ctx, endpoint, "application/json, application/geo+json", r.userAgent)
	if err != nil {
		return 0, fmt.Errorf("%w: geo: %w", models.ErrRouting, err)
	}
	q := req.URL.Query()
	q.Set("api_key", r.apiKey)
	q.Set("start", from.String())
	q.Set("end", to.String())
	req.URL.RawQuery = q.Encode()

	resp, err := do(r.client, req)
	if err != nil {
		return 0, fmt.Errorf("%w: geo: directions %s -> %s: %w", models.ErrRouting, from, to, err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("%w: geo: decode directions response: %w", models.ErrRouting, err)
	}

	if len(decoded.Features) == 0 {
		return 0, fmt.Errorf("%w: geo: no route between %s and %s", models.ErrRouting, from, to)
	}

	feature := decoded.Features[0]
	if feature == nil || feature.Properties == nil || feature.Properties.Summary == nil {
		return 0, fmt.Errorf("%w: geo: route without summary between %s and %s", models.ErrRouting, from, to)
	}

	// summary omits distance when both ends snap to the same point
	d := feature.Properties.Summary.Distance
	if d == nil {
		return 0, nil
	}
	if *d < 0 {
		return 0, fmt.Errorf("%w: geo: negative distance %f", models.ErrRouting, *d)
	}
	return *d, nil
}
