// Package wmata is a thin client for the WMATA rail API
package wmata

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/abelzeko/metro-bot/internal/entities"
	"github.com/abelzeko/metro-bot/internal/metrics"
	"github.com/imroc/req/v3"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public WMATA API endpoint
	DefaultBaseURL = "https://api.wmata.com"
	// DefaultTimeout bounds every request
	DefaultTimeout = 30 * time.Second
)

const predictionPath = "/StationPrediction.svc/json/GetPrediction/"

// ErrUnavailable is wrapped by every error the client returns
var ErrUnavailable = errors.New("wmata: service unavailable")

// Options configures a Client
type Options struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RatePerSecond float64 // Zero disables client-side rate limiting
}

// Client issues single-attempt GET requests against the WMATA API
type Client struct {
	http    *req.Client
	limiter *rate.Limiter
}

// NewClient creates a WMATA client. An empty API key is allowed; the API will
// reject such requests and the rejection is reported like any other failure.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	httpClient := req.C().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetCommonHeader("Cache-Control", "no-cache")
	if opts.APIKey != "" {
		httpClient.SetCommonHeaderNonCanonical("api_key", opts.APIKey)
	} else {
		log.Printf("Warning: WMATA API key is not set, requests will likely be rejected")
	}

	var limiter *rate.Limiter
	if opts.RatePerSecond > 0 {
		burst := int(opts.RatePerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), burst)
	}

	return &Client{
		http:    httpClient,
		limiter: limiter,
	}
}

// Get issues one GET request for path and decodes the JSON body into out.
// Any transport error, non-2xx status or decoding failure wraps ErrUnavailable.
func (c *Client) Get(ctx context.Context, path string, params map[string]string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: rate limiter: %v", ErrUnavailable, err)
		}
	}

	endpoint := path
	if strings.HasPrefix(path, predictionPath) {
		endpoint = predictionPath
	}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		metrics.ObserveUpstream(endpoint, "error", time.Since(start))
		return fmt.Errorf("%w: GET %s: %v", ErrUnavailable, path, err)
	}

	if !resp.IsSuccessState() {
		metrics.ObserveUpstream(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))
		return fmt.Errorf("%w: GET %s: unexpected status code: %d", ErrUnavailable, path, resp.StatusCode)
	}

	if err := resp.UnmarshalJson(out); err != nil {
		metrics.ObserveUpstream(endpoint, "decode_error", time.Since(start))
		return fmt.Errorf("%w: GET %s: failed to decode response: %v", ErrUnavailable, path, err)
	}

	metrics.ObserveUpstream(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))
	return nil
}

// Predictions returns live arrivals for a station
func (c *Client) Predictions(ctx context.Context, stationCode string) (*entities.PredictionResponse, error) {
	var out entities.PredictionResponse
	path := predictionPath + url.PathEscape(stationCode)
	if err := c.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StationToStation returns travel time and fares between two stations
func (c *Client) StationToStation(ctx context.Context, from, to string) (*entities.StationToStationResponse, error) {
	var out entities.StationToStationResponse
	params := map[string]string{"FromStationCode": from, "ToStationCode": to}
	if err := c.Get(ctx, "/Rail.svc/json/jSrcStationToDstStationInfo", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Incidents returns current rail incidents
func (c *Client) Incidents(ctx context.Context) (*entities.IncidentResponse, error) {
	var out entities.IncidentResponse
	if err := c.Get(ctx, "/Incidents.svc/json/Incidents", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ElevatorIncidents returns current elevator and escalator outages
func (c *Client) ElevatorIncidents(ctx context.Context) (*entities.ElevatorIncidentResponse, error) {
	var out entities.ElevatorIncidentResponse
	if err := c.Get(ctx, "/Incidents.svc/json/ElevatorIncidents", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StationInfo returns details for a single station
func (c *Client) StationInfo(ctx context.Context, stationCode string) (*entities.StationInfo, error) {
	var out entities.StationInfo
	params := map[string]string{"StationCode": stationCode}
	if err := c.Get(ctx, "/Rail.svc/json/jStationInfo", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stations returns the full station list
func (c *Client) Stations(ctx context.Context) (*entities.StationListResponse, error) {
	var out entities.StationListResponse
	if err := c.Get(ctx, "/Rail.svc/json/jStations", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
