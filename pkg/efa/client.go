package efa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/campusvvs/navigator/pkg/util"
	"github.com/rs/zerolog/log"
)

const DefaultTimeout = 10 * time.Second

type Client struct {
	BaseURL          string
	StaticParameters map[string]string
	Timeout          time.Duration

	HTTPClient *http.Client
}

func NewClient(baseURL string, staticParameters map[string]string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if staticParameters == nil {
		staticParameters = DefaultStaticParameters()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL:          baseURL,
		StaticParameters: staticParameters,
		Timeout:          timeout,
		HTTPClient:       &http.Client{},
	}
}

type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("trip planner returned status %d: %s", e.Code, e.Body)
}

// Trip makes a single trip request, giving up after the client timeout
func (c *Client) Trip(ctx context.Context, request TripRequest) (*TripResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	requestURL := c.BaseURL + "?" + request.Values(c.StaticParameters).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create trip request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trip request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read trip response: %w", err)
	}

	log.Debug().
		Str("origin", request.OriginStopID).
		Str("destination", request.DestinationStopID).
		Int("status", resp.StatusCode).
		Str("latency", time.Since(startTime).String()).
		Msg("Trip planner request")

	if resp.StatusCode >= 400 {
		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: util.TrimString(strings.TrimSpace(string(body)), 200),
		}
	}

	// A wrongly typed fragment is skipped, everything else in the document is still decoded
	var tripResponse TripResponse
	if err := json.Unmarshal(body, &tripResponse); err != nil {
		var typeError *json.UnmarshalTypeError
		if !errors.As(err, &typeError) {
			return nil, fmt.Errorf("decode trip response: %w", err)
		}

		log.Warn().Err(err).
			Str("origin", request.OriginStopID).
			Str("destination", request.DestinationStopID).
			Msg("Ignoring malformed part of trip response")
	}

	return &tripResponse, nil
}
