// Package client talks to a running scheduler service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

var ErrServer = errors.New("scheduler service error")

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client for baseURL, e.g. "http://localhost:9095". A nil
// httpClient means http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTPClient: httpClient}
}

// Schedule runs one algorithm remotely.
func (c *Client) Schedule(ctx context.Context, algorithm string, request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	var response responses.ScheduleResponse
	err := c.post(ctx, "/api/v1/"+algorithm, request, &response)
	return response, err
}

// ScheduleAll runs the given algorithms, or the service defaults when none are given.
func (c *Client) ScheduleAll(ctx context.Context, algorithms []string, request requests.ScheduleRequests) ([]responses.ScheduleResponse, error) {
	request.Algorithms = algorithms
	var response []responses.ScheduleResponse
	err := c.post(ctx, "/api/v1/all", request, &response)
	return response, err
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		var e responses.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			return fmt.Errorf("%w: %s", ErrServer, resp.Status)
		}
		if e.Field != "" {
			return fmt.Errorf("%w: %s (field %s)", ErrServer, e.Error, e.Field)
		}
		return fmt.Errorf("%w: %s", ErrServer, e.Error)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response of %s: %w", path, err)
	}
	return nil
}
