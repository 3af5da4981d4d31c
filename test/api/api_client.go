/*
Copyright 2026 the Food API Test Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
//nolint:revive // naming conventions acceptable in test code
package api

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON = errors.New("body is not valid JSON")
	ErrNotArray    = errors.New("body is not a JSON array")
	ErrNotObject   = errors.New("array element is not a JSON object")
)

// target is a request spec together with the client materialised from it.
type target struct {
	spec   RequestSpec
	client *resty.Client
}

// FoodClient talks to the food service and its data reset endpoint.
type FoodClient struct {
	food      target
	reset     target
	config    *TestConfig
	endpoints *Endpoints
	logger    logr.Logger
}

func NewFoodClient(config *TestConfig, opts ...Option) *FoodClient {
	o := newOptions(opts)

	foodSpec := BuildRequestSpec(config.FoodBaseURL)
	resetSpec := BuildRequestSpec(config.ResetURL)

	return &FoodClient{
		food:      target{spec: foodSpec, client: foodSpec.newClient(config)},
		reset:     target{spec: resetSpec, client: resetSpec.newClient(config)},
		config:    config,
		endpoints: NewEndpoints(),
		logger:    o.logger,
	}
}

// generateTraceID creates a new W3C trace ID.
// A fresh trace per request lets a failing call be found in the service logs.
func generateTraceID() string {
	id := uuid.New()

	return hex.EncodeToString(id[:])
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	id := uuid.New()

	return hex.EncodeToString(id[:8])
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

func (c *FoodClient) doRequest(ctx context.Context, t target, method, path string, session Session, body interface{}, expectedStatus int) (*resty.Response, error) {
	endpoint := t.spec.BaseURI() + path
	traceParent := createTraceParent()
	log := c.logger.WithValues("method", method, "endpoint", endpoint, "traceID", extractTraceID(traceParent))

	req := t.client.R().
		SetContext(ctx).
		SetHeader("Traceparent", traceParent).
		SetHeader("Tracestate", "test-automation=ginkgo")

	if !session.IsEmpty() {
		req.SetCookies(session.Cookies())
	}

	if body != nil {
		req.SetBody(body).SetJSONEscapeHTML(false)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	duration := time.Since(start)

	if err != nil {
		log.Error(err, "http request failed", "duration", duration)
		return nil, fmt.Errorf("%s %s: http request failed: %w", method, endpoint, err)
	}

	if c.config.LogRequests {
		log.Info("request complete", "status", resp.StatusCode(), "duration", duration, "session", session.String())
	}

	if c.config.LogResponses && len(resp.Body()) > 0 {
		log.Info("response body", "body", string(resp.Body()))
	}

	if expectedStatus > 0 && resp.StatusCode() != expectedStatus {
		log.Info("unexpected status", "expected", expectedStatus, "status", resp.StatusCode(), "body", string(resp.Body()))

		return resp, &UnexpectedStatusCodeError{
			Method:   method,
			Endpoint: endpoint,
			Expected: expectedStatus,
			Actual:   resp.StatusCode(),
			Body:     string(resp.Body()),
			TraceID:  extractTraceID(traceParent),
		}
	}

	return resp, nil
}

// parseRecords decodes a list response into its records, in order.
func parseRecords(endpoint string, body []byte) ([]map[string]interface{}, error) {
	fail := func(err error) error {
		return &ResponseParseError{Endpoint: endpoint, RawBody: string(body), Err: err}
	}

	if !gjson.ValidBytes(body) {
		return nil, fail(ErrInvalidJSON)
	}

	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		return nil, fail(ErrNotArray)
	}

	elements := result.Array()
	records := make([]map[string]interface{}, 0, len(elements))

	for i, element := range elements {
		record, ok := element.Value().(map[string]interface{})
		if !element.IsObject() || !ok {
			return nil, fail(fmt.Errorf("%w: index %d", ErrNotObject, i))
		}

		records = append(records, record)
	}

	return records, nil
}

// ListFood returns the collection as seen by session, along with the session
// described by the cookies this response set.
func (c *FoodClient) ListFood(ctx context.Context, session Session) ([]map[string]interface{}, Session, error) {
	path := c.endpoints.Collection()

	resp, err := c.doRequest(ctx, c.food, http.MethodGet, path, session, nil, http.StatusOK)
	if err != nil {
		return nil, Session{}, fmt.Errorf("listing food: %w", err)
	}

	records, err := parseRecords(c.food.spec.BaseURI()+path, resp.Body())
	if err != nil {
		return nil, Session{}, fmt.Errorf("listing food: %w", err)
	}

	return records, NewSession(resp.Cookies()), nil
}

// AddFood appends item to the collection of session.  The response body
// carries nothing of interest and is ignored.
func (c *FoodClient) AddFood(ctx context.Context, session Session, item FoodItem) error {
	if _, err := c.doRequest(ctx, c.food, http.MethodPost, c.endpoints.Collection(), session, item, http.StatusOK); err != nil {
		return fmt.Errorf("adding food: %w", err)
	}

	return nil
}

// ResetData clears the state of every session on the service, not just ours.
func (c *FoodClient) ResetData(ctx context.Context) error {
	if _, err := c.doRequest(ctx, c.reset, http.MethodPost, c.endpoints.Reset(), Session{}, nil, http.StatusOK); err != nil {
		return fmt.Errorf("resetting data: %w", err)
	}

	return nil
}
