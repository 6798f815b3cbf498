// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package rki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the public rki-covid-api endpoint.
const DefaultBaseURL = "https://api.corona-zahlen.org"

// Client talks to the rki-covid-api. Zero value is not usable; use NewClient.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given base URL ("" means the public
// endpoint).
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second}, //nolint:mnd
	}
}

// District fetches the current record for a single region.
// GET /districts/{ags} returns {data: {<ags>: record}, meta: {...}}.
func (c *Client) District(ctx context.Context, ags string) (DistrictResponse, error) {
	body, err := c.get(ctx, "/districts/"+ags)
	if err != nil {
		return DistrictResponse{}, err
	}

	var payload struct {
		Data map[string]District `json:"data"`
		Meta Meta                `json:"meta"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return DistrictResponse{}, &ValidationError{Detail: err.Error()}
	}

	d, ok := payload.Data[ags]
	if !ok {
		return DistrictResponse{}, &ValidationError{Detail: fmt.Sprintf("no record for ags %s", ags)}
	}
	if d.AGS != ags {
		return DistrictResponse{}, &ValidationError{
			Detail: fmt.Sprintf("record ags %s does not match requested %s", d.AGS, ags)}
	}
	if payload.Meta.LastUpdate.IsZero() {
		return DistrictResponse{}, &ValidationError{Detail: "meta.lastUpdate missing"}
	}

	return DistrictResponse{District: d, Meta: payload.Meta}, nil
}

// History fetches a historical series for a region.
// GET /districts/{ags}/history/{metric}/{days} returns
// {data: {ags, name, history: [{<metric>, date}, ...]}, meta: {...}}.
func (c *Client) History(ctx context.Context, ags string, metric Metric, days int) (HistoryResponse, error) {
	path := fmt.Sprintf("/districts/%s/history/%s/%d", ags, metric, days)
	body, err := c.get(ctx, path)
	if err != nil {
		return HistoryResponse{}, err
	}

	var payload struct {
		Data struct {
			AGS     string            `json:"ags"`
			Name    string            `json:"name"`
			History []json.RawMessage `json:"history"`
		} `json:"data"`
		Meta Meta `json:"meta"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return HistoryResponse{}, &ValidationError{Detail: err.Error()}
	}
	if payload.Data.AGS != ags {
		return HistoryResponse{}, &ValidationError{
			Detail: fmt.Sprintf("history ags %q does not match requested %s", payload.Data.AGS, ags)}
	}
	if payload.Meta.LastUpdate.IsZero() {
		return HistoryResponse{}, &ValidationError{Detail: "meta.lastUpdate missing"}
	}

	resp := HistoryResponse{
		AGS:  payload.Data.AGS,
		Name: payload.Data.Name,
		Meta: payload.Meta,
	}

	field := metric.field()
	for i, item := range payload.Data.History {
		value := gjson.GetBytes(item, field)
		if !value.Exists() {
			return HistoryResponse{}, &ValidationError{
				Detail: fmt.Sprintf("history[%d] has no %s field", i, field)}
		}
		date, err := time.Parse(time.RFC3339, gjson.GetBytes(item, "date").String())
		if err != nil {
			return HistoryResponse{}, &ValidationError{
				Detail: fmt.Sprintf("history[%d] date: %v", i, err)}
		}
		resp.Points = append(resp.Points, HistoryPoint{Value: value.Float(), Date: date})
	}

	return resp, nil
}

// get performs the request and applies the common error policy: a non-2xx
// status or an error field in the payload is a RemoteError.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path
	log.Debugf("GET %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteError{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 { //nolint:mnd
		return nil, &RemoteError{Status: resp.StatusCode, Message: probeError(body)}
	}

	// The API reports some failures inside a 200 payload.
	if e := gjson.GetBytes(body, "error"); e.Exists() && e.Type != gjson.Null {
		return nil, &RemoteError{Status: resp.StatusCode, Message: e.String()}
	}

	return body, nil
}

// probeError digs a human-readable message out of an error body, if any.
func probeError(body []byte) string {
	if m := gjson.GetBytes(body, "error.message"); m.Exists() {
		return m.String()
	}
	if m := gjson.GetBytes(body, "error"); m.Exists() {
		return m.String()
	}
	return strings.TrimSpace(string(body))
}
