// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package online implements lookups against a FreeDictionary compatible HTTP
// service.
package online

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/ianlewis/go-aynary"
)

// DefaultBaseURL is the URL of the public FreeDictionary API.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// DefaultTimeout is the request timeout used when none is given.
const DefaultTimeout = 10 * time.Second

// maxBodySize is the largest error body kept in an UpstreamError.
const maxBodySize = 64 << 10

// apiError is the body returned with a 404 response.
type apiError struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Resolution string `json:"resolution"`
}

// Client looks up terms with a remote dictionary service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client for the service at baseURL. An empty baseURL uses
// DefaultBaseURL and a non-positive timeout uses DefaultTimeout.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("component", "online"),
	}
}

// Lookup implements aynary.Lookuper. Requests are not retried.
func (c *Client) Lookup(ctx context.Context, term string) ([]*aynary.Entry, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return nil, aynary.ErrEmptyQuery
	}

	reqURL := c.baseURL + "/" + url.PathEscape(trimmed)
	c.log.DebugContext(ctx, "request", slog.String("word", trimmed))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "request failed", slog.String("word", trimmed), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", aynary.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, notFound(trimmed, resp.Body)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		// A partial body is kept if reading fails.
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if err != nil {
			c.log.DebugContext(ctx, "reading error body",
				slog.String("word", trimmed),
				slog.Int("read", len(body)),
				slog.String("error", err.Error()),
			)
		}
		c.log.WarnContext(ctx, "unexpected status",
			slog.String("word", trimmed),
			slog.Int("status", resp.StatusCode),
		)
		return nil, &aynary.UpstreamError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	var entries []*aynary.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", aynary.ErrUpstream, err)
	}
	// Entries without a headword are dropped.
	entries = slices.DeleteFunc(entries, func(e *aynary.Entry) bool {
		return e == nil || e.Word == ""
	})
	if len(entries) == 0 {
		return nil, &aynary.NotFoundError{Term: trimmed}
	}
	return entries, nil
}

// notFound builds a NotFoundError from a 404 response body. The body is
// optional.
func notFound(term string, body io.Reader) error {
	var e apiError
	if err := json.NewDecoder(io.LimitReader(body, maxBodySize)).Decode(&e); err != nil {
		return &aynary.NotFoundError{Term: term}
	}
	detail := e.Message
	if detail == "" {
		detail = e.Title
	}
	return &aynary.NotFoundError{Term: term, Detail: detail}
}
