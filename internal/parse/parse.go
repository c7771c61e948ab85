// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse defines the linguistic analyzer capability consumed by
// the extraction stage. The analyzer itself is an external service;
// this package holds the interface and its HTTP adapter.
package parse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/concept-engine/internal/httputil"
	"github.com/pdiddy/concept-engine/pkg/types"
)

// Analyzer segments cleaned text into parsed sentences with noun-phrase
// spans, entity spans, and a dependency arc per token.
type Analyzer interface {
	Parse(ctx context.Context, text string) ([]types.ParsedSentence, error)
}

// ServiceBase is the parse service endpoint. Declared as a var so tests
// can substitute an httptest server.
var ServiceBase = "http://localhost:8064/parse"

// ServiceAnalyzer calls an external dependency-parse HTTP service.
type ServiceAnalyzer struct {
	Client *http.Client
	Config types.ServiceConfig
}

type parseRequest struct {
	Text string `json:"text"`
}

type parseResponse struct {
	Sentences []types.ParsedSentence `json:"sentences"`
}

// Parse posts text to the parse service and returns its sentence list.
func (a *ServiceAnalyzer) Parse(ctx context.Context, text string) ([]types.ParsedSentence, error) {
	body, err := json.Marshal(parseRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("encoding parse request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ServiceBase, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", a.Config.UserAgent)
	if a.Config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.Config.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, a.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("parse service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parse service returned HTTP %d", resp.StatusCode)
	}

	var pr parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("parsing analyzer response: %w", err)
	}

	return pr.Sentences, nil
}
