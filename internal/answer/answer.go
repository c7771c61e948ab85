// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package answer defines the sequence-generation capability used to
// produce free-form answers. Requests are batched; the synthesis side
// falls back to templated answers when generation is unavailable or a
// batch fails.
package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/concept-engine/internal/httputil"
	"github.com/pdiddy/concept-engine/pkg/types"
)

// Generator produces one answer per prompt. Implementations must
// return exactly len(prompts) answers on success.
type Generator interface {
	Generate(ctx context.Context, prompts []string) ([]string, error)
}

// ServiceBase is the generation service endpoint. Declared as a var so
// tests can substitute an httptest server.
var ServiceBase = "http://localhost:8066/generate"

// ServiceGenerator calls an external text-generation HTTP service.
type ServiceGenerator struct {
	Client *http.Client
	Config types.ServiceConfig
}

type generateRequest struct {
	Prompts []string `json:"prompts"`
}

type generateResponse struct {
	Answers []string `json:"answers"`
}

// Generate posts a batch of prompts and returns the generated answers.
func (g *ServiceGenerator) Generate(ctx context.Context, prompts []string) ([]string, error) {
	body, err := json.Marshal(generateRequest{Prompts: prompts})
	if err != nil {
		return nil, fmt.Errorf("encoding generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ServiceBase, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", g.Config.UserAgent)
	if g.Config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.Config.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, g.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("generation service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation service returned HTTP %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("parsing generation response: %w", err)
	}

	if len(gr.Answers) != len(prompts) {
		return nil, fmt.Errorf("generation service returned %d answers for %d prompts", len(gr.Answers), len(prompts))
	}

	return gr.Answers, nil
}
