// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/concept-engine/internal/httputil"
	"github.com/pdiddy/concept-engine/pkg/types"
)

// ServiceBase is the dictionary service endpoint. Declared as a var so
// tests can substitute an httptest server.
var ServiceBase = "http://localhost:8065/lookup"

// Service queries an external dictionary service for lemmas, verb
// senses, and spelling corrections. Any lookup failure degrades to the
// static fallback for that word; capability unavailability is never an
// error.
type Service struct {
	Client   *http.Client
	Config   types.ServiceConfig
	fallback Static
}

type lookupResponse struct {
	Lemma      string `json:"lemma"`
	IsVerb     bool   `json:"is_verb"`
	Correction string `json:"correction"`
}

func (s *Service) lookup(ctx context.Context, word string) (lookupResponse, error) {
	reqURL := ServiceBase + "?" + url.Values{"word": {word}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return lookupResponse{}, fmt.Errorf("creating lookup request: %w", err)
	}
	req.Header.Set("User-Agent", s.Config.UserAgent)
	if s.Config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.Config.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return lookupResponse{}, fmt.Errorf("dictionary service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return lookupResponse{}, fmt.Errorf("dictionary service returned HTTP %d", resp.StatusCode)
	}

	var lr lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return lookupResponse{}, fmt.Errorf("parsing dictionary response: %w", err)
	}
	return lr, nil
}

// LemmatizeVerb asks the service for the verb's lemma, falling back to
// suffix stripping on failure.
func (s *Service) LemmatizeVerb(ctx context.Context, verb string) string {
	lr, err := s.lookup(ctx, verb)
	if err != nil || lr.Lemma == "" {
		return s.fallback.LemmatizeVerb(ctx, verb)
	}
	return lr.Lemma
}

// IsVerb asks the service whether the word has a verb sense, falling
// back to the whitelist on failure.
func (s *Service) IsVerb(ctx context.Context, word string) bool {
	lr, err := s.lookup(ctx, word)
	if err != nil {
		return s.fallback.IsVerb(ctx, word)
	}
	return lr.IsVerb
}

// CorrectWord asks the service for a spelling correction, falling back
// to the correction table on failure.
func (s *Service) CorrectWord(ctx context.Context, word string) string {
	lr, err := s.lookup(ctx, word)
	if err != nil || lr.Correction == "" {
		return s.fallback.CorrectWord(ctx, word)
	}
	return lr.Correction
}
