// Package enrich attaches contact emails to journalists using the Hunter email-finder API.
package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
)

// DefaultEndpoint is the Hunter API base URL
const DefaultEndpoint = "https://api.hunter.io"

// LookupStatus is the outcome class of an email lookup
type LookupStatus string

// lookup outcomes
const (
	LookupFound         LookupStatus = "found"
	LookupNotFound      LookupStatus = "not_found"
	LookupMissingAPIKey LookupStatus = "missing_api_key"
	LookupAPIError      LookupStatus = "api_error"
)

// LookupResult is the tagged result of an email lookup. Email is set only for LookupFound.
type LookupResult struct {
	Email  string
	Score  int
	Status LookupStatus
}

// HunterConfig defines Hunter client parameters
type HunterConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
	Attempts int // total attempts for transport failures, 1 means no retry
}

// HunterClient looks up email addresses by name and domain
type HunterClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
	attempts int
}

// NewHunterClient makes a Hunter client. Empty API key is allowed, lookups then report LookupMissingAPIKey.
func NewHunterClient(cfg HunterConfig) *HunterClient {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = 1
	}
	return &HunterClient{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: cfg.Timeout},
		attempts: cfg.Attempts,
	}
}

// finderResponse is the email-finder payload, either data or errors is set
type finderResponse struct {
	Data *struct {
		Email      *string  `json:"email"`
		Score      *float64 `json:"score"`
		Confidence *float64 `json:"confidence"`
	} `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

// errAPIStatus marks non-2xx responses, never retried
var errAPIStatus = errors.New("hunter api error")

// FindEmail looks up the email of a person at the domain. It never fails, all problems are
// reported through the result status.
func (h *HunterClient) FindEmail(ctx context.Context, firstName, lastName, domain string) LookupResult {
	if h.apiKey == "" {
		lgr.Printf("[WARN] hunter api key missing, skip lookup for %s %s", firstName, lastName)
		return LookupResult{Status: LookupMissingAPIKey}
	}

	params := url.Values{}
	params.Set("first_name", firstName)
	params.Set("last_name", lastName)
	params.Set("domain", domain)
	params.Set("api_key", h.apiKey)
	reqURL := h.endpoint + "/v2/email-finder?" + params.Encode()

	lgr.Printf("[DEBUG] searching hunter for %s %s @ %s", firstName, lastName, domain)

	var resp finderResponse
	err := repeater.NewFixed(h.attempts, 500*time.Millisecond).Do(ctx, func() error {
		resp = finderResponse{}
		return h.get(ctx, reqURL, &resp)
	}, errAPIStatus)

	switch {
	case errors.Is(err, errAPIStatus):
		lgr.Printf("[WARN] hunter api error for %s %s: %v", firstName, lastName, err)
		return LookupResult{Status: LookupAPIError}
	case err != nil:
		lgr.Printf("[WARN] hunter lookup failed for %s %s: %v", firstName, lastName, err)
		return LookupResult{Status: LookupNotFound}
	}

	if resp.Data == nil || resp.Data.Email == nil || *resp.Data.Email == "" {
		lgr.Printf("[DEBUG] no email found for %s %s @ %s, errors: %s", firstName, lastName, domain, string(resp.Errors))
		return LookupResult{Status: LookupNotFound}
	}

	score := 0
	switch {
	case resp.Data.Score != nil:
		score = int(math.Round(*resp.Data.Score))
	case resp.Data.Confidence != nil:
		score = int(math.Round(*resp.Data.Confidence))
	}
	lgr.Printf("[DEBUG] found %s for %s %s (confidence: %d)", *resp.Data.Email, firstName, lastName, score)
	return LookupResult{Email: *resp.Data.Email, Score: score, Status: LookupFound}
}

// get makes a single request and decodes the response
func (h *HunterClient) get(ctx context.Context, reqURL string, resp *finderResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	httpResp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("request email-finder: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", errAPIStatus, httpResp.StatusCode)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
