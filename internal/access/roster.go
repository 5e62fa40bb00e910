package access

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Roster answers whether an email is entitled to admin access. The lookup is
// read-only; entitlement itself is managed elsewhere.
type Roster interface {
	HasEmail(ctx context.Context, email string) (bool, error)
}

// HTTPRoster queries the external plan service's users_hub table through its
// PostgREST-style endpoint. A row matching the email means entitlement.
type HTTPRoster struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *zap.SugaredLogger
}

func NewHTTPRoster(baseURL, apiKey string, log *zap.SugaredLogger) *HTTPRoster {
	return &HTTPRoster{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

func (r *HTTPRoster) HasEmail(ctx context.Context, email string) (bool, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/users_hub?select=email&email=eq.%s",
		r.baseURL, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build roster request: %w", err)
	}
	req.Header.Set("apikey", r.apiKey)
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Accept", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		r.log.Errorw("roster lookup failed", "err", err)
		return false, fmt.Errorf("roster lookup: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		r.log.Errorw("roster lookup rejected", "status", res.StatusCode)
		return false, fmt.Errorf("roster lookup: status %d", res.StatusCode)
	}

	var rows []struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return false, fmt.Errorf("decode roster response: %w", err)
	}
	return len(rows) > 0, nil
}
