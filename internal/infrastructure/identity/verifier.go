// Package identity talks to the external phone-identity provider. The
// provider is reached only through its public REST contract so any
// compliant endpoint can stand in (tests use httptest).
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"
)

const DefaultEndpoint = "https://identitytoolkit.googleapis.com"

type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
	log      *slog.Logger
}

func NewClient(endpoint, apiKey string, log *slog.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log.With("component", "identity_client"),
	}
}

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		LocalID     string `json:"localId"`
		PhoneNumber string `json:"phoneNumber"`
	} `json:"users"`
}

// VerifyPhoneToken asks the provider to resolve idToken and confirms it
// was issued for phoneNumber. Any provider-side rejection, expiry
// included, surfaces as a plain error; the caller maps it to its own
// taxonomy.
func (c *Client) VerifyPhoneToken(ctx context.Context, idToken, phoneNumber string) error {
	body, err := json.Marshal(lookupRequest{IDToken: idToken})
	if err != nil {
		return fmt.Errorf("encode lookup request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/accounts:lookup?key=%s", c.endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build lookup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("identity lookup rejected", "status", resp.StatusCode)
		return fmt.Errorf("identity provider rejected token: status %d", resp.StatusCode)
	}

	var lookup lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return fmt.Errorf("decode lookup response: %w", err)
	}

	if len(lookup.Users) == 0 {
		return fmt.Errorf("token resolves to no account")
	}
	if lookup.Users[0].PhoneNumber != phoneNumber {
		return fmt.Errorf("token was not issued for this phone number")
	}

	return nil
}
