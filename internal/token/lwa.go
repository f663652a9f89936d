package token

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultLWATokenURL = "https://api.amazon.com/auth/o2/token"

// expirySlack is subtracted from the reported lifetime so a token is never
// handed out moments before the upstream rejects it.
const expirySlack = 60 * time.Second

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// LWAProvider exchanges a Login-with-Amazon refresh token for an access token
// and caches it until shortly before expiry. One provider per marketplace,
// since every marketplace carries its own refresh token.
type LWAProvider struct {
	url          string
	clientID     string
	clientSecret string
	refreshToken string
	client       *resty.Client

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func NewLWAProvider(url string, clientID string, clientSecret string, refreshToken string) *LWAProvider {
	return &LWAProvider{
		url:          url,
		clientID:     clientID,
		clientSecret: clientSecret,
		refreshToken: refreshToken,
		client:       resty.New(),
	}
}

func (p *LWAProvider) Token(ctx context.Context) (string, error) {

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && time.Now().Before(p.expiry) {
		return p.token, nil
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": p.refreshToken,
			"client_id":     p.clientID,
			"client_secret": p.clientSecret,
		}).
		Post(p.url)
	if err != nil {
		return "", fmt.Errorf("token request failed %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode(), resp.Body())
	}

	var parsed tokenResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", fmt.Errorf("json parsing error %w", err)
	}
	if parsed.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access_token")
	}

	p.token = parsed.AccessToken
	p.expiry = time.Now().Add(time.Duration(parsed.ExpiresIn)*time.Second - expirySlack)

	return p.token, nil
}
