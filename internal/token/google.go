package token

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v4"
)

const DefaultGoogleTokenURL = "https://oauth2.googleapis.com/token"

const googleScopes = "https://www.googleapis.com/auth/spreadsheets https://www.googleapis.com/auth/drive"

// GoogleProvider implements the service-account flow: it signs a short-lived
// RS256 assertion with the account's private key and trades it for an access
// token with spreadsheets and drive scope.
type GoogleProvider struct {
	url         string
	clientEmail string
	key         *rsa.PrivateKey
	client      *resty.Client

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func NewGoogleProvider(url string, clientEmail string, privateKeyPEM []byte) (*GoogleProvider, error) {

	key, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key %w", err)
	}

	return &GoogleProvider{
		url:         url,
		clientEmail: clientEmail,
		key:         key,
		client:      resty.New(),
	}, nil
}

func (p *GoogleProvider) Token(ctx context.Context) (string, error) {

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && time.Now().Before(p.expiry) {
		return p.token, nil
	}

	assertion, err := p.buildAssertion()
	if err != nil {
		return "", err
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type": "urn:ietf:params:oauth:grant-type:jwt-bearer",
			"assertion":  assertion,
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

type grantClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

func (p *GoogleProvider) buildAssertion() (string, error) {

	now := time.Now()

	assertion := jwt.NewWithClaims(jwt.SigningMethodRS256, grantClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.clientEmail,
			Audience:  jwt.ClaimStrings{p.url},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Scope: googleScopes,
	})

	signed, err := assertion.SignedString(p.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign assertion %w", err)
	}

	return signed, nil
}
