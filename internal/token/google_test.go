package token

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServiceAccountKey(t *testing.T) (*rsa.PrivateKey, []byte) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	block := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}
	return key, pem.EncodeToMemory(block)
}

func TestGoogleProvider(t *testing.T) {

	key, keyPEM := testServiceAccountKey(t)

	var assertion string
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "urn:ietf:params:oauth:grant-type:jwt-bearer", r.Form.Get("grant_type"))
		assertion = r.Form.Get("assertion")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token": "ya29.token", "expires_in": 3600}`)
	}))
	defer svr.Close()

	p, err := NewGoogleProvider(svr.URL, "job@project.iam.gserviceaccount.com", keyPEM)
	require.NoError(t, err)

	tok, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ya29.token", tok)

	claims := &grantClaims{}
	parsed, err := jwt.ParseWithClaims(assertion, claims,
		func(t *jwt.Token) (interface{}, error) {
			return &key.PublicKey, nil
		})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "job@project.iam.gserviceaccount.com", claims.Issuer)
	assert.Contains(t, claims.Scope, "spreadsheets")
	assert.Contains(t, claims.Scope, "drive")
}

func TestNewGoogleProviderBadKey(t *testing.T) {

	_, err := NewGoogleProvider(DefaultGoogleTokenURL, "job@project.iam.gserviceaccount.com", []byte("not a key"))
	assert.Error(t, err)
}
