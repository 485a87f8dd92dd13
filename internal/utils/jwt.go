package utils

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GoogleCertsURL serves the PEM certificates Google signs ID tokens with.
const GoogleCertsURL = "https://www.googleapis.com/oauth2/v1/certs"

const defaultKeyTTL = time.Hour

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// AddonClaims are the claims of the system ID token the add-on host attaches
// to every request.
type AddonClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// GoogleKeySet fetches Google's signing certificates and caches them by key id.
type GoogleKeySet struct {
	url    string
	client *http.Client
	ttl    time.Duration

	mu      sync.RWMutex
	keys    map[string]*rsa.PublicKey
	fetched time.Time
}

func NewGoogleKeySet(url string, client *http.Client) *GoogleKeySet {
	if url == "" {
		url = GoogleCertsURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &GoogleKeySet{
		url:    url,
		client: client,
		ttl:    defaultKeyTTL,
	}
}

// Keyfunc resolves the verification key for a token from its kid header.
func (k *GoogleKeySet) Keyfunc(token *jwt.Token) (interface{}, error) {
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, errors.New("token has no kid header")
	}

	if key, ok := k.cached(kid); ok {
		return key, nil
	}

	// unknown kid usually means Google rotated keys
	if err := k.refresh(context.Background()); err != nil {
		return nil, err
	}
	if key, ok := k.cached(kid); ok {
		return key, nil
	}
	return nil, fmt.Errorf("no signing key for kid %q", kid)
}

func (k *GoogleKeySet) cached(kid string) (*rsa.PublicKey, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if time.Since(k.fetched) > k.ttl {
		return nil, false
	}
	key, ok := k.keys[kid]
	return key, ok
}

func (k *GoogleKeySet) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.url, nil)
	if err != nil {
		return err
	}

	resp, err := k.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch signing keys: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch signing keys: status %d", resp.StatusCode)
	}

	var certs map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&certs); err != nil {
		return fmt.Errorf("failed to decode signing keys: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, pem := range certs {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
		if err != nil {
			return fmt.Errorf("invalid signing key %q: %w", kid, err)
		}
		keys[kid] = key
	}

	k.mu.Lock()
	k.keys = keys
	k.fetched = time.Now()
	k.mu.Unlock()

	return nil
}

// ValidateAddonToken checks signature, expiry, issuer and audience of a
// Google-signed ID token. When expectedEmail is set the token must also be
// issued to that service account.
func ValidateAddonToken(tokenString, audience, expectedEmail string, keyFunc jwt.Keyfunc) (*AddonClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AddonClaims{}, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AddonClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if !googleIssuers[claims.Issuer] {
		return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}

	if expectedEmail != "" && claims.Email != expectedEmail {
		return nil, fmt.Errorf("token issued to %q", claims.Email)
	}

	return claims, nil
}
