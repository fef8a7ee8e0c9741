package opensky

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
)

// AuthMode is how requests to the OpenSky API are authenticated.
type AuthMode int

const (
	ModeAnonymous AuthMode = iota
	ModeBasic
	ModeBearer
)

func (m AuthMode) String() string {
	switch m {
	case ModeBasic:
		return "basic"
	case ModeBearer:
		return "bearer"
	default:
		return "anonymous"
	}
}

// Credentials is the resolved authentication mode plus whatever material it
// needs: username/password for basic auth, a token manager for bearer.
type Credentials struct {
	Mode     AuthMode
	Username string
	Password string
	tokens   *TokenManager
}

// CredentialConfig is the raw environment input to credential resolution.
type CredentialConfig struct {
	Username     string
	Password     string
	ClientID     string
	ClientSecret string
	TokenURL     string
}

// CredentialConfigFromEnv reads the OpenSky credential environment.
func CredentialConfigFromEnv() CredentialConfig {
	return CredentialConfig{
		Username:     os.Getenv("OPENSKY_USER"),
		Password:     os.Getenv("OPENSKY_PASS"),
		ClientID:     os.Getenv("OPENSKY_CLIENT_ID"),
		ClientSecret: os.Getenv("OPENSKY_CLIENT_SECRET"),
		TokenURL:     os.Getenv("OPENSKY_TOKEN_URL"),
	}
}

// ResolveCredentials picks the strongest usable auth mode: OAuth2 client
// credentials, then HTTP basic, then anonymous. It never fails; invalid or
// missing configuration degrades to the next mode with a logged diagnostic.
func ResolveCredentials(ctx context.Context, cfg CredentialConfig, httpClient *http.Client) Credentials {
	if cfg.ClientID != "" && cfg.ClientSecret != "" {
		tm := NewTokenManager(cfg.ClientID, cfg.ClientSecret, cfg.TokenURL, httpClient)
		if _, err := tm.Token(ctx); err == nil {
			return Credentials{Mode: ModeBearer, tokens: tm}
		} else {
			log.Printf("OAuth2 token exchange failed, falling back: %v", err)
		}
	}

	user := cleanCredential(cfg.Username)
	pass := cleanCredential(cfg.Password)
	if user != "" && pass != "" {
		if !isLatin1(user) || !isLatin1(pass) {
			log.Printf("OpenSky credentials contain non-Latin-1 characters, falling back to anonymous access")
		} else {
			return Credentials{Mode: ModeBasic, Username: user, Password: pass}
		}
	}

	return Credentials{Mode: ModeAnonymous}
}

// apply attaches the credential to an outgoing request. Bearer mode may
// refresh the cached token.
func (c Credentials) apply(ctx context.Context, req *http.Request) error {
	switch c.Mode {
	case ModeBearer:
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	case ModeBasic:
		req.SetBasicAuth(c.Username, c.Password)
	}
	return nil
}

// cleanCredential trims whitespace plus BOM and zero-width characters that
// tend to sneak in when credentials are pasted into .env files.
func cleanCredential(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case '\uFEFF', '\u200B', '\u200C', '\u200D', '\u2060':
			return -1
		}
		return r
	}, s)
}

// isLatin1 reports whether every rune fits in a single Latin-1 byte, the
// only encoding HTTP basic auth reliably carries.
func isLatin1(s string) bool {
	for _, r := range s {
		if r > 'ÿ' {
			return false
		}
	}
	return true
}
