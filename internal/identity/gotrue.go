package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config points the gate at a GoTrue-compatible auth service (Supabase
// auth). URL and AnonKey come from the same project the web client
// uses.
type Config struct {
	URL         string
	AnonKey     string
	SessionFile string
	HTTPClient  *http.Client
}

// ConfigFromEnv reads SYNAPSEED_SUPABASE_URL and
// SYNAPSEED_SUPABASE_ANON_KEY. Returns ok=false when the service is not
// configured, in which case the caller should fall back to a guest
// session.
func ConfigFromEnv() (Config, bool) {
	url := os.Getenv("SYNAPSEED_SUPABASE_URL")
	key := os.Getenv("SYNAPSEED_SUPABASE_ANON_KEY")
	if url == "" || key == "" {
		return Config{}, false
	}
	return Config{URL: url, AnonKey: key}, true
}

// DefaultSessionPath returns the session file location, honoring
// XDG_CONFIG_HOME.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "synapseed", "session.json"), nil
}

// sessionFile is the persisted token pair written at sign-in.
type sessionFile struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Gate resolves the stored session asynchronously and serves it to the
// UI. It starts in the loading state; Start transitions it exactly
// once.
type Gate struct {
	cfg Config

	mu      sync.RWMutex
	user    *User
	loading bool
	err     error
}

// NewGate creates a gate in the loading state.
func NewGate(cfg Config) *Gate {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.SessionFile == "" {
		if p, err := DefaultSessionPath(); err == nil {
			cfg.SessionFile = p
		}
	}
	return &Gate{cfg: cfg, loading: true}
}

// Start resolves the session in the background. Resolution always
// completes: failures clear the loading flag and leave the user signed
// out rather than holding the UI on the initializing screen.
func (g *Gate) Start(ctx context.Context) {
	go func() {
		user, err := g.resolve(ctx)

		g.mu.Lock()
		g.user = user
		g.err = err
		g.loading = false
		g.mu.Unlock()
	}()
}

func (g *Gate) CurrentUser() *User {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.user
}

func (g *Gate) Loading() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.loading
}

// Err reports why resolution failed, if it did.
func (g *Gate) Err() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.err
}

// resolve loads the stored token, derives the user from its claims, and
// confirms it against the auth service. A reachable service with a
// rejected token means signed out; an unreachable service keeps the
// claims-derived user so the tool works offline.
func (g *Gate) resolve(ctx context.Context) (*User, error) {
	data, err := os.ReadFile(g.cfg.SessionFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var sess sessionFile
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	if sess.AccessToken == "" {
		return nil, nil
	}

	user, err := userFromToken(sess.AccessToken)
	if err != nil {
		return nil, err
	}

	remote, err := g.fetchUser(ctx, sess.AccessToken)
	switch {
	case err == nil && remote != nil:
		return remote, nil
	case err == nil:
		// The service answered and rejected the token.
		return nil, nil
	default:
		return user, nil
	}
}

// userFromToken extracts identity claims without verifying the
// signature. Verification belongs to the auth service; locally the
// token only personalizes the UI.
func userFromToken(accessToken string) (*User, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}

	user := &User{}
	if sub, err := claims.GetSubject(); err == nil {
		user.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if meta, ok := claims["user_metadata"].(map[string]any); ok {
		if name, ok := meta["full_name"].(string); ok {
			user.FullName = name
		}
	}
	return user, nil
}

// gotrueUser is the subset of GET /auth/v1/user we consume.
type gotrueUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
}

// fetchUser asks the auth service for the profile behind the token.
// Returns (nil, nil) for an authoritative rejection (401/403).
func (g *Gate) fetchUser(ctx context.Context, accessToken string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.URL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", g.cfg.AnonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var gu gotrueUser
		if err := json.NewDecoder(resp.Body).Decode(&gu); err != nil {
			return nil, fmt.Errorf("decode user response: %w", err)
		}
		return &User{ID: gu.ID, Email: gu.Email, FullName: gu.UserMetadata.FullName}, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, nil
	default:
		return nil, fmt.Errorf("auth service returned %s", resp.Status)
	}
}
