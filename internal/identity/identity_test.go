package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func writeSessionFile(t *testing.T, accessToken string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	data, _ := json.Marshal(sessionFile{AccessToken: accessToken, RefreshToken: "rt"})
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write session file: %v", err)
	}
	return path
}

func waitForGate(t *testing.T, g *Gate) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for g.Loading() {
		if time.Now().After(deadline) {
			t.Fatal("gate never finished loading")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestUser_FirstName(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want string
	}{
		{"nil user", nil, "Researcher"},
		{"no metadata", &User{Email: "x@y.z"}, "Researcher"},
		{"full name", &User{FullName: "Priyam Dihingia"}, "Priyam"},
		{"single name", &User{FullName: "Priyam"}, "Priyam"},
	}
	for _, tt := range tests {
		if got := tt.user.FirstName(); got != tt.want {
			t.Fatalf("%s: FirstName() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestUser_DisplayName(t *testing.T) {
	var nobody *User
	if got := nobody.DisplayName(); got != "Guest Researcher" {
		t.Fatalf("DisplayName() = %q", got)
	}
	u := &User{FullName: "Priyam Dihingia"}
	if got := u.DisplayName(); got != "Priyam Dihingia" {
		t.Fatalf("DisplayName() = %q", got)
	}
}

func TestUserFromToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub":   "user-123",
		"email": "researcher@synapseed.app",
		"user_metadata": map[string]any{
			"full_name": "Priyam Dihingia",
		},
	})

	user, err := userFromToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "user-123" {
		t.Fatalf("ID = %q", user.ID)
	}
	if user.Email != "researcher@synapseed.app" {
		t.Fatalf("Email = %q", user.Email)
	}
	if user.FullName != "Priyam Dihingia" {
		t.Fatalf("FullName = %q", user.FullName)
	}
}

func TestUserFromToken_Garbage(t *testing.T) {
	if _, err := userFromToken("not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestGate_NoSessionFileMeansSignedOut(t *testing.T) {
	g := NewGate(Config{
		URL:         "http://localhost:0",
		AnonKey:     "anon",
		SessionFile: filepath.Join(t.TempDir(), "missing.json"),
	})
	if !g.Loading() {
		t.Fatal("gate should start loading")
	}

	g.Start(context.Background())
	waitForGate(t, g)

	if g.CurrentUser() != nil {
		t.Fatal("expected signed-out user")
	}
	if g.Err() != nil {
		t.Fatalf("unexpected error: %v", g.Err())
	}
}

func TestGate_RefreshesFromAuthService(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-123", "email": "old@x.y"})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("apikey") != "anon" {
			t.Errorf("missing apikey header")
		}
		if r.Header.Get("Authorization") != "Bearer "+token {
			t.Errorf("missing bearer token")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "user-123",
			"email": "new@x.y",
			"user_metadata": map[string]any{
				"full_name": "Priyam Dihingia",
			},
		})
	}))
	defer server.Close()

	g := NewGate(Config{
		URL:         server.URL,
		AnonKey:     "anon",
		SessionFile: writeSessionFile(t, token),
	})
	g.Start(context.Background())
	waitForGate(t, g)

	user := g.CurrentUser()
	if user == nil {
		t.Fatal("expected signed-in user")
	}
	if user.Email != "new@x.y" {
		t.Fatalf("expected refreshed email, got %q", user.Email)
	}
	if user.FirstName() != "Priyam" {
		t.Fatalf("FirstName() = %q", user.FirstName())
	}
}

func TestGate_RejectedTokenSignsOut(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-123"})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	g := NewGate(Config{
		URL:         server.URL,
		AnonKey:     "anon",
		SessionFile: writeSessionFile(t, token),
	})
	g.Start(context.Background())
	waitForGate(t, g)

	if g.CurrentUser() != nil {
		t.Fatal("expected signed-out user after rejection")
	}
}

func TestGate_UnreachableServiceKeepsClaims(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub":   "user-123",
		"email": "offline@x.y",
	})

	g := NewGate(Config{
		URL:         "http://127.0.0.1:1", // nothing listens here
		AnonKey:     "anon",
		SessionFile: writeSessionFile(t, token),
	})
	g.Start(context.Background())
	waitForGate(t, g)

	user := g.CurrentUser()
	if user == nil {
		t.Fatal("expected claims-derived user when service is unreachable")
	}
	if user.Email != "offline@x.y" {
		t.Fatalf("Email = %q", user.Email)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SYNAPSEED_SUPABASE_URL", "")
	t.Setenv("SYNAPSEED_SUPABASE_ANON_KEY", "")
	if _, ok := ConfigFromEnv(); ok {
		t.Fatal("expected ok=false with no env")
	}

	t.Setenv("SYNAPSEED_SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("SYNAPSEED_SUPABASE_ANON_KEY", "anon")
	cfg, ok := ConfigFromEnv()
	if !ok {
		t.Fatal("expected ok=true")
	}
	if cfg.URL != "https://proj.supabase.co" {
		t.Fatalf("URL = %q", cfg.URL)
	}
}
