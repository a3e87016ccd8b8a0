package llm

import "testing"

func TestNewGroqProvider_RequiresKey(t *testing.T) {
	_, err := NewGroqProvider(GroqConfig{})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestNewGroqProvider_DefaultModel(t *testing.T) {
	p, err := NewGroqProvider(GroqConfig{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "llama-3.3-70b-versatile" {
		t.Fatalf("expected default model, got %q", p.ModelID())
	}
}

func TestNewGroqProvider_FriendlyNames(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"llama-70b", "llama-3.3-70b-versatile"},
		{"llama-8b", "llama-3.1-8b-instant"},
		{"llama-3.1-70b-versatile", "llama-3.1-70b-versatile"}, // direct ID passes through
	}
	for _, tc := range cases {
		p, err := NewGroqProvider(GroqConfig{APIKey: "test-key", Model: tc.name})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if p.ModelID() != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, p.ModelID())
		}
	}
}
