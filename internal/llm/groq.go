package llm

import "fmt"

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

// groqModels maps friendly names to Groq model IDs.
var groqModels = map[string]string{
	"llama-70b":   "llama-3.3-70b-versatile",
	"llama-8b":    "llama-3.1-8b-instant",
	"gpt-oss-20b": "openai/gpt-oss-20b",
}

// NewGroqProvider creates a provider backed by the Groq API, which is
// OpenAI-compatible. It reuses the OpenAI provider with Groq's base URL.
func NewGroqProvider(cfg GroqConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}

	model := resolveModel(cfg.Model, groqModels)
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}

	return newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   model,
		BaseURL: baseURL,
	})
}
