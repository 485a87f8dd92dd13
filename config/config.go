package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderVertex = "vertex"
	ProviderOpenAI = "openai"
)

type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	// PublicBaseURL is the externally reachable origin of this service. Card
	// actions point back at it, so the host can call them.
	PublicBaseURL string

	AIProvider       string
	AIRequestTimeout time.Duration

	VertexProjectID   string
	VertexLocation    string
	VertexModel       string
	VertexEndpoint    string
	VertexAccessToken string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// AddonAudience is the audience of the system ID token sent by the add-on
	// host. Empty disables request authentication.
	AddonAudience       string
	AddonServiceAccount string
}

func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("godotenv.Load failed: %w", err)
	}

	timeout, err := parseDuration(getEnv("AI_REQUEST_TIMEOUT", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_REQUEST_TIMEOUT: %w", err)
	}

	port := getEnv("PORT", "8080")

	return &Config{
		Port:                port,
		GinMode:             getEnv("GIN_MODE", "release"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "console"),
		PublicBaseURL:       strings.TrimSuffix(getEnv("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),
		AIProvider:          strings.ToLower(getEnv("AI_PROVIDER", ProviderVertex)),
		AIRequestTimeout:    timeout,
		VertexProjectID:     getEnv("VERTEX_PROJECT_ID", ""),
		VertexLocation:      getEnv("VERTEX_LOCATION", "us-central1"),
		VertexModel:         getEnv("VERTEX_MODEL", "gemini-2.5-flash"),
		VertexEndpoint:      getEnv("VERTEX_ENDPOINT", ""),
		VertexAccessToken:   getEnv("VERTEX_ACCESS_TOKEN", ""),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:         getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:       getEnv("OPENAI_BASE_URL", ""),
		AddonAudience:       getEnv("ADDON_AUDIENCE", ""),
		AddonServiceAccount: getEnv("ADDON_SERVICE_ACCOUNT", ""),
	}, nil
}

// Validate reports configuration that would make the selected AI provider unusable.
func (c *Config) Validate() error {
	switch c.AIProvider {
	case ProviderVertex:
		if c.VertexEndpoint == "" && c.VertexProjectID == "" {
			return errors.New("VERTEX_PROJECT_ID or VERTEX_ENDPOINT must be set")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY must be set when AI_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q", c.AIProvider)
	}

	if !strings.HasPrefix(c.PublicBaseURL, "http://") && !strings.HasPrefix(c.PublicBaseURL, "https://") {
		return fmt.Errorf("PUBLIC_BASE_URL must be an absolute URL, got %q", c.PublicBaseURL)
	}

	return nil
}

// VertexURL returns the generateContent endpoint for the configured model.
// VERTEX_ENDPOINT wins when set.
func (c *Config) VertexURL() string {
	if c.VertexEndpoint != "" {
		return c.VertexEndpoint
	}
	return fmt.Sprintf(
		"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/google/models/%s:generateContent",
		c.VertexLocation, c.VertexProjectID, c.VertexLocation, c.VertexModel,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
