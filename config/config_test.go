package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidraft-addon/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("VERTEX_LOCATION", "")
	t.Setenv("VERTEX_MODEL", "")
	t.Setenv("PUBLIC_BASE_URL", "")
	t.Setenv("AI_REQUEST_TIMEOUT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.ProviderVertex, cfg.AIProvider)
	assert.Equal(t, "us-central1", cfg.VertexLocation)
	assert.Equal(t, "gemini-2.5-flash", cfg.VertexModel)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	assert.Zero(t, cfg.AIRequestTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("AI_PROVIDER", "OpenAI")
	t.Setenv("PUBLIC_BASE_URL", "https://addon.example.com/")
	t.Setenv("AI_REQUEST_TIMEOUT", "45s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, config.ProviderOpenAI, cfg.AIProvider)
	assert.Equal(t, "https://addon.example.com", cfg.PublicBaseURL)
	assert.Equal(t, 45*time.Second, cfg.AIRequestTimeout)
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("AI_REQUEST_TIMEOUT", "soon")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI_REQUEST_TIMEOUT")
}

func TestVertexURL(t *testing.T) {
	cfg := &config.Config{
		VertexProjectID: "email-generator",
		VertexLocation:  "us-central1",
		VertexModel:     "gemini-2.5-flash",
	}
	assert.Equal(t,
		"https://us-central1-aiplatform.googleapis.com/v1/projects/email-generator/locations/us-central1/publishers/google/models/gemini-2.5-flash:generateContent",
		cfg.VertexURL(),
	)

	cfg.VertexEndpoint = "http://127.0.0.1:1234/generate"
	assert.Equal(t, "http://127.0.0.1:1234/generate", cfg.VertexURL())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     config.Config
		wantErr string
	}{
		{
			name: "vertex with project",
			cfg:  config.Config{AIProvider: config.ProviderVertex, VertexProjectID: "p", PublicBaseURL: "https://a.example.com"},
		},
		{
			name: "vertex with endpoint only",
			cfg:  config.Config{AIProvider: config.ProviderVertex, VertexEndpoint: "http://localhost/x", PublicBaseURL: "http://localhost:8080"},
		},
		{
			name:    "vertex missing project",
			cfg:     config.Config{AIProvider: config.ProviderVertex, PublicBaseURL: "https://a.example.com"},
			wantErr: "VERTEX_PROJECT_ID",
		},
		{
			name:    "openai missing key",
			cfg:     config.Config{AIProvider: config.ProviderOpenAI, PublicBaseURL: "https://a.example.com"},
			wantErr: "OPENAI_API_KEY",
		},
		{
			name:    "unknown provider",
			cfg:     config.Config{AIProvider: "bard", PublicBaseURL: "https://a.example.com"},
			wantErr: "unsupported AI_PROVIDER",
		},
		{
			name:    "relative base url",
			cfg:     config.Config{AIProvider: config.ProviderVertex, VertexProjectID: "p", PublicBaseURL: "addon.example.com"},
			wantErr: "PUBLIC_BASE_URL",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
