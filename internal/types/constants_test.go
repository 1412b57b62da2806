package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadAllowedOriginsDefaults(t *testing.T) {
	t.Setenv("FLEETDECK_CLIENT_URL", "")
	t.Setenv("FLEETDECK_ALLOWED_ORIGINS", "")

	origins := loadAllowedOrigins()
	assert.Equal(t, []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}, origins)
}

func TestLoadAllowedOriginsFromEnv(t *testing.T) {
	t.Setenv("FLEETDECK_CLIENT_URL", "https://fleet.example.com")
	t.Setenv("FLEETDECK_ALLOWED_ORIGINS", " https://a.example.com ,, https://b.example.com")

	origins := loadAllowedOrigins()
	assert.Contains(t, origins, "https://fleet.example.com")
	assert.Contains(t, origins, "https://a.example.com")
	assert.Contains(t, origins, "https://b.example.com")
	assert.Len(t, origins, 5)
}
