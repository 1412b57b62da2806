package types

import (
	"os"
	"strings"
)

// ContextUserKey is where AuthMiddleware stores the authenticated user.
const ContextUserKey = "currentUser"

// AllowedOrigins lists the origins the API and the websocket endpoint accept.
// The dashboard dev server runs on 5173; deployments add their frontend URL
// through FLEETDECK_CLIENT_URL or FLEETDECK_ALLOWED_ORIGINS (comma separated).
var AllowedOrigins = loadAllowedOrigins()

func loadAllowedOrigins() []string {
	origins := []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}

	if clientURL := os.Getenv("FLEETDECK_CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	for _, origin := range strings.Split(os.Getenv("FLEETDECK_ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
