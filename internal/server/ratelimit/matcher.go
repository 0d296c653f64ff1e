package ratelimit

import "strings"

// MatchEndpoint matches a request path and method to an endpoint
// configuration. Paths ending in "/" match by prefix, so "/download/"
// covers "/download/{filename}". Returns nil when nothing matches.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never limited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}
	for i := range configs {
		if configs[i].Method == method && strings.HasSuffix(configs[i].Path, "/") &&
			strings.HasPrefix(path, configs[i].Path) {
			return &configs[i]
		}
	}
	return nil
}
