package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the endpoint configuration for a request path and
// method. The health check is always unlimited. Otherwise the first matching
// config wins: exact paths, then "*"-prefixed suffix patterns, then
// "/"-terminated prefix patterns.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Limit: 0}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		switch {
		case c.Path == path:
			return c
		case strings.HasPrefix(c.Path, "*") && strings.HasSuffix(path, c.Path[1:]):
			return c
		case strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path):
			return c
		}
	}

	return nil
}
