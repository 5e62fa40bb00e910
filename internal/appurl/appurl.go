// Package appurl resolves the app's canonical base URL and validates
// redirect targets against it so verification links can never bounce a user
// to a foreign domain.
package appurl

import (
	"net/url"
	"os"
	"strings"
)

const devFallback = "http://localhost:5173"

// BaseURL returns the APP_URL environment value when it parses as an http(s)
// URL, otherwise the local development fallback.
func BaseURL() string {
	fromEnv := strings.TrimSpace(os.Getenv("APP_URL"))
	if fromEnv != "" {
		if parsed, err := url.Parse(fromEnv); err == nil {
			if parsed.Scheme == "http" || parsed.Scheme == "https" {
				return fromEnv
			}
		}
	}
	return devFallback
}

// IsValidAppURL reports whether raw points at the app's own domain: http(s)
// only, hostname equal to the base hostname or a subdomain of it. localhost
// matches localhost on any port.
func IsValidAppURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}

	base, err := url.Parse(BaseURL())
	if err != nil {
		return false
	}

	host := parsed.Hostname()
	appHost := base.Hostname()
	if host == appHost || strings.HasSuffix(host, "."+appHost) {
		return true
	}
	return appHost == "localhost" && host == "localhost"
}
