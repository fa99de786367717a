package config

import (
	"os"
	"strings"

	"jobscout-engine/internal/secrets"
)

// Credentials are the resolved provider secrets for one process. They are
// read once at startup and never written back to the config file.
type Credentials struct {
	StructuredAPIKey string
	StructuredCreds  string
	ProxyAPIKey      string
}

// ResolveCredentials looks each secret up in order: environment, OS keyring,
// config file. Any of them may be absent; a missing credential is a handled
// runtime state, not a startup failure.
func ResolveCredentials(cfg Config) Credentials {
	return Credentials{
		StructuredAPIKey: firstNonEmpty(
			os.Getenv("GOOGLE_JOBS_API_KEY"),
			secrets.Get(secrets.AccountStructuredAPIKey),
			cfg.Providers.Structured.APIKey,
		),
		StructuredCreds: firstNonEmpty(
			os.Getenv("GOOGLE_JOBS_CREDENTIALS"),
			secrets.Get(secrets.AccountStructuredCreds),
			cfg.Providers.Structured.Credentials,
		),
		ProxyAPIKey: firstNonEmpty(
			os.Getenv("SCRAPER_API_KEY"),
			secrets.Get(secrets.AccountProxyAPIKey),
			cfg.Providers.Proxy.APIKey,
		),
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
