package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "jobscout"

// Keychain accounts for provider credentials.
const (
	AccountStructuredAPIKey = "jobscout:structured:api_key"
	AccountStructuredCreds  = "jobscout:structured:credentials"
	AccountProxyAPIKey      = "jobscout:proxy:api_key"
)

// Get returns the stored secret for an account, or "" when absent. Keyring
// errors are treated as absence; env vars remain the primary source.
func Get(account string) string {
	if strings.TrimSpace(account) == "" {
		return ""
	}
	v, err := keyring.Get(KeyringService, account)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

func Set(account, value string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("secret value is empty")
	}
	return keyring.Set(KeyringService, account, value)
}

func Delete(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}
