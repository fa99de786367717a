package httpapi

import (
	"encoding/json"
	"net/http"

	"jobscout-engine/internal/secrets"
)

type SecretsHandler struct {
	// Apply re-resolves provider credentials after a successful store, so
	// the new key takes effect without a restart.
	Apply func()
}

type setSecretReq struct {
	APIKey string `json:"api_key"`
}

// SetProxyAPIKey stores the scraping-proxy credential in the OS keychain so
// it doesn't have to live in the config file or the environment.
func (h SecretsHandler) SetProxyAPIKey(w http.ResponseWriter, r *http.Request) {
	var req setSecretReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "Invalid request parameters", err.Error())
		return
	}

	if err := secrets.Set(secrets.AccountProxyAPIKey, req.APIKey); err != nil {
		WriteError(w, r, http.StatusBadRequest, "Failed to store credential", err.Error())
		return
	}
	if h.Apply != nil {
		h.Apply()
	}
	w.WriteHeader(http.StatusNoContent)
}
