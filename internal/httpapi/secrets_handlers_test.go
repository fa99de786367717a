package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"jobscout-engine/internal/provider"
	"jobscout-engine/internal/secrets"
)

func TestSetProxyAPIKeyTakesEffectWithoutRestart(t *testing.T) {
	keyring.MockInit()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fresh-key", r.URL.Query().Get("api_key"))
		_, _ = w.Write([]byte(`
<div class="job_seen_beacon">
  <h2 class="jobTitle">Backend Engineer</h2>
  <span class="companyName">Acme</span>
</div>`))
	}))
	defer upstream.Close()

	searcher := &provider.Searcher{
		Structured:        provider.NewStructuredClient("", "", "", nil),
		Proxy:             provider.NewProxyClient("", upstream.URL, nil),
		SearchURLTemplate: "https://example.com/jobs?q=%s&l=%s",
	}
	h := Chain(NewMux(Deps{
		Searcher: searcher,
		ApplyCredentials: func() {
			searcher.UpdateCredentials("", "", secrets.Get(secrets.AccountProxyAPIKey))
		},
	}), Cors, RequestID, Recover, AccessLog)

	// no key yet: the search path has no usable provider
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search",
		strings.NewReader(`{"query":"backend"}`)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/secrets/proxy",
		strings.NewReader(`{"api_key":"fresh-key"}`)))
	require.Equal(t, http.StatusNoContent, rec.Code)

	// same process, same searcher: the stored key is live now
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search",
		strings.NewReader(`{"query":"backend"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Backend Engineer")
}
