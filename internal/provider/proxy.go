package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultProxyEndpoint = "http://api.scraperapi.com"

// ProxyClient fetches third-party pages through a rendering proxy, which
// handles JavaScript execution and IP rotation on our behalf.
type ProxyClient struct {
	Endpoint string

	mu     sync.RWMutex
	apiKey string

	hc      *http.Client
	limiter *HostLimiter
}

func NewProxyClient(apiKey, endpoint string, limiter *HostLimiter) *ProxyClient {
	if endpoint == "" {
		endpoint = defaultProxyEndpoint
	}
	return &ProxyClient{
		Endpoint: endpoint,
		apiKey:   strings.TrimSpace(apiKey),
		hc:       &http.Client{Timeout: 20 * time.Second},
		limiter:  limiter,
	}
}

// SetAPIKey swaps the credential at runtime. In-flight requests keep the key
// they started with.
func (c *ProxyClient) SetAPIKey(key string) {
	c.mu.Lock()
	c.apiKey = strings.TrimSpace(key)
	c.mu.Unlock()
}

func (c *ProxyClient) currentKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

func (c *ProxyClient) Configured() bool {
	return c != nil && c.currentKey() != ""
}

// FetchHTML retrieves the rendered HTML of target through the proxy.
func (c *ProxyClient) FetchHTML(ctx context.Context, target string) (string, error) {
	proxyURL := fmt.Sprintf("%s?api_key=%s&url=%s&render=true",
		c.Endpoint, url.QueryEscape(c.currentKey()), url.QueryEscape(target))

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, c.Endpoint); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, proxyURL, nil)
	if err != nil {
		return "", fmt.Errorf("proxy request: %w", err)
	}
	req.Header.Set("User-Agent", "JobScout/1.0 (+local)")

	res, err := c.hc.Do(req)
	if err != nil {
		return "", &UpstreamError{Provider: "proxy", Err: err}
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return "", &UpstreamError{Provider: "proxy", Status: res.StatusCode}
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &UpstreamError{Provider: "proxy", Err: err}
	}
	return string(b), nil
}
