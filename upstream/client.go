// Package upstream talks to the third-party resolver API and turns its
// responses into unified results.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/preniv-cli/preniv/constant"
	"github.com/preniv-cli/preniv/key"
	"github.com/preniv-cli/preniv/log"
	"github.com/preniv-cli/preniv/media"
	"github.com/preniv-cli/preniv/network"
	"github.com/preniv-cli/preniv/normalize"
	"github.com/preniv-cli/preniv/platform"
	"github.com/spf13/viper"
)

// maxResponseSize caps metadata response reads. Resolver payloads are small
// JSON documents; anything larger indicates a misbehaving endpoint.
const maxResponseSize = 10 << 20

// Client queries the resolver endpoints of one upstream API deployment.
type Client struct {
	http *http.Client
}

// NewClient builds a client from the current configuration: request timeout
// from api.timeout (seconds) and, when api.tls_camouflage is set, the
// browser-fingerprint transport instead of the tuned default client.
func NewClient() *Client {
	timeout := time.Duration(viper.GetInt(key.APITimeout)) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	if viper.GetBool(key.APITLSCamouflage) {
		return &Client{http: network.BrowserClient(timeout)}
	}

	c := *network.Client
	c.Timeout = timeout
	return &Client{http: &c}
}

// Fetch resolves downloadable media for the target URL. Endpoint candidates
// are tried in order and the first structurally valid envelope wins; when all
// fail, the returned error is the last candidate's.
func (c *Client) Fetch(ctx context.Context, plat *platform.Platform, target string) (media.Result, error) {
	var lastErr error

	for _, ep := range platform.Endpoints(plat.ID) {
		result, err := c.fetchOne(ctx, plat, ep, target)
		if err != nil {
			log.Warnf("upstream fetch %s via %s: %s", plat.ID, ep.Prefix, err)
			lastErr = err
			continue
		}
		return result, nil
	}

	return media.Result{}, lastErr
}

func (c *Client) fetchOne(ctx context.Context, plat *platform.Platform, ep platform.Endpoint, target string) (media.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.Prefix+url.QueryEscape(target), nil)
	if err != nil {
		return media.Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return media.Result{}, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return media.Result{}, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return media.Result{}, fmt.Errorf("read upstream response: %w", err)
	}

	env, err := normalize.ParseEnvelope(body)
	if err != nil {
		return media.Result{}, err
	}

	if !env.Status {
		return media.Result{}, &StatusError{Platform: plat.ID, Msg: env.Msg}
	}

	if !valid(plat.ID, env.Data) {
		return media.Result{}, fmt.Errorf("unexpected %s response shape", plat.ID)
	}

	m := normalize.Normalize(plat.ID, env.Data, ep.Variant)
	return normalize.BuildLinks(plat.ID, m, env.Data), nil
}

// valid performs the structural check that gates endpoint fallback: a truthy
// TikTok envelope whose data lacks the downloads key counts as a failed
// candidate so the legacy endpoint gets its turn. For every other platform a
// truthy envelope is accepted as-is; absent or unusable data normalizes into
// the empty "media unavailable" result rather than a transport error.
func valid(platformID string, data any) bool {
	if platformID != "tiktok" {
		return true
	}

	raw, ok := normalize.AsRaw(data)
	if !ok {
		return false
	}
	_, hasDownloads := raw["downloads"]
	return hasDownloads
}
