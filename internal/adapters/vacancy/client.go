// Package vacancy extracts plain text from external job-listing pages
// (hh.kz style markup).
package vacancy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"invisioo/internal/adapters/observability"
)

const maxBody = 2 << 20 // 2 MiB is plenty for a listing page

type Client struct{ hc *http.Client }

func New() *Client {
	return &Client{hc: &http.Client{Timeout: 15 * time.Second}}
}

var (
	descRe   = regexp.MustCompile(`(?s)<div[^>]+data-qa="vacancy-description"[^>]*>(.*?)</div>`)
	scriptRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// FetchText downloads the page and returns a best-effort plain-text body:
// the vacancy-description block when present, else the whole page, with
// script/style content and markup stripped.
func (c *Client) FetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "invisioo/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("vacancy", "fetch", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("vacancy: fetch failed with status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", err
	}
	return Extract(string(body)), nil
}

// Extract reduces listing HTML to readable text.
func Extract(html string) string {
	raw := html
	if m := descRe.FindStringSubmatch(html); m != nil {
		raw = m[1]
	}
	raw = scriptRe.ReplaceAllString(raw, "")
	raw = styleRe.ReplaceAllString(raw, "")
	raw = tagRe.ReplaceAllString(raw, " ")
	raw = spaceRe.ReplaceAllString(raw, " ")
	return strings.TrimSpace(raw)
}
