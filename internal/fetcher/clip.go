package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ClipPath is the clip listing endpoint, relative to the hosting page.
const ClipPath = "./clip"

type Clip struct {
	client  *http.Client
	pageURL string
}

func NewClip(client *http.Client, pageURL string) *Clip {
	if client == nil {
		client = http.DefaultClient
	}
	return &Clip{client: client, pageURL: pageURL}
}

func (c *Clip) Name() string { return "Clip Browser" }

// URL resolves ClipPath against the page URL the way a browser resolves a
// relative link: "http://host/editor/" becomes "http://host/editor/clip",
// "http://host/editor/index.html" becomes "http://host/editor/clip".
func (c *Clip) URL() (string, error) {
	base, err := url.Parse(c.pageURL)
	if err != nil {
		return "", fmt.Errorf("parsing page URL: %w", err)
	}
	ref, err := url.Parse(ClipPath)
	if err != nil {
		return "", fmt.Errorf("parsing clip path: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}

func (c *Clip) Fetch(ctx context.Context) (string, error) {
	target, err := c.URL()
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching clips: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("clip endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading clip response: %w", err)
	}

	return string(body), nil
}
