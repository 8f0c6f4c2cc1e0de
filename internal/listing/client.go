package listing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/datallboy/mvnsync/internal/domain"
	"github.com/datallboy/mvnsync/internal/infra/config"
)

type Options struct {
	UserAgent  string
	Timeout    time.Duration
	Extensions []string
}

func OptionsFromConfig(cfg config.RemoteConfig) Options {
	return Options{
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.Timeout,
		Extensions: cfg.Extensions,
	}
}

// Client reads directory index pages from a mirror.
type Client struct {
	httpClient *http.Client
	userAgent  string
	extensions []string
}

func NewClient(opts Options) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		userAgent:  opts.UserAgent,
		extensions: opts.Extensions,
	}
}

// List fetches dirURL and returns the data files linked from it.
// Failures never surface as errors: 401/403 become ListingAuth and anything
// else that goes wrong becomes ListingError with the error text.
func (c *Client) List(ctx context.Context, dirURL string) domain.Listing {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, dirURL, nil)
	if err != nil {
		return domain.NewListingError(dirURL, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewListingError(dirURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return domain.NewListingAuth(dirURL)
	}

	// Other statuses are parsed as-is; an error page simply has no data links
	files, err := ExtractLinks(resp.Body, c.extensions)
	if err != nil {
		return domain.NewListingError(dirURL, fmt.Errorf("reading listing: %w", err))
	}

	return domain.NewListingOK(dirURL, files)
}
