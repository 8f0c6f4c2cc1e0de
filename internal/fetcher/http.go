package fetcher

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"os"
)

// HTTP is the builtin fetcher used when wget is not available.
// Like the wget invocation it does not verify certificates.
type HTTP struct {
	client    *http.Client
	userAgent string
}

func NewHTTP(userAgent string) *HTTP {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}

	return &HTTP{
		client:    &http.Client{Transport: transport},
		userAgent: userAgent,
	}
}

// Fetch streams url into dest+".part" and renames it once complete, so an
// interrupted transfer never leaves a file at dest.
func (h *HTTP) Fetch(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: server returned status %d", ErrFetchFailed, resp.StatusCode)
	}

	partPath := dest + ".part"
	f, err := os.Create(partPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(partPath)
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(partPath)
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	if err := os.Rename(partPath, dest); err != nil {
		os.Remove(partPath)
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	return nil
}
