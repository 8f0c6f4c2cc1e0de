package listing

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/datallboy/mvnsync/internal/domain"
	"github.com/stretchr/testify/assert"
)

func newTestClient(timeout time.Duration) *Client {
	return NewClient(Options{
		UserAgent:  "Mozilla/5.0",
		Timeout:    timeout,
		Extensions: dataSuffixes,
	})
}

func TestList_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if ua := r.Header.Get("User-Agent"); ua != "Mozilla/5.0" {
			t.Errorf("expected identifying User-Agent, got %q", ua)
		}
		fmt.Fprint(w, `<a href="a.sav">a</a><a href="b.cdf">b</a><a href="c.jpg">c</a>`)
	}))
	defer server.Close()

	listing := newTestClient(time.Second).List(context.Background(), server.URL+"/swe/l2/2020/01/")

	assert.Equal(t, domain.ListingOK, listing.Status)
	assert.Equal(t, []string{"a.sav", "b.cdf"}, listing.Files)
	assert.Empty(t, listing.Message)
}

func TestList_AuthRequired(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
				fmt.Fprint(w, `<a href="secret.cdf">should not be listed</a>`)
			}))
			defer server.Close()

			listing := newTestClient(time.Second).List(context.Background(), server.URL+"/")

			assert.Equal(t, domain.ListingAuth, listing.Status)
			assert.Empty(t, listing.Files)
		})
	}
}

func TestList_NotFoundIsParsed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	listing := newTestClient(time.Second).List(context.Background(), server.URL+"/missing/")

	assert.Equal(t, domain.ListingOK, listing.Status)
	assert.Empty(t, listing.Files)
}

func TestList_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL + "/"
	server.Close()

	listing := newTestClient(time.Second).List(context.Background(), url)

	assert.Equal(t, domain.ListingError, listing.Status)
	assert.Empty(t, listing.Files)
	assert.NotEmpty(t, listing.Message)
}

func TestList_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	listing := newTestClient(50*time.Millisecond).List(context.Background(), server.URL+"/")

	assert.Equal(t, domain.ListingError, listing.Status)
	assert.NotEmpty(t, listing.Message)
}

func TestList_MalformedURL(t *testing.T) {
	listing := newTestClient(time.Second).List(context.Background(), "://bad")

	assert.Equal(t, domain.ListingError, listing.Status)
}
