// Package testutils provides a fake fetcher and an in-process mirror for tests.
package testutils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"strings"
	"sync"
	"testing"
)

// FakeFetcher records calls and writes Data to dest unless the URL is in Fail.
type FakeFetcher struct {
	mu    sync.Mutex
	Data  []byte
	Fail  map[string]bool
	Calls []string
}

func NewFakeFetcher() *FakeFetcher {
	return &FakeFetcher{Data: []byte("data"), Fail: make(map[string]bool)}
}

func (f *FakeFetcher) Fetch(ctx context.Context, url, dest string) error {
	f.mu.Lock()
	f.Calls = append(f.Calls, url)
	fail := f.Fail[url]
	f.mu.Unlock()

	if fail {
		// Mimic wget -O, which creates the destination before failing
		os.WriteFile(dest, nil, 0644)
		return errors.New("simulated failure")
	}
	return os.WriteFile(dest, f.Data, 0644)
}

func (f *FakeFetcher) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

// Mirror serves Apache-style index pages for directories and raw bytes for files.
type Mirror struct {
	*httptest.Server

	mu    sync.Mutex
	dirs  map[string][]string
	files map[string][]byte
	deny  map[string]bool
	hits  map[string]int
}

// StartMirror starts a mirror. Paths are relative to the server root, with
// directories ending in a slash: "swe/l2/2020/01/".
func StartMirror(t *testing.T) *Mirror {
	t.Helper()

	m := &Mirror{
		dirs:  make(map[string][]string),
		files: make(map[string][]byte),
		deny:  make(map[string]bool),
		hits:  make(map[string]int),
	}
	m.Server = httptest.NewServer(http.HandlerFunc(m.serve))
	t.Cleanup(m.Close)
	return m
}

// AddFile publishes a file and links it from its directory page.
func (m *Mirror) AddFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := strings.LastIndex(path, "/")
	dir, name := path[:i+1], path[i+1:]
	m.dirs[dir] = append(m.dirs[dir], name)
	m.files[path] = data
}

// AddDir publishes a directory page linking names without serving them.
func (m *Mirror) AddDir(dir string, names ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[dir] = append(m.dirs[dir], names...)
}

// Deny makes dir answer 403.
func (m *Mirror) Deny(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deny[dir] = true
}

// Hits returns how many times path was requested.
func (m *Mirror) Hits(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits[path]
}

func (m *Mirror) BaseURL() string {
	return m.Server.URL + "/"
}

func (m *Mirror) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")

	m.mu.Lock()
	m.hits[path]++
	denied := m.deny[path]
	names, isDir := m.dirs[path]
	data, isFile := m.files[path]
	m.mu.Unlock()

	switch {
	case denied:
		w.WriteHeader(http.StatusForbidden)
	case isDir:
		sorted := append([]string(nil), names...)
		sort.Strings(sorted)

		fmt.Fprintf(w, "<html><head><title>Index of /%s</title></head><body><table>\n", path)
		fmt.Fprintln(w, `<tr><td><a href="../">Parent Directory</a></td></tr>`)
		for _, name := range sorted {
			fmt.Fprintf(w, "<tr><td><a href=\"%s\">%s</a></td></tr>\n", name, name)
		}
		fmt.Fprintln(w, "</table></body></html>")
	case isFile:
		w.Write(data)
	default:
		http.NotFound(w, r)
	}
}
