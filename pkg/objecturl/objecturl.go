// Package objecturl provides transient, process-local URLs for binary blobs,
// usable wherever a resource locator is expected. A URL stays valid until the
// owner revokes it; the registry never revokes on its own.
package objecturl

import (
	"strings"
	"sync"

	"ascend-local-store/pkg/uid"
)

const scheme = "blob:mem/"

type entry struct {
	data     []byte
	mimeType string
}

// Registry holds the live object URLs for one process.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Create mints a URL for the blob. The registry keeps its own copy, so the
// caller may reuse the input slice.
func (r *Registry) Create(data []byte, mimeType string) string {
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	url := scheme + uid.New()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[url] = &entry{data: dataCopy, mimeType: mimeType}

	return url
}

// Resolve returns the blob and MIME type behind a URL. The returned slice is
// a copy; revoking the URL afterwards does not invalidate it.
func (r *Registry) Resolve(url string) ([]byte, string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[url]
	if !ok {
		return nil, "", false
	}

	data := make([]byte, len(e.data))
	copy(data, e.data)
	return data, e.mimeType, true
}

// Revoke releases the blob held by the URL. Revoking an unknown URL is a no-op.
func (r *Registry) Revoke(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, url)
}

// Len reports how many URLs are currently live.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// IsObjectURL reports whether the string looks like a URL minted here.
func IsObjectURL(url string) bool {
	return strings.HasPrefix(url, scheme)
}
