package viewstate

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownDocument is returned when a tab id has no mounted document.
var ErrUnknownDocument = errors.New("unknown document")

type docKey struct {
	client string
	tab    string
}

// Registry holds the documents of every open tab, keyed by client and tab id.
type Registry struct {
	mu   sync.RWMutex
	docs map[docKey]*Document
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{docs: make(map[docKey]*Document)}
}

// Mount creates a document for a new tab of client at rawURL.
func (r *Registry) Mount(client, rawURL, overflow string) *Document {
	d := NewDocument(uuid.NewString(), rawURL, overflow)
	r.mu.Lock()
	r.docs[docKey{client, d.ID()}] = d
	r.mu.Unlock()
	return d
}

// Get returns the document of tab for client.
func (r *Registry) Get(client, tab string) (*Document, error) {
	r.mu.RLock()
	d, ok := r.docs[docKey{client, tab}]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownDocument
	}
	return d, nil
}

// Release tears the document down and forgets it.
func (r *Registry) Release(client, tab string) {
	r.mu.Lock()
	d, ok := r.docs[docKey{client, tab}]
	delete(r.docs, docKey{client, tab})
	r.mu.Unlock()
	if ok {
		d.Teardown()
	}
}

// Prune releases documents with no live stream that were idle for longer than
// idle. It returns the number of documents released.
func (r *Registry) Prune(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for k, d := range r.docs {
		if d.Idle(cutoff) {
			d.Teardown()
			delete(r.docs, k)
			n++
		}
	}
	return n
}

// Len returns the number of mounted documents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}
