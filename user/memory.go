package user

import "sync"

// MemoryBackend keeps the document in process memory only
type MemoryBackend struct {
	mu  sync.Mutex
	doc *Document
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{doc: &Document{}}
}

func (b *MemoryBackend) Load() (*Document, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doc.clone(), nil
}

func (b *MemoryBackend) Save(doc *Document) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.doc = doc.clone()
	return nil
}

func (b *MemoryBackend) Close() error {
	return nil
}
