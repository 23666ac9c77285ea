package translate

import (
	"container/list"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Memo stores finished translations keyed by target language and source text.
type Memo interface {
	// Lookup returns the stored translation and whether one exists.
	Lookup(ctx context.Context, target, text string) (string, bool, error)

	// Store records a translation.
	Store(ctx context.Context, target, text, translated string) error
}

// memoKey builds a compact key that is safe for any backend.
func memoKey(target, text string) string {
	sum := sha256.Sum256([]byte(text))
	return TargetCode(target) + ":" + hex.EncodeToString(sum[:])
}

type memoEntry struct {
	key   string
	value string
}

// MemoryMemo is an in-process Memo with optional LRU eviction.
type MemoryMemo struct {
	items      map[string]*list.Element
	order      *list.List
	maxEntries int
	mu         sync.Mutex
}

// NewMemoryMemo creates an in-memory Memo holding at most maxEntries
// translations. Zero means unlimited.
func NewMemoryMemo(maxEntries int) *MemoryMemo {
	return &MemoryMemo{
		items:      make(map[string]*list.Element),
		order:      list.New(),
		maxEntries: max(maxEntries, 0),
	}
}

// Lookup implements Memo. A hit marks the entry as recently used.
func (m *MemoryMemo) Lookup(_ context.Context, target, text string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[memoKey(target, text)]
	if !ok {
		return "", false, nil
	}
	m.order.MoveToFront(elem)
	return elem.Value.(*memoEntry).value, true, nil
}

// Store implements Memo.
func (m *MemoryMemo) Store(_ context.Context, target, text, translated string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := memoKey(target, text)
	if elem, ok := m.items[key]; ok {
		elem.Value.(*memoEntry).value = translated
		m.order.MoveToFront(elem)
		return nil
	}

	if m.maxEntries > 0 && len(m.items) >= m.maxEntries {
		if oldest := m.order.Back(); oldest != nil {
			m.order.Remove(oldest)
			delete(m.items, oldest.Value.(*memoEntry).key)
		}
	}

	m.items[key] = m.order.PushFront(&memoEntry{key: key, value: translated})
	return nil
}

// Len returns the number of stored translations.
func (m *MemoryMemo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

var _ Memo = (*MemoryMemo)(nil)
