package store

import (
	"errors"
	"sync"

	"github.com/wristlab/timeline/item"
)

// ErrItemNotFound is returned when materializing an unknown ID.
var ErrItemNotFound = errors.New("item not found")

// MemStore is an in-memory Store ordered by item timestamp. It is the
// reference implementation and the store used in tests.
type MemStore struct {
	lock     sync.RWMutex
	items    []item.Item
	observer Observer
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// SetObserver registers the mutation observer.
func (s *MemStore) SetObserver(o Observer) {
	s.lock.Lock()
	s.observer = o
	s.lock.Unlock()
}

// Put inserts or replaces an item, keeping the timestamp order. Items
// without an ID are assigned a generated one.
func (s *MemStore) Put(it item.Item) {
	if it.ID == item.IDNone {
		it.ID = item.GetIDGenerator().Generate()
	}

	s.lock.Lock()

	s.removeLocked(it.ID)

	pos := len(s.items)
	for i, existing := range s.items {
		if existing.Timestamp.After(it.Timestamp) {
			pos = i
			break
		}
	}

	s.items = append(s.items, item.Item{})
	copy(s.items[pos+1:], s.items[pos:])
	s.items[pos] = it

	s.lock.Unlock()

	s.notify()
}

// Remove deletes an item by ID.
func (s *MemStore) Remove(id item.ID) {
	s.lock.Lock()
	removed := s.removeLocked(id)
	s.lock.Unlock()

	if removed {
		s.notify()
	}
}

// MarkDismissed flags an item as dismissed by the user.
func (s *MemStore) MarkDismissed(id item.ID) {
	s.lock.Lock()

	changed := false
	for i, existing := range s.items {
		if existing.ID == id && !existing.Dismissed {
			s.items[i].Dismissed = true
			changed = true
			break
		}
	}

	s.lock.Unlock()

	if changed {
		s.notify()
	}
}

func (s *MemStore) removeLocked(id item.ID) bool {
	for i, existing := range s.items {
		if existing.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}

	return false
}

// NextHeader scans all headers in timestamp order and returns the earliest
// one accepted by f.
func (s *MemStore) NextHeader(f item.Filter) (item.Header, Status) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	var winner item.Header
	found := false

	for _, it := range s.items {
		if f(it.Header) && !found {
			winner = it.Header
			found = true
		}
	}

	if !found {
		return item.Header{}, StatusNoMoreItems
	}

	return winner, StatusSuccess
}

// Item materializes the full item for an ID.
func (s *MemStore) Item(id item.ID) (item.Item, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}

	return item.Item{}, ErrItemNotFound
}

// Len returns the number of stored items.
func (s *MemStore) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.items)
}

func (s *MemStore) notify() {
	s.lock.RLock()
	o := s.observer
	s.lock.RUnlock()

	if o != nil {
		o.NotifyChange()
	}
}
