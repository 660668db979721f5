package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"puja_site_echo/internal/services"
)

// Manager persists the event list in a key-value storage. Every mutation
// loads the stored sequence, applies one operation and writes the whole
// sequence back.
type Manager struct {
	storage services.Storage
	lock    sync.Locker
}

// NewManager creates a Manager on top of storage
func NewManager(storage services.Storage) *Manager {
	return &Manager{storage: storage, lock: &sync.Mutex{}}
}

// WithLock makes the manager serialize its mutations on lock, typically the
// visitor's lock from Locks
func (m *Manager) WithLock(lock sync.Locker) *Manager {
	m.lock = lock
	return m
}

// Load reads the persisted sequence. A missing or unparseable value is an
// empty list; only a storage failure is returned as an error.
func (m *Manager) Load(ctx context.Context) ([]Record, error) {
	raw, ok, err := m.storage.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return Decode(raw, ok), nil
}

// Add appends a record and persists the list. When the input is rejected
// nothing is written and the returned state carries the form input back.
func (m *Manager) Add(ctx context.Context, title, date string) (State, bool, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	records, err := m.Load(ctx)
	if err != nil {
		return State{}, false, err
	}

	next, added := Add(State{Records: records}, title, date)
	if !added {
		return next, false, nil
	}

	if err := m.save(ctx, next.Records); err != nil {
		return State{}, false, err
	}
	return next, true, nil
}

// Delete removes the record at index and persists the list
func (m *Manager) Delete(ctx context.Context, index int) (State, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	records, err := m.Load(ctx)
	if err != nil {
		return State{}, err
	}

	next, err := Delete(State{Records: records}, index)
	if err != nil {
		return State{Records: records}, err
	}

	if err := m.save(ctx, next.Records); err != nil {
		return State{}, err
	}
	return next, nil
}

// Edit moves the record at index into the form and persists the list
// without it
func (m *Manager) Edit(ctx context.Context, index int) (State, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	records, err := m.Load(ctx)
	if err != nil {
		return State{}, err
	}

	next, err := Edit(State{Records: records}, index)
	if err != nil {
		return State{Records: records}, err
	}

	if err := m.save(ctx, next.Records); err != nil {
		return State{}, err
	}
	return next, nil
}

// Render returns the rows of the persisted list
func (m *Manager) Render(ctx context.Context) ([]Row, error) {
	records, err := m.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Rows(records), nil
}

func (m *Manager) save(ctx context.Context, records []Record) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}
	if err := m.storage.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("failed to persist events: %w", err)
	}
	return nil
}

// Encode serializes the list as a JSON array of {title, date} objects
func Encode(records []Record) (string, error) {
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to marshal events: %w", err)
	}
	return string(data), nil
}

// Decode parses a stored value. Anything that is not a JSON array of
// complete {title, date} objects yields an empty list.
func Decode(raw string, ok bool) []Record {
	if !ok || raw == "" {
		return []Record{}
	}
	var stored []*Record
	if err := json.Unmarshal([]byte(raw), &stored); err != nil || stored == nil {
		return []Record{}
	}

	records := make([]Record, 0, len(stored))
	for _, r := range stored {
		if r == nil || r.Title == "" || r.Date == "" {
			return []Record{}
		}
		records = append(records, *r)
	}
	return records
}
