package recordstore

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"

	"github.com/KirkDiggler/battle-api/internal/errors"
)

// Memory is a Store held in process memory
type Memory[T Record] struct {
	kind string

	mu      sync.RWMutex
	records map[string][]byte
	order   []string
}

// NewMemory creates an empty in-memory store. kind names the record type in errors.
func NewMemory[T Record](kind string) *Memory[T] {
	return &Memory[T]{
		kind:    kind,
		records: make(map[string][]byte),
	}
}

// Create stores a new record
func (m *Memory[T]) Create(_ context.Context, record T) error {
	id, err := recordID(m.kind, record)
	if err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", m.kind)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[id]; exists {
		return errors.AlreadyExistsf("%s with ID %s already exists", m.kind, id)
	}
	m.records[id] = data
	m.order = append(m.order, id)

	return nil
}

// Get loads a record by ID
func (m *Memory[T]) Get(_ context.Context, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, errors.InvalidArgumentf("%s ID cannot be empty", m.kind)
	}

	m.mu.RLock()
	data, exists := m.records[id]
	m.mu.RUnlock()

	if !exists {
		return zero, errors.NotFoundf("%s with ID %s not found", m.kind, id)
	}

	return decode[T](m.kind, data)
}

// Update replaces an existing record
func (m *Memory[T]) Update(_ context.Context, record T) error {
	id, err := recordID(m.kind, record)
	if err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", m.kind)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[id]; !exists {
		return errors.NotFoundf("%s with ID %s not found", m.kind, id)
	}
	m.records[id] = data

	return nil
}

// List returns every record in creation order
func (m *Memory[T]) List(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		record, err := decode[T](m.kind, m.records[id])
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}

	return out, nil
}

func recordID[T Record](kind string, record T) (string, error) {
	v := reflect.ValueOf(record)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return "", errors.InvalidArgumentf("%s cannot be nil", kind)
	}
	if record.GetID() == "" {
		return "", errors.InvalidArgumentf("%s ID cannot be empty", kind)
	}
	return record.GetID(), nil
}

// decode unmarshals into a fresh value; T is expected to be a pointer type
func decode[T Record](kind string, data []byte) (T, error) {
	var record T
	if t := reflect.TypeFor[T](); t.Kind() == reflect.Pointer {
		record = reflect.New(t.Elem()).Interface().(T)
	}
	if err := json.Unmarshal(data, record); err != nil {
		var zero T
		return zero, errors.Wrapf(err, "failed to unmarshal %s", kind)
	}
	return record, nil
}
