package events

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"puja_site_echo/internal/services"
)

func seeded(t *testing.T, records []Record) (*Manager, *services.MemoryStorage) {
	t.Helper()
	storage := services.NewMemoryStorage()
	if records != nil {
		data, err := Encode(records)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if err := storage.Set(context.Background(), StorageKey, data); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	return NewManager(storage), storage
}

func stored(t *testing.T, storage services.Storage) string {
	t.Helper()
	v, _, err := storage.Get(context.Background(), StorageKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	return v
}

func TestLoadTreatsBadDataAsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value *string
	}{
		{name: "absent"},
		{name: "empty string", value: ptr("")},
		{name: "not json", value: ptr("{broken")},
		{name: "object", value: ptr(`{"title":"A"}`)},
		{name: "null", value: ptr("null")},
		{name: "array of numbers", value: ptr("[1,2,3]")},
		{name: "null element", value: ptr("[null]")},
		{name: "foreign object", value: ptr(`[{"foo":1}]`)},
		{name: "missing date", value: ptr(`[{"title":"A","date":"2025-01-01"},{"title":"B"}]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := services.NewMemoryStorage()
			if tt.value != nil {
				storage.Set(context.Background(), StorageKey, *tt.value)
			}

			records, err := NewManager(storage).Load(context.Background())
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if records == nil || len(records) != 0 {
				t.Errorf("records = %#v; want empty list", records)
			}
		})
	}
}

func TestAddRoundTrip(t *testing.T) {
	m, storage := seeded(t, nil)
	ctx := context.Background()

	if _, added, err := m.Add(ctx, "Puja Meeting", "2025-09-28"); err != nil || !added {
		t.Fatalf("Add = %v, %v; want added", added, err)
	}

	// A fresh manager reads only what was persisted
	records, err := NewManager(storage).Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	last := records[len(records)-1]
	if last != (Record{Title: "Puja Meeting", Date: "2025-09-28"}) {
		t.Errorf("last = %+v", last)
	}
	if got := stored(t, storage); got != `[{"title":"Puja Meeting","date":"2025-09-28"}]` {
		t.Errorf("stored = %s", got)
	}
}

func TestAddRejectedLeavesStorageUntouched(t *testing.T) {
	ctx := context.Background()
	for _, in := range []Form{{Title: "", Date: "2025-09-28"}, {Title: "Title", Date: ""}} {
		m, storage := seeded(t, twoRecords().Records)
		before := stored(t, storage)

		state, added, err := m.Add(ctx, in.Title, in.Date)
		if err != nil || added {
			t.Fatalf("Add(%+v) = %v, %v; want rejected", in, added, err)
		}
		if state.Form != in {
			t.Errorf("form = %+v; want %+v", state.Form, in)
		}
		if after := stored(t, storage); after != before {
			t.Errorf("stored changed from %s to %s", before, after)
		}
	}

	// Nothing stored before, nothing stored after
	m, storage := seeded(t, nil)
	m.Add(ctx, "", "")
	if _, ok, _ := storage.Get(ctx, StorageKey); ok {
		t.Error("rejected add created the key")
	}
}

func TestManagerDelete(t *testing.T) {
	m, storage := seeded(t, twoRecords().Records)

	if _, err := m.Delete(context.Background(), 0); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := stored(t, storage); got != `[{"title":"B","date":"2025-02-02"}]` {
		t.Errorf("stored = %s", got)
	}
}

func TestManagerEdit(t *testing.T) {
	m, storage := seeded(t, twoRecords().Records)

	state, err := m.Edit(context.Background(), 1)
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if state.Form != (Form{Title: "B", Date: "2025-02-02"}) {
		t.Errorf("form = %+v", state.Form)
	}
	if got := stored(t, storage); got != `[{"title":"A","date":"2025-01-01"}]` {
		t.Errorf("stored = %s", got)
	}

	// Resubmitting the form puts the record back at the end
	if _, added, err := m.Add(context.Background(), state.Form.Title, state.Form.Date); err != nil || !added {
		t.Fatalf("Add = %v, %v", added, err)
	}
	records, _ := m.Load(context.Background())
	if !reflect.DeepEqual(records, twoRecords().Records) {
		t.Errorf("records = %v", records)
	}
}

func TestManagerOutOfRangeKeepsStorage(t *testing.T) {
	m, storage := seeded(t, twoRecords().Records)
	before := stored(t, storage)

	if _, err := m.Delete(context.Background(), 5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Delete err = %v", err)
	}
	if _, err := m.Edit(context.Background(), -1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Edit err = %v", err)
	}
	if after := stored(t, storage); after != before {
		t.Errorf("stored changed from %s to %s", before, after)
	}
}

func TestManagerRenderIdempotent(t *testing.T) {
	m, _ := seeded(t, twoRecords().Records)
	ctx := context.Background()

	first, err := m.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := m.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Render differs: %v vs %v", first, second)
	}
}

type failingStorage struct{}

func (failingStorage) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}
func (failingStorage) Set(context.Context, string, string) error { return errors.New("connection refused") }
func (failingStorage) Delete(context.Context, string) error { return errors.New("connection refused") }

func TestManagerStorageFailure(t *testing.T) {
	m := NewManager(failingStorage{})
	if _, err := m.Load(context.Background()); err == nil {
		t.Error("Load: expected error")
	}
	if _, _, err := m.Add(context.Background(), "A", "2025-01-01"); err == nil {
		t.Error("Add: expected error")
	}
}

func ptr(s string) *string { return &s }
