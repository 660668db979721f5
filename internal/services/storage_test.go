package services

import (
	"context"
	"testing"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	if _, ok, err := s.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("Get(missing) = %v, %v; want not found", ok, err)
	}

	if err := s.Set(ctx, "theme", "light"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, _ := s.Get(ctx, "theme"); !ok || v != "light" {
		t.Errorf("Get(theme) = %q, %v; want light", v, ok)
	}

	if err := s.Delete(ctx, "theme"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "theme"); ok {
		t.Error("key still present after Delete")
	}
}

func TestNamespacedIsolatesVisitors(t *testing.T) {
	ctx := context.Background()
	backing := NewMemoryStorage()
	alice := Namespaced(backing, "alice")
	bob := Namespaced(backing, "bob")

	if err := alice.Set(ctx, "adminEvents", "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, ok, _ := bob.Get(ctx, "adminEvents"); ok {
		t.Error("bob sees alice's key")
	}
	if v, ok, _ := backing.Get(ctx, "alice:adminEvents"); !ok || v != "[]" {
		t.Errorf("backing key = %q, %v; want prefixed value", v, ok)
	}

	if err := alice.Delete(ctx, "adminEvents"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := backing.Get(ctx, "alice:adminEvents"); ok {
		t.Error("Delete did not reach the backing storage")
	}
}

func TestGetOrSetWithoutCache(t *testing.T) {
	calls := 0
	fn := func() (string, error) {
		calls++
		return "computed", nil
	}

	for i := 0; i < 2; i++ {
		got, err := GetOrSet[string](nil, context.Background(), "k", 0, fn)
		if err != nil || got != "computed" {
			t.Fatalf("GetOrSet = %q, %v", got, err)
		}
	}
	if calls != 2 {
		t.Errorf("callback ran %d times; want 2 without a cache", calls)
	}
}
