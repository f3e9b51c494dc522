package kv_test

import (
	"testing"

	"github.com/myrjola/trackmate/internal/kv"
)

func TestMemory(t *testing.T) {
	ctx := t.Context()
	var store kv.Store = kv.NewMemory()

	if _, ok, err := store.Get(ctx, "trackmateProfile"); err != nil || ok {
		t.Fatalf("Get on empty store = ok %v, err %v, want absent", ok, err)
	}

	if err := store.Set(ctx, "trackmateProfile", []byte(`{"weight":80}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := store.Get(ctx, "trackmateProfile")
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok %v, err %v", ok, err)
	}
	if string(got) != `{"weight":80}` {
		t.Errorf("Get = %s, want the written record", got)
	}

	// The returned slice must not alias the stored record.
	got[0] = 'X'
	again, _, _ := store.Get(ctx, "trackmateProfile")
	if string(again) != `{"weight":80}` {
		t.Errorf("stored record was mutated through a returned slice: %s", again)
	}

	if err = store.Delete(ctx, "trackmateProfile"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ = store.Get(ctx, "trackmateProfile"); ok {
		t.Error("record still present after Delete")
	}
}

func TestMemoryZeroValue(t *testing.T) {
	var m kv.Memory
	if err := m.Set(t.Context(), "k", []byte("v")); err != nil {
		t.Fatalf("Set on zero value: %v", err)
	}
	if len(m.Snapshot()) != 1 {
		t.Errorf("Snapshot() has %d records, want 1", len(m.Snapshot()))
	}
}
