package database

import (
	"context"
	"errors"
	"testing"
)

type stubStore struct{ RunStore }

func TestProvider_NotInitialized(t *testing.T) {
	RegisterPostgresBackend(nil)

	if IsInitialized() {
		t.Fatal("expected backend to be uninitialized")
	}
	if _, err := GetRunReader(context.Background()); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("GetRunReader() error = %v, want ErrNotInitialized", err)
	}
	if _, err := GetRunWriter(context.Background()); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("GetRunWriter() error = %v, want ErrNotInitialized", err)
	}
}

func TestProvider_Registered(t *testing.T) {
	store := &stubStore{}
	RegisterPostgresBackend(func() RunStore { return store })
	t.Cleanup(func() { RegisterPostgresBackend(nil) })

	if !IsInitialized() {
		t.Fatal("expected backend to be initialized")
	}
	reader, err := GetRunReader(context.Background())
	if err != nil {
		t.Fatalf("GetRunReader() error = %v", err)
	}
	if reader != store {
		t.Error("expected registered store to be returned")
	}
	writer, err := GetRunWriter(context.Background())
	if err != nil {
		t.Fatalf("GetRunWriter() error = %v", err)
	}
	if writer != store {
		t.Error("expected registered store to be returned")
	}
}
