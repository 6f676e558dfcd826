package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testEntity struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func TestTypedGetSet(t *testing.T) {
	c := NewTyped[testEntity](newTestCache(), time.Hour)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Error("expected miss for absent key")
	}

	want := &testEntity{ID: 7, Title: "Entry-E"}
	if err := c.Set(ctx, "products:7", want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok := c.Get(ctx, "products:7")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.ID != 7 || got.Title != "Entry-E" {
		t.Errorf("got %+v", got)
	}
}

func TestTypedGetOrSet(t *testing.T) {
	c := NewTyped[testEntity](newTestCache(), time.Hour)
	ctx := context.Background()

	calls := 0
	fetch := func() (*testEntity, error) {
		calls++
		return &testEntity{ID: 1, Title: "Business in a Box"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrSet(ctx, "products:1", fetch)
		if err != nil {
			t.Fatalf("GetOrSet: %v", err)
		}
		if got.Title != "Business in a Box" {
			t.Errorf("got %+v", got)
		}
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestTypedGetOrSetErrorNotCached(t *testing.T) {
	c := NewTyped[testEntity](newTestCache(), time.Hour)
	ctx := context.Background()

	fetchErr := errors.New("provider down")
	_, err := c.GetOrSet(ctx, "k", func() (*testEntity, error) { return nil, fetchErr })
	if !errors.Is(err, fetchErr) {
		t.Fatalf("expected fetch error, got %v", err)
	}

	// The error must not have been cached; a later successful fetch wins.
	got, err := c.GetOrSet(ctx, "k", func() (*testEntity, error) {
		return &testEntity{ID: 2}, nil
	})
	if err != nil || got.ID != 2 {
		t.Errorf("got %+v, err %v", got, err)
	}
}

func TestTypedUndecodableEntryIsMiss(t *testing.T) {
	backend := newTestCache()
	c := NewTyped[testEntity](backend, time.Hour)
	ctx := context.Background()

	_ = backend.Set(ctx, "bad", []byte("not json"), 0)
	if _, ok := c.Get(ctx, "bad"); ok {
		t.Error("undecodable entry should read as a miss")
	}
}
