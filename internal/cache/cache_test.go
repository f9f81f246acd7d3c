package cache_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/funvibe/logicc/internal/cache"
)

func open(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.Open(filepath.Join(t.TempDir(), "nested", "logicc.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestKey(t *testing.T) {
	a := cache.Key("normal", "TRUE")
	if len(a) != 64 {
		t.Errorf("expected a hex SHA-256, got %q", a)
	}
	if a != cache.Key("normal", "TRUE") {
		t.Error("key is not deterministic")
	}
	if a == cache.Key("short-circuit", "TRUE") {
		t.Error("mode does not affect the key")
	}
	if cache.Key("ab", "c") == cache.Key("a", "bc") {
		t.Error("mode and source are not separated")
	}
}

func TestGetPut(t *testing.T) {
	ctx := context.Background()
	c := open(t)
	key := cache.Key("normal", "TRUE")

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	if err := c.Put(ctx, key, "normal", "run-1", "first"); err != nil {
		t.Fatal(err)
	}
	got, ok, err := c.Get(ctx, key)
	if err != nil || !ok || got != "first" {
		t.Fatalf("Get = %q, %v, %v", got, ok, err)
	}

	if err := c.Put(ctx, key, "normal", "run-2", "second"); err != nil {
		t.Fatal(err)
	}
	if got, _, _ := c.Get(ctx, key); got != "second" {
		t.Errorf("Put did not replace the entry: %q", got)
	}
	if n, err := c.Len(ctx); err != nil || n != 1 {
		t.Errorf("Len = %d, %v", n, err)
	}
}

func TestPersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "logicc.db")
	c, err := cache.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Put(ctx, "k", "optimized", "run", "asm"); err != nil {
		t.Fatal(err)
	}
	c.Close()

	c, err = cache.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if got, ok, err := c.Get(ctx, "k"); err != nil || !ok || got != "asm" {
		t.Errorf("reopened cache: %q, %v, %v", got, ok, err)
	}
}
