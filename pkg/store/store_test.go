package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/resizable/pkg/errors"
	"github.com/matzehuels/resizable/pkg/observability"
	"github.com/matzehuels/resizable/pkg/unit"
)

func TestNullStore(t *testing.T) {
	ctx := context.Background()
	s := NewNullStore()
	defer s.Close()

	if err := s.Save(ctx, "key", unit.Size{Width: unit.Px(10)}); err != nil {
		t.Errorf("Save error: %v", err)
	}

	// Still a miss after Save
	_, hit, err := s.Load(ctx, "key")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if hit {
		t.Error("NullStore should not store data")
	}

	if err := s.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Errorf("Clear error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir error: %v", err)
	}
	if dir != filepath.Join("/tmp/state", "resizable") {
		t.Errorf("DefaultDir() = %q", dir)
	}
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	defer s.Close()

	_, hit, err := s.Load(ctx, "tui:box")
	if err != nil || hit {
		t.Fatalf("Load on empty store = hit %v, err %v", hit, err)
	}

	want := unit.Size{Width: unit.Percent(40), Height: unit.Px(12)}
	if err := s.Save(ctx, "tui:box", want); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, hit, err := s.Load(ctx, "tui:box")
	if err != nil || !hit {
		t.Fatalf("Load after Save = hit %v, err %v", hit, err)
	}
	if got != want {
		t.Errorf("Load() = %v, want %v", got, want)
	}

	if err := s.Delete(ctx, "tui:box"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	if _, hit, _ := s.Load(ctx, "tui:box"); hit {
		t.Error("Load after Delete should miss")
	}
	if err := s.Delete(ctx, "tui:box"); err != nil {
		t.Errorf("Delete of missing key error: %v", err)
	}
}

func TestFileStoreAutoSurvives(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	want := unit.Size{Width: unit.Auto(), Height: unit.VH(30)}
	if err := s.Save(ctx, "panel", want); err != nil {
		t.Fatal(err)
	}
	if got, _, _ := s.Load(ctx, "panel"); got != want {
		t.Errorf("Load() = %v, want %v", got, want)
	}
}

func TestFileStoreCorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "box", unit.Size{Width: unit.Px(1)}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.path("box"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, hit, err := s.Load(ctx, "box")
	if err != nil || hit {
		t.Errorf("Load of corrupt entry = hit %v, err %v; want clean miss", hit, err)
	}
}

func TestFileStoreRejectsBadKeys(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"", "../escape", "a//b"} {
		if err := s.Save(ctx, key, unit.Size{}); !errors.Is(err, errors.ErrCodeInvalidKey) {
			t.Errorf("Save(%q) error = %v, want INVALID_KEY", key, err)
		}
		if _, _, err := s.Load(ctx, key); !errors.Is(err, errors.ErrCodeInvalidKey) {
			t.Errorf("Load(%q) error = %v, want INVALID_KEY", key, err)
		}
	}
}

func TestFileStoreClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	// Files the store does not own survive Clear.
	keep := filepath.Join(dir, "README")
	if err := os.WriteFile(keep, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"a", "b", "c"} {
		if err := s.Save(ctx, key, unit.Size{Width: unit.Px(5)}); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	for _, key := range []string{"a", "b", "c"} {
		if _, hit, _ := s.Load(ctx, key); hit {
			t.Errorf("Load(%q) after Clear should miss", key)
		}
	}
	if _, err := os.Stat(keep); err != nil {
		t.Errorf("Clear removed an unrelated file: %v", err)
	}
}

type storeCounter struct {
	hits, misses, sets int
}

func (c *storeCounter) OnStoreHit(context.Context, string)      { c.hits++ }
func (c *storeCounter) OnStoreMiss(context.Context, string)     { c.misses++ }
func (c *storeCounter) OnStoreSet(context.Context, string, int) { c.sets++ }

func TestFileStoreHooks(t *testing.T) {
	hooks := &storeCounter{}
	observability.SetStoreHooks(hooks)
	t.Cleanup(observability.Reset)

	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	_, _, _ = s.Load(ctx, "k")
	_ = s.Save(ctx, "k", unit.Size{Width: unit.Px(1)})
	_, _, _ = s.Load(ctx, "k")

	if hooks.misses != 1 || hooks.sets != 1 || hooks.hits != 1 {
		t.Errorf("hooks = %+v, want 1 miss, 1 set, 1 hit", *hooks)
	}
}
