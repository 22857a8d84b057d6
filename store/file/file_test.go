package file

import (
	"bytes"
	"context"
	"testing"
)

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(ctx) })

	if _, ok, err := s.Get(ctx, "doc"); ok || err != nil {
		t.Fatalf("Get before Set: ok=%v err=%v", ok, err)
	}

	want := []byte("payload-1")
	if ok, err := s.Set(ctx, "doc", want, int64(len(want)), 0); !ok || err != nil {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	got, ok, err := s.Get(ctx, "doc")
	if err != nil || !ok || !bytes.Equal(got, want) {
		t.Fatalf("Get: ok=%v err=%v got=%q", ok, err, got)
	}

	// overwrite replaces, not appends
	want2 := []byte("p2")
	if ok, err := s.Set(ctx, "doc", want2, int64(len(want2)), 0); !ok || err != nil {
		t.Fatalf("Set overwrite: ok=%v err=%v", ok, err)
	}
	if got, _, _ := s.Get(ctx, "doc"); !bytes.Equal(got, want2) {
		t.Fatalf("overwrite: got %q want %q", got, want2)
	}

	if err := s.Del(ctx, "doc"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "doc"); ok {
		t.Fatalf("Get after Del should miss")
	}

	// deleting a missing key is not an error
	if err := s.Del(ctx, "doc"); err != nil {
		t.Fatalf("Del missing: %v", err)
	}
}

func TestKeysDoNotCollideOrEscape(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	keys := []string{"a/b", "a_b", "../escape", "UPPER", "upper"}
	for i, k := range keys {
		if ok, err := s.Set(ctx, k, []byte{byte(i)}, 1, 0); !ok || err != nil {
			t.Fatalf("Set %q: ok=%v err=%v", k, ok, err)
		}
	}
	for i, k := range keys {
		got, ok, err := s.Get(ctx, k)
		if err != nil || !ok || len(got) != 1 || got[0] != byte(i) {
			t.Fatalf("Get %q: ok=%v err=%v got=%v", k, ok, err, got)
		}
	}
}
