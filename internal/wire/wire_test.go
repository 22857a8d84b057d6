package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	payload := []byte(`{"user":{"1":{"id":1}}}`)
	got, err := Open(Seal(payload))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mangled: got %q want %q", got, payload)
	}
}

func TestOpenRejectsCorrupt(t *testing.T) {
	sealed := Seal([]byte("payload"))

	cases := map[string][]byte{
		"empty":         nil,
		"short":         sealed[:4],
		"bad magic":     append([]byte("XXXX"), sealed[4:]...),
		"bad version":   append(append([]byte{}, sealed[:4]...), append([]byte{99}, sealed[5:]...)...),
		"truncated":     sealed[:len(sealed)-2],
		"trailing junk": append(append([]byte{}, sealed...), 0xFF),
	}
	for name, b := range cases {
		if _, err := Open(b); !errors.Is(err, ErrCorrupt) {
			t.Fatalf("%s: want ErrCorrupt, got %v", name, err)
		}
	}
}

func TestSealEmptyPayload(t *testing.T) {
	got, err := Open(Seal(nil))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty payload, got %q", got)
	}
}
