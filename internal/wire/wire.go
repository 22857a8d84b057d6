// Package wire frames encoded cache documents for storage. The envelope
// carries a magic marker, a format version and a payload length so that a
// truncated, foreign or corrupt store entry is rejected instead of handed to
// a codec.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("hoard: corrupt document envelope")
	magic4     = [...]byte{'H', 'O', 'R', 'D'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Seal wraps an encoded document: magic(4) | ver(1) | plen(u32 be) | payload.
func Seal(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// Open validates the envelope and returns the payload. The returned slice
// aliases b.
func Open(b []byte) ([]byte, error) {
	const hdr = 4 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return nil, ErrCorrupt
	}

	plen := int(binary.BigEndian.Uint32(b[5:9]))
	if plen < 0 || plen != len(b)-hdr { // overflow-safe bound check
		return nil, ErrCorrupt
	}

	return b[hdr : hdr+plen], nil
}
