package util

import (
	"crypto/sha256"
	"fmt"
)

// FileName maps an arbitrary store key to a filesystem-safe name: a short
// hex digest, so keys with separators or case-colliding characters cannot
// escape or clash inside the store directory.
func FileName(key string) string {
	sum := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%x", sum)[:32] + ".hoard"
}
