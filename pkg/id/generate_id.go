// Package id generates the public identifiers used across the registry:
// declarations, notifications and owner accounts all share the same
// 32-char lowercase hex format.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const rawLen = 16

// NewID32 returns a fresh 128-bit identifier rendered as exactly 32
// lowercase hex characters, no separators or prefixes.
func NewID32() string {
	var b [rawLen]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms; treat a failure
		// as unrecoverable rather than hand out a weak id.
		panic(fmt.Sprintf("id: crypto/rand unavailable: %v", err))
	}
	return hex.EncodeToString(b[:])
}
