package domain

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"sync/atomic"
	"time"
)

// IDLength is the number of hex characters in an entity identifier.
const IDLength = 24

var idCounter atomic.Uint32

// NewID generates a 24-character lowercase hex identifier: a 4-byte
// big-endian Unix timestamp, 5 random bytes and a 3-byte counter.
// IDs created by one process sort roughly by creation time.
func NewID() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[0:4], uint32(time.Now().Unix()))
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b[4:9])
	c := idCounter.Add(1)
	b[9] = byte(c >> 16)
	b[10] = byte(c >> 8)
	b[11] = byte(c)
	return hex.EncodeToString(b[:])
}

// IsValidID reports whether id is exactly 24 hex characters, in either case.
func IsValidID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}

// NormalizeID returns the canonical lowercase form of id. Stored IDs are
// always lowercase, so lookups by a client-supplied ID go through here.
func NormalizeID(id string) string {
	return strings.ToLower(id)
}
