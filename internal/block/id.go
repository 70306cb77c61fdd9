package block

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Block IDs are ULIDs: 26-character Crockford Base32 strings with a
// millisecond timestamp prefix and 80 bits of randomness. They only need to
// be unique within an editing session (blocks are looked up locally, never
// coordinated across machines), so no external dependency is required.

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var (
	idMu   sync.Mutex
	idLast uint64
	idSeq  uint16
)

// NewID returns a fresh block identifier. IDs generated within the same
// millisecond carry an incrementing sequence so they never collide.
func NewID() string {
	idMu.Lock()
	ts := uint64(time.Now().UnixMilli())
	if ts == idLast {
		idSeq++
	} else {
		idLast = ts
		idSeq = 0
	}
	seq := idSeq
	idMu.Unlock()

	var b [16]byte
	b[0] = byte(ts >> 40)
	b[1] = byte(ts >> 32)
	b[2] = byte(ts >> 24)
	b[3] = byte(ts >> 16)
	b[4] = byte(ts >> 8)
	b[5] = byte(ts)
	rand.Read(b[6:])
	binary.BigEndian.PutUint16(b[6:8], seq)

	// Crockford Base32: 128 bits, zero-padded to 130, 5 bits per character.
	hi := binary.BigEndian.Uint64(b[0:8])
	lo := binary.BigEndian.Uint64(b[8:16])
	var out [26]byte
	for i := 25; i >= 0; i-- {
		out[i] = crockford[lo&31]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}
