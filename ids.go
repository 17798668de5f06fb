package easel

import (
	"math/rand/v2"
	"strconv"
)

// IDAllocator hands out layer identifiers.
type IDAllocator interface {
	NextID() string
}

// SequentialIDs allocates Prefix followed by an increasing counter, starting
// at 1: "layer1", "layer2", ... The zero value allocates "1", "2", ....
type SequentialIDs struct {
	Prefix string
	next   uint64
}

// NextID returns the next identifier.
func (s *SequentialIDs) NextID() string {
	s.next++
	return s.Prefix + strconv.FormatUint(s.next, 10)
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomID returns a random 9-character base-36 identifier.
func randomID() string {
	var b [9]byte
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b[:])
}
