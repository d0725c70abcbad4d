// Package joaat implements Bob Jenkins's one_at_a_time hash together with
// an exact inversion of its mixing pipeline, which is used to enumerate
// every string of a given length over an alphabet that hashes to a target.
package joaat

import "hash"

var _ hash.Hash32 = new(Hash)

// Sum32 returns the one_at_a_time hash of data.
func Sum32(data []byte) uint32 {
	var state uint32
	for _, b := range data {
		state = mix(state, b)
	}

	return Finalize(state)
}

// SumString is Sum32 over the bytes of s.
func SumString(s string) uint32 {
	var state uint32
	for i := 0; i < len(s); i++ {
		state = mix(state, s[i])
	}

	return Finalize(state)
}

// Finalize applies the post-loop avalanche to a running state.
func Finalize(state uint32) uint32 {
	state += state << 3
	state ^= state >> 11
	state += state << 15

	return state
}

func mix(state uint32, b byte) uint32 {
	state += uint32(b)
	state += state << 10
	state ^= state >> 6

	return state
}

// Hash is a streaming one_at_a_time hash. The zero value is ready to use.
// It keeps the unfinalized state, so Write may be called any number of
// times between reads.
type Hash uint32

func New32() hash.Hash32 {
	var h Hash
	return &h
}

func (h *Hash) Write(data []byte) (int, error) {
	state := uint32(*h)
	for _, b := range data {
		state = mix(state, b)
	}
	*h = Hash(state)

	return len(data), nil
}

func (h *Hash) Sum32() uint32 { return Finalize(uint32(*h)) }

// State returns the running state before finalization.
func (h *Hash) State() uint32 { return uint32(*h) }

func (h *Hash) Reset() { *h = 0 }

func (h *Hash) Size() int { return 4 }

func (h *Hash) BlockSize() int { return 1 }

// Sum appends the big-endian hash value to in.
func (h *Hash) Sum(in []byte) []byte {
	v := h.Sum32()
	return append(in, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
