package joaat

const (
	// multiplicative inverses mod 2^32
	inv32769 = 0x3FFF8001
	inv9     = 0x38E38E39
	inv1025  = 0xC00FFC01
)

// UndoFinalization maps a hash value back to the running state that
// existed right after the last byte was mixed in.
func UndoFinalization(target uint32) uint32 {
	state := target * inv32769
	state ^= (state >> 11) ^ (state >> 22)
	state *= inv9

	return state
}

// unmix reverses the shift-and-add and the xorshift of one round but
// leaves the byte addition in place.
func unmix(state uint32) uint32 {
	state ^= (state >> 6) ^ (state >> 12) ^ (state >> 18) ^ (state >> 24) ^ (state >> 30)
	state *= inv1025

	return state
}

// UndoStep returns the state before b was mixed into state.
func UndoStep(state uint32, b byte) uint32 {
	return unmix(state) - uint32(b)
}

// MatchesState reports whether mixing candidate into a zero state yields
// state, which must already have its finalization undone.
func MatchesState(candidate string, state uint32) bool {
	for i := len(candidate) - 1; i >= 0; i-- {
		state = UndoStep(state, candidate[i])
	}

	return state == 0
}

// IsPreimage reports whether candidate hashes to target.
func IsPreimage(candidate string, target uint32) bool {
	return MatchesState(candidate, UndoFinalization(target))
}
