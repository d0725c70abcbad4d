package joaat

// Upper bounds on the unmixed state at depths 1 and 2, in units of the
// largest alphabet byte. A state above the bound cannot be reached from a
// zero start with the remaining rounds.
const (
	depthOneBound = 1_043
	depthTwoBound = 1_084_746
)

// walker runs the backward search for one branch of the dispatch. It owns
// its buffer and results, so walkers never share mutable state.
type walker struct {
	alphabet *Alphabet
	buf      []byte
	out      []string
	prune    bool
}

func newWalker(alphabet *Alphabet, length int, prune bool) *walker {
	return &walker{
		alphabet: alphabet,
		buf:      make([]byte, length),
		prune:    prune,
	}
}

// step unmixes state at depth. It records a match at depth 0 and reports
// whether the caller should keep descending from the returned value.
func (w *walker) step(state uint32, depth int) (uint32, bool) {
	v := unmix(state)
	maxChar := uint64(w.alphabet.max)

	switch depth {
	case 0:
		if v < uint32(w.alphabet.min) || v > uint32(w.alphabet.max) || !w.alphabet.member[v] {
			return v, false
		}

		w.buf[0] = byte(v)
		w.out = append(w.out, string(w.buf))

		return v, false
	case 1:
		if w.prune && uint64(v) > maxChar*depthOneBound {
			return v, false
		}
	case 2:
		if w.prune && uint64(v) > maxChar*depthTwoBound {
			return v, false
		}
	}

	return v, true
}

func (w *walker) walk(state uint32, depth int) {
	v, ok := w.step(state, depth)
	if !ok {
		return
	}

	for _, c := range w.alphabet.chars {
		w.descend(v, depth, c)
	}
}

// walkPinned is walk with the byte at depth fixed to c.
func (w *walker) walkPinned(state uint32, depth int, c byte) {
	v, ok := w.step(state, depth)
	if !ok {
		return
	}

	w.descend(v, depth, c)
}

func (w *walker) descend(v uint32, depth int, c byte) {
	w.buf[depth] = c
	w.walk(v-uint32(c), depth-1)
}
