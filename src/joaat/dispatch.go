package joaat

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants"
	"go.uber.org/zap"

	"github.com/Blackdeer1524/joaat/src"
)

// Searcher enumerates preimages over a default alphabet, or over any
// alphabet through FindWith. The top search level is split by the
// character at the last position, one pool task per character, and every
// search shares the same pool. A Searcher is safe for concurrent use.
type Searcher struct {
	alphabet Alphabet
	pool     *ants.Pool
	log      src.Logger
	prune    bool

	// mu is held for reading by running searches and for writing by Close.
	mu     sync.RWMutex
	closed bool
}

// NewSearcher creates a Searcher backed by a pool of workers goroutines.
// workers <= 0 means GOMAXPROCS. log may be nil.
func NewSearcher(alphabet Alphabet, workers int, log src.Logger) (*Searcher, error) {
	if alphabet.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if log == nil {
		log = zap.NewNop().Sugar()
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("NewSearcher ants.NewPool: %w", err)
	}

	return &Searcher{
		alphabet: alphabet,
		pool:     pool,
		log:      log,
		prune:    true,
	}, nil
}

func (s *Searcher) Alphabet() Alphabet { return s.alphabet }

// Close waits for running searches to finish and releases the worker
// pool. Searches started afterwards run on the calling goroutine. Close
// may be called more than once.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.pool.Release()
}

// FindPreimages returns every string of the given length over the
// Searcher's alphabet whose hash is target. The result is grouped by the
// last character in alphabet order and is identical across runs. A
// length below 1 yields nil.
func (s *Searcher) FindPreimages(target uint32, length int) []string {
	return s.search(UndoFinalization(target), length, &s.alphabet)
}

// FindFromState is FindPreimages for a target whose finalization has
// already been undone.
func (s *Searcher) FindFromState(state uint32, length int) []string {
	return s.search(state, length, &s.alphabet)
}

// FindWith is FindPreimages over another alphabet, run on the same pool.
func (s *Searcher) FindWith(target uint32, length int, alphabet Alphabet) []string {
	if alphabet.Len() == 0 {
		return nil
	}

	return s.search(UndoFinalization(target), length, &alphabet)
}

func (s *Searcher) search(state uint32, length int, alphabet *Alphabet) []string {
	if length < 1 {
		return nil
	}

	started := time.Now()
	top := length - 1

	if length == 1 {
		w := newWalker(alphabet, length, s.prune)
		w.walk(state, top)

		return w.out
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	s.log.Debugw("dispatching preimage search",
		"state", state,
		"length", length,
		"tasks", alphabet.Len(),
		"inline", s.closed,
	)

	groups := make([][]string, alphabet.Len())

	var wg sync.WaitGroup
	for i, c := range alphabet.chars {
		task := func() {
			defer wg.Done()

			w := newWalker(alphabet, length, s.prune)
			w.walkPinned(state, top, c)
			groups[i] = w.out
		}

		wg.Add(1)
		if s.closed {
			task()

			continue
		}

		if err := s.pool.Submit(task); err != nil {
			s.log.Warnw("pool rejected search task, running inline",
				"char", string(c),
				zap.Error(err),
			)
			task()
		}
	}
	wg.Wait()

	var results []string
	for _, g := range groups {
		results = append(results, g...)
	}

	s.log.Debugw("preimage search finished",
		"state", state,
		"length", length,
		"results", len(results),
		"elapsed", time.Since(started),
	)

	return results
}

// FindPreimages runs a one-off search with a GOMAXPROCS-sized pool.
func FindPreimages(target uint32, length int, alphabet Alphabet) []string {
	s, err := NewSearcher(alphabet, 0, nil)
	if err != nil {
		return nil
	}
	defer s.Close()

	return s.FindPreimages(target, length)
}
