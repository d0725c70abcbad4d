package delivery

import "github.com/Blackdeer1524/joaat/src/joaat"

// Finder is the search backend served over HTTP. *joaat.Searcher
// implements it; FindWith runs on the same bounded pool as FindPreimages.
type Finder interface {
	FindPreimages(target uint32, length int) []string
	FindWith(target uint32, length int, alphabet joaat.Alphabet) []string
	Alphabet() joaat.Alphabet
}
