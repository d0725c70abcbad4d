package joaat

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmptyAlphabet = errors.New("alphabet is empty")
	ErrDuplicateChar = errors.New("alphabet contains a duplicate character")
	ErrInvalidLength = errors.New("input length must be greater than 0")
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
)

var presets = map[string]string{
	"alphanumeric": digits + uppercase + lowercase,
	"lower":        lowercase,
	"upper":        uppercase,
	"digits":       digits,
	"hex":          digits + "abcdef",
	"printable":    printableASCII(),
}

const DefaultPreset = "alphanumeric"

func printableASCII() string {
	var sb strings.Builder
	for c := byte(0x20); c < 0x7f; c++ {
		sb.WriteByte(c)
	}

	return sb.String()
}

// Alphabet is an ordered set of candidate bytes. Enumeration at every
// position follows the order the characters were given in.
type Alphabet struct {
	chars  []byte
	member [256]bool
	min    byte
	max    byte
}

func NewAlphabet(chars string) (Alphabet, error) {
	var a Alphabet
	if len(chars) == 0 {
		return a, ErrEmptyAlphabet
	}

	a.chars = make([]byte, 0, len(chars))
	a.min, a.max = chars[0], chars[0]
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if a.member[c] {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateChar, c)
		}

		a.member[c] = true
		a.chars = append(a.chars, c)
		a.min = min(a.min, c)
		a.max = max(a.max, c)
	}

	return a, nil
}

// MustAlphabet is NewAlphabet for literals known to be valid.
func MustAlphabet(chars string) Alphabet {
	a, err := NewAlphabet(chars)
	if err != nil {
		panic(err)
	}

	return a
}

// LookupPreset returns one of the built-in alphabets by name.
func LookupPreset(name string) (Alphabet, bool) {
	chars, ok := presets[name]
	if !ok {
		return Alphabet{}, false
	}

	return MustAlphabet(chars), true
}

// ResolveAlphabet treats raw as a preset name first and as a literal
// character list otherwise.
func ResolveAlphabet(raw string) (Alphabet, error) {
	if a, ok := LookupPreset(raw); ok {
		return a, nil
	}

	return NewAlphabet(raw)
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (a Alphabet) Len() int { return len(a.chars) }

func (a Alphabet) Min() byte { return a.min }

func (a Alphabet) Max() byte { return a.max }

func (a Alphabet) String() string { return string(a.chars) }

func (a Alphabet) Has(c byte) bool { return a.member[c] }

// Contains reports whether every byte of s belongs to the alphabet.
func (a Alphabet) Contains(s string) bool {
	for i := 0; i < len(s); i++ {
		if !a.member[s[i]] {
			return false
		}
	}

	return true
}

// Validate rejects search parameters that cannot describe any input.
func Validate(length int, alphabet Alphabet) error {
	if length < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}

	if alphabet.Len() == 0 {
		return ErrEmptyAlphabet
	}

	return nil
}
