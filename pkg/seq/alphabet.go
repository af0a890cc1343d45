package seq

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies the biological type of a sequence.
type Kind int

const (
	KindDNA Kind = iota
	KindRNA
	KindProtein
)

func (k Kind) String() string {
	switch k {
	case KindDNA:
		return "DNA"
	case KindRNA:
		return "RNA"
	case KindProtein:
		return "Protein"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Alphabet is the fixed set of upper-case letters a Kind accepts.
type Alphabet struct {
	kind    Kind
	letters string
	valid   [256]bool
}

func newAlphabet(kind Kind, letters string) *Alphabet {
	var a = &Alphabet{kind: kind, letters: letters}
	for i := 0; i < len(letters); i++ {
		a.valid[letters[i]] = true
	}
	return a
}

// fixed per kind, reached through Kind.Alphabet
var (
	dnaAlphabet     = newAlphabet(KindDNA, "ATGC")
	rnaAlphabet     = newAlphabet(KindRNA, "AUGC")
	proteinAlphabet = newAlphabet(KindProtein, "ARNDCEQGHILKMFPSTWYV"+"X*") // X 未知残基, * 终止
)

// Alphabet returns the alphabet of k, or nil for an unknown Kind.
func (k Kind) Alphabet() *Alphabet {
	switch k {
	case KindDNA:
		return dnaAlphabet
	case KindRNA:
		return rnaAlphabet
	case KindProtein:
		return proteinAlphabet
	}
	return nil
}

func (a *Alphabet) Kind() Kind {
	return a.kind
}

// Letters returns the allowed characters in declaration order.
func (a *Alphabet) Letters() string {
	return a.letters
}

// Contains reports whether c is an allowed character.
func (a *Alphabet) Contains(c byte) bool {
	return a.valid[c]
}

// Invalid returns the distinct characters of s that are not in the alphabet, sorted.
func (a *Alphabet) Invalid(s string) []string {
	var seen = make(map[rune]bool)
	for _, r := range s {
		if r < 256 && a.valid[r] {
			continue
		}
		seen[r] = true
	}
	if len(seen) == 0 {
		return nil
	}
	var invalid = make([]string, 0, len(seen))
	for r := range seen {
		invalid = append(invalid, string(r))
	}
	sort.Strings(invalid)
	return invalid
}

// check returns an ErrInvalidArgument naming the offending characters of s, if any.
// what names the checked value in the message: "sequence", "motif", "character".
func (a *Alphabet) check(what, s string) error {
	if invalid := a.Invalid(s); invalid != nil {
		return fmt.Errorf(
			"%w: invalid characters in %s %s: %q, allowed: %s",
			ErrInvalidArgument, a.kind, what, invalid, a.letters,
		)
	}
	return nil
}

var whitespace = strings.NewReplacer(" ", "", "\t", "", "\n", "")

// Normalize upper-cases s and strips spaces, tabs and newlines.
func Normalize(s string) string {
	return whitespace.Replace(strings.ToUpper(s))
}
