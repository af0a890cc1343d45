// Package seq models DNA, RNA and protein sequences as validated, mutable
// strings over a fixed alphabet, with complement, transcription and
// translation between them.
//
// A sequence is not safe for concurrent use while Mutate may be called;
// every other method only reads its receiver.
package seq

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Seq holds the state shared by every sequence kind. It is embedded by DNA,
// RNA and Protein, which fix its alphabet.
type Seq struct {
	id       string
	data     []byte
	alphabet *Alphabet
}

func newSeq(alphabet *Alphabet, id, data string) (*Seq, error) {
	var name = strings.TrimSpace(id)
	if name == "" {
		return nil, fmt.Errorf("%w: identifier must be a non-empty string", ErrInvalidArgument)
	}

	var sequence = Normalize(data)
	if sequence == "" {
		return nil, fmt.Errorf("%w: %s sequence %q is empty", ErrInvalidArgument, alphabet.kind, name)
	}
	if err := alphabet.check("sequence", sequence); err != nil {
		return nil, err
	}

	return &Seq{
		id:       name,
		data:     []byte(sequence),
		alphabet: alphabet,
	}, nil
}

func (s *Seq) ID() string {
	return s.id
}

// Data returns the normalized sequence.
func (s *Seq) Data() string {
	return string(s.data)
}

func (s *Seq) Kind() Kind {
	return s.alphabet.kind
}

func (s *Seq) Alphabet() *Alphabet {
	return s.alphabet
}

// Len returns the number of residues.
func (s *Seq) Len() int {
	return len(s.data)
}

// Record returns the sequence as a single FASTA record without a trailing newline.
func (s *Seq) Record() string {
	return ">" + s.id + "\n" + string(s.data)
}

func (s *Seq) String() string {
	return s.Record()
}

// WriteRecord writes Record and a terminating newline to w.
func (s *Seq) WriteRecord(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n", s.Record())
	return err
}

// Mutate replaces the residue at pos with char, which must be a single
// character of the alphabet in either case. A failed call leaves the
// sequence unchanged.
func (s *Seq) Mutate(pos int, char string) error {
	if pos < 0 || pos >= len(s.data) {
		return fmt.Errorf("%w: position %d outside sequence [0-%d]", ErrOutOfRange, pos, len(s.data)-1)
	}
	if utf8.RuneCountInString(char) != 1 {
		return fmt.Errorf("%w: mutation value %q must be a single character", ErrInvalidArgument, char)
	}
	var c = strings.ToUpper(char)
	if err := s.alphabet.check("character", c); err != nil {
		return err
	}
	s.data[pos] = c[0]
	return nil
}

// FindMotif returns the index of the first occurrence of motif, or -1 if it
// does not occur. The motif is normalized like construction data.
func (s *Seq) FindMotif(motif string) (int, error) {
	var m = Normalize(motif)
	if m == "" {
		return -1, fmt.Errorf("%w: motif is empty", ErrInvalidArgument)
	}
	if err := s.alphabet.check("motif", m); err != nil {
		return -1, err
	}
	return strings.Index(string(s.data), m), nil
}

// Equal reports whether other is a sequence of the same kind with the same
// identifier and data. It is false for nil, for zero values and for any
// other type.
func (s *Seq) Equal(other any) bool {
	var o = baseOf(other)
	if s == nil || o == nil || s.alphabet == nil || o.alphabet == nil {
		return false
	}
	return s.alphabet.kind == o.alphabet.kind &&
		s.id == o.id &&
		string(s.data) == string(o.data)
}

// baseOf returns the Seq behind a sequence pointer, nil for anything else.
func baseOf(other any) *Seq {
	switch v := other.(type) {
	case *Seq:
		return v
	case *DNA:
		if v != nil {
			return &v.Seq
		}
	case *RNA:
		if v != nil {
			return &v.Seq
		}
	case *Protein:
		if v != nil {
			return &v.Seq
		}
	}
	return nil
}
