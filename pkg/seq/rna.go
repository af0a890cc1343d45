package seq

import (
	"fmt"
	"strings"
)

// RNA is a sequence over {A, U, G, C}.
type RNA struct {
	Seq
}

// NewRNA validates data and returns an RNA sequence named id.
func NewRNA(id, data string) (*RNA, error) {
	s, err := newSeq(rnaAlphabet, id, data)
	if err != nil {
		return nil, err
	}
	return &RNA{Seq: *s}, nil
}

// GCContent returns the fraction of G and C bases.
func (r *RNA) GCContent() float64 {
	return gcContent(r.data)
}

// Translate decodes r with the standard genetic code, codon by codon from
// the first base. Translation ends at the first stop codon, which is not
// part of the result. Codons missing from the table decode to X.
//
// The length of r must be a multiple of 3. A sequence starting with a stop
// codon has no residues and fails like any empty protein.
func (r *RNA) Translate() (*Protein, error) {
	if len(r.data)%3 != 0 {
		return nil, fmt.Errorf(
			"%w: RNA length %d of %q is not a multiple of 3",
			ErrInvalidArgument, len(r.data), r.id,
		)
	}

	var protein strings.Builder
	protein.Grow(len(r.data) / 3)
	for i := 0; i < len(r.data); i += 3 {
		aa, ok := Codon(string(r.data[i : i+3]))
		if !ok {
			aa = UnknownResidue
		}
		if aa == StopResidue {
			break
		}
		protein.WriteByte(aa)
	}

	p, err := NewProtein(r.id+"_protein", protein.String())
	if err != nil {
		return nil, fmt.Errorf("translate %s: %w", r.id, err)
	}
	return p, nil
}

// Equal is Seq.Equal, false for a nil receiver.
func (r *RNA) Equal(other any) bool {
	if r == nil {
		return false
	}
	return r.Seq.Equal(other)
}
