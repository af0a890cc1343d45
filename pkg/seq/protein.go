package seq

// Protein is a sequence over the 20 standard amino acids plus X and *.
type Protein struct {
	Seq
}

// NewProtein validates data and returns a protein sequence named id.
func NewProtein(id, data string) (*Protein, error) {
	s, err := newSeq(proteinAlphabet, id, data)
	if err != nil {
		return nil, err
	}
	return &Protein{Seq: *s}, nil
}

// Equal is Seq.Equal, false for a nil receiver.
func (p *Protein) Equal(other any) bool {
	if p == nil {
		return false
	}
	return p.Seq.Equal(other)
}
