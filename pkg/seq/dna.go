package seq

import "strings"

// DNA is a sequence over {A, T, G, C}.
type DNA struct {
	Seq
}

// NewDNA validates data and returns a DNA sequence named id.
func NewDNA(id, data string) (*DNA, error) {
	s, err := newSeq(dnaAlphabet, id, data)
	if err != nil {
		return nil, err
	}
	return &DNA{Seq: *s}, nil
}

var (
	dnaComplement = strings.NewReplacer(
		"A", "T",
		"T", "A",
		"G", "C",
		"C", "G",
	)
	// 转录 T -> U
	dnaTranscription = strings.NewReplacer("T", "U")
)

// mustDNA and mustRNA wrap data already known to lie in the target alphabet.
func mustDNA(id, data string) *DNA {
	return &DNA{Seq: Seq{id: id, data: []byte(data), alphabet: dnaAlphabet}}
}

func mustRNA(id, data string) *RNA {
	return &RNA{Seq: Seq{id: id, data: []byte(data), alphabet: rnaAlphabet}}
}

// Complement returns the base-paired strand in the same orientation.
func (d *DNA) Complement() *DNA {
	return mustDNA(d.id+"_complement", dnaComplement.Replace(string(d.data)))
}

// ReverseComplement returns the complement read 3' to 5'.
func (d *DNA) ReverseComplement() *DNA {
	var rc = []byte(dnaComplement.Replace(string(d.data)))
	reverse(rc)
	return mustDNA(d.id+"_reverse_complement", string(rc))
}

func reverse(r []byte) {
	for i, j := 0, len(r)-1; i < len(r)/2; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}

// Transcribe returns the RNA copy of the strand, T replaced by U.
func (d *DNA) Transcribe() *RNA {
	return mustRNA(d.id+"_RNA", dnaTranscription.Replace(string(d.data)))
}

// Translate transcribes d and translates the resulting RNA.
func (d *DNA) Translate() (*Protein, error) {
	return d.Transcribe().Translate()
}

// GCContent returns the fraction of G and C bases.
func (d *DNA) GCContent() float64 {
	return gcContent(d.data)
}

func gcContent(seq []byte) float64 {
	var gc = 0
	for _, c := range seq {
		switch c {
		case 'G', 'C':
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}

// Equal is Seq.Equal, false for a nil receiver.
func (d *DNA) Equal(other any) bool {
	if d == nil {
		return false
	}
	return d.Seq.Equal(other)
}
