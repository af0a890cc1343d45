package seq

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDNANormalizes(t *testing.T) {
	d, err := NewDNA("  gene1 ", "at gc\n\tAtGc")
	require.NoError(t, err)
	assert.Equal(t, "gene1", d.ID())
	assert.Equal(t, "ATGCATGC", d.Data())
	assert.Equal(t, 8, d.Len())
	assert.Equal(t, KindDNA, d.Kind())
}

func TestNewSeqInvalid(t *testing.T) {
	testCases := []struct {
		name string
		id   string
		data string
	}{
		{"blank id", "   ", "ATGC"},
		{"empty id", "", "ATGC"},
		{"empty data", "g", ""},
		{"whitespace data", "g", " \t\n "},
		{"bad base", "g", "ATGX"},
		{"rna base in dna", "g", "AUGC"},
		{"digit", "g", "AT1G"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDNA(tc.id, tc.data)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, d)
		})
	}
}

func TestInvalidCharactersNamed(t *testing.T) {
	_, err := NewDNA("g", "AZTBGB")
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), `["B" "Z"]`)
	assert.Equal(t, []string{"B", "Z"}, dnaAlphabet.Invalid("AZTBGB"))
	assert.Nil(t, dnaAlphabet.Invalid("ATGC"))
}

func TestRecord(t *testing.T) {
	p, err := NewProtein("p1", "malkg")
	require.NoError(t, err)
	assert.Equal(t, ">p1\nMALKG", p.Record())
	assert.Equal(t, p.Record(), p.String())

	var buf bytes.Buffer
	require.NoError(t, p.WriteRecord(&buf))
	assert.Equal(t, ">p1\nMALKG\n", buf.String())
}

func TestMutate(t *testing.T) {
	d, err := NewDNA("gene1", "ATGC")
	require.NoError(t, err)

	require.NoError(t, d.Mutate(0, "G"))
	assert.Equal(t, "GTGC", d.Data())
	require.NoError(t, d.Mutate(3, "a"))
	assert.Equal(t, "GTGA", d.Data())
	assert.Equal(t, 4, d.Len())
}

func TestMutateInvalid(t *testing.T) {
	testCases := []struct {
		name string
		pos  int
		char string
		err  error
	}{
		{"negative", -1, "A", ErrOutOfRange},
		{"past end", 4, "A", ErrOutOfRange},
		{"empty char", 0, "", ErrInvalidArgument},
		{"two chars", 0, "AT", ErrInvalidArgument},
		{"not in alphabet", 1, "U", ErrInvalidArgument},
		{"space", 1, " ", ErrInvalidArgument},
		{"non ascii", 1, "ä", ErrInvalidArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDNA("gene1", "ATGC")
			require.NoError(t, err)
			require.ErrorIs(t, d.Mutate(tc.pos, tc.char), tc.err)
			assert.Equal(t, "ATGC", d.Data())
			assert.Equal(t, 4, d.Len())
		})
	}
}

func TestMutateOutOfRangeBeforeCharacter(t *testing.T) {
	d, err := NewDNA("g", "ATGC")
	require.NoError(t, err)
	assert.ErrorIs(t, d.Mutate(10, "XX"), ErrOutOfRange)
}

func TestMutateProtein(t *testing.T) {
	p, err := NewProtein("protein1", "MAIDV")
	require.NoError(t, err)
	require.NoError(t, p.Mutate(1, "l"))
	assert.Equal(t, "MLIDV", p.Data())
	require.NoError(t, p.Mutate(4, "*"))
	assert.Equal(t, "MLID*", p.Data())

	idx, err := p.FindMotif("LI")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestFindMotif(t *testing.T) {
	p, err := NewProtein("p", "MALKG")
	require.NoError(t, err)

	testCases := []struct {
		motif    string
		expected int
	}{
		{"ALK", 1},
		{"alk", 1},
		{" a l\tk\n", 1},
		{"M", 0},
		{"MALKG", 0},
		{"G", 4},
		{"XYZ", -1},
		{"KA", -1},
		{"MALKGA", -1},
	}

	for _, tc := range testCases {
		idx, err := p.FindMotif(tc.motif)
		require.NoError(t, err, tc.motif)
		assert.Equal(t, tc.expected, idx, tc.motif)
	}
}

func TestFindMotifFirstOccurrence(t *testing.T) {
	d, err := NewDNA("gene1", "ATGCGATCGTAGC")
	require.NoError(t, err)
	idx, err := d.FindMotif("GC")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	idx, err = d.FindMotif("GCG")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestFindMotifInvalid(t *testing.T) {
	d, err := NewDNA("g", "ATGC")
	require.NoError(t, err)

	for _, motif := range []string{"", "  \n", "AUG", "N"} {
		idx, err := d.FindMotif(motif)
		assert.ErrorIs(t, err, ErrInvalidArgument, motif)
		assert.Equal(t, -1, idx)
	}
}

func TestEqual(t *testing.T) {
	a, err := NewDNA("g", "ATGC")
	require.NoError(t, err)
	b, err := NewDNA(" g ", "atgc")
	require.NoError(t, err)
	c, err := NewDNA("h", "ATGC")
	require.NoError(t, err)
	d, err := NewDNA("g", "ATGG")
	require.NoError(t, err)
	r, err := NewRNA("g", "AGC")
	require.NoError(t, err)
	p, err := NewProtein("g", "AGC")
	require.NoError(t, err)
	r2, err := NewRNA("g", "AGC")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.True(t, a.Equal(&b.Seq))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.True(t, r.Equal(r2))

	// same identifier and data, different kind
	assert.False(t, r.Equal(p))
	assert.False(t, p.Equal(r))

	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal((*DNA)(nil)))
	assert.False(t, a.Equal("ATGC"))
	assert.False(t, a.Equal(*b))
}

func TestEqualZeroAndNil(t *testing.T) {
	a, err := NewDNA("g", "ATGC")
	require.NoError(t, err)

	others := []any{&Seq{}, &DNA{}, &RNA{}, &Protein{}, (*Seq)(nil), (*RNA)(nil), (*Protein)(nil)}
	for _, other := range others {
		assert.NotPanics(t, func() {
			assert.False(t, a.Equal(other))
		})
	}

	var zero DNA
	var nilDNA *DNA
	var nilRNA *RNA
	var nilProtein *Protein
	assert.NotPanics(t, func() {
		assert.False(t, zero.Equal(a))
		assert.False(t, zero.Equal(&DNA{}))
		assert.False(t, (&Seq{}).Equal(&Seq{}))
		assert.False(t, nilDNA.Equal(a))
		assert.False(t, nilDNA.Equal(nilDNA))
		assert.False(t, nilRNA.Equal(a))
		assert.False(t, nilProtein.Equal(a))
		assert.False(t, (*Seq)(nil).Equal(a))
	})
}

func TestKindAlphabet(t *testing.T) {
	testCases := []struct {
		kind    Kind
		letters string
	}{
		{KindDNA, "ATGC"},
		{KindRNA, "AUGC"},
		{KindProtein, "ARNDCEQGHILKMFPSTWYVX*"},
	}

	for _, tc := range testCases {
		a := tc.kind.Alphabet()
		require.NotNil(t, a, tc.kind.String())
		assert.Equal(t, tc.kind, a.Kind())
		assert.Equal(t, tc.letters, a.Letters())
	}
	assert.Nil(t, Kind(42).Alphabet())
	assert.Equal(t, "Kind(42)", Kind(42).String())

	d, err := NewDNA("g", "ATGC")
	require.NoError(t, err)
	assert.Same(t, KindDNA.Alphabet(), d.Alphabet())
	assert.Same(t, KindRNA.Alphabet(), d.Transcribe().Alphabet())
	assert.Same(t, KindDNA.Alphabet(), d.Complement().Alphabet())
}
