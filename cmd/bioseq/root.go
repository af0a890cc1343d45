package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/bioseq/pkg/seq"
)

type options struct {
	id     string
	seq    string
	input  string
	output string
	kind   string
}

// sequence is the behaviour shared by *seq.DNA, *seq.RNA and *seq.Protein.
type sequence interface {
	ID() string
	Kind() seq.Kind
	Record() string
	Mutate(pos int, char string) error
	FindMotif(motif string) (int, error)
}

func newRootCmd() *cobra.Command {
	var opts = &options{}
	var root = &cobra.Command{
		Use:   "bioseq",
		Short: "Convert and inspect a single DNA, RNA or protein sequence",
		Long: `Reads one sequence from --seq, a file or stdin, applies one operation
and writes the result as a single FASTA record.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	var flags = root.PersistentFlags()
	flags.StringVarP(&opts.id, "id", "n", "", "sequence identifier, default the FASTA header or \"seq\"")
	flags.StringVarP(&opts.seq, "seq", "s", "", "sequence data")
	flags.StringVarP(&opts.input, "input", "i", "", "input, one sequence, optional '>' header line, '-' for stdin")
	flags.StringVarP(&opts.output, "output", "o", "", "output file, default stdout")
	flags.StringVarP(&opts.kind, "kind", "k", "dna", "input kind: dna, rna or protein")

	root.AddCommand(
		newRecordCmd(opts),
		newComplementCmd(opts),
		newReverseComplementCmd(opts),
		newTranscribeCmd(opts),
		newTranslateCmd(opts),
		newMotifCmd(opts),
		newMutateCmd(opts),
		newGCCmd(opts),
	)
	return root
}

// load builds the input sequence of opts.kind.
func (opts *options) load(in io.Reader) (sequence, error) {
	var id, data = opts.id, opts.seq
	if data == "" {
		if opts.input == "" {
			return nil, fmt.Errorf("%w: one of --seq or --input is required", seq.ErrInvalidArgument)
		}
		lines, err := readInput(opts.input, in)
		if err != nil {
			return nil, err
		}
		header, body, err := parseRecord(lines)
		if err != nil {
			return nil, err
		}
		data = body
		if id == "" {
			id = header
		}
	}
	if id == "" {
		id = "seq"
	}

	switch strings.ToLower(opts.kind) {
	case "dna":
		d, err := seq.NewDNA(id, data)
		return asSequence(d, err)
	case "rna":
		r, err := seq.NewRNA(id, data)
		return asSequence(r, err)
	case "protein":
		p, err := seq.NewProtein(id, data)
		return asSequence(p, err)
	}
	return nil, fmt.Errorf("%w: unknown kind %q", seq.ErrInvalidArgument, opts.kind)
}

// asSequence keeps a failed constructor's nil pointer out of the interface.
func asSequence[T sequence](s T, err error) (sequence, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (opts *options) loadDNA(in io.Reader) (*seq.DNA, error) {
	s, err := opts.load(in)
	if err != nil {
		return nil, err
	}
	d, ok := s.(*seq.DNA)
	if !ok {
		return nil, fmt.Errorf("%w: operation needs DNA, got %s", seq.ErrInvalidArgument, s.Kind())
	}
	return d, nil
}

// write writes text and a newline to --output, or to the command's stdout.
func (opts *options) write(cmd *cobra.Command, text string) {
	if opts.output == "" {
		fmtUtil.Fprintf(cmd.OutOrStdout(), "%s\n", text)
		return
	}
	var out = osUtil.Create(opts.output)
	defer simpleUtil.DeferClose(out)
	fmtUtil.Fprintf(out, "%s\n", text)
}
