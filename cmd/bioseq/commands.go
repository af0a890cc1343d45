package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/bioseq/pkg/seq"
)

func newRecordCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Write the normalized sequence as a FASTA record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			opts.write(cmd, s.Record())
			return nil
		},
	}
}

func newComplementCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "complement",
		Short: "Write the complement of a DNA sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.loadDNA(cmd.InOrStdin())
			if err != nil {
				return err
			}
			opts.write(cmd, d.Complement().Record())
			return nil
		},
	}
}

func newReverseComplementCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "reverse-complement",
		Aliases: []string{"rc"},
		Short:   "Write the reverse complement of a DNA sequence",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.loadDNA(cmd.InOrStdin())
			if err != nil {
				return err
			}
			opts.write(cmd, d.ReverseComplement().Record())
			return nil
		},
	}
}

func newTranscribeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "transcribe",
		Short: "Transcribe DNA to RNA",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.loadDNA(cmd.InOrStdin())
			if err != nil {
				return err
			}
			opts.write(cmd, d.Transcribe().Record())
			return nil
		},
	}
}

func newTranslateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "translate",
		Short: "Translate RNA, or transcribe and translate DNA, up to the first stop codon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			var p *seq.Protein
			switch v := s.(type) {
			case *seq.DNA:
				p, err = v.Translate()
			case *seq.RNA:
				p, err = v.Translate()
			default:
				return fmt.Errorf("%w: cannot translate %s", seq.ErrInvalidArgument, s.Kind())
			}
			if err != nil {
				return err
			}
			opts.write(cmd, p.Record())
			return nil
		},
	}
}

func newMotifCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "motif MOTIF",
		Short: "Write the 0-based index of the first occurrence of MOTIF, -1 if absent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			idx, err := s.FindMotif(args[0])
			if err != nil {
				return err
			}
			opts.write(cmd, strconv.Itoa(idx))
			return nil
		},
	}
}

func newMutateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mutate POS CHAR",
		Short: "Replace the residue at 0-based POS with CHAR and write the record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: position %q is not an integer", seq.ErrInvalidArgument, args[0])
			}
			s, err := opts.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err = s.Mutate(pos, args[1]); err != nil {
				return err
			}
			opts.write(cmd, s.Record())
			return nil
		},
	}
}

func newGCCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gc",
		Short: "Write the GC content of a DNA or RNA sequence in percent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			var gc float64
			switch v := s.(type) {
			case *seq.DNA:
				gc = v.GCContent()
			case *seq.RNA:
				gc = v.GCContent()
			default:
				return fmt.Errorf("%w: no GC content for %s", seq.ErrInvalidArgument, s.Kind())
			}
			opts.write(cmd, fmt.Sprintf("%s\t%.2f", s.ID(), gc*100))
			return nil
		},
	}
}
