package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"github.com/liserjrqlxue/bioseq/pkg/seq"
)

// unwrapped records keep the whole sequence on one line
const maxLineSize = 256 * 1024 * 1024

func readLines(in io.Reader) ([]string, error) {
	var (
		lines []string
		scan  = bufio.NewScanner(in)
	)
	scan.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scan.Scan() {
		lines = append(lines, scan.Text())
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

// readInput reads stdin for "-", otherwise the named file.
func readInput(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return readLines(stdin)
	}
	var inF = osUtil.Open(path)
	defer simpleUtil.DeferClose(inF)
	return readLines(inF)
}

// parseRecord joins lines into one sequence. An optional first '>' line
// names it; a second header is an error since only one record is read.
func parseRecord(lines []string) (header, body string, err error) {
	var (
		sequence strings.Builder
		named    bool
	)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, ">") {
			sequence.WriteString(line)
			continue
		}
		if named || sequence.Len() > 0 {
			return "", "", fmt.Errorf("%w: more than one record in input", seq.ErrInvalidArgument)
		}
		named = true
		// identifier is the first word of the header
		if fields := strings.Fields(line[1:]); len(fields) > 0 {
			header = fields[0]
		}
	}
	return header, sequence.String(), nil
}
