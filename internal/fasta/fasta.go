// internal/fasta/fasta.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Record is a parsed FASTA entry: header line (without '>') and the joined,
// uppercased sequence.
type Record struct {
	Header   string
	Sequence string
}

var (
	ErrEmptyInput   = errors.New("empty input")
	ErrNoHeader     = errors.New("FASTA format must start with '>' character")
	ErrEmptyHeader  = errors.New("FASTA header cannot be empty")
	ErrNoSequence   = errors.New("no sequence found after header")
	ErrInvalidBases = errors.New("invalid DNA characters found")
)

// Parse extracts the first record from FASTA text: a '>' header line followed
// by one or more sequence lines, joined and uppercased. The sequence is not
// alphabet-checked; see ParseValidated.
func Parse(text string) (Record, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return Record{}, ErrEmptyInput
	}
	if !strings.HasPrefix(lines[0], ">") {
		return Record{}, ErrNoHeader
	}
	header := strings.TrimSpace(lines[0][1:])
	if header == "" {
		return Record{}, ErrEmptyHeader
	}
	var sb strings.Builder
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line != "" {
			sb.WriteString(line)
		}
	}
	if sb.Len() == 0 {
		return Record{}, ErrNoSequence
	}
	return Record{Header: header, Sequence: strings.ToUpper(sb.String())}, nil
}

// ValidateAlphabet rejects any symbol outside A/T/C/G. The error names every
// offending character once, sorted, matching the strictness the compute core
// relies on.
func ValidateAlphabet(sequence string) error {
	var seen [256]bool
	var bad []byte
	for i := 0; i < len(sequence); i++ {
		b := sequence[i]
		switch b {
		case 'A', 'T', 'C', 'G':
		default:
			if !seen[b] {
				seen[b] = true
				bad = append(bad, b)
			}
		}
	}
	if len(bad) == 0 {
		return nil
	}
	chars := make([]string, len(bad))
	for i, b := range bad {
		chars[i] = string(b)
	}
	sort.Strings(chars)
	return fmt.Errorf("%w: %s", ErrInvalidBases, strings.Join(chars, ", "))
}

// ParseValidated parses FASTA text and verifies the sequence alphabet.
func ParseValidated(text string) (Record, error) {
	rec, err := Parse(text)
	if err != nil {
		return Record{}, err
	}
	if err := ValidateAlphabet(rec.Sequence); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Load reads a FASTA file ("-" for stdin, ".gz" transparently) and returns
// its first validated record.
func Load(path string) (Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return Record{}, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(bufio.NewReader(rc))
	if err != nil {
		return Record{}, fmt.Errorf("read %s: %w", path, err)
	}
	rec, err := ParseValidated(string(data))
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}
	return fh, nil
}
