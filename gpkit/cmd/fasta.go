package cmd

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// fastaSink persists finished FASTA records.
type fastaSink interface {
	writeRecord(header, sequence string) error
}

// newFastaSink returns an unwrapped writer for width 0 and a biogo writer
// wrapping sequence lines at width otherwise.
func newFastaSink(w io.Writer, width int) fastaSink {
	if width > 0 {
		return &wrappedFasta{w: fasta.NewWriter(w, width)}
	}
	return &plainFasta{w: w, record: make([]byte, 0, 4096)}
}

// plainFasta writes each record as exactly two lines.
type plainFasta struct {
	w      io.Writer
	record []byte
}

func (f *plainFasta) writeRecord(header, sequence string) error {
	record := append(f.record[:0], '>')
	record = append(record, header...)
	record = append(record, '\n')
	record = append(record, sequence...)
	record = append(record, '\n')
	f.record = record[:0]
	if _, err := f.w.Write(record); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

type wrappedFasta struct {
	w *fasta.Writer
}

func (f *wrappedFasta) writeRecord(header, sequence string) error {
	s := linear.NewSeq(header, alphabet.BytesToLetters([]byte(sequence)), alphabet.Protein)
	if _, err := f.w.Write(s); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
