package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Section keywords of a GenBank Peptide flat file.
const (
	keyLocus      = "LOCUS"
	keyAccession  = "ACCESSION"
	keyVersion    = "VERSION"
	keyOrganism   = "ORGANISM"
	keyDefinition = "DEFINITION"
	keyOrigin     = "ORIGIN"
	entryEnd      = "//"
)

type parseState int

const (
	stateScanning parseState = iota
	stateDefinition
	stateSequence
)

func (s parseState) String() string {
	switch s {
	case stateDefinition:
		return "definition"
	case stateSequence:
		return "sequence"
	default:
		return "scanning"
	}
}

// extractOptions selects which optional fields the extractor captures.
type extractOptions struct {
	IDKind         idKind
	Organism       organismMode
	KeepDefinition bool
	Classify       bool
}

// Record is one sealed GenPept entry. Optional fields are empty when the
// entry had no matching line or the field was not requested; HasDefinition
// distinguishes an empty definition from an absent one.
type Record struct {
	Index         int
	Identifier    string
	OrganismWords []string
	Organism      string
	Definition    string
	HasDefinition bool
	Info          string
	Sequence      string
}

// extractor is the line-driven state machine. Per-entry fields live in the
// record under construction, so a field missing from one entry can never
// shift the values of the next.
type extractor struct {
	opts       extractOptions
	state      parseState
	current    Record
	definition strings.Builder
	sequence   []byte
	next       int
}

func newExtractor(opts extractOptions) *extractor {
	return &extractor{opts: opts, sequence: make([]byte, 0, 4096)}
}

// feed consumes one input line. It returns a record when the line seals an
// entry.
func (x *extractor) feed(line string) (Record, bool) {
	line = strings.TrimSpace(line)
	switch x.state {
	case stateDefinition:
		return x.inDefinition(line)
	case stateSequence:
		return x.inSequence(line)
	default:
		return x.scanning(line)
	}
}

func (x *extractor) scanning(line string) (Record, bool) {
	switch {
	case x.opts.IDKind.matches(line):
		if tok, ok := x.opts.IDKind.token(line); ok {
			x.current.Identifier = tok
		}
	case strings.HasPrefix(line, keyOrganism):
		words, ok := organismWords(line)
		if !ok || x.opts.Organism == organismNone {
			break
		}
		x.current.OrganismWords = words
		x.current.Organism = formatOrganism(words, x.opts.Organism)
	case strings.HasPrefix(line, keyDefinition):
		x.definition.Reset()
		x.definition.WriteString(strings.ToLower(definitionSeed(line)))
		x.state = stateDefinition
	case strings.HasPrefix(line, keyOrigin):
		x.sequence = x.sequence[:0]
		x.state = stateSequence
	}
	return Record{}, false
}

func (x *extractor) inDefinition(line string) (Record, bool) {
	if !strings.HasPrefix(line, keyAccession) {
		x.definition.WriteByte(' ')
		x.definition.WriteString(strings.ToLower(line))
		return Record{}, false
	}

	text := strings.TrimSpace(x.definition.String())
	if x.opts.KeepDefinition {
		x.current.Definition = text
		x.current.HasDefinition = true
	}
	if x.opts.Classify {
		x.current.Info = classifyDefinition(text)
	}
	x.definition.Reset()
	x.state = stateScanning

	// The closing ACCESSION line may also carry the identifier.
	return x.scanning(line)
}

func (x *extractor) inSequence(line string) (Record, bool) {
	if line != entryEnd {
		x.sequence = appendLetters(x.sequence, line)
		return Record{}, false
	}

	rec := x.current
	rec.Index = x.next
	rec.Sequence = strings.ToUpper(string(x.sequence))
	x.next++
	x.current = Record{}
	x.sequence = x.sequence[:0]
	x.state = stateScanning
	return rec, true
}

// appendLetters keeps only ASCII letters; GenPept ORIGIN lines interleave
// residue positions and blocks separated by spaces.
func appendLetters(dst []byte, line string) []byte {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			dst = append(dst, c)
		}
	}
	return dst
}

func definitionSeed(line string) string {
	return strings.TrimLeft(strings.TrimPrefix(line, keyDefinition), " \t")
}

// extractEntries streams GenPept text from r and calls onRecord for every
// entry in input order.
func extractEntries(r io.Reader, opts extractOptions, onRecord func(Record) error) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 10*1024*1024)

	x := newExtractor(opts)
	for scanner.Scan() {
		rec, ok := x.feed(scanner.Text())
		if !ok {
			continue
		}
		if err := onRecord(rec); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan genpept: %w", err)
	}
	if x.state != stateScanning {
		debugf("input ended inside %s section; last entry dropped", x.state)
	}
	return nil
}
