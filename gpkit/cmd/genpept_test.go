package cmd

import (
	"strings"
	"testing"
)

const sampleGenPept = `LOCUS       AB123                     12 aa            linear   ROD 01-JAN-2020
DEFINITION  Putative protein
ACCESSION   AB123
VERSION     AB123.1  GI:1111
SOURCE      house mouse
  ORGANISM  Mus musculus
            Eukaryota; Metazoa; Chordata.
FEATURES             Location/Qualifiers
ORIGIN
        1 mklv acgt
       11 wwyy
//
LOCUS       AB456                      8 aa            linear   ROD 02-JAN-2020
DEFINITION  Hypothetical
            protein
ACCESSION   AB456
VERSION     AB456.2  GI:2222
SOURCE      Norway rat
  ORGANISM  Rattus norvegicus
            Eukaryota; Metazoa; Chordata.
ORIGIN
        1 gggg hhhh
//
`

func extractAll(t *testing.T, input string, opts extractOptions) []Record {
	t.Helper()
	var recs []Record
	err := extractEntries(strings.NewReader(input), opts, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	})
	if err != nil {
		t.Fatalf("extractEntries failed: %v", err)
	}
	return recs
}

func TestExtractRoundTripHeaders(t *testing.T) {
	opts := extractOptions{
		IDKind:         idAccession,
		Organism:       organismFull,
		KeepDefinition: true,
		Classify:       true,
	}
	recs := extractAll(t, sampleGenPept, opts)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}

	want := []string{
		"Mus musculus-AB123-p-putative protein",
		"Rattus norvegicus-AB456-h-hypothetical protein",
	}
	for i, rec := range recs {
		header, fallback := assembleHeader(rec, "-")
		if fallback {
			t.Fatalf("record %d: unexpected fallback header", i)
		}
		if header != want[i] {
			t.Fatalf("record %d: expected header %q, got %q", i, want[i], header)
		}
	}
	if recs[0].Sequence != "MKLVACGTWWYY" {
		t.Fatalf("unexpected first sequence: %q", recs[0].Sequence)
	}
	if recs[1].Sequence != "GGGGHHHH" {
		t.Fatalf("unexpected second sequence: %q", recs[1].Sequence)
	}
	if recs[0].Index != 0 || recs[1].Index != 1 {
		t.Fatalf("unexpected indexes: %d, %d", recs[0].Index, recs[1].Index)
	}
}

func TestExtractIdentifierKinds(t *testing.T) {
	tests := []struct {
		kind idKind
		want []string
	}{
		{idNone, []string{"", ""}},
		{idLocus, []string{"AB123", "AB456"}},
		{idAccession, []string{"AB123", "AB456"}},
		{idGI, []string{"1111", "2222"}},
	}
	for _, tt := range tests {
		recs := extractAll(t, sampleGenPept, extractOptions{IDKind: tt.kind})
		if len(recs) != len(tt.want) {
			t.Fatalf("%s: expected %d records, got %d", tt.kind, len(tt.want), len(recs))
		}
		for i, rec := range recs {
			if rec.Identifier != tt.want[i] {
				t.Fatalf("%s record %d: expected identifier %q, got %q", tt.kind, i, tt.want[i], rec.Identifier)
			}
		}
	}
}

func TestExtractFallbackHeaders(t *testing.T) {
	recs := extractAll(t, sampleGenPept, extractOptions{})
	for i, rec := range recs {
		header, fallback := assembleHeader(rec, "-")
		want := []string{"seq_0", "seq_1"}[i]
		if !fallback || header != want {
			t.Fatalf("record %d: expected fallback %q, got %q (fallback=%t)", i, want, header, fallback)
		}
	}
}

func TestExtractSequenceStripsNonLetters(t *testing.T) {
	input := "ORIGIN\n1 mklv 10 acgt\n//\n"
	recs := extractAll(t, input, extractOptions{})
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Sequence != "MKLVACGT" {
		t.Fatalf("expected MKLVACGT, got %q", recs[0].Sequence)
	}
}

func TestExtractMissingFieldKeepsAlignment(t *testing.T) {
	input := `DEFINITION  first entry
ACCESSION   X1
ORIGIN
        1 aaaa
//
DEFINITION  second entry
ACCESSION   X2
  ORGANISM  Rattus norvegicus
ORIGIN
        1 cccc
//
`
	opts := extractOptions{IDKind: idAccession, Organism: organismCode3}
	recs := extractAll(t, input, opts)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Organism != "" {
		t.Fatalf("first entry has no ORGANISM line, got %q", recs[0].Organism)
	}
	if recs[1].Organism != "Ratnor" {
		t.Fatalf("expected Ratnor for second entry, got %q", recs[1].Organism)
	}
	if recs[0].Identifier != "X1" || recs[1].Identifier != "X2" {
		t.Fatalf("unexpected identifiers: %q, %q", recs[0].Identifier, recs[1].Identifier)
	}
	header, _ := assembleHeader(recs[0], "|")
	if header != "|X1" {
		t.Fatalf("expected |X1, got %q", header)
	}
}

func TestExtractMultiLineDefinition(t *testing.T) {
	input := `DEFINITION  Open reading
            FRAME 12, partial.
ACCESSION   Z9
ORIGIN
//
`
	opts := extractOptions{KeepDefinition: true, Classify: true}
	recs := extractAll(t, input, opts)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Definition != "open reading frame 12, partial." {
		t.Fatalf("unexpected definition: %q", recs[0].Definition)
	}
	if recs[0].Info != "o" {
		t.Fatalf("expected info code o, got %q", recs[0].Info)
	}
	if recs[0].Sequence != "" {
		t.Fatalf("expected empty sequence, got %q", recs[0].Sequence)
	}
}

func TestExtractUnclosedDefinitionIsDropped(t *testing.T) {
	input := `DEFINITION  never closed
ORIGIN
        1 mklv
//
`
	recs := extractAll(t, input, extractOptions{KeepDefinition: true})
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}
}

func TestExtractDefinitionOnlyWhenRequested(t *testing.T) {
	recs := extractAll(t, sampleGenPept, extractOptions{Classify: true})
	if recs[0].HasDefinition || recs[0].Definition != "" {
		t.Fatalf("definition kept without the flag: %+v", recs[0])
	}
	if recs[0].Info != "p" || recs[1].Info != "h" {
		t.Fatalf("unexpected info codes: %q, %q", recs[0].Info, recs[1].Info)
	}
}

func TestExtractRecordCountMatchesOriginSpans(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteString("LOCUS       L1\nORIGIN\n        1 mk\n//\n")
	}
	b.WriteString("some trailing junk\n")
	recs := extractAll(t, b.String(), extractOptions{IDKind: idLocus})
	if len(recs) != 5 {
		t.Fatalf("expected 5 records, got %d", len(recs))
	}
}

func TestExtractorStateTransitions(t *testing.T) {
	x := newExtractor(extractOptions{KeepDefinition: true})
	steps := []struct {
		line string
		want parseState
	}{
		{"LOCUS       A1", stateScanning},
		{"DEFINITION  something", stateDefinition},
		{"ORIGIN", stateDefinition},
		{"ACCESSION   A1", stateScanning},
		{"ORIGIN", stateSequence},
		{"1 mk", stateSequence},
		{"//", stateScanning},
	}
	for i, step := range steps {
		rec, sealed := x.feed(step.line)
		if x.state != step.want {
			t.Fatalf("step %d (%q): expected state %s, got %s", i, step.line, step.want, x.state)
		}
		if sealed != (step.line == "//") {
			t.Fatalf("step %d: unexpected sealed=%t", i, sealed)
		}
		if sealed && rec.Definition != "something origin" {
			t.Fatalf("unexpected definition %q", rec.Definition)
		}
	}
}
