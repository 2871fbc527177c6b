package cmd

import (
	"errors"
	"testing"
)

func TestKeywordToken(t *testing.T) {
	tests := []struct {
		line    string
		keyword string
		want    string
		ok      bool
	}{
		{"LOCUS       AB123                    120 aa", keyLocus, "AB123", true},
		{"ACCESSION   NP_001234 XP_9", keyAccession, "NP_001234", true},
		{"ACCESSION", keyAccession, "", false},
		{"ACCESSION   ", keyAccession, "", false},
		{"LOCUSAB12", keyLocus, "", false},
		{"VERSION     AB1", keyLocus, "", false},
	}
	for _, tt := range tests {
		got, ok := keywordToken(tt.line, tt.keyword)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("keywordToken(%q): expected (%q, %t), got (%q, %t)", tt.line, tt.want, tt.ok, got, ok)
		}
	}
}

func TestGIToken(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"VERSION     AB123.1  GI:1111", "1111", true},
		{"VERSION     AB123.1  GI:42abc", "42", true},
		{"VERSION     AB123.1", "", false},
		{"VERSION     AB123.1  GI:", "", false},
		{"VERSIONAB123.1 GI:5", "", false},
	}
	for _, tt := range tests {
		got, ok := giToken(tt.line)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("giToken(%q): expected (%q, %t), got (%q, %t)", tt.line, tt.want, tt.ok, got, ok)
		}
	}
}

func TestParseIDKind(t *testing.T) {
	for input, want := range map[string]idKind{
		"":          idNone,
		"locus":     idLocus,
		"ACCESSION": idAccession,
		"gi":        idGI,
	} {
		got, err := parseIDKind(input)
		if err != nil {
			t.Fatalf("parseIDKind(%q) failed: %v", input, err)
		}
		if got != want {
			t.Fatalf("parseIDKind(%q): expected %s, got %s", input, want, got)
		}
	}
	if _, err := parseIDKind("taxid"); !errors.Is(err, errUnknownIDKind) {
		t.Fatalf("expected errUnknownIDKind, got %v", err)
	}
}
