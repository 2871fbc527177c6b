package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type convertStats struct {
	Input           string         `json:"input"`
	Output          string         `json:"output"`
	Entries         int            `json:"entries"`
	WithIdentifier  int            `json:"with_identifier"`
	WithOrganism    int            `json:"with_organism"`
	WithDefinition  int            `json:"with_definition"`
	InfoCodes       map[string]int `json:"info_codes"`
	FallbackHeaders int            `json:"fallback_headers"`
	EmptySequences  int            `json:"empty_sequences"`
	Residues        int            `json:"residues"`
}

func newConvertStats(input, output string) convertStats {
	return convertStats{
		Input:     input,
		Output:    output,
		InfoCodes: make(map[string]int),
	}
}

func (s *convertStats) add(rec Record, fallback bool) {
	s.Entries++
	if rec.Identifier != "" {
		s.WithIdentifier++
	}
	if rec.Organism != "" {
		s.WithOrganism++
	}
	if rec.HasDefinition {
		s.WithDefinition++
	}
	if rec.Info != "" {
		s.InfoCodes[rec.Info]++
	}
	if fallback {
		s.FallbackHeaders++
	}
	if rec.Sequence == "" {
		s.EmptySequences++
	}
	s.Residues += len(rec.Sequence)
}

func writeJSONReport(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
