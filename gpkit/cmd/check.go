package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

type checkStats struct {
	Input       string `json:"input"`
	Records     int    `json:"records"`
	Empty       int    `json:"empty"`
	Residues    int    `json:"residues"`
	Ambiguous   int    `json:"ambiguous"`
	Invalid     int    `json:"invalid"`
	DuplicateID int    `json:"duplicate_id"`
}

func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	input := fs.String("input", "", "Input FASTA/FASTA.gz")
	report := fs.String("report", "", "Optional JSON report output path")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		fatalf("parse args failed: %v", err)
	}
	if err := setLogLevel(*logLevel); err != nil {
		fatalf("%v", err)
	}
	if *input == "" {
		fatalf("input is required")
	}

	stats, err := checkFasta(*input)
	if err != nil {
		fatalf("check failed: %v", err)
	}
	if *report != "" {
		if err := writeJSONReport(*report, stats); err != nil {
			fatalf("report failed: %v", err)
		}
	}
	logf("check: records=%d empty=%d residues=%d ambig=%d invalid=%d dup-id=%d",
		stats.Records, stats.Empty, stats.Residues, stats.Ambiguous, stats.Invalid, stats.DuplicateID)
}

func checkFasta(path string) (checkStats, error) {
	stats := checkStats{Input: path}
	in, err := openInput(path)
	if err != nil {
		return stats, fmt.Errorf("open input: %w", err)
	}
	defer func() {
		_ = in.Close()
	}()

	seen := make(map[string]struct{})
	r := fasta.NewReader(in, linear.NewSeq("", nil, alphabet.Protein))
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("read record %d: %w", stats.Records+1, err)
		}
		stats.Records++

		id := s.Name()
		if desc := s.Description(); desc != "" {
			id += " " + desc
		}
		if _, ok := seen[id]; ok {
			stats.DuplicateID++
		} else {
			seen[id] = struct{}{}
		}

		letters := s.(*linear.Seq).Seq
		if len(letters) == 0 {
			stats.Empty++
			continue
		}
		counts := countResidues(letters)
		stats.Residues += counts.valid + counts.ambig
		stats.Ambiguous += counts.ambig
		stats.Invalid += counts.invalid
	}
	return stats, nil
}

type residueCounts struct {
	valid   int
	ambig   int
	invalid int
}

func countResidues(letters alphabet.Letters) residueCounts {
	var counts residueCounts
	for _, l := range letters {
		switch l {
		case 'B', 'Z', 'J', 'X', 'U', 'O', 'b', 'z', 'j', 'x', 'u', 'o':
			counts.ambig++
		default:
			if alphabet.Protein.IsValid(l) {
				counts.valid++
			} else {
				counts.invalid++
			}
		}
	}
	return counts
}
