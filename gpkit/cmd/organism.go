package cmd

import (
	"errors"
	"fmt"
	"strings"
)

type organismMode int

const (
	organismNone organismMode = iota
	organismFull
	organismAbbreviated
	organismCode3
)

var errInvalidOrganismMode = errors.New("invalid organism mode")

func parseOrganismMode(value int) (organismMode, error) {
	if value < int(organismNone) || value > int(organismCode3) {
		return organismNone, fmt.Errorf("%w: %d (want 0-3)", errInvalidOrganismMode, value)
	}
	return organismMode(value), nil
}

// organismWords splits the name on an ORGANISM line. Leading non-word
// characters after the keyword are skipped, so "[Candida] glabrata" reads
// as "Candida]" "glabrata".
func organismWords(line string) ([]string, bool) {
	rest, ok := strings.CutPrefix(line, keyOrganism)
	if !ok {
		return nil, false
	}
	start := 0
	for start < len(rest) && !isWordByte(rest[start]) {
		start++
	}
	if start == 0 || start == len(rest) {
		return nil, false
	}
	words := strings.Fields(rest[start:])
	if len(words) == 0 {
		return nil, false
	}
	return words, true
}

// formatOrganism renders a species name. Only binomials are abbreviated;
// any other word count collapses to the first word.
func formatOrganism(words []string, mode organismMode) string {
	if mode == organismNone || len(words) == 0 {
		return ""
	}
	if len(words) != 2 {
		return words[0]
	}
	switch mode {
	case organismAbbreviated:
		return prefixRunes(words[0], 1) + "." + words[1]
	case organismCode3:
		return prefixRunes(words[0], 3) + prefixRunes(words[1], 3)
	default:
		return words[0] + " " + words[1]
	}
}

func prefixRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
