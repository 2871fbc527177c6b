package cmd

import (
	"errors"
	"fmt"
	"strings"
)

type idKind int

const (
	idNone idKind = iota
	idLocus
	idAccession
	idGI
)

var errUnknownIDKind = errors.New("unknown identifier kind")

func parseIDKind(value string) (idKind, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "", "NONE":
		return idNone, nil
	case keyLocus:
		return idLocus, nil
	case keyAccession:
		return idAccession, nil
	case "GI":
		return idGI, nil
	}
	return idNone, fmt.Errorf("%w: %q (want LOCUS, ACCESSION or GI)", errUnknownIDKind, value)
}

func (k idKind) String() string {
	switch k {
	case idLocus:
		return keyLocus
	case idAccession:
		return keyAccession
	case idGI:
		return "GI"
	default:
		return "NONE"
	}
}

func (k idKind) keyword() string {
	switch k {
	case idLocus:
		return keyLocus
	case idAccession:
		return keyAccession
	case idGI:
		return keyVersion
	default:
		return ""
	}
}

// matches reports whether line starts the section holding this identifier.
func (k idKind) matches(line string) bool {
	kw := k.keyword()
	return kw != "" && strings.HasPrefix(line, kw)
}

func (k idKind) token(line string) (string, bool) {
	switch k {
	case idLocus, idAccession:
		return keywordToken(line, k.keyword())
	case idGI:
		return giToken(line)
	default:
		return "", false
	}
}

// keywordToken returns the first word after keyword. At least one non-word
// character must separate them.
func keywordToken(line, keyword string) (string, bool) {
	rest, ok := strings.CutPrefix(line, keyword)
	if !ok {
		return "", false
	}
	start := 0
	for start < len(rest) && !isWordByte(rest[start]) {
		start++
	}
	if start == 0 {
		return "", false
	}
	end := start
	for end < len(rest) && isWordByte(rest[end]) {
		end++
	}
	if end == start {
		return "", false
	}
	return rest[start:end], true
}

// giToken reads the digits of "VERSION <accession.version> GI:<digits>".
func giToken(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, keyVersion)
	if !ok || rest == "" || !isSpaceByte(rest[0]) {
		return "", false
	}
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return "", false
	}
	digits, ok := strings.CutPrefix(fields[1], "GI:")
	if !ok {
		return "", false
	}
	end := 0
	for end < len(digits) && digits[end] >= '0' && digits[end] <= '9' {
		end++
	}
	if end == 0 {
		return "", false
	}
	return digits[:end], true
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == '\v'
}
