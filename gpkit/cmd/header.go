package cmd

import (
	"strconv"
	"strings"
)

// assembleHeader builds the FASTA description (without '>') for rec:
// organism, then identifier, info code and definition, each prefixed by
// sep. When every part is empty the header falls back to seq_<index>.
func assembleHeader(rec Record, sep string) (string, bool) {
	var b strings.Builder
	b.WriteString(rec.Organism)
	if rec.Identifier != "" {
		b.WriteString(sep)
		b.WriteString(rec.Identifier)
	}
	if rec.Info != "" {
		b.WriteString(sep)
		b.WriteString(rec.Info)
	}
	if rec.HasDefinition {
		b.WriteString(sep)
		b.WriteString(rec.Definition)
	}
	if b.Len() == 0 {
		return "seq_" + strconv.Itoa(rec.Index), true
	}
	return b.String(), false
}
