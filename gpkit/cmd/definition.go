package cmd

import "strings"

// Checked in order; the first keyword found decides the code.
var infoCodes = []struct {
	keyword string
	code    string
}{
	{"putative", "p"},
	{"predicted", "P"},
	{"hypothetical", "h"},
	{"unnamed", "u"},
	{"novel", "n"},
	{"open", "o"},
}

// classifyDefinition maps a lower-cased definition to its one-letter
// additional-info code, or "" when no keyword occurs.
func classifyDefinition(definition string) string {
	for _, ic := range infoCodes {
		if strings.Contains(definition, ic.keyword) {
			return ic.code
		}
	}
	return ""
}
