package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
)

var errInputRequired = errors.New("input is required")

// convertConfig is the convert subcommand configuration, loadable from a
// JSON file and overridable by flags.
type convertConfig struct {
	Input      string `json:"input"`
	Output     string `json:"output"`
	IDKind     string `json:"id"`
	Organism   int    `json:"organism"`
	Definition bool   `json:"definition"`
	Info       bool   `json:"info"`
	Separator  string `json:"separator"`
	Wrap       int    `json:"wrap"`
	Report     string `json:"report"`
	Arrow      string `json:"arrow"`
	Progress   bool   `json:"progress"`
	Force      bool   `json:"force"`
	LogLevel   string `json:"log_level"`
}

func defaultConvertConfig() convertConfig {
	return convertConfig{
		Separator: "-",
		Progress:  true,
		LogLevel:  "info",
	}
}

func bindConvertFlags(fs *flag.FlagSet, cfg *convertConfig) {
	fs.StringVar(&cfg.Input, "input", cfg.Input, "GenBank Peptide input (.gp or .gp.gz)")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "FASTA output (default: <input basename>.fas; .gz compresses)")
	fs.StringVar(&cfg.IDKind, "id", cfg.IDKind, "Identifier to include: LOCUS, ACCESSION or GI (default: none)")
	fs.IntVar(&cfg.Organism, "organism", cfg.Organism, "Organism format: 1 Mus musculus, 2 M.musculus, 3 Musmus (default: 0, none)")
	fs.BoolVar(&cfg.Definition, "definition", cfg.Definition, "Include the entry definition")
	fs.BoolVar(&cfg.Info, "info", cfg.Info, "Include the additional-info code derived from the definition")
	fs.StringVar(&cfg.Separator, "sep", cfg.Separator, "Header field separator")
	fs.IntVar(&cfg.Wrap, "wrap", cfg.Wrap, "Wrap sequence lines at this width (0 disables)")
	fs.StringVar(&cfg.Report, "report", cfg.Report, "Optional JSON report output path")
	fs.StringVar(&cfg.Arrow, "arrow", cfg.Arrow, "Optional Arrow IPC table of parsed records")
	fs.BoolVar(&cfg.Progress, "progress", cfg.Progress, "Show progress bar")
	fs.BoolVar(&cfg.Force, "force", cfg.Force, "Overwrite existing outputs")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
}

// loadConvertConfig reads a JSON config on top of the defaults.
func loadConvertConfig(path string) (convertConfig, error) {
	cfg := defaultConvertConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// overlayFlags copies every flag set on the command line from flags onto base.
func overlayFlags(base, flags convertConfig, fs *flag.FlagSet) convertConfig {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			base.Input = flags.Input
		case "output":
			base.Output = flags.Output
		case "id":
			base.IDKind = flags.IDKind
		case "organism":
			base.Organism = flags.Organism
		case "definition":
			base.Definition = flags.Definition
		case "info":
			base.Info = flags.Info
		case "sep":
			base.Separator = flags.Separator
		case "wrap":
			base.Wrap = flags.Wrap
		case "report":
			base.Report = flags.Report
		case "arrow":
			base.Arrow = flags.Arrow
		case "progress":
			base.Progress = flags.Progress
		case "force":
			base.Force = flags.Force
		case "log-level":
			base.LogLevel = flags.LogLevel
		}
	})
	return base
}

// resolve validates cfg and derives the extractor options. It also fills
// in the default output path.
func (cfg *convertConfig) resolve() (extractOptions, error) {
	if cfg.Input == "" {
		return extractOptions{}, errInputRequired
	}
	kind, err := parseIDKind(cfg.IDKind)
	if err != nil {
		return extractOptions{}, err
	}
	mode, err := parseOrganismMode(cfg.Organism)
	if err != nil {
		return extractOptions{}, err
	}
	if cfg.Wrap < 0 {
		return extractOptions{}, fmt.Errorf("wrap must be >= 0, got %d", cfg.Wrap)
	}
	if cfg.Output == "" {
		cfg.Output = defaultOutputPath(cfg.Input)
	}
	return extractOptions{
		IDKind:         kind,
		Organism:       mode,
		KeepDefinition: cfg.Definition,
		Classify:       cfg.Info,
	}, nil
}
