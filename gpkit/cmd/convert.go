package cmd

import (
	"flag"
	"fmt"
	"os"
)

func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	fromFlags := defaultConvertConfig()
	bindConvertFlags(fs, &fromFlags)
	configPath := fs.String("config", "", "Optional JSON config; explicit flags override it")
	if err := fs.Parse(args); err != nil {
		fatalf("parse args failed: %v", err)
	}

	cfg := fromFlags
	if *configPath != "" {
		base, err := loadConvertConfig(*configPath)
		if err != nil {
			fatalf("load config failed: %v", err)
		}
		cfg = overlayFlags(base, fromFlags, fs)
	}
	if err := setLogLevel(cfg.LogLevel); err != nil {
		fatalf("%v", err)
	}

	opts, err := cfg.resolve()
	if err != nil {
		fatalf("invalid options: %v", err)
	}

	if !cfg.Force && fileExists(cfg.Output) {
		fmt.Fprintf(os.Stderr, "Output exists, skipping: %s\n", cfg.Output)
		return
	}

	totalEntries := -1
	if cfg.Progress {
		count, err := countEntries(cfg.Input)
		if err != nil {
			fatalf("count entries failed: %v", err)
		}
		totalEntries = count
	}

	logf("Convert %s -> %s (id=%s organism=%d definition=%t info=%t)",
		cfg.Input, cfg.Output, opts.IDKind, opts.Organism, opts.KeepDefinition, opts.Classify)
	stats, err := convertGenPept(cfg, opts, totalEntries)
	if err != nil {
		fatalf("convert failed: %v", err)
	}
	logf("convert: entries=%d identifier=%d organism=%d definition=%d fallback=%d empty=%d residues=%d",
		stats.Entries, stats.WithIdentifier, stats.WithOrganism, stats.WithDefinition,
		stats.FallbackHeaders, stats.EmptySequences, stats.Residues)
}

// convertGenPept runs the single-pass pipeline: every sealed entry is
// rendered and written before the next one is read.
func convertGenPept(cfg convertConfig, opts extractOptions, totalEntries int) (stats convertStats, err error) {
	in, err := openInput(cfg.Input)
	if err != nil {
		return stats, fmt.Errorf("open input: %w", err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := createOutput(cfg.Output)
	if err != nil {
		return stats, fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	var table *recordTable
	if cfg.Arrow != "" {
		table, err = newRecordTable(cfg.Arrow)
		if err != nil {
			return stats, err
		}
		defer func() {
			if cerr := table.Close(); err == nil && cerr != nil {
				err = cerr
			}
		}()
	}

	sink := newFastaSink(out, cfg.Wrap)
	progress := newProgress(totalEntries, cfg.Progress, "convert")
	stats = newConvertStats(cfg.Input, cfg.Output)

	err = extractEntries(in, opts, func(rec Record) error {
		header, fallback := assembleHeader(rec, cfg.Separator)
		if err := sink.writeRecord(header, rec.Sequence); err != nil {
			return err
		}
		if table != nil {
			if err := table.append(rec, header); err != nil {
				return err
			}
		}
		if rec.Sequence == "" {
			warnf("entry %d has an empty sequence", rec.Index)
		}
		stats.add(rec, fallback)
		progress.increment()
		return nil
	})
	if err != nil {
		return stats, err
	}
	progress.finish()

	if cfg.Report != "" {
		if err := writeJSONReport(cfg.Report, stats); err != nil {
			return stats, err
		}
	}
	return stats, nil
}
