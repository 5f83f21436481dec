package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pineapple/internal/diag"
	"pineapple/internal/diagfmt"
	"pineapple/internal/driver"
	"pineapple/internal/observ"
	"pineapple/internal/semtok"
	"pineapple/internal/source"
	"pineapple/internal/trace"
)

var errTokenizeFailed = errors.New("tokenization failed")

var tokenizeCmd = &cobra.Command{
	Use:          "tokenize [flags] <file.pineapple|dir>",
	Short:        "Tokenize and classify Pineapple sources",
	Long:         `Tokenize lexes and classifies a file, or every *.pineapple file under a directory, and prints the classified tokens`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack|data)")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
	tokenizeCmd.Flags().Int("width", 40, "truncate token text in pretty output to this many columns (0 = off)")
	tokenizeCmd.Flags().Bool("timings", false, "print per-phase timings to stderr")
	tokenizeCmd.Flags().String("progress", "auto", "show live progress for directories on stderr (auto|on|off)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	switch format {
	case "pretty", "json", "msgpack", "data":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tracer, cleanup, err := setupTracing(cfg.Trace, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer cleanup()

	root := trace.Begin(tracer, trace.ScopeRequest, "tokenize", 0)
	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
		defer func() { fmt.Fprint(cmd.ErrOrStderr(), timer.Summary()) }()
	}
	opts := driver.Options{Tracer: tracer, Parent: root.ID(), MaxDiagnostics: cfg.LSP.MaxDiagnostics, Timer: timer}
	progressMode, err := cmd.Flags().GetString("progress")
	if err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}
	showProgress := !quiet && (progressMode == "on" || (progressMode == "auto" && isTerminal(os.Stderr)))
	results, err := collectTokenize(cmd, args[0], opts, jobs, showProgress)
	root.End(args[0])
	if err != nil {
		return err
	}

	if !quiet {
		if err := printTokenizeDiagnostics(cmd.ErrOrStderr(), results, useColor(cmd, os.Stderr)); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	multi := len(results) > 1
	switch format {
	case "pretty":
		tokOpts := diagfmt.TokenOpts{Color: useColor(cmd, os.Stdout), Width: width}
		for _, r := range results {
			if multi {
				fmt.Fprintf(out, "== %s ==\n", r.Path)
			}
			if err := diagfmt.FormatTokensPretty(out, r.Tokens, tokOpts); err != nil {
				return err
			}
		}
	case "data":
		for _, r := range results {
			if multi {
				fmt.Fprintf(out, "== %s ==\n", r.Path)
			}
			stop := timer.Track("encode")
			data := semtok.Encode(r.Tokens)
			stop()
			if err := diagfmt.FormatTokensData(out, data); err != nil {
				return err
			}
		}
	case "json", "msgpack":
		files := make([]diagfmt.FileTokens, 0, len(results))
		for _, r := range results {
			ft := diagfmt.FileTokens{Path: r.Path, Tokens: diagfmt.TokenOutputs(r.Tokens)}
			if r.Err != nil {
				ft.Error = r.Err.Error()
			}
			files = append(files, ft)
		}
		if format == "json" {
			err = diagfmt.FormatTokensJSON(out, files)
		} else {
			err = diagfmt.FormatTokensMsgpack(out, files)
		}
		if err != nil {
			return err
		}
	}

	for _, r := range results {
		if r.Err != nil {
			return errTokenizeFailed
		}
	}
	return nil
}

// collectTokenize handles both a single file and a directory, returning
// results in the same shape.
func collectTokenize(cmd *cobra.Command, path string, opts driver.Options, jobs int, showProgress bool) ([]driver.TokenizeDirResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		var results []driver.TokenizeDirResult
		if showProgress {
			results, err = runTokenizeDirWithUI(cmd.Context(), cmd.ErrOrStderr(), path, opts, jobs)
		} else {
			results, err = driver.TokenizeDir(cmd.Context(), path, opts, jobs)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errTokenizeFailed, err)
		}
		if len(results) == 0 {
			return nil, fmt.Errorf("no %s files under %s", driver.Ext, path)
		}
		return results, nil
	}
	res, err := driver.TokenizeFile(path, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errTokenizeFailed, err)
	}
	return []driver.TokenizeDirResult{{
		Path:   path,
		File:   res.File,
		Tokens: res.Tokens,
		Err:    res.Err,
		Bag:    res.Bag,
	}}, nil
}

func printTokenizeDiagnostics(w io.Writer, results []driver.TokenizeDirResult, color bool) error {
	bag := diag.NewBag(len(results) + 1)
	files := make(map[string]*source.File, len(results))
	for _, r := range results {
		if r.Bag != nil {
			bag.Merge(r.Bag)
		}
		if r.File != nil {
			files[r.File.Path] = r.File
		}
	}
	if bag.Len() == 0 {
		return nil
	}
	bag.Dedup()
	bag.Sort()
	return diagfmt.Pretty(w, bag, files, diagfmt.PrettyOpts{Color: color})
}
