package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"pineapple/internal/lsp"
	"pineapple/internal/store"
	"pineapple/internal/version"
)

var lspCmd = &cobra.Command{
	Use:          "lsp",
	Short:        "Run the Pineapple language server over stdio",
	SilenceUsage: true,
	RunE:         runLSP,
}

func init() {
	lspCmd.Flags().CountP("verbose", "v", "increase log verbosity (repeatable)")
	lspCmd.Flags().String("log-file", "", "write logs to this file instead of stderr")
	lspCmd.Flags().Bool("keep-stale-tokens", false, "serve the last good tokens while a document fails to lex")
}

func runLSP(cmd *cobra.Command, _ []string) error {
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Log.Verbosity, _ = cmd.Flags().GetCount("verbose")
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File, _ = cmd.Flags().GetString("log-file")
	}
	if cmd.Flags().Changed("keep-stale-tokens") {
		cfg.LSP.KeepStaleTokens, _ = cmd.Flags().GetBool("keep-stale-tokens")
	}

	// stdout занят протоколом, логи только в stderr или файл
	var logPath *string
	if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, logPath)
	log := commonlog.GetLogger("pineapple.lsp")
	if cfg.Path != "" {
		log.Infof("config: %s", cfg.Path)
	}

	tracer, cleanup, err := setupTracing(cfg.Trace, os.Stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	server := lsp.NewServer(os.Stdin, os.Stdout, lsp.ServerOptions{
		Store:             store.New(),
		KeepStaleTokens:   cfg.LSP.KeepStaleTokens,
		DisableCompletion: !cfg.LSP.Completion,
		MaxDiagnostics:    cfg.LSP.MaxDiagnostics,
		Logger:            log,
		Tracer:            tracer,
		TraceLSP:          tracer.Enabled(),
		Version:           version.Version,
	})
	log.Infof("%s listening on stdio", version.String())
	if err := server.Run(cmd.Context()); err != nil {
		if errors.Is(err, lsp.ErrExit) {
			return nil
		}
		if errors.Is(err, lsp.ErrExitWithoutShutdown) {
			return fmt.Errorf("lsp exit without shutdown")
		}
		return err
	}
	return nil
}
