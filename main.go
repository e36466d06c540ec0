package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dpshade/vidgen/internal/catalog"
	"github.com/dpshade/vidgen/internal/clipboard"
	"github.com/dpshade/vidgen/internal/config"
	apperrors "github.com/dpshade/vidgen/internal/errors"
	"github.com/dpshade/vidgen/internal/logging"
	"github.com/dpshade/vidgen/internal/service"
	"github.com/dpshade/vidgen/internal/storage"
	"github.com/dpshade/vidgen/internal/ui"
)

var version = "0.1.0"

func printHelp() {
	fmt.Printf(`vidgen - Terminal video prompt builder

USAGE:
    vidgen [OPTIONS]

OPTIONS:
    --help             Show this help information
    --version          Print version information
    --dir              Data directory (default: ~/.vidgen)
    --catalog          YAML file replacing the built-in categories
    --storage          Template storage backend: file or sqlite (default: file)
    --speed            Preview speed between 0.1 and 3 (default: 1)
    --log-level        debug, info, warn or error (default: info)
    --word-boundaries  Only remove option text at word boundaries

KEYS:
    Tab                Switch between options and the prompt editor
    ←/→                Change tab (Build, Preview, Output)
    Enter              Toggle option, expand category, load template
    c / y              Copy prompt / copy as JSON message array
    s / x              Save template / clear all
    +/-                Preview speed
    ?                  Full key help

ENVIRONMENT:
    VIDGEN_DIR, VIDGEN_CATALOG, VIDGEN_STORAGE, VIDGEN_SPEED,
    VIDGEN_LOG_LEVEL, VIDGEN_WORD_BOUNDARIES, GLAMOUR_STYLE
    Flags override environment values.

Logs are written to <dir>/logs/vidgen.log.
`)
}

func main() {
	var showVersion bool
	var showHelp bool
	var dir, catalogPath, backend, logLevel string
	var speed float64
	var wordBoundaries bool

	flag.BoolVar(&showVersion, "version", false, "Print version information")
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.StringVar(&dir, "dir", "", "Data directory")
	flag.StringVar(&catalogPath, "catalog", "", "YAML catalog file")
	flag.StringVar(&backend, "storage", "", "Template storage backend (file or sqlite)")
	flag.Float64Var(&speed, "speed", 0, "Preview speed")
	flag.StringVar(&logLevel, "log-level", "", "Log level")
	flag.BoolVar(&wordBoundaries, "word-boundaries", false, "Only remove option text at word boundaries")
	flag.Parse()

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("vidgen version %s\n", version)
		os.Exit(0)
	}

	errHandler := apperrors.NewCLIErrorHandler(false, nil)

	cfg, err := config.Load()
	if err != nil {
		fail(errHandler, apperrors.ConfigError("Failed to read configuration", err))
	}

	// Only flags given on the command line override the environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Dir = dir
		case "catalog":
			cfg.CatalogPath = catalogPath
		case "storage":
			cfg.Storage = backend
		case "speed":
			cfg.Speed = speed
		case "log-level":
			cfg.LogLevel = logLevel
		case "word-boundaries":
			cfg.WordBoundaries = wordBoundaries
		}
	})

	if err := cfg.Validate(); err != nil {
		fail(errHandler, apperrors.ConfigError("Invalid configuration", err))
	}

	logger, logFile, err := logging.New(cfg.Dir, cfg.LogLevel)
	if err != nil {
		fail(errHandler, apperrors.ConfigError("Failed to open log file", err))
	}
	defer logFile.Close()
	errHandler = apperrors.NewCLIErrorHandler(false, logger)

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			fail(errHandler, apperrors.CatalogError(cfg.CatalogPath, err))
		}
	}

	kv, err := storage.Open(cfg.Storage, cfg.Dir)
	if err != nil {
		fail(errHandler, apperrors.StorageError("open "+cfg.Storage, err))
	}
	defer kv.Close()

	logger.Info("starting", "version", version, "storage", cfg.Storage, "dir", cfg.Dir, "categories", cat.Len())
	if !clipboard.IsClipboardAvailable() {
		logger.Warn("no clipboard utility found", "hint", clipboard.GetInstallInstructions())
	}

	svc := service.NewService(service.Options{
		Catalog:        cat,
		KV:             kv,
		Logger:         logger,
		Speed:          cfg.Speed,
		WordBoundaries: cfg.WordBoundaries,
	})

	model, err := ui.NewModel(svc, ui.Options{
		Version:      version,
		GlamourStyle: cfg.GlamourStyle,
		Logger:       logger,
	})
	if err != nil {
		fail(errHandler, apperrors.Wrap(err, apperrors.ErrCodeInternalError, "Failed to start interface"))
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Println(err)
		return
	}
}

// fail logs and prints a startup error, then exits
func fail(h *apperrors.CLIErrorHandler, err error) {
	fmt.Fprintln(os.Stderr, h.HandleError(err))
	os.Exit(1)
}
