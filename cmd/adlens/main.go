package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/adlens-io/adlens/config"
	"github.com/adlens-io/adlens/engine"
	"github.com/adlens-io/adlens/loader"
	"github.com/adlens-io/adlens/render"
	"github.com/adlens-io/adlens/report"
)

// ============================================================================
// ADLENS CLI — Campaign analysis report + charts
// ============================================================================

const version = "0.1.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	// Path and size flags default to zero values here; after the config is
	// loaded, unset flags fall back to the configured values.
	configPath := flag.String("config", os.Getenv("ADLENS_CONFIG"), "Path to YAML config file (default: environment only)")
	filePath := flag.String("file", "", "Path to campaign CSV data file")
	outDir := flag.String("out", "", "Directory for chart PNG output")
	topN := flag.Int("top", 0, "Number of campaigns in the top/bottom sections")
	noCharts := flag.Bool("no-charts", false, "Skip chart rendering, print the report only")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `adlens — campaign analysis report + charts

Usage:
  adlens --file campaign_data.csv
  adlens --file campaign_data.csv --out ./charts --top 5
  adlens --config adlens.yaml --no-charts

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment (overridden by flags where both exist):
  ADLENS_CONFIG               YAML config file path
  ADLENS_INPUT_FILE           Input CSV path
  ADLENS_OUTPUT_DIR           Chart output directory
  ADLENS_TOP_N                Top/bottom section size
  ADLENS_ROAS_TARGET          Healthy-ROAS threshold (default 5)
  ADLENS_CONVERSION_TARGET    Respectable conversion-rate threshold (default 3)
  ADLENS_LOG_LEVEL            debug | info | warn | error
  ADLENS_LOG_FORMAT           text | json
`)
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("adlens %s\n", version)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatalf("Failed to load config: %v", err)
	}
	if *filePath == "" {
		*filePath = cfg.Input.File
	}
	if *outDir == "" {
		*outDir = cfg.Input.OutputDir
	}
	if *topN <= 0 {
		*topN = cfg.Analysis.TopN
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	// ── Load ──────────────────────────────────────────────────────────────
	ds, err := loader.LoadFile(*filePath)
	if err != nil {
		if errors.Is(err, loader.ErrNotFound) {
			fatalf("Input file not found: %s", *filePath)
		}
		fatalf("Failed to load data: %v", err)
	}
	logger.Info("data loaded", slog.String("file", *filePath), slog.Int("records", ds.Len()))

	// ── Analyze ───────────────────────────────────────────────────────────
	rep, err := report.Generate(ds, *topN,
		engine.WithROASTarget(cfg.Analysis.ROASTarget),
		engine.WithConversionTarget(cfg.Analysis.ConversionTarget),
	)
	if err != nil {
		fatalf("Analysis failed: %v", err)
	}
	if rep.KPIErr != nil {
		logger.Warn("KPI section skipped", slog.String("err", rep.KPIErr.Error()))
	}

	if err := rep.Render(os.Stdout); err != nil {
		fatalf("Failed to write report: %v", err)
	}

	// ── Charts ────────────────────────────────────────────────────────────
	if *noCharts {
		return
	}
	style := render.Style{
		Width:      cfg.Chart.Width,
		Height:     cfg.Chart.Height,
		BarWidth:   cfg.Chart.BarWidth,
		ROASTarget: cfg.Analysis.ROASTarget,
	}
	files, err := render.New(*outDir, style).RenderAll(rep)
	if err != nil {
		fatalf("Chart rendering failed: %v", err)
	}
	logger.Info("charts written", slog.Int("count", len(files)), slog.String("dir", *outDir))
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func newLogger(cfg config.Log) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
