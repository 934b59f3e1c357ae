package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AJBcoding/hearing-test-tracker/internal/clinical"
	"github.com/AJBcoding/hearing-test-tracker/internal/config"
	"github.com/AJBcoding/hearing-test-tracker/internal/extract"
)

var version = "dev"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	fs := ff.NewFlagSet("audiogram-extract")
	var (
		lang        = fs.StringLong("lang", cfg.OCR.Language, "Tesseract language for footer OCR")
		geminiKey   = fs.StringLong("gemini-key", cfg.Gemini.APIKey, "Google Gemini API key (or set GEMINI_API_KEY env var)")
		geminiModel = fs.StringLong("gemini-model", cfg.Gemini.Model, "Google Gemini model name")
		clinicalPDF = fs.BoolLong("clinical", "Treat inputs as clinical PDF reports (implied by .pdf extension)")
		withHeader  = fs.BoolLong("header", "Also OCR the top band of each image and include it in the result")
		pretty      = fs.BoolLong("pretty", "Indent JSON output")
		verbose     = fs.BoolLong("verbose", "Enable debug logging")
		showVersion = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("AUDIOGRAM"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	paths := fs.GetArgs()
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintln(os.Stderr, "error: at least one image or PDF path is required")
		os.Exit(1)
	}

	opts := extract.DefaultOptions()
	opts.Language = *lang
	opts.IncludeHeader = *withHeader
	opts.ExpectedCount = cfg.Processing.ExpectedCount
	opts.DeskewThreshold = cfg.Processing.DeskewThreshold
	opts.FooterFraction = cfg.Processing.FooterFraction
	imageExtractor := extract.New(opts)

	ctx := context.Background()
	var pdfExtractor *clinical.Extractor

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}

	failures := 0
	for _, path := range paths {
		isPDF := *clinicalPDF || strings.EqualFold(filepath.Ext(path), ".pdf")
		if isPDF {
			if pdfExtractor == nil {
				pdfExtractor, err = clinical.NewExtractor(ctx, *geminiKey, *geminiModel)
				if err != nil {
					log.Fatal().Err(err).Msg("Failed to initialize clinical extractor")
				}
				defer pdfExtractor.Close()
			}
			log.Info().Str("path", path).Msg("Extracting clinical report")
			tests, err := pdfExtractor.ExtractTests(ctx, path)
			if err != nil {
				log.Error().Err(err).Str("path", path).Msg("Extraction failed")
				failures++
				continue
			}
			if err := enc.Encode(tests); err != nil {
				log.Fatal().Err(err).Msg("Failed to write output")
			}
			continue
		}

		log.Info().Str("path", path).Msg("Extracting audiogram")
		result, err := imageExtractor.Extract(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("Extraction failed")
			failures++
			continue
		}
		log.Debug().
			Int("left_markers", len(result.LeftEar)).
			Int("right_markers", len(result.RightEar)).
			Float64("confidence", result.Confidence).
			Msg("Extraction complete")
		if err := enc.Encode(result); err != nil {
			log.Fatal().Err(err).Msg("Failed to write output")
		}
	}

	log.Info().
		Int("processed", len(paths)-failures).
		Int("failed", failures).
		Msg("Done")
	if failures > 0 {
		os.Exit(1)
	}
}
