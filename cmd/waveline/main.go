// Package main is the entry point for the Waveline streaming simulator.
package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/waveline/waveline/internal/config"
	"github.com/waveline/waveline/internal/domain/library"
	"github.com/waveline/waveline/internal/domain/platform"
	"github.com/waveline/waveline/internal/infra/history"
	"github.com/waveline/waveline/internal/transport/commands"
	"github.com/waveline/waveline/internal/version"
)

func main() {
	cfg := config.Load()

	// Command line flags override environment configuration
	libraryPath := flag.String("library", cfg.LibraryPath, "Seed library JSON file")
	commandsPath := flag.String("commands", cfg.CommandsPath, "Input command stream JSON file")
	outputPath := flag.String("output", cfg.OutputPath, "Output results JSON file")
	historyDB := flag.String("history-db", cfg.HistoryDB, "SQLite play-history file (empty disables persistence)")
	debug := flag.Bool("debug", cfg.Debug, "Enable debug logging")
	flag.Parse()

	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Print startup banner
	versionInfo := version.GetInfo()
	log.Info().Msg("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Info().Msgf("  %s", versionInfo.String())
	log.Info().Msg("  Music Streaming Platform Simulator")
	log.Info().Msg("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Info().
		Str("library", *libraryPath).
		Str("commands", *commandsPath).
		Str("output", *outputPath).
		Bool("history", *historyDB != "").
		Msg("Configuration")

	seed, err := library.LoadSeed(*libraryPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load seed library")
	}

	var opts []platform.Option
	if *historyDB != "" {
		store, err := history.Open(*historyDB)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open play-history store")
		}
		defer store.Close()
		opts = append(opts, platform.WithHistory(store))
	}

	catalog := platform.New(seed, opts...)

	cmds, err := commands.Read(*commandsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load command stream")
	}
	log.Info().Int("count", len(cmds)).Msg("Command stream loaded")

	results, err := commands.NewRunner(catalog).Run(cmds)
	if err != nil {
		if errors.Is(err, platform.ErrTimestampRegression) {
			log.Fatal().Err(err).Msg("Command stream is not time-ordered")
		}
		log.Fatal().Err(err).Msg("Run aborted")
	}

	if err := commands.WriteResults(*outputPath, results); err != nil {
		log.Fatal().Err(err).Msg("Failed to write results")
	}
	log.Info().Int("nodes", len(results)).Str("output", *outputPath).Msg("Run complete")
}
