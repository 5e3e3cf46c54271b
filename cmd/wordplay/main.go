package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/domino14/wordplay/config"
)

var (
	GitVersion string
)

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "wordplay",
		Short:        "wordplay builds word graphs and finds plays with them",
		Version:      GitVersion,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(cmd.Flags()); err != nil {
				return err
			}
			setupLogging(cfg)
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.String(config.ConfigLexiconPath, cfg.GetString(config.ConfigLexiconPath),
		"directory holding word lists and built automata")
	pf.StringP(config.ConfigLexicon, "l", cfg.GetString(config.ConfigLexicon),
		"automaton to search with")
	pf.Bool(config.ConfigDebug, false, "debug logging")
	pf.IntP(config.ConfigThreads, "t", cfg.GetInt(config.ConfigThreads),
		"board search goroutines")
	pf.IntP(config.ConfigNumPlays, "n", cfg.GetInt(config.ConfigNumPlays),
		"number of plays to show")
	pf.String(config.ConfigFile, "", "YAML config file")

	root.AddCommand(newMakeCmd(cfg))
	root.AddCommand(newFindAllCmd(cfg))
	root.AddCommand(newBoardCmd(cfg))
	root.AddCommand(newLookupCmd(cfg))
	root.AddCommand(newDumpCmd(cfg))
	root.AddCommand(newShellCmd(cfg))
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.DefaultConfig()
	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
