package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/cache"
	"github.com/domino14/wordplay/config"
	"github.com/domino14/wordplay/gaddag"
	"github.com/domino14/wordplay/gaddagmaker"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/movegen"
	"github.com/domino14/wordplay/shell"
	"github.com/domino14/wordplay/tiles"
)

const histogramBins = 15

func loadGenerator(cfg *config.Config) (*movegen.GordonGenerator, error) {
	name := cfg.GetString(config.ConfigLexicon)
	gd, err := cache.LoadAs[*gaddag.Gaddag](cfg, gaddag.CacheKeyPrefix+name, gaddag.CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	return movegen.NewGordonGenerator(gd, movegen.WithThreads(cfg.Threads())), nil
}

func printMoves(w io.Writer, moves []*move.Move, numPlays int) {
	// ascending by score, so the best plays end up at the bottom
	if numPlays > 0 && len(moves) > numPlays {
		moves = moves[len(moves)-numPlays:]
	}
	for _, m := range moves {
		fmt.Fprintf(w, "%-5s %-15s %-7s %4d\n", m.BoardCoords(), m.Word(), m.Leave(), m.Score())
	}
}

func newMakeCmd(cfg *config.Config) *cobra.Command {
	var noMinimize bool
	cmd := &cobra.Command{
		Use:   "make <gaddag|dawg> <wordlist>",
		Short: "Build a GADDAG or DAWG out of a word list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := gaddag.ParseType(args[0])
			if err != nil {
				return err
			}
			t := time.Now()
			g, err := gaddagmaker.Generate(typ, args[1], !noMinimize)
			if err != nil {
				return err
			}
			out := gaddagmaker.OutputFilename(args[1], typ)
			if err := g.Save(out); err != nil {
				return err
			}
			log.Info().Str("output", out).Int("words", g.NumWords()).
				Int("nodes", g.NodeCount()).Dur("elapsed", time.Since(t)).
				Msg("automaton written")
			return nil
		},
	}
	cmd.Flags().BoolVar(&noMinimize, "no-minimize", false, "skip suffix sharing")
	return cmd
}

func newFindAllCmd(cfg *config.Config) *cobra.Command {
	var random, hist bool
	cmd := &cobra.Command{
		Use:   "findall [rack]",
		Short: "List every word a rack spells by itself",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rack string
			switch {
			case random:
				rack = tiles.NewBag().DrawRack()
			case len(args) == 1:
				rack = args[0]
			default:
				return errors.New("need a rack or --random")
			}
			gen, err := loadGenerator(cfg)
			if err != nil {
				return err
			}
			t := time.Now()
			plays, err := gen.FindAll(rack)
			if err != nil {
				return err
			}
			elapsed := time.Since(t)
			w := cmd.OutOrStdout()
			moves := plays.Moves()
			fmt.Fprintf(w, "rack %s\n", strings.ToUpper(rack))
			printMoves(w, moves, cfg.GetInt(config.ConfigNumPlays))
			fmt.Fprintf(w, "%d plays, elapsed time %v\n", len(moves), elapsed)
			if hist && len(moves) > 0 {
				return printHistogram(w, moves)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&random, "random", false, "draw a random rack from a full bag")
	cmd.Flags().BoolVar(&hist, "histogram", false, "print a histogram of play scores")
	return cmd
}

func printHistogram(w io.Writer, moves []*move.Move) error {
	scores := lo.Map(moves, func(m *move.Move, _ int) float64 {
		return float64(m.Score())
	})
	h := histogram.Hist(histogramBins, scores)
	return histogram.Fprint(w, h, histogram.Linear(40))
}

func newBoardCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "board <snapshot.yaml> [rack]",
		Short: "Find the plays a rack can make on a board",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			snap, err := board.ReadSnapshot(f)
			if err != nil {
				return err
			}
			b, err := snap.Board()
			if err != nil {
				return err
			}
			rack := snap.Rack
			if len(args) == 2 {
				rack = args[1]
			}
			if rack == "" {
				return errors.New("no rack in snapshot or on the command line")
			}
			gen, err := loadGenerator(cfg)
			if err != nil {
				return err
			}
			t := time.Now()
			plays, err := gen.FindAllBoard(cmd.Context(), b, rack)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, b.ToDisplayText())
			fmt.Fprintf(w, "rack %s\n", strings.ToUpper(rack))
			printMoves(w, plays.Moves(), cfg.GetInt(config.ConfigNumPlays))
			fmt.Fprintf(w, "%d plays, elapsed time %v\n", plays.Len(), time.Since(t))
			return nil
		},
	}
}

func newLookupCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>...",
		Short: "Check whether words are in the lexicon",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := loadGenerator(cfg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			invalid := 0
			for _, word := range args {
				if gaddag.FindWord(gen.WordGraph(), word) {
					fmt.Fprintf(w, "%s\tvalid\n", strings.ToUpper(word))
				} else {
					fmt.Fprintf(w, "%s\tinvalid\n", strings.ToUpper(word))
					invalid++
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d words invalid", invalid, len(args))
			}
			return nil
		},
	}
}

func newDumpCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <automaton>",
		Short: "Print every record of an automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if filepath.Base(filename) == filename {
				if _, err := os.Stat(filename); err != nil {
					filename = filepath.Join(cfg.GetString(config.ConfigLexiconPath), filename)
				}
			}
			g, err := gaddag.LoadFile(filename)
			if err != nil {
				return err
			}
			return g.Dump(cmd.OutOrStdout())
		},
	}
}

func newShellCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "shell [command...]",
		Short: "Start the interactive shell, or run one shell command",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := shell.NewShellController(cfg)
			defer sc.Cleanup()
			if len(args) > 0 {
				return sc.Execute(strings.Join(args, " "))
			}
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			go sc.Loop(sig)
			<-sig
			log.Info().Msg("got quit signal...")
			return nil
		},
	}
}
