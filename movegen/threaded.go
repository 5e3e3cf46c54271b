package movegen

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/gaddag"
	"github.com/domino14/wordplay/move"
)

// searchTasks lists the pivots to search from. An empty board has no
// hooks; its only pivot is the center square, in both directions.
func searchTasks(b *board.Board) []searchTask {
	if b.IsEmptyBoard() {
		return []searchTask{
			{board.Center, board.Center, board.HorizontalDirection},
			{board.Center, board.Center, board.VerticalDirection},
		}
	}
	tasks := []searchTask{}
	for _, h := range Hooks(b) {
		for _, dir := range []board.BoardDirection{board.HorizontalDirection, board.VerticalDirection} {
			if h.Type.Allows(dir) {
				tasks = append(tasks, searchTask{h.Row, h.Col, dir})
			}
		}
	}
	return tasks
}

// FindAllBoard finds the plays the rack can make on the board. Every pivot
// is searched on its own with its own collection, spread over the
// configured number of goroutines; the collections are then merged in pivot
// order, so the result doesn't depend on the number of threads. The board
// must not change during the search. ctx is checked between pivots.
func (gen *GordonGenerator) FindAllBoard(ctx context.Context, b *board.Board, rack string) (*move.Collection, error) {
	if gen.gaddag.Type() != gaddag.TypeGaddag {
		return nil, fmt.Errorf("%w: have a %v", ErrNotGaddag, gen.gaddag.Type())
	}
	r, err := ParseRack(rack)
	if err != nil {
		return nil, err
	}
	tasks := searchTasks(b)
	perTask := make([]*move.Collection, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(gen.threads)
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perTask[i] = gen.newCollection()
			newLineSearch(gen.gaddag, b, t, perTask[i]).run(r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := gen.newCollection()
	for _, c := range perTask {
		results.Merge(c)
	}
	log.Debug().Str("rack", rack).Int("pivots", len(tasks)).Int("threads", gen.threads).
		Int("plays", results.Len()).Msg("board search done")
	return results, nil
}
