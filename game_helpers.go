package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// loadBoard reads the initial board from the configured file, or creates a
// random one when no file is given
func loadBoard(config utils.Config, logger *log.Logger) (*model.Board, error) {
	if config.File != "" {
		return model.LoadFromFile(config.File)
	}

	rng, seed := utils.NewRNG(config.Seed)
	if config.ShowStats {
		logger.Printf("random %dx%d board, seed %d", config.Width, config.Height, seed)
	}
	return model.NewRandomBoard(config.Width, config.Height, rng)
}

// playGame runs the simulation on the configured display and returns the
// run statistics alongside the result. In screen mode a second goroutine
// watches for the quit keys.
func playGame(
	ctx context.Context,
	config utils.Config,
	board *model.Board,
	stdout io.Writer,
	logger *log.Logger,
) (game.Result, *utils.Stats, error) {
	eg, ctx := errgroup.WithContext(ctx)

	var (
		renderer model.Renderer
		screen   *model.ScreenRenderer
	)
	switch config.Display {
	case utils.DisplayScreen:
		var err error
		if screen, err = model.NewScreenRenderer(); err != nil {
			return game.Result{Generation: board.Generation(), AliveCells: board.AliveCells(), Reason: game.ReasonFailed}, nil, err
		}
		defer screen.Close()
		renderer = screen
		eg.Go(screen.Watch)
	default:
		renderer = model.NewTerminalRenderer(stdout)
	}

	runner := game.NewRunner(board, renderer, config)
	runner.Logger = logger

	var result game.Result
	eg.Go(func() error {
		var err error
		result, err = runner.Run(ctx)
		if screen != nil {
			// Unblocks Watch and hands the terminal back before the final message
			screen.Close()
		}
		return err
	})

	err := eg.Wait()
	return result, runner.Stats(), err
}

// isInterruption reports whether err only means the user stopped the run
func isInterruption(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, model.ErrQuit)
}

func finalMessage(result game.Result) string {
	switch result.Reason {
	case game.ReasonExtinct:
		return fmt.Sprintf("All cells died at generation %d", result.Generation)
	case game.ReasonGenerationLimit:
		return fmt.Sprintf("Stopped at generation %d with %d living cells (limit reached)", result.Generation, result.AliveCells)
	default:
		return fmt.Sprintf("Stopped at generation %d with %d living cells (%s)", result.Generation, result.AliveCells, result.Reason)
	}
}
