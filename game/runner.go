package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Reason tells why a run ended.
type Reason int

const (
	// ReasonExtinct means every cell died.
	ReasonExtinct Reason = iota
	// ReasonGenerationLimit means the configured generation limit was reached.
	ReasonGenerationLimit
	// ReasonInterrupted means the context was cancelled.
	ReasonInterrupted
	// ReasonFailed means the next generation could not be computed.
	ReasonFailed
)

func (r Reason) String() string {
	switch r {
	case ReasonExtinct:
		return "extinct"
	case ReasonGenerationLimit:
		return "generation limit"
	case ReasonInterrupted:
		return "interrupted"
	case ReasonFailed:
		return "failed"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Result describes the final state of a run.
type Result struct {
	Generation uint64
	AliveCells int
	Reason     Reason
}

// Sleeper pauses between frames. It must return early with ctx.Err() once ctx
// is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the wall-clock Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Runner renders and evolves a board until all cells are dead.
type Runner struct {
	Board    *model.Board
	Renderer model.Renderer
	Evolver  model.Evolver

	Delay          time.Duration
	Sleep          Sleeper
	MaxGenerations uint64
	ShowStats      bool
	Logger         *log.Logger

	stats   *utils.Stats
	history *model.History
}

// NewRunner configures a Runner from cfg.
func NewRunner(board *model.Board, renderer model.Renderer, cfg utils.Config) *Runner {
	var pool *model.GridPool
	if cfg.UseMemoryPool {
		pool = model.NewGridPool()
	}

	return &Runner{
		Board:          board,
		Renderer:       renderer,
		Evolver:        model.Evolver{Pool: pool, Bounded: cfg.UseBoundedGrid},
		Delay:          cfg.Delay,
		Sleep:          Sleep,
		MaxGenerations: cfg.MaxGenerations,
		ShowStats:      cfg.ShowStats,
		Logger:         log.New(io.Discard, "", 0),
	}
}

// Run alternates between rendering the current generation and computing the
// next one. Every generation, including an all-dead first one, is rendered
// before the end conditions are checked.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.Sleep == nil {
		r.Sleep = Sleep
	}
	if r.Logger == nil {
		r.Logger = log.New(io.Discard, "", 0)
	}
	r.stats = utils.NewStats()
	r.history = model.NewHistory(model.DefaultHistorySize)
	lastFrame := time.Now()

	for {
		if err := ctx.Err(); err != nil {
			return r.result(ReasonInterrupted), err
		}

		r.renderFrame(time.Since(lastFrame))
		lastFrame = time.Now()

		if r.Board.IsExtinct() {
			return r.result(ReasonExtinct), nil
		}
		if r.MaxGenerations > 0 && r.Board.Generation() >= r.MaxGenerations {
			return r.result(ReasonGenerationLimit), nil
		}

		if err := r.Sleep(ctx, r.Delay); err != nil {
			return r.result(ReasonInterrupted), err
		}

		if err := r.Renderer.Clear(); err != nil {
			r.Logger.Printf("clearing display: %v", err)
		}

		if err := r.advance(); err != nil {
			return r.result(ReasonFailed), err
		}
	}
}

// advance computes the next generation and installs it on the board
func (r *Runner) advance() error {
	next, generation, err := r.Evolver.Step(r.Board)
	if err != nil {
		return err
	}

	prev, err := r.Board.Advance(next, generation)
	if err != nil {
		model.GridToPool(next, r.Evolver.Pool)
		return errors.Wrap(err, "[Run] installing next generation")
	}
	model.GridToPool(prev, r.Evolver.Pool)
	return nil
}

// renderFrame shows the current generation; display failures never stop the run
func (r *Runner) renderFrame(frameDuration time.Duration) {
	r.stats.Update(r.Board.Generation(), r.Board.AliveCells(), frameDuration)
	stagnant := r.history.Observe(r.Board.Grid())

	if sd, ok := r.Renderer.(model.StatusDisplayer); ok && r.ShowStats {
		if err := sd.DisplayStatus(r.statusLine(stagnant)); err != nil {
			r.Logger.Printf("displaying status: %v", err)
		}
	}

	if err := r.Renderer.Display(r.Board.Grid()); err != nil {
		r.Logger.Printf("displaying generation %d: %v", r.Board.Generation(), err)
	}
}

func (r *Runner) statusLine(stagnant bool) string {
	var (
		alive   = r.Board.AliveCells()
		density = float64(alive) / float64(r.Board.Width()*r.Board.Height()) * 100
		status  = "Active"
	)
	if stagnant {
		status = "Stagnant"
	}
	if alive == 0 {
		status = "Extinct"
	}

	line := fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | %.1f gen/sec | Avg Pop: %.1f",
		r.Board.Generation(), alive, density, status, r.stats.GenerationsPerSecond, r.stats.AveragePopulation)

	// Show bounding box info for bounded grids
	if r.Evolver.Bounded {
		line += fmt.Sprintf(" | Bounding box: %d cells", r.Board.Grid().GetBoundingBoxSize())
	}
	return line
}

func (r *Runner) result(reason Reason) Result {
	return Result{
		Generation: r.Board.Generation(),
		AliveCells: r.Board.AliveCells(),
		Reason:     reason,
	}
}

// Stats returns the statistics of the current or last run.
func (r *Runner) Stats() *utils.Stats { return r.stats }
