// Package headless drives a session without a window: it seeds the board,
// starts the simulation and renders the result to a terminal canvas.
package headless

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"lifeboard/internal/core"
	"lifeboard/internal/render"
	"lifeboard/internal/session"
)

// RandomPattern seeds the board through the randomize command.
const RandomPattern = "random"

// Options configures a headless run.
type Options struct {
	Session     session.Options
	Pattern     string
	Generations int
	Color       bool

	// Out receives the final board and status. Nil discards it.
	Out    io.Writer
	Logger *slog.Logger
}

// Result describes how a run ended.
type Result struct {
	Generations int
	Ticks       uint64
	Frames      int
	Population  int
	Extinct     bool
	Board       string
}

// surface feeds scripted input to the session and asks it to quit once the
// run is over. It also owns the synthetic clock, which advances exactly one
// tick per frame and freezes once the run is done.
type surface struct {
	core.EventQueue
	*render.Terminal

	ctx       context.Context
	sess      *session.Session
	limit     int
	frames    int
	maxFrames int

	t    time.Time
	step time.Duration
	done bool
}

func (s *surface) Present() {
	s.frames++
	if s.done {
		return
	}
	s.done = s.ctx.Err() != nil ||
		s.sess.Generation() >= s.limit ||
		!s.sess.Controller().Running() ||
		s.frames >= s.maxFrames
	if s.done {
		s.Push(core.Quit{})
	}
}

func (s *surface) now() time.Time {
	if !s.done {
		s.t = s.t.Add(s.step)
	}
	return s.t
}

// Run seeds the board, starts it and advances a synthetic clock one tick
// per frame until the generation limit is reached, the board dies out, or
// ctx is cancelled.
func Run(ctx context.Context, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "headless")
	if opts.Session.Logger == nil {
		opts.Session.Logger = logger
	}

	sess := session.New(opts.Session)
	size := sess.Size()
	surf := &surface{
		Terminal: render.NewTerminal(size.W, size.H, sess.Controller().CellSize(), opts.Color),
		ctx:      ctx,
		sess:     sess,
		limit:    opts.Generations,
	}

	switch opts.Pattern {
	case "":
	case RandomPattern:
		surf.Push(core.KeyDown{Key: core.KeyRandomize})
	default:
		if !sess.Seed(opts.Pattern) {
			return Result{}, fmt.Errorf("unknown pattern %q", opts.Pattern)
		}
	}
	surf.Push(core.KeyDown{Key: core.KeyToggleRun})

	speed := sess.Controller().Speed()
	if speed < 1 {
		speed = 1
	}
	surf.maxFrames = (opts.Generations+1)*speed + 1

	tps := opts.Session.TPS
	if tps <= 0 {
		tps = 60
	}
	surf.t = time.Unix(0, 0)
	surf.step = time.Second / time.Duration(tps)
	log.Info("headless run", "pattern", opts.Pattern, "generations", opts.Generations, "width", size.W, "height", size.H)
	sess.Run(surf, surf.now)

	live := sess.Controller().Live()
	res := Result{
		Generations: sess.Generation(),
		Ticks:       sess.Ticks(),
		Frames:      surf.frames,
		Population:  live.Population(),
		Extinct:     live.Empty(),
		Board:       surf.String(),
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	if opts.Out != nil {
		if _, err := surf.WriteTo(opts.Out); err != nil {
			return res, fmt.Errorf("writing board: %w", err)
		}
		status := fmt.Sprintf("%s  %s  %s\n",
			surf.Status("generation", res.Generations),
			surf.Status("population", res.Population),
			surf.Status("ticks", res.Ticks))
		if _, err := io.WriteString(opts.Out, status); err != nil {
			return res, fmt.Errorf("writing status: %w", err)
		}
	}
	return res, nil
}
