package app

import (
	"fmt"
	"strconv"
	"time"

	"chunk-life/internal/core"
	"chunk-life/internal/design"
	"chunk-life/internal/sims/life"
	"chunk-life/internal/viewport"
)

// Mode selects which surface receives commands.
type Mode uint8

const (
	// ModeDesign edits the seed board.
	ModeDesign Mode = iota
	// ModePlay runs the simulation and pans the chunk view.
	ModePlay
)

func (m Mode) String() string {
	if m == ModePlay {
		return "play"
	}
	return "design"
}

// Command is an input the session reacts to. The GUI maps keys onto these.
type Command uint8

const (
	CmdLeft Command = iota
	CmdRight
	CmdUp
	CmdDown
	CmdToggle
	CmdClear
	CmdPlay
	CmdEdit
	CmdReset
	CmdPause
	CmdStepOnce
)

const intervalKey = "interval_ms"

// Session owns the world, the editor board and both viewports, and
// alternates between designing a seed and playing it. It is not safe for
// concurrent use.
type Session struct {
	life  *life.Life
	board *design.Board
	play  *viewport.Viewport
	edit  *viewport.Viewport
	clock *core.FixedStep

	mode       Mode
	generation uint64
	paused     bool
	stepOnce   bool
}

// NewSession builds a session in design mode with the configured pattern
// preloaded on the board.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sim, err := life.New(cfg.Life)
	if err != nil {
		return nil, err
	}
	chunk := core.Size{W: cfg.Life.ChunkWidth, H: cfg.Life.ChunkHeight}
	board, err := design.NewBoard(chunk)
	if err != nil {
		return nil, fmt.Errorf("app: editor board: %w", err)
	}
	play, err := viewport.New(sim.Size(), chunk, viewport.MissingAlive)
	if err != nil {
		return nil, err
	}
	play.SetInvertY(cfg.InvertPan)
	edit, err := viewport.New(board.Size(), board.Size(), viewport.MissingDead)
	if err != nil {
		return nil, err
	}

	sim.Reset(cfg.Seed)
	for _, c := range sim.Alive() {
		board.Mark(c, true)
	}
	sim.Clear()

	return &Session{
		life:  sim,
		board: board,
		play:  play,
		edit:  edit,
		clock: core.NewFixedStep(cfg.Interval),
		mode:  ModeDesign,
	}, nil
}

// Mode returns the active mode.
func (s *Session) Mode() Mode { return s.mode }

// Generation returns the generation shown in play mode. It is 1 right after
// seeding.
func (s *Session) Generation() uint64 { return s.generation }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// Life exposes the simulation for read access.
func (s *Session) Life() *life.Life { return s.life }

// Board exposes the editor board.
func (s *Session) Board() *design.Board { return s.board }

// PlayView returns the chunk viewport over the world.
func (s *Session) PlayView() *viewport.Viewport { return s.play }

// EditView returns the viewport over the editor board.
func (s *Session) EditView() *viewport.Viewport { return s.edit }

// Clock exposes the generation pacing.
func (s *Session) Clock() *core.FixedStep { return s.clock }

// Handle applies one command. Commands that do not apply to the current
// mode are ignored.
func (s *Session) Handle(cmd Command) error {
	if s.mode == ModeDesign {
		return s.handleDesign(cmd)
	}
	return s.handlePlay(cmd)
}

func (s *Session) handleDesign(cmd Command) error {
	switch cmd {
	case CmdLeft:
		s.board.Move(viewport.Left)
	case CmdRight:
		s.board.Move(viewport.Right)
	case CmdUp:
		s.board.Move(viewport.Up)
	case CmdDown:
		s.board.Move(viewport.Down)
	case CmdToggle:
		s.board.Toggle()
	case CmdClear:
		s.board.Clear()
	case CmdPlay:
		if err := s.reseed(); err != nil {
			return err
		}
		s.mode = ModePlay
		s.paused = false
	}
	return nil
}

func (s *Session) handlePlay(cmd Command) error {
	switch cmd {
	case CmdLeft:
		s.play.Move(viewport.Left)
	case CmdRight:
		s.play.Move(viewport.Right)
	case CmdUp:
		s.play.Move(viewport.Up)
	case CmdDown:
		s.play.Move(viewport.Down)
	case CmdEdit:
		s.mode = ModeDesign
	case CmdReset:
		return s.reseed()
	case CmdPause:
		s.paused = !s.paused
	case CmdStepOnce:
		s.stepOnce = true
	}
	return nil
}

func (s *Session) reseed() error {
	if err := s.life.Seed(s.board.Marks()); err != nil {
		return fmt.Errorf("app: seeding world: %w", err)
	}
	s.generation = 1
	s.stepOnce = false
	return nil
}

// Tick advances one generation when playing and the clock allows it, or when
// a single step was requested. It reports whether a step happened.
func (s *Session) Tick() bool {
	if s.mode != ModePlay {
		return false
	}
	due := s.stepOnce
	if !s.paused && s.clock.ShouldStep() {
		due = true
	}
	if !due {
		return false
	}
	s.life.Step()
	s.generation++
	s.stepOnce = false
	return true
}

// Parameters reports the values the HUD shows.
func (s *Session) Parameters() core.ParameterSnapshot {
	size := s.life.Size()
	stats := s.life.LastStep()
	addr := s.play.Address()
	chunks := s.play.Chunks()
	chunk := s.play.ChunkSize()

	state := s.mode.String()
	if s.mode == ModePlay && s.paused {
		state = "paused"
	}
	groups := []core.ParameterGroup{
		{
			Name: "Session",
			Params: []core.Parameter{
				core.StringParam("mode", "Mode", state),
				core.StringParam("generation", "Generation", strconv.FormatUint(s.generation, 10)),
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				core.StringParam("world", "World", fmt.Sprintf("%dx%d", size.W, size.H)),
				core.IntParam("alive", "Alive", s.life.AliveCount()),
				core.IntParam("births", "Births", stats.Births),
				core.IntParam("deaths", "Deaths", stats.Deaths),
			},
		},
		{
			Name: "Chunk",
			Params: []core.Parameter{
				core.StringParam("chunk", "Chunk", fmt.Sprintf("(%d, %d) of (%d, %d)", addr.X, addr.Y, chunks.W-1, chunks.H-1)),
				core.IntParam("visible", "Tiles visible", chunk.W*chunk.H),
			},
		},
		{
			Name: "Editor",
			Params: []core.Parameter{
				core.StringParam("cursor", "Cursor", fmt.Sprintf("(%d, %d)", s.board.Cursor().X, s.board.Cursor().Y)),
				core.IntParam("marks", "Marks", s.board.MarkCount()),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				core.IntParam(intervalKey, "Interval ms", int(s.clock.Interval()/time.Millisecond)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values adjustable from the HUD.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: intervalKey, Label: "Interval ms", Step: 4, Min: 0, Max: 1000, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an adjustable value. Unknown keys are rejected.
func (s *Session) SetIntParameter(key string, value int) bool {
	for _, ctrl := range s.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case intervalKey:
			s.clock.SetInterval(time.Duration(value) * time.Millisecond)
			return true
		}
	}
	return false
}
