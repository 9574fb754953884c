package app

import (
	"github.com/dshills/loupe/internal/buffer"
	"github.com/dshills/loupe/internal/render"
	"github.com/dshills/loupe/internal/render/backend"
)

// Options configures the application.
type Options struct {
	// Path is the file to open.
	Path string
	// Logger receives application logs. Defaults to DefaultLoggerConfig.
	Logger *Logger
}

// Application owns the terminal backend, the renderer and the single buffer,
// and drives the event loop. It is used from one goroutine.
type Application struct {
	opts     Options
	backend  backend.Backend
	renderer *render.Renderer
	buffer   *buffer.Buffer
	logger   *Logger
	rows     int // terminal rows; page movement repeats this many times
}

// New wires an application over a backend that has not been initialized yet.
func New(opts Options, b backend.Backend) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(DefaultLoggerConfig())
	}
	return &Application{
		opts:     opts,
		backend:  b,
		renderer: render.New(b),
		logger:   logger,
	}
}

// Buffer returns the open buffer. Nil until Run has loaded the file.
func (app *Application) Buffer() *buffer.Buffer {
	return app.buffer
}

// Run acquires the terminal, loads the file, and blocks in the
// read-eval-render loop until quit. The terminal is restored on every return
// path; ErrQuit is the normal exit.
func (app *Application) Run() error {
	if err := app.backend.Init(); err != nil {
		return NewOperationError("init terminal", "", err)
	}
	defer app.backend.Fini()

	_, rows := app.backend.Size()
	app.rows = rows

	// One row is reserved for the status line.
	buf, err := buffer.Open(app.opts.Path, rows-1)
	if err != nil {
		return NewOperationError("open", app.opts.Path, err)
	}
	app.buffer = buf
	app.logger.Debug("opened %s: %d lines", app.opts.Path, buf.Lines())

	app.renderer.Render(app.buffer)
	return app.loop()
}

// loop reads one event at a time, applies it, and re-renders.
func (app *Application) loop() error {
	for {
		ev := app.backend.PollEvent()
		switch ev.Type {
		case backend.EventNone:
			// The event source is gone; nothing more can arrive.
			return nil
		case backend.EventResize:
			app.resize(ev.Height)
		case backend.EventKey:
			action := bindingFor(ev)
			if action == ActionQuit {
				app.logger.Debug("quit")
				return ErrQuit
			}
			app.apply(action)
		}
		app.renderer.Render(app.buffer)
	}
}

// resize re-sizes the viewport to the new terminal geometry and brings the
// point's line back into view.
func (app *Application) resize(rows int) {
	app.rows = rows
	app.buffer.View().Resize(rows - 1)
	app.buffer.View().Adjust(app.buffer.Position().Line)
}

// apply executes one buffer operation.
func (app *Application) apply(action Action) {
	b := app.buffer
	switch action {
	case ActionMoveRight:
		b.MoveRight()
	case ActionMoveLeft:
		b.MoveLeft()
	case ActionMoveDown:
		b.MoveDown()
	case ActionMoveUp:
		b.MoveUp()
	case ActionMoveEndOfLine:
		b.MoveEndOfLine()
	case ActionMoveStartOfLine:
		b.MoveStartOfLine()
	case ActionPageDown:
		b.PageDown(app.rows)
	case ActionPageUp:
		b.PageUp(app.rows)
	case ActionMoveEnd:
		b.MoveEnd()
	case ActionMoveStart:
		b.MoveStart()
	case ActionDeleteLine:
		b.DeleteLine()
	case ActionNone:
		// Unbound key.
	}
}
