// Package tui renders the dashboard with Bubble Tea. The Program type is the
// bridge between the dashboard's control loop and the Bubble Tea event loop:
// it implements dashboard.Renderer by sending snapshots to the program and
// dashboard.InputSource by reading key presses the model forwards.
package tui

import (
	"context"
	stderrors "errors"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/rileyhilliard/fasam/internal/dashboard"
	"github.com/rileyhilliard/fasam/internal/errors"
)

// keyBuffer is how many key presses may queue between two polls.
const keyBuffer = 64

// Program runs the Bubble Tea program in its own goroutine.
type Program struct {
	prog *tea.Program
	keys chan dashboard.KeyEvent
	done chan struct{}

	startOnce sync.Once
	mu        sync.Mutex
	err       error
}

var (
	_ dashboard.Renderer    = (*Program)(nil)
	_ dashboard.InputSource = (*Program)(nil)
)

// NewProgram creates a program. Options are passed to tea.NewProgram.
func NewProgram(opts ...tea.ProgramOption) *Program {
	keys := make(chan dashboard.KeyEvent, keyBuffer)
	return &Program{
		prog: tea.NewProgram(NewModel(keys), opts...),
		keys: keys,
		done: make(chan struct{}),
	}
}

// Start runs the Bubble Tea event loop in the background. Calling it more
// than once has no effect.
func (p *Program) Start() {
	p.startOnce.Do(func() {
		go func() {
			_, err := p.prog.Run()
			p.mu.Lock()
			p.err = err
			p.mu.Unlock()
			close(p.done)
		}()
	})
}

// Draw hands the snapshot to the Bubble Tea program.
func (p *Program) Draw(snap dashboard.Snapshot) error {
	select {
	case <-p.done:
		return p.exitError()
	default:
	}
	p.prog.Send(frameMsg{snap: snap})
	return nil
}

// PollEvent waits up to timeout for a key press. Keys already queued are
// returned even if the program has since exited.
func (p *Program) PollEvent(timeout time.Duration) (dashboard.KeyEvent, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-p.keys:
		return ev, true, nil
	case <-p.done:
		select {
		case ev := <-p.keys:
			return ev, true, nil
		default:
		}
		return dashboard.KeyEvent{}, false, p.exitError()
	case <-timer.C:
		return dashboard.KeyEvent{}, false, nil
	}
}

// Close stops the Bubble Tea program, restores the terminal and waits for
// the event loop to exit.
func (p *Program) Close() error {
	p.prog.Quit()
	<-p.done
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// exitError describes why the event loop is no longer running.
func (p *Program) exitError() error {
	p.mu.Lock()
	cause := p.err
	p.mu.Unlock()
	if cause != nil {
		return errors.WrapWithCode(cause, errors.ErrTerminal,
			"The terminal UI stopped unexpectedly",
			"Check that the terminal is still attached and restart fasam.")
	}
	return errors.New(errors.ErrTerminal,
		"The terminal UI exited before the dashboard finished",
		"Restart fasam.")
}

// CheckTerminal returns a TERMINAL error unless f is an interactive terminal.
func CheckTerminal(f *os.File) error {
	if !term.IsTerminal(int(f.Fd())) {
		return errors.New(errors.ErrTerminal,
			"fasam needs an interactive terminal",
			"Run it directly in a terminal without redirecting stdout.")
	}
	return nil
}

// Run checks the terminal, starts the Bubble Tea program on the alternate
// screen and drives a dashboard against it until it stops.
func Run(ctx context.Context, mode ColorMode, opts dashboard.Options) error {
	if err := CheckTerminal(os.Stdout); err != nil {
		return err
	}
	ApplyColorMode(mode)

	p := NewProgram(tea.WithAltScreen(), tea.WithContext(ctx))
	p.Start()

	runErr := dashboard.New(p, p, opts).Run(ctx)
	closeErr := p.Close()
	if runErr != nil {
		return runErr
	}
	if closeErr != nil && !stderrors.Is(closeErr, tea.ErrProgramKilled) {
		return errors.WrapWithCode(closeErr, errors.ErrTerminal,
			"Failed to restore the terminal", "Run `reset` if the terminal looks wrong.")
	}
	return nil
}
