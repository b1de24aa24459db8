package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/machine"
	"github.com/kasuboski/moviedb/pkg/manager"
)

const DefaultTitle = "My Movie Database"

type State string

const (
	StateMenu    State = "menu"
	StateCommand State = "command"
	StatePaused  State = "paused"
	StateExited  State = "exited"
)

func newSession() *machine.StateMachine[State] {
	return machine.New(StateMenu,
		machine.From(StateMenu).To(StateCommand, StateExited),
		machine.From(StateCommand).To(StatePaused, StateExited),
		machine.From(StatePaused).To(StateMenu, StateExited),
	)
}

type command struct {
	label string
	run   func(ctx context.Context) error
}

// Shell is an interactive menu over a movie collection
type Shell struct {
	movies   manager.Service
	in       *bufio.Scanner
	out      io.Writer
	title    string
	styles   styles
	session  *machine.StateMachine[State]
	commands []command
}

// Option configures a Shell
type Option func(*Shell)

// WithTitle sets the banner printed when the session starts
func WithTitle(title string) Option {
	return func(s *Shell) {
		if title != "" {
			s.title = title
		}
	}
}

func New(movies manager.Service, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		movies:  movies,
		in:      bufio.NewScanner(in),
		out:     out,
		title:   DefaultTitle,
		styles:  newStyles(out),
		session: newSession(),
	}
	s.commands = []command{
		{label: "Exit"},
		{label: "List movies", run: s.listMovies},
		{label: "Add movie", run: s.addMovie},
		{label: "Delete movie", run: s.deleteMovie},
		{label: "Update movie", run: s.updateMovie},
		{label: "Stats", run: s.stats},
		{label: "Random movie", run: s.randomMovie},
		{label: "Search movie", run: s.searchMovies},
		{label: "Movies sorted by rating", run: s.sortBy(manager.SortByRating)},
		{label: "Movies sorted by year", run: s.sortBy(manager.SortByYear)},
		{label: "Filter movies", run: s.filterMovies},
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports where the session is in its lifecycle
func (s *Shell) State() State {
	return s.session.Current()
}

// Run loops over the menu until the user exits or the input is exhausted
func (s *Shell) Run(ctx context.Context) error {
	log := logger.FromCtx(ctx)
	s.printTitle()

	for {
		s.printMenu()
		choice, err := s.askChoice()
		if err != nil {
			return s.exit(err)
		}
		if choice == 0 {
			return s.exit(nil)
		}

		if err := s.session.ToState(StateCommand); err != nil {
			return err
		}

		cmd := s.commands[choice]
		log.Debugw("running command", "command", cmd.label)
		if err := cmd.run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return s.exit(nil)
			}
			if ctx.Err() != nil {
				return s.exit(ctx.Err())
			}
			s.printError(err)
		}

		if err := s.session.ToState(StatePaused); err != nil {
			return err
		}
		if _, err := s.readLine("\nPress enter to continue: "); err != nil {
			return s.exit(err)
		}
		if err := s.session.ToState(StateMenu); err != nil {
			return err
		}
	}
}

// exit ends the session. Exhausted input counts as a regular exit.
func (s *Shell) exit(cause error) error {
	if err := s.session.ToState(StateExited); err != nil {
		return err
	}
	s.println("\nBye Bye!")

	if cause == nil || errors.Is(cause, io.EOF) {
		return nil
	}
	return cause
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}
