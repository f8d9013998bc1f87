package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
	"github.com/ttacon/chalk"

	"scoreboard/board"
	"scoreboard/session"
)

// Clipboard is the subset of a system clipboard the copy command needs.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Console is the read-eval-print front end.
type Console struct {
	session *session.Session
	in      *bufio.Scanner
	out     io.Writer
	clip    Clipboard
	color   bool
}

type Option func(*Console)

func WithClipboard(c Clipboard) Option {
	return func(con *Console) { con.clip = c }
}

func WithColor(on bool) Option {
	return func(con *Console) { con.color = on }
}

func New(s *session.Session, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		session: s,
		in:      bufio.NewScanner(in),
		out:     out,
		clip:    systemClipboard{},
		color:   true,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Run loops until exit/quit or end of input. End of input saves once more.
func (c *Console) Run() error {
	c.println("Enter a code (show = list seats, copy = copy values, exit = quit).")
	for {
		c.printf("> ")
		if !c.in.Scan() {
			if err := c.session.Save(); err != nil {
				c.println(c.paint(chalk.Red, err.Error()))
			}
			return c.in.Err()
		}
		if c.Process(c.in.Text()) {
			return nil
		}
	}
}

// Process handles one line and reports whether the loop should stop.
func (c *Console) Process(line string) bool {
	s := strings.TrimSpace(line)
	switch strings.ToLower(s) {
	case "exit", "quit":
		return true
	case "show":
		c.show()
		return false
	case "copy":
		c.copyValues()
		return false
	}

	e, err := c.session.Submit(s)
	var (
		formatErr  *board.FormatError
		unknownErr *board.UnknownKeyError
	)
	switch {
	case err == nil:
		c.println(c.paint(chalk.Green, fmt.Sprintf("%02d -> %d", e.Key, e.Value)))
	case session.IsSaveError(err):
		c.println(c.paint(chalk.Yellow, fmt.Sprintf("%02d -> %d, but %v", e.Key, e.Value, err)))
	case errors.As(err, &formatErr):
		c.println(c.paint(chalk.Red, "Input error: enter 4-5 digits (first two = seat, rest = score)."))
	case errors.As(err, &unknownErr):
		c.println(c.paint(chalk.Red, fmt.Sprintf("Error: seat %02d is not on the board, please re-enter.", unknownErr.Key)))
	default:
		c.println(c.paint(chalk.Red, err.Error()))
	}
	return false
}

func (c *Console) show() {
	for _, e := range c.session.Entries() {
		if e.Set {
			c.println(fmt.Sprintf("%02d -> %d", e.Key, e.Value))
		} else {
			c.println(fmt.Sprintf("%02d -> -", e.Key))
		}
	}
}

func (c *Console) copyValues() {
	text, err := c.session.Export()
	if errors.Is(err, board.ErrNothingToCopy) {
		c.println("Nothing to copy.")
		return
	}
	if err := c.clip.WriteAll(text); err != nil {
		c.println(c.paint(chalk.Yellow, "Could not copy to the clipboard, values follow:"))
		c.println(text)
		return
	}
	c.println(c.paint(chalk.Green, "Values copied to the clipboard."))
}

func (c *Console) paint(col chalk.Color, s string) string {
	if !c.color {
		return s
	}
	return col.Color(s)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
