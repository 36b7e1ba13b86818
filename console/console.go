// Package console implements the token source and display used by
// inputvalidation readers on top of a plain reader/writer pair, typically
// the process's stdin and stdout.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultPauseMessage is written by Pause before waiting for Enter.
const DefaultPauseMessage = "Press Enter to continue . . ."

// Console reads whitespace-delimited tokens and lines from one stream and
// writes prompts to another.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	screen   *termenv.Output
	terminal bool
	pauseMsg string
	// midLine is set while the line of the last token has not been read
	// to its end.
	midLine bool
}

// Option configures a Console.
type Option func(*Console)

// WithTerminal overrides terminal detection. Clear only emits escape
// sequences when the output is a terminal.
func WithTerminal(terminal bool) Option {
	return func(c *Console) {
		c.terminal = terminal
	}
}

// WithPauseMessage replaces DefaultPauseMessage.
func WithPauseMessage(msg string) Option {
	return func(c *Console) {
		c.pauseMsg = msg
	}
}

// New returns a Console reading from in and writing to out. The output is
// treated as a terminal when it is an *os.File attached to one.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:       bufio.NewReader(in),
		out:      out,
		screen:   termenv.NewOutput(out),
		terminal: isTerminal(out),
		pauseMsg: DefaultPauseMessage,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stdio returns a Console on os.Stdin and os.Stdout.
func Stdio(opts ...Option) *Console {
	return New(os.Stdin, os.Stdout, opts...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Token skips leading whitespace, line breaks included, and returns the
// following run of non-space characters. The whitespace that ends the token
// is left unread, so DiscardLine still drops the rest of the token's line.
func (c *Console) Token() (string, error) {
	var b strings.Builder
	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			if err == io.EOF && b.Len() > 0 {
				c.midLine = true
				return b.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 {
				continue
			}
			_ = c.in.UnreadRune()
			c.midLine = true
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}

// Line returns the rest of the current line without its line ending. A final
// line without a line break is returned as is; io.EOF is only returned when
// nothing is left.
func (c *Console) Line() (string, error) {
	c.midLine = false
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// DiscardLine drops everything up to and including the next line break.
func (c *Console) DiscardLine() error {
	c.midLine = false
	_, err := c.in.ReadString('\n')
	return err
}

// WriteLine writes s followed by a line break.
func (c *Console) WriteLine(s string) error {
	_, err := fmt.Fprintln(c.out, s)
	return err
}

// Clear clears the screen and homes the cursor. It does nothing when the
// output is not a terminal.
func (c *Console) Clear() error {
	if !c.terminal {
		return nil
	}
	c.screen.ClearScreen()
	return nil
}

// Pause writes the pause message and waits for a line. When the last
// token's line is still pending, only a blank remainder of it is dropped
// before waiting. Input typed ahead on that line answers the pause and stays
// queued for the next Token.
func (c *Console) Pause() error {
	if _, err := fmt.Fprintln(c.out, c.pauseMsg); err != nil {
		return err
	}
	if c.midLine && !c.dropBlankRemainder() {
		return nil
	}
	_, err := c.Line()
	return err
}

// dropBlankRemainder consumes buffered spaces up to and including one line
// break. It reports false, consuming nothing past the blanks, when the line
// holds more input. It never blocks on the underlying reader.
func (c *Console) dropBlankRemainder() bool {
	for c.in.Buffered() > 0 {
		b, err := c.in.Peek(1)
		if err != nil {
			return true
		}
		switch b[0] {
		case ' ', '\t', '\r':
			_, _ = c.in.ReadByte()
		case '\n':
			_, _ = c.in.ReadByte()
			c.midLine = false
			return true
		default:
			return false
		}
	}
	return true
}
