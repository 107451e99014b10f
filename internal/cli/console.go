package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/mcoot/connect4-go/internal/services/session"
)

// Console reads player input line by line from a terminal or pipe
type Console struct {
	in  io.Reader
	out *Output

	start   sync.Once
	stop    sync.Once
	lines   chan string
	readErr error // set before lines is closed
	done    chan struct{}
	stopped chan struct{} // closed when scan returns
}

// Ensure Console can prompt a session
var _ session.Prompter = (*Console)(nil)

// NewConsole creates a Console reading from in and prompting on out
func NewConsole(in io.Reader, out *Output) *Console {
	return &Console{
		in:    in,
		out:   out,
		lines:   make(chan string),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Close releases the reader goroutine once its pending read returns.
// Prompt must not be called after Close.
func (c *Console) Close() {
	c.stop.Do(func() { close(c.done) })
}

// Prompt shows the prompt and waits for the next line. End of input is
// io.EOF; a cancelled ctx returns ctx.Err() without waiting for the line.
func (c *Console) Prompt(ctx context.Context, prompt string) (string, error) {
	c.start.Do(func() { go c.scan() })

	c.out.ShowPrompt(prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			if c.readErr != nil {
				return "", c.readErr
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// scan feeds lines to Prompt. A blocked terminal read cannot be interrupted,
// so it runs on its own goroutine.
func (c *Console) scan() {
	defer close(c.stopped)

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		select {
		case c.lines <- strings.TrimRight(scanner.Text(), "\r"):
		case <-c.done:
			return
		}
	}
	c.readErr = scanner.Err()
	close(c.lines)
}
