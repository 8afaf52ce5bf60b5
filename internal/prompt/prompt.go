// Package prompt provides the synchronous confirm/alert capability
// injected into the controller.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompter asks the user a yes/no question or shows a message.
type Prompter interface {
	// Confirm blocks until the user answers and reports whether they agreed.
	Confirm(message string) bool

	// Alert shows a user-facing message.
	Alert(message string)
}

// Terminal prompts on a line-oriented terminal.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a prompter reading answers from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Confirm prints message and accepts "y" or "yes", case-insensitive.
// Anything else, including EOF, declines.
func (t *Terminal) Confirm(message string) bool {
	fmt.Fprintf(t.out, "%s [y/N] ", message)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(t.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Alert prints message on its own line.
func (t *Terminal) Alert(message string) {
	fmt.Fprintln(t.out, message)
}

// Fixed answers every confirmation the same way and keeps alerts for
// the host to display.
type Fixed struct {
	answer bool

	mu     sync.Mutex
	alerts []string
}

// Yes returns a prompter that confirms everything.
func Yes() *Fixed { return &Fixed{answer: true} }

// No returns a prompter that declines everything.
func No() *Fixed { return &Fixed{answer: false} }

// Confirm returns the fixed answer.
func (f *Fixed) Confirm(message string) bool { return f.answer }

// Alert records message.
func (f *Fixed) Alert(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, message)
}

// Alerts returns the recorded alerts in order.
func (f *Fixed) Alerts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.alerts...)
}
