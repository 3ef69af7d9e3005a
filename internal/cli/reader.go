package cli

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// LineReader supplies one line of input per call and io.EOF when input ends
type LineReader interface {
	ReadLine() (string, error)
}

// prompter is implemented by readers that draw their own prompt
type prompter interface {
	SetPrompt(prompt string)
}

// ScannerReader reads lines from any io.Reader
type ScannerReader struct {
	scanner *bufio.Scanner
}

func NewScannerReader(r io.Reader) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(r)}
}

func (r *ScannerReader) ReadLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// ReadlineReader reads from an interactive terminal with line editing and
// in-memory history
type ReadlineReader struct {
	rl *readline.Instance
}

func NewReadlineReader() (*ReadlineReader, error) {
	return newReadlineReader(&readline.Config{})
}

// newReadlineReader fills in the console prompts on cfg, which may carry its
// own Stdin/Stdout and terminal hooks
func newReadlineReader(cfg *readline.Config) (*ReadlineReader, error) {
	cfg.Prompt = "> "
	cfg.InterruptPrompt = "^C"
	cfg.EOFPrompt = "quit"

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	return &ReadlineReader{rl: rl}, nil
}

func (r *ReadlineReader) ReadLine() (string, error) {
	for {
		line, err := r.rl.Readline()
		if !errors.Is(err, readline.ErrInterrupt) {
			return line, err
		}
		// ^C on an empty line leaves, otherwise it only discards the line
		if len(line) == 0 {
			return "", io.EOF
		}
	}
}

func (r *ReadlineReader) SetPrompt(prompt string) {
	r.rl.SetPrompt(prompt)
}

// Stdout is the writer to use for output while the reader is active
func (r *ReadlineReader) Stdout() io.Writer {
	return r.rl.Stdout()
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

// OpenConsole returns a view on stdin/stdout. Interactive terminals get
// line editing, anything else is read line by line. The returned func
// releases the terminal.
func OpenConsole() (*CLI, func(), error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return New(NewScannerReader(os.Stdin), os.Stdout), func() {}, nil
	}

	rl, err := NewReadlineReader()
	if err != nil {
		return nil, nil, err
	}
	return New(rl, rl.Stdout()), func() { rl.Close() }, nil
}
