package cli

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// newPipedReadline runs readline over a fixed input instead of a terminal
func newPipedReadline(t *testing.T, input string) *ReadlineReader {
	t.Helper()
	r, err := newReadlineReader(&readline.Config{
		Stdin:              io.NopCloser(strings.NewReader(input)),
		Stdout:             io.Discard,
		Stderr:             io.Discard,
		FuncIsTerminal:     func() bool { return false },
		FuncMakeRaw:        func() error { return nil },
		FuncExitRaw:        func() error { return nil },
		FuncGetWidth:       func() int { return 80 },
		FuncOnWidthChanged: func(func()) {},
	})
	if err != nil {
		t.Fatalf("newReadlineReader: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestReadlineReader(t *testing.T) {
	// \x03 is ^C: it discards the partly typed "a3" and reading goes on
	r := newPipedReadline(t, "b6 a5\na3\x03quit\n")

	for _, want := range []string{"b6 a5", "quit"} {
		line, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine: %v", err)
		}
		if line != want {
			t.Errorf("ReadLine = %q, want %q", line, want)
		}
	}
}

func TestReadlineInterruptOnEmptyLine(t *testing.T) {
	r := newPipedReadline(t, "\x03")

	if _, err := r.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine error = %v, want io.EOF", err)
	}
}

func TestReadlineCommands(t *testing.T) {
	r := newPipedReadline(t, "a3\x03b6 a5\n")
	c := New(r, r.Stdout())

	cmd, err := c.GetCommand("> ")
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Type != CmdMove || cmd.Raw != "b6 a5" {
		t.Errorf("command after interrupt = %+v, want move b6 a5", cmd)
	}
}

func TestOpenConsoleWithoutTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("stdin is a terminal")
	}

	view, closeConsole, err := OpenConsole()
	if err != nil {
		t.Fatalf("OpenConsole: %v", err)
	}
	defer closeConsole()

	if _, ok := view.input.(*ScannerReader); !ok {
		t.Errorf("input is %T, want *ScannerReader", view.input)
	}
}
