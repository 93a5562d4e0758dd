package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

var errIdentityNotConfirmed = errors.New("identity not confirmed")

// terminalPrompt stands in for the device biometric sensor on the CLI. It only
// asks the person at the keyboard to confirm; it does not verify identity.
type terminalPrompt struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
	// fd is the terminal behind in, or -1 when input is piped.
	fd int
}

func newTerminalPrompt(in io.Reader, out io.Writer) *terminalPrompt {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &terminalPrompt{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
	}
}

func (p *terminalPrompt) IsAvailable(ctx context.Context) bool {
	return true
}

func (p *terminalPrompt) Authenticate(ctx context.Context, prompt string) error {
	answer, err := p.ask(fmt.Sprintf("%s [y/N]: ", prompt))
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		return errIdentityNotConfirmed
	}
	return nil
}

func (p *terminalPrompt) ask(question string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprint(p.out, question)
	return p.readLine()
}

// askSecret reads a line without echo when input is a terminal. Piped input
// falls back to a plain line read.
func (p *terminalPrompt) askSecret(question string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprint(p.out, question)
	if p.fd < 0 {
		return p.readLine()
	}

	secret, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}

func (p *terminalPrompt) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
