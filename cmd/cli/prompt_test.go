package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalPrompt_Authenticate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "Yes", input: "y\n", expected: nil},
		{name: "Yes Word", input: "YES\n", expected: nil},
		{name: "No", input: "n\n", expected: errIdentityNotConfirmed},
		{name: "Empty Line", input: "\n", expected: errIdentityNotConfirmed},
		{name: "No Trailing Newline", input: "y", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			prompt := newTerminalPrompt(strings.NewReader(tt.input), &out)

			err := prompt.Authenticate(context.Background(), "Confirm")

			assert.Equal(t, tt.expected, err)
			assert.Equal(t, "Confirm [y/N]: ", out.String())
		})
	}
}

func TestTerminalPrompt_ClosedInput(t *testing.T) {
	prompt := newTerminalPrompt(strings.NewReader(""), &bytes.Buffer{})

	err := prompt.Authenticate(context.Background(), "Confirm")

	assert.Error(t, err)
	assert.NotEqual(t, errIdentityNotConfirmed, err)
	assert.True(t, prompt.IsAvailable(context.Background()))
}

func TestTerminalPrompt_AskSecret(t *testing.T) {
	var out bytes.Buffer
	prompt := newTerminalPrompt(strings.NewReader("  s3cret!  \nnext\n"), &out)

	secret, err := prompt.askSecret("Password: ")

	assert.NoError(t, err)
	assert.Equal(t, "s3cret!", secret)
	assert.Equal(t, "Password: ", out.String())
	assert.Equal(t, -1, prompt.fd)

	next, err := prompt.ask("Again: ")
	assert.NoError(t, err)
	assert.Equal(t, "next", next)
}

func TestTerminalPrompt_PipeIsNotTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	_, err = w.WriteString("piped\n")
	require.NoError(t, err)

	prompt := newTerminalPrompt(r, &bytes.Buffer{})
	secret, err := prompt.askSecret("Password: ")

	require.NoError(t, err)
	assert.Equal(t, -1, prompt.fd)
	assert.Equal(t, "piped", secret)
}
