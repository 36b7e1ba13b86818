package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	c := New(strings.NewReader("  12\tabc\n\n   x"), io.Discard)

	for _, want := range []string{"12", "abc", "x"} {
		got, err := c.Token()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := c.Token()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDiscardLine(t *testing.T) {
	c := New(strings.NewReader("abc def\nnext\n"), io.Discard)

	tok, err := c.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	require.NoError(t, c.DiscardLine())
	tok, err = c.Token()
	require.NoError(t, err)
	assert.Equal(t, "next", tok)

	require.NoError(t, c.DiscardLine())
	assert.ErrorIs(t, c.DiscardLine(), io.EOF)
}

func TestLine(t *testing.T) {
	c := New(strings.NewReader("hello world\r\n\nlast"), io.Discard)

	for _, want := range []string{"hello world", "", "last"} {
		got, err := c.Line()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := c.Line()
	assert.ErrorIs(t, err, io.EOF)
}

func TestWriteLine(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	require.NoError(t, c.WriteLine("Enter age"))
	assert.Equal(t, "Enter age\n", out.String())
}

func TestClear(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, New(strings.NewReader(""), &out).Clear())
	assert.Empty(t, out.String(), "no escape codes when not a terminal")

	require.NoError(t, New(strings.NewReader(""), &out, WithTerminal(true)).Clear())
	assert.Contains(t, out.String(), "\x1b[2J")
}

func TestPause(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("10\n\n18\n"), &out, WithPauseMessage("Press Enter"))

	tok, err := c.Token()
	require.NoError(t, err)
	assert.Equal(t, "10", tok)

	// The line break after 10 does not count as the acknowledgment.
	require.NoError(t, c.Pause())
	assert.Equal(t, "Press Enter\n", out.String())

	tok, err = c.Token()
	require.NoError(t, err)
	assert.Equal(t, "18", tok)
}

func TestPause_AfterDiscard(t *testing.T) {
	c := New(strings.NewReader("abc\n\n18\n"), io.Discard)

	_, err := c.Token()
	require.NoError(t, err)
	require.NoError(t, c.DiscardLine())
	require.NoError(t, c.Pause())

	tok, err := c.Token()
	require.NoError(t, err)
	assert.Equal(t, "18", tok)
}

func TestPause_KeepsTypeAhead(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("10 18\n20\n"), &out)

	tok, err := c.Token()
	require.NoError(t, err)
	assert.Equal(t, "10", tok)

	require.NoError(t, c.Pause())
	assert.Equal(t, DefaultPauseMessage+"\n", out.String())

	for _, want := range []string{"18", "20"} {
		tok, err = c.Token()
		require.NoError(t, err)
		assert.Equal(t, want, tok)
	}
}

func TestPause_EOF(t *testing.T) {
	c := New(strings.NewReader(""), io.Discard)
	assert.ErrorIs(t, c.Pause(), io.EOF)
}
