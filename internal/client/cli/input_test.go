package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(r, "Say something", out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineBeforeEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(r, "p", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetSimpleText_EmptyInputErrors(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "p", io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	stubPasswords(t, "s3cret")
	out := &bytes.Buffer{}

	pw, err := GetPassword("Password", out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Contains(t, out.String(), "Password: ")
}
