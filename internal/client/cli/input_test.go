package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	s, err := GetSimpleText(bufio.NewReader(strings.NewReader("  captain  \n")), "Enter username", &out)
	require.NoError(t, err)
	assert.Equal(t, "captain", s)
	assert.Equal(t, "Enter username\n> ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	s, err := GetSimpleText(bufio.NewReader(strings.NewReader("captain")), "p", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "captain", s)

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "p", io.Discard)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetMultiline(t *testing.T) {
	in := "{\n  \"name\": \"Baltic\"\r\n}\n\nignored\n"
	s, err := GetMultiline(bufio.NewReader(strings.NewReader(in)), "Enter JSON body", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"Baltic\"\n}", s)

	s, err = GetMultiline(bufio.NewReader(strings.NewReader("{}")), "b", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "{}", s)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Enter password: \n", out.String())

	boom := errors.New("not a terminal")
	readPassword = func(int) ([]byte, error) { return nil, boom }
	_, err = GetPassword(io.Discard)
	require.ErrorIs(t, err, boom)
}
