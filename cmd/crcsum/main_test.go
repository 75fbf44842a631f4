package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTemplateDigest(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--template", "crc-32"}, strings.NewReader("123456789"), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "cbf43926\n", stdout.String())
}

func TestRunExplicitParameters(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{
		"--width", "16",
		"--poly", "0x1021",
		"--init", "0",
		"--xorout", "0",
	}
	code := run(args, strings.NewReader("123456789"), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "31c3\n", stdout.String())
}

func TestRunList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--list"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "crc-32 ")
	assert.Contains(t, stdout.String(), "crc3-gsm ")
}

func TestRunMissingConfigurationErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
}

func TestRunUnknownTemplateErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--template", "not-a-template"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
}

func TestRunZeroBytesPrefix(t *testing.T) {
	var withZeros, withoutZeros bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"--template", "crc-32", "--zero-bytes", "3"}, strings.NewReader("123456789"), &withZeros, &stderr)
	require.Equal(t, 0, code)

	code = run([]string{"--template", "crc-32"}, strings.NewReader("\x00\x00\x00123456789"), &withoutZeros, &stderr)
	require.Equal(t, 0, code)

	assert.Equal(t, withoutZeros.String(), withZeros.String())
}

func TestRunCombineMatchesWholeBuffer(t *testing.T) {
	var wholeOut, aOut, bOut, stderr bytes.Buffer

	code := run([]string{"--template", "crc-32"}, strings.NewReader("123456789"), &wholeOut, &stderr)
	require.Equal(t, 0, code)

	code = run([]string{"--template", "crc-32"}, strings.NewReader("123456"), &aOut, &stderr)
	require.Equal(t, 0, code)

	code = run([]string{"--template", "crc-32"}, strings.NewReader("789"), &bOut, &stderr)
	require.Equal(t, 0, code)

	c1 := strings.TrimSpace(aOut.String())
	c2 := strings.TrimSpace(bOut.String())

	var combinedOut bytes.Buffer
	code = run([]string{"--template", "crc-32", "--combine", c1 + "," + c2 + ",3"}, strings.NewReader(""), &combinedOut, &stderr)
	require.Equal(t, 0, code)

	assert.Equal(t, strings.TrimSpace(wholeOut.String()), strings.TrimSpace(combinedOut.String()))
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("template: crc-32\nmethod: bitwise\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", path}, strings.NewReader("123456789"), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "cbf43926\n", stdout.String())
}

func TestParseHexUint64(t *testing.T) {
	v, err := parseHexUint64("0x1021")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1021), v)

	v, err = parseHexUint64("1021")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1021), v)

	v, err = parseHexUint64("")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)
}
