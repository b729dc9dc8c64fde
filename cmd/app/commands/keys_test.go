package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenerateSecret(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunGenerateSecret(&out))

	line := strings.TrimSpace(out.String())
	require.True(t, strings.HasPrefix(line, "TOKEN_SECRET="))
	assert.GreaterOrEqual(t, len(strings.TrimPrefix(line, "TOKEN_SECRET=")), 43)
}

func TestRunGenerateEncryptionKey(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunGenerateEncryptionKey(&out))
	assert.Contains(t, out.String(), "ENCRYPTION_KEY=")
}

func TestGeneratedValuesDiffer(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, RunGenerateSecret(&a))
	require.NoError(t, RunGenerateSecret(&b))
	assert.NotEqual(t, a.String(), b.String())
}
