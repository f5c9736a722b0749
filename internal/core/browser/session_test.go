package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveBinary_ProbeOrder verifies the first existing path in the
// probe list wins.
func TestResolveBinary_ProbeOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "google-chrome")
	second := filepath.Join(dir, "chromium")
	require.NoError(t, os.WriteFile(first, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(second, []byte("#!/bin/sh\n"), 0o755))

	bin, err := resolveBinary([]string{
		filepath.Join(dir, "missing"),
		first,
		second,
	})

	require.NoError(t, err)
	assert.Equal(t, first, bin)
}

// TestSession_Close_Nil verifies teardown is safe when setup never
// completed.
func TestSession_Close_Nil(t *testing.T) {
	var s *Session
	assert.NotPanics(t, func() { s.Close() })

	assert.NotPanics(t, func() { (&Session{}).Close() })
}
