package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rivebuild/internal/adapters/fs"
	"go.trai.ch/rivebuild/internal/core/domain"
)

func TestVerifier_VerifyOutputs(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "skia"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "out.txt"), []byte("content"), 0o600))

	// All outputs exist
	exists, err := verifier.VerifyOutputs(tmpDir, []string{"skia", "out.txt"})
	require.NoError(t, err)
	assert.True(t, exists)

	// One output missing
	exists, err = verifier.VerifyOutputs(tmpDir, []string{"skia", "missing"})
	require.NoError(t, err)
	assert.False(t, exists)

	// Missing root
	exists, err = verifier.VerifyOutputs(filepath.Join(tmpDir, "nope"), []string{"skia"})
	require.NoError(t, err)
	assert.False(t, exists)

	// No outputs is trivially satisfied
	exists, err = verifier.VerifyOutputs(tmpDir, nil)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestVerifier_VerifyOutputs_StatError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	tmpDir := t.TempDir()
	locked := filepath.Join(tmpDir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o750))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) }) //nolint:gosec // restore for cleanup

	_, err := fs.NewVerifier().VerifyOutputs(locked, []string{"skia"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGuardCheckFailed)
}
