package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestSSSSplitReconstruct_RoundTrip(t *testing.T) {
	setupCLIGlobals(t)

	tmpDir := t.TempDir()
	secretPath := filepath.Join(tmpDir, "secret.bin")
	sharesDir := filepath.Join(tmpDir, "shares")
	outPath := filepath.Join(tmpDir, "recovered.bin")

	secret := []byte("a secret worth splitting into shares")
	require.NoError(t, os.WriteFile(secretPath, secret, 0o600))

	sssSplitSecretFile = secretPath
	sssSplitOutDir = sharesDir
	sssSplitThreshold = 3
	sssSplitTotalShares = 5

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	require.NoError(t, runSSSSplit(cmd, nil))

	entries, err := os.ReadDir(sharesDir)
	require.NoError(t, err)
	require.Len(t, entries, sssSplitTotalShares)

	// Drop two shares to confirm threshold-of-total reconstruction works.
	require.NoError(t, os.Remove(filepath.Join(sharesDir, entries[0].Name())))
	require.NoError(t, os.Remove(filepath.Join(sharesDir, entries[1].Name())))

	sssReconstructDir = sharesDir
	sssReconstructOut = outPath

	reconCmd := &cobra.Command{}
	reconCmd.SetOut(&bytes.Buffer{})
	require.NoError(t, runSSSReconstruct(reconCmd, nil))

	recovered, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, secret, recovered)
}

func TestSSSValidate_ValidShareSet(t *testing.T) {
	setupCLIGlobals(t)

	tmpDir := t.TempDir()
	sharesDir := filepath.Join(tmpDir, "shares")

	sssSplitSecretFile = ""
	stdinRestore := swapStdin(t, "stdin-provided-secret")
	defer stdinRestore()

	sssSplitOutDir = sharesDir
	sssSplitThreshold = 2
	sssSplitTotalShares = 3

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	require.NoError(t, runSSSSplit(cmd, nil))

	sssValidateDir = sharesDir
	validateCmd := &cobra.Command{}
	validateCmd.SetOut(&bytes.Buffer{})
	require.NoError(t, runSSSValidate(validateCmd, nil))
}

// swapStdin replaces os.Stdin with a pipe fed the given content, returning
// a restore function.
func swapStdin(t *testing.T, content string) func() {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	origStdin := os.Stdin
	os.Stdin = r
	return func() {
		os.Stdin = origStdin
		_ = r.Close()
	}
}
